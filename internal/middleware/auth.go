package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/librarium/api/internal/model"
	"github.com/librarium/api/pkg/token"
)

const bearerPrefix = "bearer "

// TokenVerifier defines the interface for bearer token verification
type TokenVerifier interface {
	Verify(raw string) (*token.Claims, error)
}

// UserLookup defines the interface for resolving a token subject to a user
type UserLookup interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// CurrentUser derives the caller identity from the Authorization header and
// attaches it to the request context.
//
// An absent header, or one without a Bearer prefix, leaves the caller
// anonymous. A Bearer token that fails verification rejects the whole
// request. A verified token whose subject no longer exists degrades to
// anonymous: the token proves trust, not record presence.
func CurrentUser(tokens TokenVerifier, users UserLookup) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(strings.ToLower(authHeader), bearerPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokens.Verify(authHeader[len(bearerPrefix):])
			if err != nil {
				writeGraphQLError(w, http.StatusOK, model.NewAuthenticationError("invalid token"))
				return
			}

			user, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				writeGraphQLError(w, http.StatusInternalServerError, &model.GraphQLError{Message: "internal server error"})
				return
			}
			if user == nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
		})
	}
}

// ContextWithUser returns a context carrying the given caller identity
func ContextWithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, CurrentUserKey, user)
}

// UserFromContext extracts the current caller from context; nil means the
// request is anonymous
func UserFromContext(ctx context.Context) *model.User {
	if user, ok := ctx.Value(CurrentUserKey).(*model.User); ok {
		return user
	}
	return nil
}

// writeGraphQLError writes a GraphQL response envelope containing a single
// error, for failures that happen before the query executes
func writeGraphQLError(w http.ResponseWriter, status int, gqlErr *model.GraphQLError) {
	type responseError struct {
		Message    string                 `json:"message"`
		Extensions map[string]interface{} `json:"extensions,omitempty"`
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"errors": []responseError{{
			Message:    gqlErr.Message,
			Extensions: gqlErr.Ext,
		}},
	})
}
