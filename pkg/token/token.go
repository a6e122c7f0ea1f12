// Package token issues and verifies the bearer tokens returned by the
// login mutation. Tokens are HS256 JWTs signed with a single shared secret
// and carry no expiry; verification is stateless, so no session store is
// needed.
package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the token payload: the username and record id of the user the
// token was issued to.
type Claims struct {
	Username string `json:"username"`
	UserID   string `json:"id"`
	jwt.RegisteredClaims
}

// Service signs and verifies tokens with a fixed shared secret
type Service struct {
	secret []byte
}

// NewService creates a new token service
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Sign issues a token embedding the given username and user id
func (s *Service) Sign(username, userID string) (string, error) {
	claims := Claims{
		Username: username,
		UserID:   userID,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a token and returns its claims. Any signature or payload
// problem is reported as ErrInvalidToken.
func (s *Service) Verify(raw string) (*Claims, error) {
	claims := &Claims{}

	t, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !t.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
