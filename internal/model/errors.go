package model

// Error codes surfaced in the extensions of a GraphQL error. The values
// match the ones Apollo clients already switch on.
const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeBadUserInput    = "BAD_USER_INPUT"
)

// GraphQLError is a resolver error with an extensions map. It satisfies the
// ExtendedError interface of graph-gophers/graphql-go, so the extensions
// are included verbatim in the response's errors array.
type GraphQLError struct {
	Message string
	Ext     map[string]interface{}
}

// Error implements the error interface
func (e *GraphQLError) Error() string {
	return e.Message
}

// Extensions returns the GraphQL error extensions
func (e *GraphQLError) Extensions() map[string]interface{} {
	return e.Ext
}

// Common error constructors

// NewAuthenticationError rejects a mutation from a caller lacking identity.
func NewAuthenticationError(detail string) *GraphQLError {
	return &GraphQLError{
		Message: detail,
		Ext: map[string]interface{}{
			"code": CodeUnauthenticated,
		},
	}
}

// NewValidationError rejects input that failed a field or uniqueness
// constraint. invalidArgs carries the offending input back to the caller.
func NewValidationError(detail string, invalidArgs map[string]interface{}) *GraphQLError {
	return &GraphQLError{
		Message: detail,
		Ext: map[string]interface{}{
			"code":        CodeBadUserInput,
			"invalidArgs": invalidArgs,
		},
	}
}

// NewInvalidCredentialsError rejects a login attempt. The message is the
// same whether the username or the password was wrong, so callers cannot
// enumerate users.
func NewInvalidCredentialsError() *GraphQLError {
	return &GraphQLError{
		Message: "wrong username or password",
		Ext: map[string]interface{}{
			"code": CodeBadUserInput,
		},
	}
}
