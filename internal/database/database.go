// Package database provides the document-store abstraction for the catalog.
//
// The Database interface wraps SurrealDB behind three query methods:
//   - Query: returns multiple results (SELECT queries returning lists)
//   - QueryOne: returns a single result (SELECT by id, count queries)
//   - Execute: no return value (mutations whose result is discarded)
//
// Standard errors are defined for common failure cases and should be
// checked with errors.Is():
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // handle missing record
//	}
//
// There is no transaction support: no operation in this system spans more
// than one record kind, and the add-book author-then-book write is
// deliberately non-transactional.
package database

import (
	"context"
	"errors"
)

// Standard errors for database operations.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a unique constraint violation (e.g. duplicate username).
	ErrDuplicate = errors.New("duplicate record")

	// ErrConnection indicates a failure to connect to or communicate with the database.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure (syntax error, schema assertion, etc.).
	ErrQuery = errors.New("query error")
)

// Database defines the interface for document-store operations
type Database interface {
	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Query executes a query and returns results
	Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)

	// QueryOne executes a query and returns a single result
	QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)

	// Execute runs a query without returning results (for mutations)
	Execute(ctx context.Context, query string, vars map[string]interface{}) error
}

// Config holds database configuration
type Config struct {
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string
}
