package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/librarium/api/internal/database"
	"github.com/librarium/api/internal/model"
)

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// List returns all users
func (r *UserRepository) List(ctx context.Context) ([]*model.User, error) {
	result, err := r.db.Query(ctx, `SELECT * FROM user`, nil)
	if err != nil {
		return nil, err
	}

	rows := resultRows(result)
	users := make([]*model.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, decodeUser(row))
	}
	return users, nil
}

// GetByID retrieves a user by record id, or nil if absent
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	row, ok := asRow(result)
	if !ok {
		return nil, errors.New("unexpected result format")
	}
	return decodeUser(row), nil
}

// GetByUsername retrieves a user by exact username match, or nil if absent
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT * FROM user WHERE username = $username LIMIT 1`
	vars := map[string]interface{}{"username": username}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	row, ok := asRow(result)
	if !ok {
		return nil, errors.New("unexpected result format")
	}
	return decodeUser(row), nil
}

// Create persists a new user. The unique index on username surfaces
// duplicates as ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
		CREATE user CONTENT {
			username: $username,
			favoriteGenre: $favoriteGenre
		}
	`
	vars := map[string]interface{}{
		"username":      user.Username,
		"favoriteGenre": user.FavoriteGenre,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isDuplicateError(err) {
			return nil, fmt.Errorf("%w: username already exists", database.ErrDuplicate)
		}
		return nil, err
	}

	rows := resultRows(result)
	if len(rows) == 0 {
		return nil, errors.New("no result returned")
	}
	return decodeUser(rows[0]), nil
}

func decodeUser(row map[string]interface{}) *model.User {
	return &model.User{
		ID:            recordID(row["id"]),
		Username:      getString(row, "username"),
		FavoriteGenre: getString(row, "favoriteGenre"),
	}
}
