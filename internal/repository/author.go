package repository

import (
	"context"
	"errors"

	"github.com/librarium/api/internal/database"
	"github.com/librarium/api/internal/model"
)

// AuthorRepository handles author data access
type AuthorRepository struct {
	db database.Database
}

// NewAuthorRepository creates a new author repository
func NewAuthorRepository(db database.Database) *AuthorRepository {
	return &AuthorRepository{db: db}
}

// Count returns the total number of authors
func (r *AuthorRepository) Count(ctx context.Context) (int, error) {
	result, err := r.db.QueryOne(ctx, `SELECT count() FROM author GROUP ALL`, nil)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	if row, ok := asRow(result); ok {
		return getInt(row, "count"), nil
	}
	return 0, nil
}

// List returns all authors in stored order
func (r *AuthorRepository) List(ctx context.Context) ([]*model.Author, error) {
	result, err := r.db.Query(ctx, `SELECT * FROM author`, nil)
	if err != nil {
		return nil, err
	}

	rows := resultRows(result)
	authors := make([]*model.Author, 0, len(rows))
	for _, row := range rows {
		authors = append(authors, decodeAuthor(row))
	}
	return authors, nil
}

// GetByID retrieves an author by record id, or nil if absent
func (r *AuthorRepository) GetByID(ctx context.Context, id string) (*model.Author, error) {
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
	return decodeAuthor(row), nil
}

// GetByName retrieves an author by exact name match, or nil if absent
func (r *AuthorRepository) GetByName(ctx context.Context, name string) (*model.Author, error) {
	query := `SELECT * FROM author WHERE name = $name LIMIT 1`
	vars := map[string]interface{}{"name": name}

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
	return decodeAuthor(row), nil
}

// Create persists a new author with only a name; born stays unset until an
// explicit editAuthor
func (r *AuthorRepository) Create(ctx context.Context, name string) (*model.Author, error) {
	query := `CREATE author CONTENT { name: $name }`
	vars := map[string]interface{}{"name": name}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	rows := resultRows(result)
	if len(rows) == 0 {
		return nil, errors.New("no result returned")
	}
	return decodeAuthor(rows[0]), nil
}

// SetBorn updates the born year of the author with the given name
func (r *AuthorRepository) SetBorn(ctx context.Context, name string, born int) error {
	query := `UPDATE author SET born = $born WHERE name = $name`
	vars := map[string]interface{}{
		"name": name,
		"born": born,
	}
	return r.db.Execute(ctx, query, vars)
}

// DeleteAll removes every author and returns the deleted record ids
func (r *AuthorRepository) DeleteAll(ctx context.Context) ([]string, error) {
	result, err := r.db.Query(ctx, `DELETE author RETURN BEFORE`, nil)
	if err != nil {
		return nil, err
	}

	rows := resultRows(result)
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, recordID(row["id"]))
	}
	return ids, nil
}

func decodeAuthor(row map[string]interface{}) *model.Author {
	return &model.Author{
		ID:   recordID(row["id"]),
		Name: getString(row, "name"),
		Born: getIntPtr(row, "born"),
	}
}
