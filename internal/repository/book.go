package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/librarium/api/internal/database"
	"github.com/librarium/api/internal/model"
)

// BookRepository handles book data access
type BookRepository struct {
	db database.Database
}

// NewBookRepository creates a new book repository
func NewBookRepository(db database.Database) *BookRepository {
	return &BookRepository{db: db}
}

// Count returns the total number of books
func (r *BookRepository) Count(ctx context.Context) (int, error) {
	result, err := r.db.QueryOne(ctx, `SELECT count() FROM book GROUP ALL`, nil)
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

// CountByAuthor returns the number of books referencing the given author.
// This backs the derived Author.bookCount field and is recomputed on every
// query.
func (r *BookRepository) CountByAuthor(ctx context.Context, authorID string) (int, error) {
	query := `SELECT count() FROM book WHERE author = type::record($author) GROUP ALL`
	vars := map[string]interface{}{"author": authorID}

	result, err := r.db.QueryOne(ctx, query, vars)
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

// List returns books matching the optional filters. An empty authorID or
// genre means that filter is not applied; both given means both apply.
func (r *BookRepository) List(ctx context.Context, authorID, genre string) ([]*model.Book, error) {
	query := `SELECT * FROM book`
	conds := make([]string, 0, 2)
	vars := map[string]interface{}{}

	if authorID != "" {
		conds = append(conds, `author = type::record($author)`)
		vars["author"] = authorID
	}
	if genre != "" {
		conds = append(conds, `$genre IN genres`)
		vars["genre"] = genre
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	rows := resultRows(result)
	books := make([]*model.Book, 0, len(rows))
	for _, row := range rows {
		books = append(books, decodeBook(row))
	}
	return books, nil
}

// Create persists a new book. The author reference must already resolve to
// an existing author record; callers resolve-or-create the author first.
func (r *BookRepository) Create(ctx context.Context, book *model.Book) (*model.Book, error) {
	query := `
		CREATE book CONTENT {
			title: $title,
			published: $published,
			author: type::record($author),
			genres: $genres
		}
	`
	vars := map[string]interface{}{
		"title":     book.Title,
		"published": book.Published,
		"author":    book.AuthorID,
		"genres":    book.Genres,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isDuplicateError(err) {
			return nil, fmt.Errorf("%w: %v", database.ErrDuplicate, err)
		}
		return nil, err
	}

	rows := resultRows(result)
	if len(rows) == 0 {
		return nil, errors.New("no result returned")
	}
	return decodeBook(rows[0]), nil
}

// DeleteAll removes every book and returns the deleted record ids
func (r *BookRepository) DeleteAll(ctx context.Context) ([]string, error) {
	result, err := r.db.Query(ctx, `DELETE book RETURN BEFORE`, nil)
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

func decodeBook(row map[string]interface{}) *model.Book {
	return &model.Book{
		ID:        recordID(row["id"]),
		Title:     getString(row, "title"),
		Published: getInt(row, "published"),
		AuthorID:  recordID(row["author"]),
		Genres:    getStringSlice(row, "genres"),
	}
}
