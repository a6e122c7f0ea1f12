package model

// Author represents a book author. The born year is optional and only set
// via the editAuthor mutation; bookCount is derived at query time and never
// stored.
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Born *int   `json:"born,omitempty"`
}
