package model

// Book represents a catalog entry. AuthorID is a record reference to the
// owning Author; many books may share one author. Books are never updated
// after creation.
type Book struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Published int      `json:"published"`
	AuthorID  string   `json:"author"`
	Genres    []string `json:"genres"`
}
