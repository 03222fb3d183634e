package models

import (
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

type Book struct {
	bun.BaseModel `bun:"table:books,alias:b"`

	ID        int       `bun:",pk,nullzero" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Title     string    `bun:",nullzero" json:"title"`
	AuthorID  int       `bun:",nullzero" json:"author_id"`
	Author    *Author   `bun:"rel:belongs-to,join:author_id=id" json:"author,omitempty"`
	Summary   string    `bun:",nullzero" json:"summary"`
	ISBN      string    `bun:",nullzero" json:"isbn"`

	Genres    []*BookGenre    `bun:"rel:has-many,join:id=book_id" json:"genres,omitempty"`
	Instances []*BookInstance `bun:"rel:has-many,join:id=book_id" json:"instances,omitempty"`
}

// URL is the canonical path to this book's detail page.
func (b *Book) URL() string {
	return fmt.Sprintf("/catalog/book/%d", b.ID)
}

// GenreIDs returns the ids of the genres associated with this book. Used to
// pre-check the genre boxes on the update form.
func (b *Book) GenreIDs() []int {
	ids := make([]int, 0, len(b.Genres))
	for _, bg := range b.Genres {
		ids = append(ids, bg.GenreID)
	}
	return ids
}

type BookGenre struct {
	bun.BaseModel `bun:"table:book_genres,alias:bg"`

	ID      int    `bun:",pk,nullzero" json:"id"`
	BookID  int    `bun:",nullzero" json:"book_id"`
	GenreID int    `bun:",nullzero" json:"genre_id"`
	Genre   *Genre `bun:"rel:belongs-to,join:genre_id=id" json:"genre,omitempty"`
}
