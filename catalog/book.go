package catalog

import (
	"strings"

	"github.com/google/uuid"
)

const (
	maxBookTitleLength   = 200
	maxBookSummaryLength = 1000
	maxISBNLength        = 13
)

// Book is a catalog entry, not a physical copy.
type Book struct {
	ID       uuid.UUID
	Title    string
	// AuthorID is null when the author was deleted or the book was imported without one.
	AuthorID uuid.NullUUID
	Summary  string
	ISBN     string
	GenreIDs []uuid.UUID
}

// BuildBook creates a Book with a fresh ID.
func BuildBook(title string, authorID uuid.NullUUID, summary, isbn string, genreIDs []uuid.UUID) Book {
	return Book{
		ID:       uuid.New(),
		Title:    strings.TrimSpace(title),
		AuthorID: authorID,
		Summary:  strings.TrimSpace(summary),
		ISBN:     strings.TrimSpace(isbn),
		GenreIDs: genreIDs,
	}
}

// Validate checks the field constraints of the book.
func (b Book) Validate() error {
	v := ValidationErrors{}
	checkRequired(v, "title", b.Title, maxBookTitleLength)
	checkRequired(v, "summary", b.Summary, maxBookSummaryLength)
	checkRequired(v, "isbn", b.ISBN, maxISBNLength)

	if len(b.GenreIDs) == 0 {
		v.Add("genre", MsgRequired)
	}

	return v.ErrOrNil()
}

// String returns the title.
func (b Book) String() string {
	return b.Title
}
