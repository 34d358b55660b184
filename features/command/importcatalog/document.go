package importcatalog

import (
	"errors"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// ErrDecodingDocumentFailed is returned when the import document is not valid JSON.
var ErrDecodingDocumentFailed = errors.New("decoding import document failed")

// Document is the top-level structure of an import file.
type Document struct {
	Genres    []GenreRecord    `json:"genres"`
	Authors   []AuthorRecord   `json:"authors"`
	Books     []BookRecord     `json:"books"`
	Instances []InstanceRecord `json:"instances"`
}

// GenreRecord describes one genre.
type GenreRecord struct {
	Name string `json:"name"`
}

// AuthorRecord describes one author. Dates use the YYYY-MM-DD format and may be empty.
type AuthorRecord struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	DateOfDeath string `json:"date_of_death,omitempty"`
}

// AuthorRef references an author by name.
type AuthorRef struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// BookRecord describes one book. ISBN is the natural key.
type BookRecord struct {
	Title   string    `json:"title"`
	Author  AuthorRef `json:"author"`
	Summary string    `json:"summary"`
	ISBN    string    `json:"isbn"`
	Genres  []string  `json:"genres"`
}

// InstanceRecord describes one copy of the book with the given ISBN.
// Without an ID every import creates a new copy.
type InstanceRecord struct {
	ID       string `json:"id,omitempty"`
	ISBN     string `json:"isbn"`
	Imprint  string `json:"imprint"`
	Language string `json:"language,omitempty"`
	Status   string `json:"status,omitempty"`
	DueBack  string `json:"due_back,omitempty"`
}

// DecodeDocument reads an import document.
func DecodeDocument(r io.Reader) (Document, error) {
	var doc Document

	decoder := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(r)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&doc); err != nil {
		return Document{}, errors.Join(ErrDecodingDocumentFailed, err)
	}

	return doc, nil
}

// NumRecords returns the number of records in the document.
func (d Document) NumRecords() int {
	return len(d.Genres) + len(d.Authors) + len(d.Books) + len(d.Instances)
}
