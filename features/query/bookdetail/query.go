package bookdetail

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

const (
	queryType = "BookDetail"
)

// Query represents the input for the detail page of one book.
type Query struct {
	BookID uuid.UUID
	Today  time.Time
}

// BuildQuery creates a new Query.
func BuildQuery(bookID uuid.UUID, today time.Time) Query {
	return Query{
		BookID: bookID,
		Today:  catalog.DateOf(today),
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
