package borrowedbooks

import (
	"time"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

const (
	queryType = "BorrowedBooks"
)

// Query represents the input for one page of all loans.
type Query struct {
	Page  catalog.PageRequest
	Today time.Time
}

// BuildQuery creates a new Query.
func BuildQuery(pageNumber, pageSize int, today time.Time) Query {
	return Query{
		Page:  catalog.BuildPageRequest(pageNumber, pageSize),
		Today: catalog.DateOf(today),
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
