package booklist

import (
	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

const (
	queryType = "BookList"
)

// Query represents the input for one page of the book list.
type Query struct {
	Page catalog.PageRequest
}

// BuildQuery creates a new Query for the 1-based page number.
func BuildQuery(pageNumber, pageSize int) Query {
	return Query{Page: catalog.BuildPageRequest(pageNumber, pageSize)}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
