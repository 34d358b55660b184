package authordetail

import (
	"github.com/google/uuid"
)

const (
	queryType = "AuthorDetail"
)

// Query represents the input for the detail page of one author.
type Query struct {
	AuthorID uuid.UUID
}

// BuildQuery creates a new Query.
func BuildQuery(authorID uuid.UUID) Query {
	return Query{AuthorID: authorID}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
