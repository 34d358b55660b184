package loanedbooksbyuser

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

const (
	queryType = "LoanedBooksByUser"
)

// Query represents the input for one page of the loans of a borrower.
type Query struct {
	BorrowerID uuid.UUID
	Page       catalog.PageRequest
	Today      time.Time
}

// BuildQuery creates a new Query.
func BuildQuery(borrowerID uuid.UUID, pageNumber, pageSize int, today time.Time) Query {
	return Query{
		BorrowerID: borrowerID,
		Page:       catalog.BuildPageRequest(pageNumber, pageSize),
		Today:      catalog.DateOf(today),
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
