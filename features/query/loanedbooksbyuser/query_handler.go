package loanedbooksbyuser

import (
	"context"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// Store defines the interface needed by the QueryHandler for store operations.
type Store interface {
	CountLoanedInstancesByBorrower(ctx context.Context, borrowerID uuid.UUID) (int, error)
	LoanedInstancesByBorrower(ctx context.Context, borrowerID uuid.UUID, page catalog.PageRequest) ([]catalog.BookInstance, error)
	BooksByIDs(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]catalog.Book, error)
}

// QueryHandler loads one page of the loans of a borrower.
type QueryHandler struct {
	store Store
}

// NewQueryHandler creates a new QueryHandler with the provided Store dependency.
func NewQueryHandler(store Store) QueryHandler {
	return QueryHandler{
		store: store,
	}
}

// Handle returns catalog.ErrInvalidPage for page numbers outside the list.
func (h QueryHandler) Handle(ctx context.Context, query Query) (Loans, error) {
	ctx = catalog.WithEventualConsistency(ctx)

	total, err := h.store.CountLoanedInstancesByBorrower(ctx, query.BorrowerID)
	if err != nil {
		return Loans{}, err
	}

	if err = query.Page.Validate(total); err != nil {
		return Loans{}, err
	}

	instances, err := h.store.LoanedInstancesByBorrower(ctx, query.BorrowerID, query.Page)
	if err != nil {
		return Loans{}, err
	}

	books, err := h.store.BooksByIDs(ctx, bookIDsOf(instances)...)
	if err != nil {
		return Loans{}, err
	}

	return Project(instances, books, query, total), nil
}

func bookIDsOf(instances []catalog.BookInstance) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(instances))
	for _, instance := range instances {
		if instance.BookID.Valid {
			ids = append(ids, instance.BookID.UUID)
		}
	}

	return ids
}
