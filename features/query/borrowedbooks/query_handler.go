package borrowedbooks

import (
	"context"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// Store defines the interface needed by the QueryHandler for store operations.
type Store interface {
	CountLoanedInstances(ctx context.Context) (int, error)
	LoanedInstances(ctx context.Context, page catalog.PageRequest) ([]catalog.BookInstance, error)
	BooksByIDs(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]catalog.Book, error)
	UsersByIDs(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]catalog.User, error)
}

// QueryHandler loads one page of all loans.
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

	total, err := h.store.CountLoanedInstances(ctx)
	if err != nil {
		return Loans{}, err
	}

	if err = query.Page.Validate(total); err != nil {
		return Loans{}, err
	}

	instances, err := h.store.LoanedInstances(ctx, query.Page)
	if err != nil {
		return Loans{}, err
	}

	bookIDs := make([]uuid.UUID, 0, len(instances))
	borrowerIDs := make([]uuid.UUID, 0, len(instances))
	for _, instance := range instances {
		if instance.BookID.Valid {
			bookIDs = append(bookIDs, instance.BookID.UUID)
		}
		if instance.BorrowerID.Valid {
			borrowerIDs = append(borrowerIDs, instance.BorrowerID.UUID)
		}
	}

	books, err := h.store.BooksByIDs(ctx, bookIDs...)
	if err != nil {
		return Loans{}, err
	}

	borrowers, err := h.store.UsersByIDs(ctx, borrowerIDs...)
	if err != nil {
		return Loans{}, err
	}

	return Project(instances, books, borrowers, query, total), nil
}
