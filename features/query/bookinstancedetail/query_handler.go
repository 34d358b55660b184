package bookinstancedetail

import (
	"context"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// Store defines the interface needed by the QueryHandler for store operations.
type Store interface {
	BookInstanceByID(ctx context.Context, id uuid.UUID) (catalog.BookInstance, error)
	BooksByIDs(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]catalog.Book, error)
	UsersByIDs(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]catalog.User, error)
}

// QueryHandler loads one copy.
type QueryHandler struct {
	store Store
}

// NewQueryHandler creates a new QueryHandler with the provided Store dependency.
func NewQueryHandler(store Store) QueryHandler {
	return QueryHandler{
		store: store,
	}
}

// Handle returns catalog.ErrNotFound for unknown copies.
func (h QueryHandler) Handle(ctx context.Context, query Query) (InstanceDetail, error) {
	ctx = catalog.WithEventualConsistency(ctx)

	instance, err := h.store.BookInstanceByID(ctx, query.InstanceID)
	if err != nil {
		return InstanceDetail{}, err
	}

	detail := InstanceDetail{Instance: instance}

	if instance.BookID.Valid {
		books, booksErr := h.store.BooksByIDs(ctx, instance.BookID.UUID)
		if booksErr != nil {
			return InstanceDetail{}, booksErr
		}

		detail.BookTitle = books[instance.BookID.UUID].Title
	}

	if instance.BorrowerID.Valid {
		users, usersErr := h.store.UsersByIDs(ctx, instance.BorrowerID.UUID)
		if usersErr != nil {
			return InstanceDetail{}, usersErr
		}

		if borrower, ok := users[instance.BorrowerID.UUID]; ok {
			detail.BorrowerName = borrower.DisplayName()
		}
	}

	return detail, nil
}
