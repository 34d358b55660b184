package authordetail

import (
	"context"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// Store defines the interface needed by the QueryHandler for store operations.
type Store interface {
	AuthorByID(ctx context.Context, id uuid.UUID) (catalog.Author, error)
	BooksByAuthor(ctx context.Context, authorID uuid.UUID) ([]catalog.Book, error)
}

// QueryHandler loads an author and their books.
type QueryHandler struct {
	store Store
}

// NewQueryHandler creates a new QueryHandler with the provided Store dependency.
func NewQueryHandler(store Store) QueryHandler {
	return QueryHandler{
		store: store,
	}
}

// Handle returns catalog.ErrNotFound for unknown authors.
func (h QueryHandler) Handle(ctx context.Context, query Query) (AuthorDetail, error) {
	ctx = catalog.WithEventualConsistency(ctx)

	author, err := h.store.AuthorByID(ctx, query.AuthorID)
	if err != nil {
		return AuthorDetail{}, err
	}

	books, err := h.store.BooksByAuthor(ctx, author.ID)
	if err != nil {
		return AuthorDetail{}, err
	}

	return AuthorDetail{Author: author, Books: books}, nil
}
