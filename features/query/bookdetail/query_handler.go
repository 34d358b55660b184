package bookdetail

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// Store defines the interface needed by the QueryHandler for store operations.
type Store interface {
	BookByID(ctx context.Context, id uuid.UUID) (catalog.Book, error)
	AuthorByID(ctx context.Context, id uuid.UUID) (catalog.Author, error)
	GenresOfBooks(ctx context.Context, bookIDs ...uuid.UUID) (map[uuid.UUID][]catalog.Genre, error)
	InstancesOfBook(ctx context.Context, bookID uuid.UUID) ([]catalog.BookInstance, error)
}

// QueryHandler loads a book with everything its detail page shows.
type QueryHandler struct {
	store Store
}

// NewQueryHandler creates a new QueryHandler with the provided Store dependency.
func NewQueryHandler(store Store) QueryHandler {
	return QueryHandler{
		store: store,
	}
}

// Handle returns catalog.ErrNotFound for unknown books.
func (h QueryHandler) Handle(ctx context.Context, query Query) (BookDetail, error) {
	ctx = catalog.WithEventualConsistency(ctx)

	book, err := h.store.BookByID(ctx, query.BookID)
	if err != nil {
		return BookDetail{}, err
	}

	var author *catalog.Author
	if book.AuthorID.Valid {
		loaded, authorErr := h.store.AuthorByID(ctx, book.AuthorID.UUID)
		switch {
		case authorErr == nil:
			author = &loaded
		case !errors.Is(authorErr, catalog.ErrNotFound):
			return BookDetail{}, authorErr
		}
	}

	genres, err := h.store.GenresOfBooks(ctx, book.ID)
	if err != nil {
		return BookDetail{}, err
	}

	instances, err := h.store.InstancesOfBook(ctx, book.ID)
	if err != nil {
		return BookDetail{}, err
	}

	return Project(book, author, genres[book.ID], instances, query), nil
}
