package booklist

import (
	"context"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// Store defines the interface needed by the QueryHandler for store operations.
type Store interface {
	CountBooks(ctx context.Context) (int, error)
	ListBooks(ctx context.Context, page catalog.PageRequest) ([]catalog.Book, error)
	AuthorsByIDs(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]catalog.Author, error)
	GenresOfBooks(ctx context.Context, bookIDs ...uuid.UUID) (map[uuid.UUID][]catalog.Genre, error)
}

// QueryHandler loads one page of books and delegates the assembly to Project.
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
func (h QueryHandler) Handle(ctx context.Context, query Query) (Books, error) {
	ctx = catalog.WithEventualConsistency(ctx)

	total, err := h.store.CountBooks(ctx)
	if err != nil {
		return Books{}, err
	}

	if err = query.Page.Validate(total); err != nil {
		return Books{}, err
	}

	books, err := h.store.ListBooks(ctx, query.Page)
	if err != nil {
		return Books{}, err
	}

	bookIDs := make([]uuid.UUID, 0, len(books))
	authorIDs := make([]uuid.UUID, 0, len(books))
	for _, book := range books {
		bookIDs = append(bookIDs, book.ID)
		if book.AuthorID.Valid {
			authorIDs = append(authorIDs, book.AuthorID.UUID)
		}
	}

	authors, err := h.store.AuthorsByIDs(ctx, authorIDs...)
	if err != nil {
		return Books{}, err
	}

	genres, err := h.store.GenresOfBooks(ctx, bookIDs...)
	if err != nil {
		return Books{}, err
	}

	return Project(books, authors, genres, query, total), nil
}
