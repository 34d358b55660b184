package authorlist

import (
	"context"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// Store defines the interface needed by the QueryHandler for store operations.
type Store interface {
	CountAuthors(ctx context.Context) (int, error)
	ListAuthors(ctx context.Context, page catalog.PageRequest) ([]catalog.Author, error)
}

// QueryHandler loads one page of authors.
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
func (h QueryHandler) Handle(ctx context.Context, query Query) (Authors, error) {
	ctx = catalog.WithEventualConsistency(ctx)

	total, err := h.store.CountAuthors(ctx)
	if err != nil {
		return Authors{}, err
	}

	if err = query.Page.Validate(total); err != nil {
		return Authors{}, err
	}

	authors, err := h.store.ListAuthors(ctx, query.Page)
	if err != nil {
		return Authors{}, err
	}

	return Authors{
		Items:  authors,
		Number: query.Page.Number,
		Size:   query.Page.Size,
		Total:  total,
	}, nil
}
