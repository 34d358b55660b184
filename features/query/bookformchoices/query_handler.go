package bookformchoices

import (
	"context"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// Store defines the interface needed by the QueryHandler for store operations.
type Store interface {
	AllAuthors(ctx context.Context) ([]catalog.Author, error)
	ListGenres(ctx context.Context) ([]catalog.Genre, error)
}

// QueryHandler loads the book form choices.
type QueryHandler struct {
	store Store
}

// NewQueryHandler creates a new QueryHandler with the provided Store dependency.
func NewQueryHandler(store Store) QueryHandler {
	return QueryHandler{
		store: store,
	}
}

// Handle loads all authors and genres.
func (h QueryHandler) Handle(ctx context.Context, _ Query) (Choices, error) {
	ctx = catalog.WithEventualConsistency(ctx)

	authors, err := h.store.AllAuthors(ctx)
	if err != nil {
		return Choices{}, err
	}

	genres, err := h.store.ListGenres(ctx)
	if err != nil {
		return Choices{}, err
	}

	return Choices{Authors: authors, Genres: genres}, nil
}
