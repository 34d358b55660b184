package catalogsummary

import (
	"context"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// Store defines the interface needed by the QueryHandler for store operations.
type Store interface {
	CountBooks(ctx context.Context) (int, error)
	CountBookInstances(ctx context.Context) (int, error)
	CountBookInstancesByStatus(ctx context.Context, status catalog.LoanStatus) (int, error)
	CountAuthors(ctx context.Context) (int, error)
	CountGenres(ctx context.Context) (int, error)
	CountBooksWithTitleContaining(ctx context.Context, fragment string) (int, error)
	CountBooksByDeceasedAuthors(ctx context.Context) (int, error)
}

// QueryHandler collects the catalog counts.
type QueryHandler struct {
	store Store
}

// NewQueryHandler creates a new QueryHandler with the provided Store dependency.
func NewQueryHandler(store Store) QueryHandler {
	return QueryHandler{
		store: store,
	}
}

// Handle runs one count per figure and stops at the first failure.
func (h QueryHandler) Handle(ctx context.Context, _ Query) (Summary, error) {
	ctx = catalog.WithEventualConsistency(ctx)

	var summary Summary

	counts := []struct {
		target *int
		count  func(context.Context) (int, error)
	}{
		{&summary.NumBooks, h.store.CountBooks},
		{&summary.NumInstances, h.store.CountBookInstances},
		{&summary.NumInstancesAvail, func(ctx context.Context) (int, error) {
			return h.store.CountBookInstancesByStatus(ctx, catalog.StatusAvailable)
		}},
		{&summary.NumAuthors, h.store.CountAuthors},
		{&summary.NumGenres, h.store.CountGenres},
		{&summary.NumBooksTitleDead, func(ctx context.Context) (int, error) {
			return h.store.CountBooksWithTitleContaining(ctx, TitleFragment)
		}},
		{&summary.NumBooksByDeadAuthor, h.store.CountBooksByDeceasedAuthors},
	}

	for _, c := range counts {
		n, err := c.count(ctx)
		if err != nil {
			return Summary{}, err
		}

		*c.target = n
	}

	return summary, nil
}
