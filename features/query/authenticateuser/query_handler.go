package authenticateuser

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/shell"
)

// Store defines the interface needed by the QueryHandler for store operations.
type Store interface {
	UserByUsername(ctx context.Context, username string) (catalog.User, error)
}

// QueryHandler checks credentials against the stored bcrypt hash.
type QueryHandler struct {
	store Store
}

// NewQueryHandler creates a new QueryHandler with the provided Store dependency.
func NewQueryHandler(store Store) QueryHandler {
	return QueryHandler{
		store: store,
	}
}

// Handle returns the authenticated user with their permissions.
func (h QueryHandler) Handle(ctx context.Context, query Query) (catalog.User, error) {
	ctx = catalog.WithStrongConsistency(ctx)

	if query.Username == "" || query.Password == "" {
		return catalog.User{}, catalog.ErrInvalidCredentials
	}

	user, err := h.store.UserByUsername(ctx, query.Username)
	if errors.Is(err, catalog.ErrNotFound) {
		return catalog.User{}, catalog.ErrInvalidCredentials
	}

	if err != nil {
		return catalog.User{}, err
	}

	if err = shell.CheckPassword(user.PasswordHash, query.Password); err != nil {
		return catalog.User{}, err
	}

	return user, nil
}
