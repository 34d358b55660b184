package grantpermission

import (
	"context"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/shell"
)

// Store defines the interface needed by the CommandHandler for store operations.
type Store interface {
	UserByUsername(ctx context.Context, username string) (catalog.User, error)
	GrantPermission(ctx context.Context, userID uuid.UUID, perm catalog.Permission) error
}

// CommandHandler orchestrates the command processing workflow: Load -> Decide -> Write.
type CommandHandler struct {
	store Store
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store Store) CommandHandler {
	return CommandHandler{store: store}
}

// Handle grants the permission. An unknown username yields catalog.ErrNotFound.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	ctx = catalog.WithStrongConsistency(ctx)

	user, err := h.store.UserByUsername(ctx, command.Username)
	if err != nil {
		return shell.NewErrorResult(), err
	}

	result := Decide(user, command)

	if err = result.HasError(); err != nil {
		return shell.NewErrorResult(), err
	}

	if result.IsIdempotent() {
		return shell.NewIdempotentResult(), nil
	}

	if err = h.store.GrantPermission(ctx, user.ID, command.Permission); err != nil {
		return shell.NewErrorResult(), err
	}

	return shell.NewSuccessResult(), nil
}
