package deleteauthor

import (
	"context"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/shell"
)

// Store defines the interface needed by the CommandHandler for store operations.
type Store interface {
	DeleteAuthor(ctx context.Context, id uuid.UUID) error
}

// CommandHandler deletes authors.
type CommandHandler struct {
	store Store
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store Store) CommandHandler {
	return CommandHandler{store: store}
}

// Handle deletes the author and detaches their books in one transaction.
// An unknown author yields catalog.ErrNotFound.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	if err := h.store.DeleteAuthor(catalog.WithStrongConsistency(ctx), command.AuthorID); err != nil {
		return shell.NewErrorResult(), err
	}

	return shell.NewSuccessResult(), nil
}
