package deletebook

import (
	"context"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/shell"
)

// Store defines the interface needed by the CommandHandler for store operations.
type Store interface {
	DeleteBook(ctx context.Context, id uuid.UUID) error
}

// CommandHandler deletes books.
type CommandHandler struct {
	store Store
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store Store) CommandHandler {
	return CommandHandler{store: store}
}

// Handle deletes the book with its genre links and detaches its copies.
// An unknown book yields catalog.ErrNotFound.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	if err := h.store.DeleteBook(catalog.WithStrongConsistency(ctx), command.BookID); err != nil {
		return shell.NewErrorResult(), err
	}

	return shell.NewSuccessResult(), nil
}
