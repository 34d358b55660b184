package updateauthor

import (
	"context"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/shell"
)

// Store defines the interface needed by the CommandHandler for store operations.
type Store interface {
	AuthorByID(ctx context.Context, id uuid.UUID) (catalog.Author, error)
	UpdateAuthor(ctx context.Context, author catalog.Author) error
}

// CommandHandler orchestrates the command processing workflow: Load -> Decide -> Write.
type CommandHandler struct {
	store Store
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store Store) CommandHandler {
	return CommandHandler{store: store}
}

// Handle overwrites the author. An unknown author yields catalog.ErrNotFound.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	ctx = catalog.WithStrongConsistency(ctx)

	existing, err := h.store.AuthorByID(ctx, command.Author.ID)
	if err != nil {
		return shell.NewErrorResult(), err
	}

	result := Decide(existing, command)

	if result.IsIdempotent() {
		return shell.NewIdempotentResult(), nil
	}

	if err = result.HasError(); err != nil {
		return shell.NewErrorResult(), err
	}

	if err = h.store.UpdateAuthor(ctx, command.Author); err != nil {
		return shell.NewErrorResult(), err
	}

	return shell.NewSuccessResult(), nil
}
