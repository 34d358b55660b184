package createauthor

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/shell"
)

// Store defines the interface needed by the CommandHandler for store operations.
type Store interface {
	AuthorByID(ctx context.Context, id uuid.UUID) (catalog.Author, error)
	CreateAuthor(ctx context.Context, author catalog.Author) error
}

// CommandHandler orchestrates the command processing workflow: Load -> Decide -> Write.
type CommandHandler struct {
	store Store
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store Store) CommandHandler {
	return CommandHandler{store: store}
}

// Handle inserts the author unless it already exists.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	ctx = catalog.WithStrongConsistency(ctx)

	_, err := h.store.AuthorByID(ctx, command.Author.ID)
	if err != nil && !errors.Is(err, catalog.ErrNotFound) {
		return shell.NewErrorResult(), err
	}

	result := Decide(err == nil, command)

	if result.IsIdempotent() {
		return shell.NewIdempotentResult(), nil
	}

	if err = result.HasError(); err != nil {
		return shell.NewErrorResult(), err
	}

	if err = h.store.CreateAuthor(ctx, command.Author); err != nil {
		return shell.NewErrorResult(), err
	}

	return shell.NewSuccessResult(), nil
}
