package addgenre

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/shell"
)

// Store defines the interface needed by the CommandHandler for store operations.
type Store interface {
	GenreByName(ctx context.Context, name string) (catalog.Genre, error)
	CreateGenre(ctx context.Context, genre catalog.Genre) error
}

// CommandHandler orchestrates the command processing workflow: Load -> Decide -> Write.
type CommandHandler struct {
	store Store
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store Store) CommandHandler {
	return CommandHandler{store: store}
}

// Handle inserts the genre unless its name is already taken.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	ctx = catalog.WithStrongConsistency(ctx)

	_, err := h.store.GenreByName(ctx, command.Genre.Name)
	if err != nil && !errors.Is(err, catalog.ErrNotFound) {
		return shell.NewErrorResult(), err
	}

	result := Decide(err == nil, command)

	if err = result.HasError(); err != nil {
		return shell.NewErrorResult(), err
	}

	if result.IsIdempotent() {
		return shell.NewIdempotentResult(), nil
	}

	if err = h.store.CreateGenre(ctx, command.Genre); err != nil {
		return shell.NewErrorResult(), err
	}

	return shell.NewSuccessResult(), nil
}
