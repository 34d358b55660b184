package renewbookinstance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/shell"
)

// Store defines the interface needed by the CommandHandler for store operations.
type Store interface {
	BookInstanceByID(ctx context.Context, id uuid.UUID) (catalog.BookInstance, error)
	UpdateDueBack(ctx context.Context, id uuid.UUID, dueBack time.Time) error
}

// CommandHandler orchestrates the command processing workflow: Load -> Decide -> Write.
// External wrappers handle all observability concerns.
type CommandHandler struct {
	store Store
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store Store) CommandHandler {
	return CommandHandler{store: store}
}

// Handle loads the book instance, decides and writes the new due date.
// An unknown instance yields catalog.ErrNotFound, an out of range date catalog.ValidationErrors.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	ctx = catalog.WithStrongConsistency(ctx)

	instance, err := h.store.BookInstanceByID(ctx, command.InstanceID)
	if err != nil {
		return shell.NewErrorResult(), err
	}

	result := Decide(instance, command)

	if result.IsIdempotent() {
		return shell.NewIdempotentResult(), nil
	}

	if err = result.HasError(); err != nil {
		return shell.NewErrorResult(), err
	}

	if err = h.store.UpdateDueBack(ctx, command.InstanceID, command.RenewalDate); err != nil {
		return shell.NewErrorResult(), err
	}

	return shell.NewSuccessResult(), nil
}
