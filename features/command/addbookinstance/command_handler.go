package addbookinstance

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/shell"
)

// Store defines the interface needed by the CommandHandler for store operations.
type Store interface {
	BookInstanceByID(ctx context.Context, id uuid.UUID) (catalog.BookInstance, error)
	BookByID(ctx context.Context, id uuid.UUID) (catalog.Book, error)
	UserByID(ctx context.Context, id uuid.UUID) (catalog.User, error)
	CreateBookInstance(ctx context.Context, instance catalog.BookInstance) error
}

// CommandHandler orchestrates the command processing workflow: Load -> Decide -> Write.
type CommandHandler struct {
	store Store
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store Store) CommandHandler {
	return CommandHandler{store: store}
}

// Handle inserts the copy unless it already exists.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	ctx = catalog.WithStrongConsistency(ctx)

	s, err := h.loadState(ctx, command.Instance)
	if err != nil {
		return shell.NewErrorResult(), err
	}

	result := Decide(s, command)

	if result.IsIdempotent() {
		return shell.NewIdempotentResult(), nil
	}

	if err = result.HasError(); err != nil {
		return shell.NewErrorResult(), err
	}

	if err = h.store.CreateBookInstance(ctx, command.Instance); err != nil {
		return shell.NewErrorResult(), err
	}

	return shell.NewSuccessResult(), nil
}

func (h CommandHandler) loadState(ctx context.Context, instance catalog.BookInstance) (state, error) {
	var s state
	var err error

	if s.instanceExists, err = found(h.store.BookInstanceByID(ctx, instance.ID)); err != nil || s.instanceExists {
		return s, err
	}

	if s.bookExists, err = found(h.store.BookByID(ctx, instance.BookID.UUID)); err != nil {
		return state{}, err
	}

	if instance.BorrowerID.Valid {
		if s.borrowerExists, err = found(h.store.UserByID(ctx, instance.BorrowerID.UUID)); err != nil {
			return state{}, err
		}
	}

	return s, nil
}

func found[T any](_ T, err error) (bool, error) {
	if errors.Is(err, catalog.ErrNotFound) {
		return false, nil
	}

	return err == nil, err
}
