package registeruser

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/shell"
)

// Store defines the interface needed by the CommandHandler for store operations.
type Store interface {
	UserByID(ctx context.Context, id uuid.UUID) (catalog.User, error)
	CreateUser(ctx context.Context, user catalog.User) error
}

// CommandHandler orchestrates the command processing workflow: Load -> Decide -> Hash -> Write.
type CommandHandler struct {
	store        Store
	passwordCost int
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithPasswordCost sets the bcrypt cost. Tests use bcrypt.MinCost.
func WithPasswordCost(cost int) Option {
	return func(h *CommandHandler) {
		h.passwordCost = cost
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(store Store, opts ...Option) CommandHandler {
	handler := CommandHandler{
		store:        store,
		passwordCost: bcrypt.DefaultCost,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle validates the account, hashes the password and inserts the user.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	ctx = catalog.WithStrongConsistency(ctx)

	_, err := h.store.UserByID(ctx, command.User.ID)
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

	user := command.User
	if user.PasswordHash, err = shell.HashPasswordWithCost(command.Password, h.passwordCost); err != nil {
		return shell.NewErrorResult(), err
	}

	if err = h.store.CreateUser(ctx, user); err != nil {
		return shell.NewErrorResult(), err
	}

	return shell.NewSuccessResult(), nil
}
