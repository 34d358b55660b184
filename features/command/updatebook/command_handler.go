package updatebook

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/shell"
)

// Store defines the interface needed by the CommandHandler for store operations.
type Store interface {
	BookByID(ctx context.Context, id uuid.UUID) (catalog.Book, error)
	AuthorByID(ctx context.Context, id uuid.UUID) (catalog.Author, error)
	GenreByID(ctx context.Context, id uuid.UUID) (catalog.Genre, error)
	UpdateBook(ctx context.Context, book catalog.Book) error
}

// CommandHandler orchestrates the command processing workflow: Load -> Decide -> Write.
type CommandHandler struct {
	store Store
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store Store) CommandHandler {
	return CommandHandler{store: store}
}

// Handle overwrites the book. An unknown book yields catalog.ErrNotFound.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	ctx = catalog.WithStrongConsistency(ctx)

	existing, err := h.store.BookByID(ctx, command.Book.ID)
	if err != nil {
		return shell.NewErrorResult(), err
	}

	s := state{existing: existing}

	if command.Book.AuthorID.Valid {
		_, err = h.store.AuthorByID(ctx, command.Book.AuthorID.UUID)
		switch {
		case err == nil:
			s.authorExists = true
		case !errors.Is(err, catalog.ErrNotFound):
			return shell.NewErrorResult(), err
		}
	}

	for _, genreID := range command.Book.GenreIDs {
		if _, err = h.store.GenreByID(ctx, genreID); err != nil {
			if !errors.Is(err, catalog.ErrNotFound) {
				return shell.NewErrorResult(), err
			}

			s.unknownGenres++
		}
	}

	result := Decide(s, command)

	if err = result.HasError(); err != nil {
		return shell.NewErrorResult(), err
	}

	if result.IsIdempotent() {
		return shell.NewIdempotentResult(), nil
	}

	if err = h.store.UpdateBook(ctx, command.Book); err != nil {
		return shell.NewErrorResult(), err
	}

	return shell.NewSuccessResult(), nil
}
