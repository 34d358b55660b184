package createbook

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
	CreateBook(ctx context.Context, book catalog.Book) error
}

// CommandHandler orchestrates the command processing workflow: Load -> Decide -> Write.
type CommandHandler struct {
	store Store
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store Store) CommandHandler {
	return CommandHandler{store: store}
}

// Handle checks the book's references and inserts it together with its genre links.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	ctx = catalog.WithStrongConsistency(ctx)

	s, err := h.loadState(ctx, command.Book)
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

	if err = h.store.CreateBook(ctx, command.Book); err != nil {
		return shell.NewErrorResult(), err
	}

	return shell.NewSuccessResult(), nil
}

func (h CommandHandler) loadState(ctx context.Context, book catalog.Book) (state, error) {
	var s state
	var err error

	if s.bookExists, err = exists(h.store.BookByID(ctx, book.ID)); err != nil {
		return state{}, err
	}

	if book.AuthorID.Valid {
		if s.authorExists, err = exists(h.store.AuthorByID(ctx, book.AuthorID.UUID)); err != nil {
			return state{}, err
		}
	}

	for _, genreID := range book.GenreIDs {
		found, genreErr := exists(h.store.GenreByID(ctx, genreID))
		if genreErr != nil {
			return state{}, genreErr
		}

		if !found {
			s.unknownGenres++
		}
	}

	return s, nil
}

// exists turns a lookup result into a found flag, passing through everything but catalog.ErrNotFound.
func exists[T any](_ T, err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, catalog.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}
