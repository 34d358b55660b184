package importcatalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/shell"
)

// ErrUnresolvedReference is returned when a record names a genre, author or book the catalog does not know.
var ErrUnresolvedReference = errors.New("unresolved reference")

// Store defines the interface needed by the CommandHandler for store operations.
type Store interface {
	GenreByName(ctx context.Context, name string) (catalog.Genre, error)
	CreateGenre(ctx context.Context, genre catalog.Genre) error
	AuthorByNames(ctx context.Context, firstName, lastName string) (catalog.Author, error)
	CreateAuthor(ctx context.Context, author catalog.Author) error
	BookByISBN(ctx context.Context, isbn string) (catalog.Book, error)
	CreateBook(ctx context.Context, book catalog.Book) error
	BookInstanceByID(ctx context.Context, id uuid.UUID) (catalog.BookInstance, error)
	CreateBookInstance(ctx context.Context, instance catalog.BookInstance) error
}

// CommandHandler imports catalog documents record by record.
type CommandHandler struct {
	store    Store
	progress multiProgress
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithProgress adds a Progress that is notified once per processed record.
func WithProgress(p Progress) Option {
	return func(h *CommandHandler) {
		h.progress = append(h.progress, p)
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(store Store, opts ...Option) CommandHandler {
	handler := CommandHandler{store: store}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle imports genres, authors, books and instances in this order.
// It stops at the first invalid record. Records imported up to that point stay in place.
// The result is idempotent when every record already existed.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	ctx = catalog.WithStrongConsistency(ctx)
	report := NewReport()
	progress := append(multiProgress{report}, h.progress...)

	steps := []func(context.Context, Document, Progress) error{
		h.importGenres,
		h.importAuthors,
		h.importBooks,
		h.importInstances,
	}

	for _, step := range steps {
		if err := step(ctx, command.Document, progress); err != nil {
			return shell.NewErrorResult(), err
		}
	}

	if report.TotalCreated() == 0 {
		return shell.NewIdempotentResult(), nil
	}

	return shell.NewSuccessResult(), nil
}

func (h CommandHandler) importGenres(ctx context.Context, doc Document, progress Progress) error {
	for i, record := range doc.Genres {
		genre := catalog.BuildGenre(record.Name)
		if err := genre.Validate(); err != nil {
			return recordError(KindGenre, i, err)
		}

		found, err := exists(h.store.GenreByName(ctx, genre.Name))
		if err != nil {
			return recordError(KindGenre, i, err)
		}

		if !found {
			if err = h.store.CreateGenre(ctx, genre); err != nil {
				return recordError(KindGenre, i, err)
			}
		}

		progress.Step(KindGenre, !found)
	}

	return nil
}

func (h CommandHandler) importAuthors(ctx context.Context, doc Document, progress Progress) error {
	for i, record := range doc.Authors {
		born, bornErr := catalog.ParseOptionalDate(record.DateOfBirth)
		died, diedErr := catalog.ParseOptionalDate(record.DateOfDeath)
		if bornErr != nil || diedErr != nil {
			return recordError(KindAuthor, i, errors.Join(bornErr, diedErr))
		}

		author := catalog.BuildAuthor(record.FirstName, record.LastName, born, died)
		if err := author.Validate(); err != nil {
			return recordError(KindAuthor, i, err)
		}

		found, err := exists(h.store.AuthorByNames(ctx, author.FirstName, author.LastName))
		if err != nil {
			return recordError(KindAuthor, i, err)
		}

		if !found {
			if err = h.store.CreateAuthor(ctx, author); err != nil {
				return recordError(KindAuthor, i, err)
			}
		}

		progress.Step(KindAuthor, !found)
	}

	return nil
}

func (h CommandHandler) importBooks(ctx context.Context, doc Document, progress Progress) error {
	for i, record := range doc.Books {
		found, err := exists(h.store.BookByISBN(ctx, strings.TrimSpace(record.ISBN)))
		if err != nil {
			return recordError(KindBook, i, err)
		}

		if !found {
			if err = h.createBook(ctx, record); err != nil {
				return recordError(KindBook, i, err)
			}
		}

		progress.Step(KindBook, !found)
	}

	return nil
}

func (h CommandHandler) createBook(ctx context.Context, record BookRecord) error {
	authorID, err := h.resolveAuthor(ctx, record.Author)
	if err != nil {
		return err
	}

	genreIDs := make([]uuid.UUID, 0, len(record.Genres))
	for _, name := range record.Genres {
		genre, genreErr := h.store.GenreByName(ctx, name)
		if genreErr != nil {
			return unresolved(genreErr, "genre %q", name)
		}

		genreIDs = append(genreIDs, genre.ID)
	}

	book := catalog.BuildBook(record.Title, authorID, record.Summary, record.ISBN, genreIDs)
	if err = book.Validate(); err != nil {
		return err
	}

	return h.store.CreateBook(ctx, book)
}

// resolveAuthor looks up the referenced author. A book without any author name has no author.
func (h CommandHandler) resolveAuthor(ctx context.Context, ref AuthorRef) (uuid.NullUUID, error) {
	firstName, lastName := strings.TrimSpace(ref.FirstName), strings.TrimSpace(ref.LastName)
	if firstName == "" && lastName == "" {
		return uuid.NullUUID{}, nil
	}

	author, err := h.store.AuthorByNames(ctx, firstName, lastName)
	if err != nil {
		return uuid.NullUUID{}, unresolved(err, "author %q %q", ref.FirstName, ref.LastName)
	}

	return uuid.NullUUID{UUID: author.ID, Valid: true}, nil
}

func (h CommandHandler) importInstances(ctx context.Context, doc Document, progress Progress) error {
	for i, record := range doc.Instances {
		instance, err := h.buildInstance(ctx, record)
		if err != nil {
			return recordError(KindInstance, i, err)
		}

		found, err := exists(h.store.BookInstanceByID(ctx, instance.ID))
		if err != nil {
			return recordError(KindInstance, i, err)
		}

		if !found {
			if err = h.store.CreateBookInstance(ctx, instance); err != nil {
				return recordError(KindInstance, i, err)
			}
		}

		progress.Step(KindInstance, !found)
	}

	return nil
}

func (h CommandHandler) buildInstance(ctx context.Context, record InstanceRecord) (catalog.BookInstance, error) {
	book, err := h.store.BookByISBN(ctx, strings.TrimSpace(record.ISBN))
	if err != nil {
		return catalog.BookInstance{}, unresolved(err, "book with isbn %q", record.ISBN)
	}

	instance := catalog.BuildBookInstance(book.ID, record.Imprint)

	if record.ID != "" {
		if instance.ID, err = uuid.Parse(record.ID); err != nil {
			return catalog.BookInstance{}, err
		}
	}

	if strings.TrimSpace(record.Language) != "" {
		instance.Language = strings.TrimSpace(record.Language)
	}

	if record.Status != "" {
		if instance.Status, err = catalog.ParseLoanStatus(record.Status); err != nil {
			return catalog.BookInstance{}, err
		}
	}

	if instance.DueBack, err = catalog.ParseOptionalDate(record.DueBack); err != nil {
		return catalog.BookInstance{}, err
	}

	if err = instance.Validate(); err != nil {
		return catalog.BookInstance{}, err
	}

	return instance, nil
}

func recordError(kind string, index int, err error) error {
	return fmt.Errorf("importing %s #%d: %w", kind, index+1, err)
}

func unresolved(err error, format string, args ...any) error {
	if errors.Is(err, catalog.ErrNotFound) {
		return fmt.Errorf("%w: "+format, append([]any{ErrUnresolvedReference}, args...)...)
	}

	return err
}

func exists[T any](_ T, err error) (bool, error) {
	if errors.Is(err, catalog.ErrNotFound) {
		return false, nil
	}

	return err == nil, err
}
