package deleteauthor_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/features/command/deleteauthor"
	. "github.com/AntonStoeckl/locallibrary-go/testutil/helper" //nolint:revive
)

func Test_CommandHandler_Handle_KeepsBooksWithNullAuthor(t *testing.T) {
	// setup
	ctx := context.Background()
	store := NewSQLiteStore(t)
	handler := deleteauthor.NewCommandHandler(store)

	// arrange
	author := GivenAuthor(t, store, "Frank", "Herbert", nil, nil)
	book := GivenBook(t, store, "Dune", author, GivenGenre(t, store, "Science Fiction"))

	// act
	_, err := handler.Handle(ctx, deleteauthor.BuildCommand(author.ID))

	// assert
	require.NoError(t, err)

	_, err = store.AuthorByID(ctx, author.ID)
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	reloaded, err := store.BookByID(ctx, book.ID)
	require.NoError(t, err, "Book should survive the deletion of its author")
	assert.False(t, reloaded.AuthorID.Valid)
}

func Test_CommandHandler_Handle_UnknownAuthor(t *testing.T) {
	// setup
	store := NewSQLiteStore(t)
	handler := deleteauthor.NewCommandHandler(store)

	// act
	_, err := handler.Handle(context.Background(), deleteauthor.BuildCommand(uuid.New()))

	// assert
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}
