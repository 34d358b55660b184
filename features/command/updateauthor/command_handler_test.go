package updateauthor_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/features/command/updateauthor"
	. "github.com/AntonStoeckl/locallibrary-go/testutil/helper" //nolint:revive
)

func Test_CommandHandler_Handle_Success(t *testing.T) {
	// setup
	ctx := context.Background()
	store := NewSQLiteStore(t)
	handler := updateauthor.NewCommandHandler(store)

	// arrange
	author := GivenAuthor(t, store, "Jane", "Austen", nil, nil)
	died, err := catalog.ParseDate("1817-07-18")
	require.NoError(t, err)

	// act
	result, err := handler.Handle(ctx, updateauthor.BuildCommand(author.ID, "Jane", "Austen", nil, &died))

	// assert
	require.NoError(t, err)
	assert.False(t, result.Idempotent)

	reloaded, err := store.AuthorByID(ctx, author.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsDeceased())
}

func Test_CommandHandler_Handle_UnknownAuthor(t *testing.T) {
	// setup
	store := NewSQLiteStore(t)
	handler := updateauthor.NewCommandHandler(store)

	// act
	_, err := handler.Handle(context.Background(), updateauthor.BuildCommand(uuid.New(), "Jane", "Austen", nil, nil))

	// assert
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}
