package addgenre_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/features/command/addgenre"
	. "github.com/AntonStoeckl/locallibrary-go/testutil/helper" //nolint:revive
)

func Test_CommandHandler_Handle_Success(t *testing.T) {
	// setup
	ctx := context.Background()
	store := NewSQLiteStore(t)
	handler := addgenre.NewCommandHandler(store)
	command := addgenre.BuildCommand(uuid.New(), "  Poetry ")

	// act
	result, err := handler.Handle(ctx, command)

	// assert
	require.NoError(t, err)
	assert.False(t, result.Idempotent)

	genre, err := store.GenreByID(ctx, command.Genre.ID)
	require.NoError(t, err)
	assert.Equal(t, "Poetry", genre.Name)
}

func Test_CommandHandler_Handle_IdempotentIgnoringCase(t *testing.T) {
	// setup
	ctx := context.Background()
	store := NewSQLiteStore(t)
	handler := addgenre.NewCommandHandler(store)

	// arrange
	GivenGenre(t, store, "Science Fiction")

	// act
	result, err := handler.Handle(ctx, addgenre.BuildCommand(uuid.New(), "science fiction"))

	// assert
	require.NoError(t, err)
	assert.True(t, result.Idempotent)

	count, err := store.CountGenres(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func Test_CommandHandler_Handle_BlankName(t *testing.T) {
	// setup
	store := NewSQLiteStore(t)
	handler := addgenre.NewCommandHandler(store)

	// act
	_, err := handler.Handle(context.Background(), addgenre.BuildCommand(uuid.New(), " "))

	// assert
	validationErrors, ok := catalog.AsValidationErrors(err)
	require.True(t, ok)
	assert.Equal(t, catalog.MsgRequired, validationErrors["name"])
}
