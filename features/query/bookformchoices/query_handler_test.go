package bookformchoices_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/locallibrary-go/features/query/bookformchoices"
	. "github.com/AntonStoeckl/locallibrary-go/testutil/helper" //nolint:revive
)

func Test_QueryHandler_Handle_ReturnsAllAuthorsAndGenres(t *testing.T) {
	// setup
	store := NewSQLiteStore(t)
	handler := bookformchoices.NewQueryHandler(store)

	// arrange
	GivenGenre(t, store, "Poetry")
	GivenGenre(t, store, "Drama")
	GivenAuthor(t, store, "William", "Shakespeare", nil, nil)

	// act
	choices, err := handler.Handle(context.Background(), bookformchoices.BuildQuery())

	// assert
	require.NoError(t, err)
	require.Len(t, choices.Authors, 1)
	require.Len(t, choices.Genres, 2)
	assert.Equal(t, "Drama", choices.Genres[0].Name)
	assert.Equal(t, "Poetry", choices.Genres[1].Name)
}
