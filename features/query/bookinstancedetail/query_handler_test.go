package bookinstancedetail_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/features/query/bookinstancedetail"
	. "github.com/AntonStoeckl/locallibrary-go/testutil/helper" //nolint:revive
)

func Test_QueryHandler_Handle_LoanedCopy(t *testing.T) {
	// setup
	store := NewSQLiteStore(t)
	handler := bookinstancedetail.NewQueryHandler(store)

	// arrange
	book := GivenBook(t, store, "Dune", GivenAuthor(t, store, "Frank", "Herbert", nil, nil))
	borrower := GivenUser(t, store, "paul")
	instance := GivenLoanedInstance(t, store, book, borrower, catalog.Today())

	// act
	detail, err := handler.Handle(context.Background(), bookinstancedetail.BuildQuery(instance.ID))

	// assert
	require.NoError(t, err)
	assert.Equal(t, "Dune", detail.BookTitle)
	assert.Equal(t, "Test Paul", detail.BorrowerName)
	assert.Equal(t, catalog.FormatDate(instance.DueBack), catalog.FormatDate(detail.Instance.DueBack))
}

func Test_QueryHandler_Handle_CopyOfDeletedBook(t *testing.T) {
	// setup
	ctx := context.Background()
	store := NewSQLiteStore(t)
	handler := bookinstancedetail.NewQueryHandler(store)

	// arrange
	book := GivenBook(t, store, "Lost Work", GivenAuthor(t, store, "Some", "One", nil, nil))
	instance := GivenAvailableInstance(t, store, book, "Unknown press")
	require.NoError(t, store.DeleteBook(ctx, book.ID))

	// act
	detail, err := handler.Handle(ctx, bookinstancedetail.BuildQuery(instance.ID))

	// assert
	require.NoError(t, err)
	assert.Empty(t, detail.BookTitle)
	assert.Empty(t, detail.BorrowerName)
}

func Test_QueryHandler_Handle_UnknownCopy(t *testing.T) {
	// setup
	handler := bookinstancedetail.NewQueryHandler(NewSQLiteStore(t))

	// act
	_, err := handler.Handle(context.Background(), bookinstancedetail.BuildQuery(uuid.New()))

	// assert
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}
