package addbookinstance_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/features/command/addbookinstance"
	. "github.com/AntonStoeckl/locallibrary-go/testutil/helper" //nolint:revive
)

func Test_CommandHandler_Handle_DefaultsLanguageAndStatus(t *testing.T) {
	// setup
	ctx := context.Background()
	store := NewSQLiteStore(t)
	handler := addbookinstance.NewCommandHandler(store)

	// arrange
	book := GivenBook(t, store, "Neuromancer", GivenAuthor(t, store, "William", "Gibson", nil, nil), GivenGenre(t, store, "Cyberpunk"))
	command := addbookinstance.BuildCommand(uuid.New(), book.ID, "Ace, 1984", "", "", nil, uuid.NullUUID{})

	// act
	result, err := handler.Handle(ctx, command)

	// assert
	require.NoError(t, err)
	assert.False(t, result.Idempotent)

	instance, err := store.BookInstanceByID(ctx, command.Instance.ID)
	require.NoError(t, err)
	assert.Equal(t, catalog.DefaultLanguage, instance.Language)
	assert.Equal(t, catalog.StatusMaintenance, instance.Status)
}

func Test_CommandHandler_Handle_LoanWithBorrower(t *testing.T) {
	// setup
	ctx := context.Background()
	store := NewSQLiteStore(t)
	handler := addbookinstance.NewCommandHandler(store)

	// arrange
	book := GivenBook(t, store, "Count Zero", GivenAuthor(t, store, "William", "Gibson", nil, nil), GivenGenre(t, store, "Cyberpunk"))
	borrower := GivenUser(t, store, "reader-"+GivenUniqueSuffix(t))
	dueBack := catalog.DatePtr(catalog.Today().AddDate(0, 0, 14))
	command := addbookinstance.BuildCommand(uuid.New(), book.ID, "Ace, 1986", "French", catalog.StatusOnLoan, dueBack, uuid.NullUUID{UUID: borrower.ID, Valid: true})

	// act
	_, err := handler.Handle(ctx, command)

	// assert
	require.NoError(t, err)

	loaned, err := store.LoanedInstancesByBorrower(ctx, borrower.ID, catalog.BuildPageRequest(1, 10))
	require.NoError(t, err)
	require.Len(t, loaned, 1)
	assert.Equal(t, "French", loaned[0].Language)
}

func Test_CommandHandler_Handle_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name          string
		status        catalog.LoanStatus
		borrowerID    uuid.NullUUID
		expectedField string
		expectedMsg   string
	}{
		{"loan without borrower", catalog.StatusOnLoan, uuid.NullUUID{}, "borrower", "A copy on loan needs a borrower."},
		{"unknown borrower", catalog.StatusOnLoan, uuid.NullUUID{UUID: uuid.New(), Valid: true}, "borrower", catalog.MsgInvalidChoice},
		{"unknown status", catalog.LoanStatus("x"), uuid.NullUUID{}, "status", `unknown loan status "x"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// setup
			store := NewSQLiteStore(t)
			handler := addbookinstance.NewCommandHandler(store)

			// arrange
			book := GivenBook(t, store, "Idoru", GivenAuthor(t, store, "William", "Gibson", nil, nil), GivenGenre(t, store, "Cyberpunk"))
			command := addbookinstance.BuildCommand(uuid.New(), book.ID, "Viking, 1996", "", tc.status, nil, tc.borrowerID)

			// act
			_, err := handler.Handle(context.Background(), command)

			// assert
			validationErrors, ok := catalog.AsValidationErrors(err)
			require.True(t, ok)
			assert.Equal(t, tc.expectedMsg, validationErrors[tc.expectedField])
		})
	}
}

func Test_CommandHandler_Handle_UnknownBook(t *testing.T) {
	// setup
	store := NewSQLiteStore(t)
	handler := addbookinstance.NewCommandHandler(store)
	command := addbookinstance.BuildCommand(uuid.New(), uuid.New(), "Nowhere Press", "", "", nil, uuid.NullUUID{})

	// act
	_, err := handler.Handle(context.Background(), command)

	// assert
	validationErrors, ok := catalog.AsValidationErrors(err)
	require.True(t, ok)
	assert.Equal(t, catalog.MsgInvalidChoice, validationErrors["book"])
}
