package renewbookinstance_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/features/command/renewbookinstance"
)

var today = time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

func givenLoanedInstance(dueBack time.Time) catalog.BookInstance {
	instance := catalog.BuildBookInstance(uuid.New(), "Penguin, 1990")
	instance.Status = catalog.StatusOnLoan
	instance.DueBack = catalog.DatePtr(dueBack)

	return instance
}

func Test_Decide_AcceptsBoundaryDates(t *testing.T) {
	testCases := []struct {
		name        string
		renewalDate time.Time
	}{
		{"today", today},
		{"tomorrow", today.AddDate(0, 0, 1)},
		{"three weeks ahead", today.AddDate(0, 0, 21)},
		{"exactly four weeks ahead", today.AddDate(0, 0, 28)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			instance := givenLoanedInstance(today.AddDate(0, 0, -3))
			command := renewbookinstance.BuildCommand(instance.ID, tc.renewalDate, today)

			// act
			result := renewbookinstance.Decide(instance, command)

			// assert
			assert.True(t, result.HasChangeToWrite())
			assert.NoError(t, result.HasError())
		})
	}
}

func Test_Decide_RejectsOutOfRangeDates(t *testing.T) {
	testCases := []struct {
		name        string
		renewalDate time.Time
		expectedMsg string
	}{
		{"yesterday", today.AddDate(0, 0, -1), "Invalid date - renewal in past"},
		{"one day beyond four weeks", today.AddDate(0, 0, 29), "Invalid date - renewal more than 4 weeks ahead"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			instance := givenLoanedInstance(today)
			command := renewbookinstance.BuildCommand(instance.ID, tc.renewalDate, today)

			// act
			result := renewbookinstance.Decide(instance, command)

			// assert
			assert.False(t, result.HasChangeToWrite())
			validationErrors, ok := catalog.AsValidationErrors(result.HasError())
			assert.True(t, ok, "Should return validation errors")
			assert.Equal(t, tc.expectedMsg, validationErrors[renewbookinstance.FieldRenewalDate])
		})
	}
}

func Test_Decide_IdempotentWhenDueDateUnchanged(t *testing.T) {
	// arrange
	dueBack := today.AddDate(0, 0, 7)
	instance := givenLoanedInstance(dueBack)
	command := renewbookinstance.BuildCommand(instance.ID, dueBack.Add(15*time.Hour), today)

	// act
	result := renewbookinstance.Decide(instance, command)

	// assert
	assert.True(t, result.IsIdempotent())
}

func Test_Decide_SucceedsWithoutDueDate(t *testing.T) {
	// arrange
	instance := catalog.BuildBookInstance(uuid.New(), "Penguin, 1990")
	command := renewbookinstance.BuildCommand(instance.ID, today.AddDate(0, 0, 21), today)

	// act
	result := renewbookinstance.Decide(instance, command)

	// assert
	assert.True(t, result.HasChangeToWrite())
}
