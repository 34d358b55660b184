package catalog_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

func Test_BookInstance_IsOverdue(t *testing.T) {
	today := catalog.DateOf(time.Date(2024, 3, 15, 17, 30, 0, 0, time.UTC))

	tests := []struct {
		name     string
		dueBack  *time.Time
		expected bool
	}{
		{name: "no due date", dueBack: nil, expected: false},
		{name: "due yesterday", dueBack: catalog.DatePtr(today.AddDate(0, 0, -1)), expected: true},
		{name: "due long ago", dueBack: catalog.DatePtr(today.AddDate(-1, 0, 0)), expected: true},
		{name: "due today", dueBack: catalog.DatePtr(today), expected: false},
		{name: "due tomorrow", dueBack: catalog.DatePtr(today.AddDate(0, 0, 1)), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// arrange
			instance := catalog.BuildBookInstance(uuid.New(), "Penguin, 1999")
			instance.DueBack = tt.dueBack

			// act
			overdue := instance.IsOverdue(today)

			// assert
			assert.Equal(t, tt.expected, overdue)
		})
	}
}

func Test_BookInstance_IsOverdue_IgnoresTimeOfDay(t *testing.T) {
	// arrange
	instance := catalog.BuildBookInstance(uuid.New(), "Penguin, 1999")
	instance.DueBack = catalog.DatePtr(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	lateToday := time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC)

	// act
	overdue := instance.IsOverdue(lateToday)

	// assert
	assert.False(t, overdue)
}

func Test_BuildBookInstance_Defaults(t *testing.T) {
	// arrange
	bookID := uuid.New()

	// act
	instance := catalog.BuildBookInstance(bookID, "  Faber  ")

	// assert
	assert.NotEqual(t, uuid.Nil, instance.ID)
	assert.Equal(t, uuid.NullUUID{UUID: bookID, Valid: true}, instance.BookID)
	assert.Equal(t, "Faber", instance.Imprint)
	assert.Equal(t, catalog.DefaultLanguage, instance.Language)
	assert.Equal(t, catalog.StatusMaintenance, instance.Status)
	assert.Nil(t, instance.DueBack)
	assert.False(t, instance.BorrowerID.Valid)
	assert.NoError(t, instance.Validate())
}

func Test_BookInstance_Validate(t *testing.T) {
	// arrange
	instance := catalog.BuildBookInstance(uuid.New(), "")
	instance.Status = "x"

	// act
	err := instance.Validate()

	// assert
	v, ok := catalog.AsValidationErrors(err)
	assert.True(t, ok)
	assert.Equal(t, "This field is required.", v["imprint"])
	assert.Contains(t, v, "status")
}
