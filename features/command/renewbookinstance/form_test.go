package renewbookinstance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/features/command/renewbookinstance"
)

func Test_ProposedRenewalDate_IsThreeWeeksAhead(t *testing.T) {
	assert.Equal(t, "2024-03-31", renewbookinstance.ProposedRenewalDate(today).Format(catalog.DateLayout))
	assert.Equal(t, "2024-04-07", renewbookinstance.LatestRenewalDate(today).Format(catalog.DateLayout))
}

func Test_ParseRenewalDate_Valid(t *testing.T) {
	// act
	d, err := renewbookinstance.ParseRenewalDate(" 2024-04-07 ", today)

	// assert
	require.NoError(t, err)
	assert.Equal(t, today.AddDate(0, 0, 28), d)
}

func Test_ParseRenewalDate_Invalid(t *testing.T) {
	testCases := []struct {
		name        string
		raw         string
		expectedMsg string
	}{
		{"blank", "   ", "This field is required."},
		{"garbage", "next tuesday", "Enter a valid date."},
		{"impossible date", "2024-02-30", "Enter a valid date."},
		{"in the past", "2024-03-09", "Invalid date - renewal in past"},
		{"too far ahead", "2024-04-08", "Invalid date - renewal more than 4 weeks ahead"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			_, err := renewbookinstance.ParseRenewalDate(tc.raw, today)

			// assert
			validationErrors, ok := catalog.AsValidationErrors(err)
			require.True(t, ok, "Should return validation errors")
			assert.Equal(t, tc.expectedMsg, validationErrors[renewbookinstance.FieldRenewalDate])
		})
	}
}
