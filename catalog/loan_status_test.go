package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

func Test_LoanStatus_LabelAndStyle(t *testing.T) {
	tests := []struct {
		status catalog.LoanStatus
		label  string
		style  string
	}{
		{catalog.StatusMaintenance, "Maintenance", "text-danger"},
		{catalog.StatusOnLoan, "On loan", "text-warning"},
		{catalog.StatusAvailable, "Available", "text-success"},
		{catalog.StatusReserved, "Reserved", "text-warning"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.label, tt.status.Label())
			assert.Equal(t, tt.style, tt.status.TextStyle())
		})
	}
}

func Test_ParseLoanStatus(t *testing.T) {
	for input, expected := range map[string]catalog.LoanStatus{
		"m":          catalog.StatusMaintenance,
		"o":          catalog.StatusOnLoan,
		"On loan":    catalog.StatusOnLoan,
		"onloan":     catalog.StatusOnLoan,
		" AVAILABLE": catalog.StatusAvailable,
		"reserved":   catalog.StatusReserved,
	} {
		status, err := catalog.ParseLoanStatus(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, status, input)
	}

	_, err := catalog.ParseLoanStatus("lost")
	assert.Error(t, err)
}
