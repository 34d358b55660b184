package catalog_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

func Test_Author_Validate(t *testing.T) {
	tests := []struct {
		name           string
		author         catalog.Author
		expectedFields map[string]string
	}{
		{
			name:   "valid",
			author: catalog.BuildAuthor("Ursula", "Le Guin", nil, nil),
		},
		{
			name:   "missing names",
			author: catalog.BuildAuthor(" ", "", nil, nil),
			expectedFields: map[string]string{
				"first_name": "This field is required.",
				"last_name":  "This field is required.",
			},
		},
		{
			name:   "first name too long",
			author: catalog.BuildAuthor(strings.Repeat("a", 101), "Le Guin", nil, nil),
			expectedFields: map[string]string{
				"first_name": "Ensure this value has at most 100 characters (it has 101).",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// act
			err := tt.author.Validate()

			// assert
			if tt.expectedFields == nil {
				assert.NoError(t, err)
				return
			}

			v, ok := catalog.AsValidationErrors(err)
			require.True(t, ok)
			assert.Equal(t, catalog.ValidationErrors(tt.expectedFields), v)
		})
	}
}

func Test_Book_Validate(t *testing.T) {
	// arrange
	book := catalog.BuildBook("", uuid.NullUUID{}, "summary", strings.Repeat("9", 14), nil)

	// act
	err := book.Validate()

	// assert
	v, ok := catalog.AsValidationErrors(err)
	require.True(t, ok)
	assert.Equal(t, "This field is required.", v["title"])
	assert.Equal(t, "Ensure this value has at most 13 characters (it has 14).", v["isbn"])
	assert.Equal(t, "This field is required.", v["genre"])
	assert.NotContains(t, v, "summary")
}

func Test_ValidationErrors_ErrorIsSorted(t *testing.T) {
	// arrange
	v := catalog.ValidationErrors{}
	v.Add("title", "bad title")
	v.Add("isbn", "bad isbn")
	v.Add("isbn", "ignored")

	// act
	err := v.ErrOrNil()

	// assert
	require.Error(t, err)
	assert.Equal(t, "validation failed: isbn: bad isbn; title: bad title", err.Error())

	wrapped := fmt.Errorf("saving book: %w", err)
	unwrapped, ok := catalog.AsValidationErrors(wrapped)
	assert.True(t, ok)
	assert.Len(t, unwrapped, 2)
}

func Test_ValidationErrors_EmptyIsNil(t *testing.T) {
	assert.NoError(t, catalog.ValidationErrors{}.ErrOrNil())
}
