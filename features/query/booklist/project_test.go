package booklist_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/features/query/booklist"
)

func Test_Project_BookWithoutAuthor(t *testing.T) {
	// arrange
	book := catalog.BuildBook("Beowulf", uuid.NullUUID{}, "", "", nil)

	// act
	page := booklist.Project([]catalog.Book{book}, map[uuid.UUID]catalog.Author{}, nil, booklist.BuildQuery(1, 10), 1)

	// assert
	assert.Equal(t, "", page.Items[0].AuthorName)
	assert.False(t, page.Items[0].AuthorID.Valid)
	assert.Equal(t, 1, page.Total)
}
