package bookformchoices

import (
	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// Choices represents the query result: every author and every genre in their default order.
type Choices struct {
	Authors []catalog.Author
	Genres  []catalog.Genre
}
