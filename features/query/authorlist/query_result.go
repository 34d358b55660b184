package authorlist

import (
	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// Authors represents the query result: one page of the author list.
type Authors = catalog.Page[catalog.Author]
