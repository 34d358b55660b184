package bookinstancedetail

import (
	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// InstanceDetail represents the query result.
// BookTitle is empty once the book was deleted, BorrowerName when nobody borrowed the copy.
type InstanceDetail struct {
	Instance     catalog.BookInstance
	BookTitle    string
	BorrowerName string
}
