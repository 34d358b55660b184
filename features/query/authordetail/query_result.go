package authordetail

import (
	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// AuthorDetail represents the query result. Books are ordered by title.
type AuthorDetail struct {
	Author catalog.Author
	Books  []catalog.Book
}
