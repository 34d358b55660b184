package bookdetail

import (
	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// CopyInfo represents one copy of the book.
type CopyInfo struct {
	Instance    catalog.BookInstance
	StatusLabel string
	StatusStyle string
	IsOverdue   bool
}

// BookDetail represents the query result.
// Author is nil when the book has no author.
type BookDetail struct {
	Book         catalog.Book
	Author       *catalog.Author
	Genres       []catalog.Genre
	DisplayGenre string
	Copies       []CopyInfo
}
