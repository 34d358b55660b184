package booklist

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// BookInfo represents one row of the book list.
type BookInfo struct {
	BookID     uuid.UUID
	Title      string
	AuthorID   uuid.NullUUID
	AuthorName string
	Genre      string
}

// Books represents the query result: one page of the book list.
type Books = catalog.Page[BookInfo]
