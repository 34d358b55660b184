package booklist

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// Project joins the books of one page with their authors and genres.
// Books whose author is missing from authors are listed without an author name.
func Project(
	books []catalog.Book,
	authors map[uuid.UUID]catalog.Author,
	genres map[uuid.UUID][]catalog.Genre,
	query Query,
	total int,
) Books {
	items := make([]BookInfo, 0, len(books))

	for _, book := range books {
		info := BookInfo{
			BookID:   book.ID,
			Title:    book.Title,
			AuthorID: book.AuthorID,
			Genre:    catalog.DisplayGenre(genres[book.ID]),
		}

		if author, ok := authors[book.AuthorID.UUID]; ok && book.AuthorID.Valid {
			info.AuthorName = author.String()
		}

		items = append(items, info)
	}

	return Books{
		Items:  items,
		Number: query.Page.Number,
		Size:   query.Page.Size,
		Total:  total,
	}
}
