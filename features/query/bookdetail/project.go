package bookdetail

import (
	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// Project assembles the detail of a book from its loaded parts.
func Project(book catalog.Book, author *catalog.Author, genres []catalog.Genre, instances []catalog.BookInstance, query Query) BookDetail {
	copies := make([]CopyInfo, 0, len(instances))
	for _, instance := range instances {
		copies = append(copies, CopyInfo{
			Instance:    instance,
			StatusLabel: instance.Status.Label(),
			StatusStyle: instance.Status.TextStyle(),
			IsOverdue:   instance.IsOverdue(query.Today),
		})
	}

	if genres == nil {
		genres = []catalog.Genre{}
	}

	return BookDetail{
		Book:         book,
		Author:       author,
		Genres:       genres,
		DisplayGenre: catalog.DisplayGenre(genres),
		Copies:       copies,
	}
}
