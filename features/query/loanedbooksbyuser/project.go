package loanedbooksbyuser

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// Project joins the loaned copies of one page with the titles of their books.
func Project(instances []catalog.BookInstance, books map[uuid.UUID]catalog.Book, query Query, total int) Loans {
	items := make([]LoanInfo, 0, len(instances))

	for _, instance := range instances {
		items = append(items, LoanInfo{
			InstanceID: instance.ID,
			BookID:     instance.BookID,
			BookTitle:  books[instance.BookID.UUID].Title,
			DueBack:    instance.DueBack,
			IsOverdue:  instance.IsOverdue(query.Today),
		})
	}

	return Loans{
		Items:  items,
		Number: query.Page.Number,
		Size:   query.Page.Size,
		Total:  total,
	}
}
