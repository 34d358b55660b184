package borrowedbooks

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// Project joins the loaned copies of one page with their book titles and borrower names.
func Project(
	instances []catalog.BookInstance,
	books map[uuid.UUID]catalog.Book,
	borrowers map[uuid.UUID]catalog.User,
	query Query,
	total int,
) Loans {
	items := make([]LoanInfo, 0, len(instances))

	for _, instance := range instances {
		info := LoanInfo{
			InstanceID: instance.ID,
			BookID:     instance.BookID,
			BookTitle:  books[instance.BookID.UUID].Title,
			DueBack:    instance.DueBack,
			IsOverdue:  instance.IsOverdue(query.Today),
		}

		if borrower, ok := borrowers[instance.BorrowerID.UUID]; ok && instance.BorrowerID.Valid {
			info.BorrowerName = borrower.DisplayName()
		}

		items = append(items, info)
	}

	return Loans{
		Items:  items,
		Number: query.Page.Number,
		Size:   query.Page.Size,
		Total:  total,
	}
}
