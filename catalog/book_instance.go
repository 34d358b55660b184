package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	maxImprintLength  = 200
	maxLanguageLength = 200

	// DefaultLanguage is used for copies added without a language.
	DefaultLanguage = "English"
)

// BookInstance is one physical, loanable copy of a Book.
// BookID is null once the book was deleted, BorrowerID once the user was deleted.
type BookInstance struct {
	ID         uuid.UUID
	BookID     uuid.NullUUID
	Imprint    string
	Language   string
	DueBack    *time.Time
	BorrowerID uuid.NullUUID
	Status     LoanStatus
}

// BuildBookInstance creates a BookInstance with a fresh ID, the default language and status.
func BuildBookInstance(bookID uuid.UUID, imprint string) BookInstance {
	return BookInstance{
		ID:       uuid.New(),
		BookID:   uuid.NullUUID{UUID: bookID, Valid: true},
		Imprint:  strings.TrimSpace(imprint),
		Language: DefaultLanguage,
		Status:   DefaultLoanStatus,
	}
}

// Validate checks the field constraints of the copy.
func (bi BookInstance) Validate() error {
	v := ValidationErrors{}
	checkRequired(v, "imprint", bi.Imprint, maxImprintLength)
	checkRequired(v, "language", bi.Language, maxLanguageLength)

	if _, err := ParseLoanStatus(string(bi.Status)); err != nil {
		v.Add("status", err.Error())
	}

	return v.ErrOrNil()
}

// IsOverdue reports whether the due date is set and lies strictly before today.
func (bi BookInstance) IsOverdue(today time.Time) bool {
	if bi.DueBack == nil {
		return false
	}

	return DateOf(*bi.DueBack).Before(DateOf(today))
}

// String renders the copy ID.
func (bi BookInstance) String() string {
	return bi.ID.String()
}
