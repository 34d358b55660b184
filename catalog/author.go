package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxAuthorNameLength = 100

// Author is a person who writes books.
// Deleting an author keeps their books and clears Book.AuthorID.
type Author struct {
	ID          uuid.UUID
	FirstName   string
	LastName    string
	DateOfBirth *time.Time
	DateOfDeath *time.Time
}

// BuildAuthor creates an Author with a fresh ID.
func BuildAuthor(firstName, lastName string, dateOfBirth, dateOfDeath *time.Time) Author {
	return Author{
		ID:          uuid.New(),
		FirstName:   strings.TrimSpace(firstName),
		LastName:    strings.TrimSpace(lastName),
		DateOfBirth: dateOfBirth,
		DateOfDeath: dateOfDeath,
	}
}

// Validate checks the field constraints of the author.
func (a Author) Validate() error {
	v := ValidationErrors{}
	checkRequired(v, "first_name", a.FirstName, maxAuthorNameLength)
	checkRequired(v, "last_name", a.LastName, maxAuthorNameLength)

	return v.ErrOrNil()
}

// IsDeceased reports whether a date of death is recorded.
func (a Author) IsDeceased() bool {
	return a.DateOfDeath != nil
}

// String renders the author as "Last, First".
func (a Author) String() string {
	return a.LastName + ", " + a.FirstName
}
