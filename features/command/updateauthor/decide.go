package updateauthor

import (
	"time"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// Decide determines whether the stored author should be overwritten.
//
// Business Rules:
//
//	GIVEN: An existing author
//	WHEN: UpdateAuthor command is received
//	THEN: all fields are overwritten
//	ERROR: field validation errors for blank or too long names
//	IDEMPOTENCY: If no field changes, nothing is written
func Decide(existing catalog.Author, command Command) catalog.DecisionResult {
	if err := command.Author.Validate(); err != nil {
		return catalog.ErrorDecision(err)
	}

	if sameAuthor(existing, command.Author) {
		return catalog.IdempotentDecision()
	}

	return catalog.SuccessDecision()
}

func sameAuthor(a, b catalog.Author) bool {
	return a.FirstName == b.FirstName &&
		a.LastName == b.LastName &&
		sameDate(a.DateOfBirth, b.DateOfBirth) &&
		sameDate(a.DateOfDeath, b.DateOfDeath)
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}

	return catalog.DateOf(*a).Equal(catalog.DateOf(*b))
}
