package addgenre

import (
	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// Decide determines whether the genre should be inserted.
//
// Business Rules:
//
//	GIVEN: A genre name
//	WHEN: AddGenre command is received
//	THEN: the genre is inserted
//	ERROR: blank or too long name
//	IDEMPOTENCY: If a genre with the same name (ignoring case) exists, nothing is written
func Decide(nameTaken bool, command Command) catalog.DecisionResult {
	if err := command.Genre.Validate(); err != nil {
		return catalog.ErrorDecision(err)
	}

	if nameTaken {
		return catalog.IdempotentDecision()
	}

	return catalog.SuccessDecision()
}
