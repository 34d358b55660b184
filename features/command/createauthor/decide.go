package createauthor

import (
	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// Decide determines whether the author should be inserted.
//
// Business Rules:
//
//	GIVEN: An author with AuthorID
//	WHEN: CreateAuthor command is received
//	THEN: the author is inserted
//	ERROR: field validation errors for blank or too long names
//	IDEMPOTENCY: If an author with AuthorID already exists, nothing is written
func Decide(authorExists bool, command Command) catalog.DecisionResult {
	if authorExists {
		return catalog.IdempotentDecision()
	}

	if err := command.Author.Validate(); err != nil {
		return catalog.ErrorDecision(err)
	}

	return catalog.SuccessDecision()
}
