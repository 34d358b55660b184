package addbookinstance

import (
	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

const msgBorrowerRequired = "A copy on loan needs a borrower."

type state struct {
	instanceExists bool
	bookExists     bool
	borrowerExists bool
}

// Decide determines whether the copy should be inserted.
//
// Business Rules:
//
//	GIVEN: A copy with InstanceID of a book with BookID
//	WHEN: AddBookInstance command is received
//	THEN: the copy is inserted
//	ERROR: field validation errors, an unknown book, a loan without a known borrower
//	IDEMPOTENCY: If a copy with InstanceID already exists, nothing is written
func Decide(s state, command Command) catalog.DecisionResult {
	if s.instanceExists {
		return catalog.IdempotentDecision()
	}

	v := catalog.ValidationErrors{}
	if fieldErrs, ok := catalog.AsValidationErrors(command.Instance.Validate()); ok {
		v = fieldErrs
	}

	if !s.bookExists {
		v.Add("book", catalog.MsgInvalidChoice)
	}

	switch {
	case command.Instance.BorrowerID.Valid && !s.borrowerExists:
		v.Add("borrower", catalog.MsgInvalidChoice)
	case command.Instance.Status == catalog.StatusOnLoan && !command.Instance.BorrowerID.Valid:
		v.Add("borrower", msgBorrowerRequired)
	}

	if err := v.ErrOrNil(); err != nil {
		return catalog.ErrorDecision(err)
	}

	return catalog.SuccessDecision()
}
