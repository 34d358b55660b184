package renewbookinstance

import (
	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// Decide implements the business logic to determine whether the due date of a book instance should change.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A book instance with InstanceID
//	WHEN: RenewBookInstance command is received
//	THEN: the due date is set to RenewalDate
//	ERROR: "Invalid date - renewal in past" if RenewalDate is before Today
//	ERROR: "Invalid date - renewal more than 4 weeks ahead" if RenewalDate is after Today + 4 weeks
//	IDEMPOTENCY: If the due date already equals RenewalDate, nothing is written
func Decide(instance catalog.BookInstance, command Command) catalog.DecisionResult {
	if err := ValidateRenewalDate(command.RenewalDate, command.Today); err != nil {
		return catalog.ErrorDecision(err)
	}

	if instance.DueBack != nil && catalog.DateOf(*instance.DueBack).Equal(command.RenewalDate) {
		return catalog.IdempotentDecision()
	}

	return catalog.SuccessDecision()
}
