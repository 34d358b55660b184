package catalog

// DecisionResult represents the outcome of a business decision in a Decide function.
//
// DecisionResult should only be constructed using the provided factory methods:
// IdempotentDecision(), SuccessDecision(), or ErrorDecision(err).
type DecisionResult struct {
	// Outcome is one of "idempotent", "success" or "error".
	Outcome string

	err error
}

const (
	outcomeIdempotent = "idempotent"
	outcomeSuccess    = "success"
	outcomeError      = "error"
)

// IdempotentDecision creates a DecisionResult indicating no state change is needed.
func IdempotentDecision() DecisionResult {
	return DecisionResult{Outcome: outcomeIdempotent}
}

// SuccessDecision creates a DecisionResult indicating the state change should be written.
func SuccessDecision() DecisionResult {
	return DecisionResult{Outcome: outcomeSuccess}
}

// ErrorDecision creates a DecisionResult indicating a business rule violation.
func ErrorDecision(err error) DecisionResult {
	return DecisionResult{Outcome: outcomeError, err: err}
}

// HasChangeToWrite reports whether the handler should persist the change.
func (r DecisionResult) HasChangeToWrite() bool {
	return r.Outcome == outcomeSuccess
}

// IsIdempotent reports whether the command required no state change.
func (r DecisionResult) IsIdempotent() bool {
	return r.Outcome == outcomeIdempotent
}

// HasError returns the business rule violation, if any.
func (r DecisionResult) HasError() error {
	return r.err
}
