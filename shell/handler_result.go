package shell

// HandlerResult represents the outcome of a command handler execution.
// Failures are reported through the returned error, not through the result.
type HandlerResult struct {
	// Idempotent indicates that the command required no state change, e.g. re-granting a held permission.
	Idempotent bool
}

// NewSuccessResult creates a HandlerResult for operations that changed state.
func NewSuccessResult() HandlerResult {
	return HandlerResult{}
}

// NewIdempotentResult creates a HandlerResult for operations that needed no state change.
func NewIdempotentResult() HandlerResult {
	return HandlerResult{Idempotent: true}
}

// NewErrorResult creates a HandlerResult to return alongside an error.
func NewErrorResult() HandlerResult {
	return HandlerResult{}
}
