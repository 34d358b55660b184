package createbook

import (
	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// state represents what the store knows about the command's references.
type state struct {
	bookExists    bool
	authorExists  bool
	unknownGenres int
}

// Decide determines whether the book should be inserted.
//
// Business Rules:
//
//	GIVEN: A book with BookID
//	WHEN: CreateBook command is received
//	THEN: the book and its genre links are inserted
//	ERROR: field validation errors, a missing or unknown author, unknown genres
//	IDEMPOTENCY: If a book with BookID already exists, nothing is written
func Decide(s state, command Command) catalog.DecisionResult {
	if s.bookExists {
		return catalog.IdempotentDecision()
	}

	if err := validateReferences(s, command.Book); err != nil {
		return catalog.ErrorDecision(err)
	}

	return catalog.SuccessDecision()
}

func validateReferences(s state, book catalog.Book) error {
	v := catalog.ValidationErrors{}
	if fieldErrs, ok := catalog.AsValidationErrors(book.Validate()); ok {
		v = fieldErrs
	}

	switch {
	case !book.AuthorID.Valid:
		v.Add("author", catalog.MsgRequired)
	case !s.authorExists:
		v.Add("author", catalog.MsgInvalidChoice)
	}

	if s.unknownGenres > 0 {
		v.Add("genre", catalog.MsgInvalidChoice)
	}

	return v.ErrOrNil()
}
