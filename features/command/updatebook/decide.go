package updatebook

import (
	"slices"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// state represents the stored book and what the store knows about the command's references.
type state struct {
	existing      catalog.Book
	authorExists  bool
	unknownGenres int
}

// Decide determines whether the stored book should be overwritten.
//
// Business Rules:
//
//	GIVEN: An existing book
//	WHEN: UpdateBook command is received
//	THEN: the book and its genre links are overwritten
//	ERROR: field validation errors, a missing or unknown author, unknown genres
//	IDEMPOTENCY: If nothing changes, nothing is written
func Decide(s state, command Command) catalog.DecisionResult {
	v := catalog.ValidationErrors{}
	if fieldErrs, ok := catalog.AsValidationErrors(command.Book.Validate()); ok {
		v = fieldErrs
	}

	switch {
	case !command.Book.AuthorID.Valid:
		v.Add("author", catalog.MsgRequired)
	case !s.authorExists:
		v.Add("author", catalog.MsgInvalidChoice)
	}

	if s.unknownGenres > 0 {
		v.Add("genre", catalog.MsgInvalidChoice)
	}

	if err := v.ErrOrNil(); err != nil {
		return catalog.ErrorDecision(err)
	}

	if sameBook(s.existing, command.Book) {
		return catalog.IdempotentDecision()
	}

	return catalog.SuccessDecision()
}

func sameBook(a, b catalog.Book) bool {
	return a.Title == b.Title &&
		a.AuthorID == b.AuthorID &&
		a.Summary == b.Summary &&
		a.ISBN == b.ISBN &&
		sameGenres(a.GenreIDs, b.GenreIDs)
}

func sameGenres(a, b []uuid.UUID) bool {
	sortedA := slices.Clone(a)
	sortedB := slices.Clone(b)
	slices.SortFunc(sortedA, compareIDs)
	slices.SortFunc(sortedB, compareIDs)

	return slices.Equal(slices.Compact(sortedA), slices.Compact(sortedB))
}

func compareIDs(a, b uuid.UUID) int {
	return slices.Compare(a[:], b[:])
}
