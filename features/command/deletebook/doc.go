// Package deletebook implements the Delete Book use case.
//
// Copies of the deleted book are kept, their book reference is cleared.
package deletebook
