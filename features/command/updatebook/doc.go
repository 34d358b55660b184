// Package updatebook implements the Update Book use case.
//
// Title, author, summary, ISBN and the genre set are overwritten.
// The same reference checks as for creating a book apply.
package updatebook
