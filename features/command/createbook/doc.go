// Package createbook implements the Create Book use case.
//
// A book references one existing author and at least one existing genre.
// Unknown references are reported inline on the form like any other field error.
package createbook
