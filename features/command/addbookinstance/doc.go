// Package addbookinstance implements the Add Book Instance use case.
//
// A new physical copy of an existing book is registered. Copies start in maintenance
// unless a status is given; a copy put on loan needs a borrower.
package addbookinstance
