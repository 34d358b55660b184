// Package catalog provides the domain types of the local library catalog
// together with the abstractions shared by all store implementations.
//
// The catalog tracks four kinds of records:
//   - Genre: a tag with a name, attached to many books
//   - Author: a person who writes books
//   - Book: a catalog entry with one (nullable) author and a set of genres
//   - BookInstance: a physical, loanable copy of a Book
//
// Users, permission grants and sessions complete the model for the web front end.
//
// Dates without a time of day (due dates, birth and death dates) are represented as
// time.Time values at midnight UTC, see DateOf.
//
// Common usage pattern:
//
//	today := catalog.Today()
//	if instance.IsOverdue(today) {
//		// render the due date in red
//	}
package catalog
