// Package bookdetail provides a book together with its author, its genres and all its copies.
//
// Copies carry their status label and text style so the detail page can colour them,
// and an overdue flag relative to the query's today.
package bookdetail
