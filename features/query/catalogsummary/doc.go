// Package catalogsummary provides the counts shown on the catalog home page.
//
// Besides the plain totals of books, copies, authors and genres it counts the available copies,
// the books with "dead" in their title and the books written by authors who have died.
package catalogsummary
