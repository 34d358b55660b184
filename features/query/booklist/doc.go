// Package booklist provides the paginated list of all books, ordered by title.
package booklist
