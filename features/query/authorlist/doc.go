// Package authorlist provides the paginated list of authors, ordered by last name and first name.
package authorlist
