// Package borrowedbooks provides all copies currently on loan, ordered by due date, with their borrowers.
// Librarians use it to see which copies are due back.
package borrowedbooks
