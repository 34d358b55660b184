// Package loanedbooksbyuser provides the copies currently on loan to one user, ordered by due date.
//
// Only copies with status OnLoan are listed. Each row tells whether the copy is overdue relative
// to the query's today.
package loanedbooksbyuser
