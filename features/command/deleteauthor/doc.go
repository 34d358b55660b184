// Package deleteauthor implements the Delete Author use case.
//
// Books of the deleted author are kept, their author reference is cleared.
package deleteauthor
