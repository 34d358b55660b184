// Package updateauthor implements the Update Author use case.
//
// All four author fields are overwritten. Submitting unchanged values writes nothing.
package updateauthor
