// Package createauthor implements the Create Author use case.
//
// Staff holding can_crud_authors add a new author. The command carries the new author's ID,
// so a repeated submission of the same command is an idempotent no-op.
package createauthor
