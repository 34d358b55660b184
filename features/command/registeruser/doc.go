// Package registeruser implements the Register User use case used by the admin CLI.
//
// Passwords are stored as bcrypt hashes. A taken username fails with catalog.ErrDuplicateUsername.
package registeruser
