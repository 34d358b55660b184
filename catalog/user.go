package catalog

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Permission is a codename granting access to a gated action.
type Permission string

const (
	// PermCanMarkReturned lets librarians see all loans and renew them.
	PermCanMarkReturned Permission = "can_mark_returned"

	// PermCanCRUDAuthors lets staff create, update and delete authors and books.
	PermCanCRUDAuthors Permission = "can_crud_authors"
)

// Permissions returns all permissions the catalog defines.
func Permissions() []Permission {
	return []Permission{PermCanMarkReturned, PermCanCRUDAuthors}
}

// ParsePermission validates a permission codename.
// The "catalog." prefix used by some admin tooling is accepted.
func ParsePermission(s string) (Permission, error) {
	codename := Permission(strings.TrimPrefix(strings.TrimSpace(s), "catalog."))
	if slices.Contains(Permissions(), codename) {
		return codename, nil
	}

	return "", ErrUnknownPermission
}

// User is an account that can log in, borrow copies and hold permissions.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	IsSuperuser  bool
	Permissions  []Permission
}

// BuildUser creates a User with a fresh ID and no permissions.
func BuildUser(username, passwordHash, firstName, lastName string, isSuperuser bool) User {
	return User{
		ID:           uuid.New(),
		Username:     strings.TrimSpace(username),
		PasswordHash: passwordHash,
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		IsSuperuser:  isSuperuser,
	}
}

// HasPermission reports whether the user holds perm. Superusers hold every permission.
func (u User) HasPermission(perm Permission) bool {
	if u.IsSuperuser {
		return true
	}

	return slices.Contains(u.Permissions, perm)
}

// DisplayName returns the full name, falling back to the username.
func (u User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}

	return name
}
