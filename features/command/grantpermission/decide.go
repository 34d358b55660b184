package grantpermission

import (
	"slices"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// Decide determines whether the permission should be granted.
//
// Business Rules:
//
//	GIVEN: An existing user
//	WHEN: GrantPermission command is received
//	THEN: the permission is stored for the user
//	ERROR: catalog.ErrUnknownPermission for codenames the catalog does not define
//	IDEMPOTENCY: If the user already holds the permission, nothing is written
func Decide(user catalog.User, command Command) catalog.DecisionResult {
	if !slices.Contains(catalog.Permissions(), command.Permission) {
		return catalog.ErrorDecision(catalog.ErrUnknownPermission)
	}

	if user.HasPermission(command.Permission) {
		return catalog.IdempotentDecision()
	}

	return catalog.SuccessDecision()
}
