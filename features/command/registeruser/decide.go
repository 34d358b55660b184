package registeruser

import (
	"regexp"
	"slices"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/shell"
)

const (
	maxUsernameLength = 150

	msgUsernameInvalid  = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	msgUsernameTooLong  = "Ensure this value has at most 150 characters."
	msgPasswordTooShort = "This password is too short. It must contain at least 8 characters."
	msgUnknownPerm      = "Unknown permission."
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// Decide determines whether the user should be created.
//
// Business Rules:
//
//	GIVEN: A user with UserID
//	WHEN: RegisterUser command is received
//	THEN: the user is inserted with a bcrypt hash of the password
//	ERROR: invalid username, a password shorter than 8 characters, unknown permissions
//	IDEMPOTENCY: If a user with UserID already exists, nothing is written
func Decide(userExists bool, command Command) catalog.DecisionResult {
	if userExists {
		return catalog.IdempotentDecision()
	}

	v := catalog.ValidationErrors{}
	username := command.User.Username

	switch {
	case username == "":
		v.Add("username", catalog.MsgRequired)
	case len(username) > maxUsernameLength:
		v.Add("username", msgUsernameTooLong)
	case !usernamePattern.MatchString(username):
		v.Add("username", msgUsernameInvalid)
	}

	if len(command.Password) < shell.MinPasswordLength {
		v.Add("password", msgPasswordTooShort)
	}

	for _, perm := range command.User.Permissions {
		if !slices.Contains(catalog.Permissions(), perm) {
			v.Add("permissions", msgUnknownPerm)
		}
	}

	if err := v.ErrOrNil(); err != nil {
		return catalog.ErrorDecision(err)
	}

	return catalog.SuccessDecision()
}
