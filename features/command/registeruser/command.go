package registeruser

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

const (
	commandType = "RegisterUser"
)

// Command represents the intent to create a user account.
// The clear-text password never leaves the handler.
type Command struct {
	User     catalog.User
	Password string
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	userID uuid.UUID,
	username string,
	password string,
	firstName string,
	lastName string,
	isSuperuser bool,
	permissions ...catalog.Permission,
) Command {
	user := catalog.BuildUser(username, "", firstName, lastName, isSuperuser)
	user.ID = userID
	user.Permissions = permissions

	return Command{
		User:     user,
		Password: password,
	}
}
