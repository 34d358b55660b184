package grantpermission

import (
	"strings"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

const (
	commandType = "GrantPermission"
)

// Command represents the intent to grant a permission to a user.
type Command struct {
	Username   string
	Permission catalog.Permission
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command. The permission is validated by Decide.
func BuildCommand(username string, permission catalog.Permission) Command {
	return Command{
		Username:   strings.TrimSpace(username),
		Permission: permission,
	}
}
