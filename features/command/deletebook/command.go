package deletebook

import (
	"github.com/google/uuid"
)

const (
	commandType = "DeleteBook"
)

// Command represents the intent to remove a book from the catalog.
type Command struct {
	BookID uuid.UUID
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command.
func BuildCommand(bookID uuid.UUID) Command {
	return Command{BookID: bookID}
}
