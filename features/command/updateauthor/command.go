package updateauthor

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

const (
	commandType = "UpdateAuthor"
)

// Command represents the intent to change the fields of an existing author.
type Command struct {
	Author catalog.Author
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(authorID uuid.UUID, firstName, lastName string, dateOfBirth, dateOfDeath *time.Time) Command {
	author := catalog.BuildAuthor(firstName, lastName, dateOfBirth, dateOfDeath)
	author.ID = authorID

	return Command{Author: author}
}
