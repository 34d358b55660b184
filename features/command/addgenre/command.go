package addgenre

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

const (
	commandType = "AddGenre"
)

// Command represents the intent to add a genre.
type Command struct {
	Genre catalog.Genre
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(genreID uuid.UUID, name string) Command {
	genre := catalog.BuildGenre(name)
	genre.ID = genreID

	return Command{Genre: genre}
}
