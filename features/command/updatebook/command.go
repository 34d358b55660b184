package updatebook

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

const (
	commandType = "UpdateBook"
)

// Command represents the intent to change an existing book.
type Command struct {
	Book catalog.Book
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID uuid.UUID, title string, authorID uuid.NullUUID, summary, isbn string, genreIDs []uuid.UUID) Command {
	book := catalog.BuildBook(title, authorID, summary, isbn, genreIDs)
	book.ID = bookID

	return Command{Book: book}
}
