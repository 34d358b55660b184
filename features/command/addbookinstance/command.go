package addbookinstance

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

const (
	commandType = "AddBookInstance"
)

// Command represents the intent to add a physical copy of a book.
type Command struct {
	Instance catalog.BookInstance
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command. A blank language falls back to catalog.DefaultLanguage,
// a blank status to catalog.DefaultLoanStatus.
func BuildCommand(
	instanceID uuid.UUID,
	bookID uuid.UUID,
	imprint string,
	language string,
	status catalog.LoanStatus,
	dueBack *time.Time,
	borrowerID uuid.NullUUID,
) Command {
	instance := catalog.BuildBookInstance(bookID, imprint)
	instance.ID = instanceID
	instance.DueBack = dueBack
	instance.BorrowerID = borrowerID

	if strings.TrimSpace(language) != "" {
		instance.Language = strings.TrimSpace(language)
	}

	if status != "" {
		instance.Status = status
	}

	return Command{Instance: instance}
}
