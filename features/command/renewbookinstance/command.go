package renewbookinstance

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

const (
	commandType = "RenewBookInstance"
)

// Command represents the intent to move the due date of one book instance.
type Command struct {
	InstanceID  uuid.UUID
	RenewalDate time.Time
	Today       time.Time
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command. Both dates are truncated to calendar dates.
func BuildCommand(instanceID uuid.UUID, renewalDate time.Time, today time.Time) Command {
	return Command{
		InstanceID:  instanceID,
		RenewalDate: catalog.DateOf(renewalDate),
		Today:       catalog.DateOf(today),
	}
}
