package importcatalog

const (
	commandType = "ImportCatalog"
)

// Command represents the intent to import a catalog document.
type Command struct {
	Document Document
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command.
func BuildCommand(doc Document) Command {
	return Command{Document: doc}
}
