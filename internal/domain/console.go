package domain

import "time"

// Log levels used by console entries.
const (
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelError   = "error"
)

// Known log sources. The backend may report others.
const (
	SourceSystem = "system"
	SourceUser   = "user"
)

// ConsoleLog is a single append-only console entry.
type ConsoleLog struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Source    string    `json:"source"`
}

// Command status values.
const (
	CommandPending = "pending"
	CommandSuccess = "success"
	CommandError   = "error"
)

// ServerCommand is the result of executing a console command.
type ServerCommand struct {
	ID        string    `json:"id"`
	Command   string    `json:"command"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	Response  string    `json:"response,omitempty"`
}

// IsComplete reports whether the command has finished, regardless of outcome.
func (c *ServerCommand) IsComplete() bool {
	return c.Status == CommandSuccess || c.Status == CommandError
}
