package auditlog

import "time"

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Resource types recorded by mutating commands.
const (
	ResourceServer    = "server"
	ResourceModConfig = "mod_config"
	ResourceCommand   = "console_command"
	ResourceSession   = "session"
)

// AuditEntry represents a persisted audit event.
type AuditEntry struct {
	ID           int64     `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Command      string    `json:"command"`
	Args         string    `json:"args,omitempty"`
	Profile      string    `json:"profile,omitempty"`
	ResourceType string    `json:"resource_type,omitempty"`
	ResourceID   string    `json:"resource_id,omitempty"`
	ResourceName string    `json:"resource_name,omitempty"`
	Outcome      string    `json:"outcome"`
	Detail       string    `json:"detail,omitempty"`
	DurationMs   int64     `json:"duration_ms"`
}

// Filter narrows a List query. Zero fields match everything.
type Filter struct {
	Command      string
	Profile      string
	ResourceType string
	ResourceID   string
	Outcome      string
	Limit        int
}
