package stores

import (
	"context"
	"strings"

	"nathanbeddoewebdev/svrmgr/internal/api"
	"nathanbeddoewebdev/svrmgr/internal/domain"
)

// ConsoleQueries is the backend surface the ConsoleStore needs.
type ConsoleQueries interface {
	Logs(ctx context.Context, serverID string, q api.LogQuery) ([]domain.ConsoleLog, error)
	Execute(ctx context.Context, serverID, command string) (*domain.ServerCommand, error)
}

// RefreshLimit is how many log entries are reloaded after a command.
const RefreshLimit = 100

const (
	trackLogs    = "logs"
	trackExecute = "execute"
)

// ConsoleStore tracks a server's console output.
type ConsoleStore struct {
	*state
	api ConsoleQueries

	logs []domain.ConsoleLog
}

// NewConsoleStore creates an empty ConsoleStore.
func NewConsoleStore(api ConsoleQueries) *ConsoleStore {
	return &ConsoleStore{state: newState("console"), api: api}
}

// Logs returns a copy of the last fetched console entries.
func (s *ConsoleStore) Logs() []domain.ConsoleLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ConsoleLog{}, s.logs...)
}

// FetchLogs replaces the console entries. On failure the entries are
// cleared so stale output is never shown next to an error.
func (s *ConsoleStore) FetchLogs(ctx context.Context, serverID string, q api.LogQuery) error {
	serverID = strings.TrimSpace(serverID)
	if serverID == "" {
		return s.reject(domain.NewValidationError("Server ID is required"))
	}

	gen := s.begin(trackLogs)
	defer s.end()

	logs, err := s.api.Logs(ctx, serverID, q)

	s.mu.Lock()
	if s.currentLocked(trackLogs, gen) {
		s.logs = logs
		s.publish(FieldLogs)
	}
	s.mu.Unlock()

	if err != nil {
		return s.fail(trackLogs, gen, err)
	}
	return nil
}

// ExecuteCommand runs command on the server and then reloads the newest
// RefreshLimit log entries. The command result is returned even when
// the reload fails.
func (s *ConsoleStore) ExecuteCommand(ctx context.Context, serverID, command string) (*domain.ServerCommand, error) {
	serverID = strings.TrimSpace(serverID)
	command = strings.TrimSpace(command)
	if serverID == "" || command == "" {
		return nil, s.reject(domain.NewValidationError("Server ID and command are required"))
	}

	gen := s.begin(trackExecute)
	defer s.end()

	result, err := s.api.Execute(ctx, serverID, command)
	if err != nil {
		return nil, s.fail(trackExecute, gen, err)
	}

	return result, s.FetchLogs(ctx, serverID, api.LogQuery{Limit: RefreshLimit})
}
