package stores

import (
	"context"
	"strings"

	"nathanbeddoewebdev/svrmgr/internal/domain"
)

// ServerQueries is the backend surface the ServerStore needs.
type ServerQueries interface {
	List(ctx context.Context) ([]domain.Server, error)
	Get(ctx context.Context, id string) (*domain.Server, error)
	Update(ctx context.Context, id string, update domain.ServerUpdate) (*domain.Server, error)
	FlushPages(ctx context.Context, id string) error
}

const (
	trackServers   = "servers"
	trackSelection = "selection"
	trackFlush     = "flush"
	trackUpdate    = "update"
)

// ServerStore tracks the fleet inventory and which server is active.
type ServerStore struct {
	*state
	api ServerQueries

	servers  []domain.Server
	selected string
}

// NewServerStore creates an empty ServerStore.
func NewServerStore(api ServerQueries) *ServerStore {
	return &ServerStore{state: newState("server"), api: api}
}

// Servers returns a copy of the last fetched inventory.
func (s *ServerStore) Servers() []domain.Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Server{}, s.servers...)
}

// SelectedServer returns the active server id, or "".
func (s *ServerStore) SelectedServer() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Restore seeds the selection from persisted state without contacting
// the backend. FetchServers drops it again when the server is gone or
// no longer online.
func (s *ServerStore) Restore(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = strings.TrimSpace(id)
	s.publish(FieldSelected)
}

// ClearSelection drops the active server.
func (s *ServerStore) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[trackSelection]++
	s.selected = ""
	s.publish(FieldSelected)
}

// FetchServers replaces the inventory. A selection that is missing from
// the new inventory or offline is cleared. When nothing is selected it
// then selects the first online server; a failure of that step is
// recorded in LastError but does not fail the fetch.
func (s *ServerStore) FetchServers(ctx context.Context) error {
	gen := s.begin(trackServers)
	defer s.end()

	servers, err := s.api.List(ctx)
	if err != nil {
		s.mu.Lock()
		if s.currentLocked(trackServers, gen) {
			s.servers = nil
			s.publish(FieldServers)
		}
		s.mu.Unlock()
		return s.fail(trackServers, gen, err)
	}

	s.mu.Lock()
	if !s.currentLocked(trackServers, gen) {
		s.mu.Unlock()
		return nil
	}
	s.servers = servers
	s.publish(FieldServers)
	if s.selected != "" && !selectable(servers, s.selected) {
		s.selected = ""
		s.publish(FieldSelected)
	}
	needsSelection := s.selected == ""
	s.mu.Unlock()

	if !needsSelection {
		return nil
	}
	for _, srv := range servers {
		if srv.IsOnline() {
			_ = s.SelectServer(ctx, srv.ID)
			break
		}
	}
	return nil
}

// SelectServer makes id the active server. Offline servers are refused
// and the current selection is kept.
func (s *ServerStore) SelectServer(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return s.reject(domain.NewValidationError("Server ID is required"))
	}

	gen := s.begin(trackSelection)
	defer s.end()

	srv, err := s.api.Get(ctx, id)
	if err != nil {
		return s.fail(trackSelection, gen, err)
	}
	if srv == nil {
		return s.fail(trackSelection, gen, &domain.Error{Kind: domain.ErrNotFound, Message: "Server not found"})
	}
	if !srv.IsOnline() {
		return s.fail(trackSelection, gen, domain.ErrServerOffline)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentLocked(trackSelection, gen) {
		s.selected = srv.ID
		s.publish(FieldSelected)
	}
	return nil
}

// FlushPages asks the server to flush its page cache. An empty id is a
// no-op.
func (s *ServerStore) FlushPages(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}

	gen := s.begin(trackFlush)
	defer s.end()

	if err := s.api.FlushPages(ctx, id); err != nil {
		return s.fail(trackFlush, gen, err)
	}
	return nil
}

// UpdateServer writes a partial update and then refetches the inventory
// so the cached list matches what the backend stored. The server echoed
// by the backend is returned even if the refetch fails.
func (s *ServerStore) UpdateServer(ctx context.Context, id string, update domain.ServerUpdate) (*domain.Server, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, s.reject(domain.NewValidationError("Server ID is required"))
	}
	if update.IsEmpty() {
		return nil, s.reject(domain.NewValidationError("No fields to update"))
	}

	gen := s.begin(trackUpdate)
	defer s.end()

	srv, err := s.api.Update(ctx, id, update)
	if err != nil {
		return nil, s.fail(trackUpdate, gen, err)
	}

	return srv, s.FetchServers(ctx)
}

func selectable(servers []domain.Server, id string) bool {
	for _, srv := range servers {
		if srv.ID == id {
			return srv.IsOnline()
		}
	}
	return false
}
