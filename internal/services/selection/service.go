// Package selection provides a best-effort service layer over the
// persisted server selection.
package selection

import (
	"nathanbeddoewebdev/svrmgr/internal/selection"
)

// Service wraps the selection repository. Persistence failures never
// fail a command; the selection simply is not remembered.
type Service struct {
	repo selection.Repository
}

// NewService creates a new selection service. A nil repository yields a
// service that remembers nothing.
func NewService(repo selection.Repository) *Service {
	return &Service{repo: repo}
}

// Close releases repository resources.
func (s *Service) Close() error {
	if s.repo == nil {
		return nil
	}
	return s.repo.Close()
}

// Recall returns the remembered server for profile, or "".
func (s *Service) Recall(profile string) string {
	if s.repo == nil {
		return ""
	}
	sel, err := s.repo.Get(profile)
	if err != nil || sel == nil {
		return ""
	}
	return sel.ServerID
}

// Remember persists serverID as the selection for profile. An empty
// serverID forgets the selection instead.
func (s *Service) Remember(profile, serverID string) {
	if s.repo == nil {
		return
	}
	if serverID == "" {
		_ = s.repo.Clear(profile)
		return
	}
	_ = s.repo.Save(&selection.Selection{Profile: profile, ServerID: serverID})
}
