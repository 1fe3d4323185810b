package stores

import (
	"context"
	"strings"

	"nathanbeddoewebdev/svrmgr/internal/domain"
)

// ModQueries is the backend surface the ModStore needs.
type ModQueries interface {
	List(ctx context.Context, serverID string) ([]domain.Mod, error)
	ListConfigs(ctx context.Context, serverID string) ([]domain.ModConfig, error)
	UpdateConfig(ctx context.Context, serverID, modID, content string) (*domain.ModConfig, error)
}

const (
	trackMods         = "mods"
	trackConfigs      = "configs"
	trackConfigUpdate = "config-update"
)

// ModStore tracks a server's mods and their configuration files.
type ModStore struct {
	*state
	api ModQueries

	mods    []domain.Mod
	configs []domain.ModConfig
}

// NewModStore creates an empty ModStore.
func NewModStore(api ModQueries) *ModStore {
	return &ModStore{state: newState("mod"), api: api}
}

// Mods returns a copy of the last fetched mod list.
func (s *ModStore) Mods() []domain.Mod {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Mod{}, s.mods...)
}

// Configs returns a copy of the last fetched configurations.
func (s *ModStore) Configs() []domain.ModConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ModConfig{}, s.configs...)
}

// Config looks up the cached configuration of a mod.
func (s *ModStore) Config(modID string) (domain.ModConfig, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cfg := range s.configs {
		if cfg.ModID == modID {
			return cfg, true
		}
	}
	return domain.ModConfig{}, false
}

// FetchMods replaces the mod list with serverID's mods.
func (s *ModStore) FetchMods(ctx context.Context, serverID string) error {
	serverID = strings.TrimSpace(serverID)
	if serverID == "" {
		return s.reject(domain.NewValidationError("Server ID is required"))
	}

	gen := s.begin(trackMods)
	defer s.end()

	mods, err := s.api.List(ctx, serverID)
	if err != nil {
		return s.fail(trackMods, gen, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentLocked(trackMods, gen) {
		s.mods = mods
		s.publish(FieldMods)
	}
	return nil
}

// FetchConfigs replaces the configurations with serverID's.
func (s *ModStore) FetchConfigs(ctx context.Context, serverID string) error {
	serverID = strings.TrimSpace(serverID)
	if serverID == "" {
		return s.reject(domain.NewValidationError("Server ID is required"))
	}

	gen := s.begin(trackConfigs)
	defer s.end()

	configs, err := s.api.ListConfigs(ctx, serverID)
	if err != nil {
		return s.fail(trackConfigs, gen, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentLocked(trackConfigs, gen) {
		s.configs = configs
		s.publish(FieldConfigs)
	}
	return nil
}

// UpdateConfig replaces a mod's configuration text and then refetches
// every configuration. The cache is never patched locally.
func (s *ModStore) UpdateConfig(ctx context.Context, serverID, modID, content string) error {
	serverID = strings.TrimSpace(serverID)
	modID = strings.TrimSpace(modID)
	if serverID == "" || modID == "" {
		return s.reject(domain.NewValidationError("Server ID and Mod ID are required"))
	}

	gen := s.begin(trackConfigUpdate)
	defer s.end()

	if _, err := s.api.UpdateConfig(ctx, serverID, modID, content); err != nil {
		return s.fail(trackConfigUpdate, gen, err)
	}
	return s.FetchConfigs(ctx, serverID)
}
