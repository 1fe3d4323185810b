package mockserver

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"nathanbeddoewebdev/svrmgr/internal/domain"

	"github.com/google/uuid"
)

var (
	// ErrServerNotFound is returned for an unknown server id.
	ErrServerNotFound = errors.New("server not found")

	// ErrConfigNotFound is returned for a mod without configuration.
	ErrConfigNotFound = errors.New("config not found")

	// ErrInvalidInput is wrapped by every request validation failure.
	ErrInvalidInput = errors.New("invalid input")
)

// ServerPatch is the whitelisted subset of Server a client may write.
// Other fields in a PUT body are ignored.
type ServerPatch struct {
	Name       *string `json:"name"`
	Players    *int    `json:"players"`
	MaxPlayers *int    `json:"maxPlayers"`
}

type serverState struct {
	server  domain.Server
	mods    []domain.Mod
	configs []domain.ModConfig
	logs    []domain.ConsoleLog
}

// Fleet is the in-memory backend state. Each server owns its own copy
// of the mod catalog, configuration files and console log.
type Fleet struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*serverState
	now   func() time.Time
}

// NewFleet creates a fleet holding servers, each provisioned with the
// default mods, configs and boot log.
func NewFleet(servers []domain.Server) *Fleet {
	f := &Fleet{
		byID: make(map[string]*serverState, len(servers)),
		now:  time.Now,
	}
	for _, srv := range servers {
		f.order = append(f.order, srv.ID)
		f.byID[srv.ID] = &serverState{
			server:  srv,
			mods:    catalogMods(),
			configs: catalogConfigs(),
			logs:    seedLogs(),
		}
	}
	return f
}

// SetClock replaces the fleet's time source.
func (f *Fleet) SetClock(now func() time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = now
}

// Servers returns every server in inventory order.
func (f *Fleet) Servers() []domain.Server {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]domain.Server, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, copyServer(f.byID[id].server))
	}
	return out
}

// Server returns a single server.
func (f *Fleet) Server(id string) (domain.Server, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	st, ok := f.byID[id]
	if !ok {
		return domain.Server{}, ErrServerNotFound
	}
	return copyServer(st.server), nil
}

// UpdateServer merges patch into the server. Players must stay within
// [0, maxPlayers] and an offline server cannot have players. The
// heartbeat is refreshed for online servers.
func (f *Fleet) UpdateServer(id string, patch ServerPatch) (domain.Server, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	st, ok := f.byID[id]
	if !ok {
		return domain.Server{}, ErrServerNotFound
	}

	next := copyServer(st.server)
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return domain.Server{}, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		next.Name = name
	}
	if patch.MaxPlayers != nil {
		if *patch.MaxPlayers <= 0 {
			return domain.Server{}, fmt.Errorf("%w: maxPlayers must be positive", ErrInvalidInput)
		}
		next.MaxPlayers = *patch.MaxPlayers
	}
	if patch.Players != nil {
		next.Players = *patch.Players
	}

	if next.Players < 0 || next.Players > next.MaxPlayers {
		return domain.Server{}, fmt.Errorf("%w: players must be between 0 and %d", ErrInvalidInput, next.MaxPlayers)
	}
	if !next.IsOnline() && next.Players != 0 {
		return domain.Server{}, fmt.Errorf("%w: offline servers cannot have players", ErrInvalidInput)
	}

	if next.IsOnline() {
		ping := f.now().UnixMilli()
		next.LastPing = &ping
	}

	st.server = next
	return copyServer(next), nil
}

// FlushPages checks the server exists. The mock has no page cache.
func (f *Fleet) FlushPages(id string) error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if _, ok := f.byID[id]; !ok {
		return ErrServerNotFound
	}
	return nil
}

// Mods returns the server's mods.
func (f *Fleet) Mods(serverID string) ([]domain.Mod, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	st, ok := f.byID[serverID]
	if !ok {
		return nil, ErrServerNotFound
	}
	out := make([]domain.Mod, 0, len(st.mods))
	for _, m := range st.mods {
		m.Dependencies = append([]string{}, m.Dependencies...)
		out = append(out, m)
	}
	return out, nil
}

// Configs returns the server's mod configurations.
func (f *Fleet) Configs(serverID string) ([]domain.ModConfig, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	st, ok := f.byID[serverID]
	if !ok {
		return nil, ErrServerNotFound
	}
	return append([]domain.ModConfig{}, st.configs...), nil
}

// Config returns the configuration of one mod.
func (f *Fleet) Config(serverID, modID string) (domain.ModConfig, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	st, ok := f.byID[serverID]
	if !ok {
		return domain.ModConfig{}, ErrServerNotFound
	}
	for _, cfg := range st.configs {
		if cfg.ModID == modID {
			return cfg, nil
		}
	}
	return domain.ModConfig{}, ErrConfigNotFound
}

// UpdateConfig replaces a mod's configuration text and stamps it.
func (f *Fleet) UpdateConfig(serverID, modID, content string) (domain.ModConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	st, ok := f.byID[serverID]
	if !ok {
		return domain.ModConfig{}, ErrServerNotFound
	}
	for i := range st.configs {
		if st.configs[i].ModID == modID {
			st.configs[i].Content = content
			st.configs[i].LastModified = f.now().UTC()
			return st.configs[i], nil
		}
	}
	return domain.ModConfig{}, ErrConfigNotFound
}

// Logs returns console entries in stored order. Offset skips the
// newest entries; limit then keeps at most that many of the remainder.
// A non-positive limit means no limit.
func (f *Fleet) Logs(serverID string, limit, offset int) ([]domain.ConsoleLog, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	st, ok := f.byID[serverID]
	if !ok {
		return nil, ErrServerNotFound
	}

	end := len(st.logs)
	if offset > 0 {
		end = max(0, end-offset)
	}
	start := 0
	if limit > 0 {
		start = max(0, end-limit)
	}
	return append([]domain.ConsoleLog{}, st.logs[start:end]...), nil
}

// Execute simulates a console command: it appends the user's echo and
// the system response to the log and reports success.
func (f *Fleet) Execute(serverID, command string) (domain.ServerCommand, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	st, ok := f.byID[serverID]
	if !ok {
		return domain.ServerCommand{}, ErrServerNotFound
	}

	command = strings.TrimSpace(command)
	if command == "" {
		return domain.ServerCommand{}, fmt.Errorf("%w: command is required", ErrInvalidInput)
	}

	now := f.now().UTC()
	result := domain.ServerCommand{
		ID:        "cmd-" + uuid.NewString(),
		Command:   command,
		Timestamp: now,
		Status:    domain.CommandSuccess,
		Response:  "Executed command: " + command,
	}

	st.logs = append(st.logs,
		domain.ConsoleLog{
			ID:        "log-" + uuid.NewString(),
			Timestamp: now,
			Level:     domain.LevelInfo,
			Message:   "> " + command,
			Source:    domain.SourceUser,
		},
		domain.ConsoleLog{
			ID:        "log-" + uuid.NewString(),
			Timestamp: now,
			Level:     domain.LevelInfo,
			Message:   result.Response,
			Source:    domain.SourceSystem,
		},
	)
	return result, nil
}

func copyServer(s domain.Server) domain.Server {
	if s.LastPing != nil {
		ping := *s.LastPing
		s.LastPing = &ping
	}
	return s
}
