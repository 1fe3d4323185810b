package domain

import "time"

// Server status values reported by the backend inventory.
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

// Server is a game server in the managed fleet.
type Server struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Status  string `json:"status"`

	// LastPing is the last heartbeat in Unix milliseconds. It is only
	// present while the server is online.
	LastPing *int64 `json:"lastPing,omitempty"`

	Players    int    `json:"players"`
	MaxPlayers int    `json:"maxPlayers"`
	Version    string `json:"version"`
}

// IsOnline reports whether the server accepts console connections.
func (s *Server) IsOnline() bool {
	return s.Status == StatusOnline
}

// LastPingTime converts LastPing to a time.Time. The zero time is
// returned when the server has never reported a heartbeat.
func (s *Server) LastPingTime() time.Time {
	if s.LastPing == nil {
		return time.Time{}
	}
	return time.UnixMilli(*s.LastPing)
}

// ServerUpdate is the client-writable subset of a Server sent with a
// partial update. Nil fields are left untouched by the backend.
type ServerUpdate struct {
	Name       *string `json:"name,omitempty"`
	Players    *int    `json:"players,omitempty"`
	MaxPlayers *int    `json:"maxPlayers,omitempty"`
}

// IsEmpty reports whether the update would change nothing.
func (u ServerUpdate) IsEmpty() bool {
	return u.Name == nil && u.Players == nil && u.MaxPlayers == nil
}
