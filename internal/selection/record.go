package selection

import "time"

// Selection records which server was last selected for a backend profile.
type Selection struct {
	ID        int64
	Profile   string
	ServerID  string
	UpdatedAt time.Time
}
