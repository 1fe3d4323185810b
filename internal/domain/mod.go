package domain

import "time"

// Mod is an installed server modification. Mods are read-only to the
// console; only their configuration can be edited.
type Mod struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Version      string   `json:"version"`
	Author       string   `json:"author"`
	Enabled      bool     `json:"enabled"`
	Configurable bool     `json:"configurable"`
	Dependencies []string `json:"dependencies"`
	LastUpdated  string   `json:"lastUpdated"`
	ImageURL     string   `json:"imageUrl,omitempty"`
}

// ModConfig holds the configuration text for a single mod. Content is
// opaque to the console and is always replaced wholesale.
type ModConfig struct {
	ID           string    `json:"id"`
	ModID        string    `json:"modId"`
	Name         string    `json:"name"`
	Content      string    `json:"content"`
	LastModified time.Time `json:"lastModified"`
}
