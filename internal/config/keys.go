package config

import (
	"fmt"
	"strings"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "api-url").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string)
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "api-url",
		Description: "Backend base URL (default " + DefaultAPIURL + ")",
		Get:         func(cfg *Config) string { return cfg.APIURL },
		Set:         func(cfg *Config, v string) { cfg.APIURL = strings.TrimRight(v, "/") },
	},
	{
		Name:        "timeout",
		Description: "Request timeout as a duration, e.g. 30s (default 60s)",
		Get:         func(cfg *Config) string { return cfg.Timeout },
		Set:         func(cfg *Config, v string) { cfg.Timeout = v },
	},
	{
		Name:        "log-level",
		Description: "Log level: debug, info, warn or error (default " + DefaultLogLevel + ")",
		Get:         func(cfg *Config) string { return cfg.LogLevel },
		Set:         func(cfg *Config, v string) { cfg.LogLevel = strings.ToLower(v) },
	},
	{
		Name:        "log-file",
		Description: "Write logs to this file (rotated) instead of stderr",
		Get:         func(cfg *Config) string { return cfg.LogFile },
		Set:         func(cfg *Config, v string) { cfg.LogFile = v },
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	// Find the longest key name for alignment.
	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
