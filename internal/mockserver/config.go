package mockserver

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the environment prefix for mock backend settings,
// e.g. SVRMGR_MOCK_ADDR.
const EnvPrefix = "SVRMGR_MOCK"

// Config controls the mock backend.
type Config struct {
	// Addr is the listen address.
	Addr string `envconfig:"ADDR" default:":8080"`

	// Servers is how many servers to generate.
	Servers int `envconfig:"SERVERS" default:"100"`

	// Seed makes generation deterministic. Zero picks a time-based seed.
	Seed int64 `envconfig:"SEED"`

	// Latency delays every API response.
	Latency time.Duration `envconfig:"LATENCY"`

	// Secret, when set, requires an HS256 bearer token signed with it.
	Secret string `envconfig:"SECRET"`
}

// LoadConfig reads Config from the environment, applying defaults.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("mockserver: failed to load config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the configuration for values the backend cannot use.
func (c Config) Validate() error {
	if c.Servers < 0 {
		return fmt.Errorf("mockserver: servers must not be negative, got %d", c.Servers)
	}
	if c.Latency < 0 {
		return fmt.Errorf("mockserver: latency must not be negative, got %s", c.Latency)
	}
	return nil
}
