// Package config loads evecrop configuration from an optional TOML file and
// the process environment. Environment variables win over file values so the
// same config file can serve several SSO applications.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"github.com/nullsec-labs/evecrop/internal/core/domain"
)

// Defaults applied for fields absent from both file and environment.
const (
	DefaultCallbackURL  = "http://localhost:5000/esi/callback"
	DefaultCallbackAddr = "127.0.0.1:5000"
	DefaultRosterPath   = "toons.json"
	DefaultScopes       = "esi-characterstats.read.v1 esi-skills.read_skills.v1 esi-skills.read_skillqueue.v1"
)

// Config is the explicit configuration passed into the orchestrator and
// adapters at construction. It is validated once at startup.
type Config struct {
	// ClientID is the SSO application client ID. Required.
	ClientID string `toml:"client_id" env:"ESI_CLIENT_ID"`
	// ClientSecret is the SSO application secret. Required.
	ClientSecret string `toml:"client_secret" env:"ESI_SECRET"`
	// CallbackURL is the redirect URL registered with the SSO application.
	CallbackURL string `toml:"callback_url" env:"ESI_CALLBACK_URL"`
	// CallbackAddr is the local host:port the callback listener binds.
	CallbackAddr string `toml:"callback_addr" env:"ESI_CALLBACK_ADDR"`
	// Scopes is the space-delimited scope string requested at auth time.
	Scopes string `toml:"scopes" env:"ESI_SCOPES"`
	// RosterPath is the JSON roster file location.
	RosterPath string `toml:"roster_path" env:"EVECROP_ROSTER"`
	// FarmSkills overrides the tracked skill IDs. Empty means defaults.
	FarmSkills []int32 `toml:"farm_skills" env:"EVECROP_FARM_SKILLS" envSeparator:","`
}

// Load reads configuration from path (default ~/.evecrop/config.toml when
// empty), overlays the environment, fills defaults and validates.
func Load(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".evecrop", "config.toml")
		}
	}

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.CallbackURL == "" {
		c.CallbackURL = DefaultCallbackURL
	}
	if c.CallbackAddr == "" {
		c.CallbackAddr = DefaultCallbackAddr
	}
	if c.Scopes == "" {
		c.Scopes = DefaultScopes
	}
	if c.RosterPath == "" {
		c.RosterPath = DefaultRosterPath
	}
	if len(c.FarmSkills) == 0 {
		c.FarmSkills = domain.DefaultFarmSkills
	}
}

// Validate checks the enumerated required fields, naming every missing one.
func (c *Config) Validate() error {
	var missing []string
	if c.ClientID == "" {
		missing = append(missing, "client_id")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "client_secret")
	}
	if c.CallbackURL == "" {
		missing = append(missing, "callback_url")
	}
	if c.Scopes == "" {
		missing = append(missing, "scopes")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", domain.ErrInvalidConfig, strings.Join(missing, ", "))
	}
	return nil
}

// ScopeList splits the scope string for the OAuth2 request.
func (c *Config) ScopeList() []string {
	return strings.Fields(c.Scopes)
}
