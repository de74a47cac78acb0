package config

import (
	"github.com/vibelook/vibelook/internal/common"
)

// Config holds runtime settings for the VibeLook CLI.
//
// Fields:
//   - BaseURL: origin of the backend API, without a trailing slash.
//   - SessionFile: path of the durable local session file.
//   - ExtraHeaders: headers attached to every outbound request (the
//     development-proxy bypass header lives here).
type Config struct {
	BaseURL      string
	SessionFile  string
	ExtraHeaders map[string]string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080"
	c.SessionFile = ".vibelook/session.json"
	c.ExtraHeaders = map[string]string{
		common.BypassHeaderName: common.BypassHeaderValue,
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (with a .env overlay outside production), a JSON file
// (if selected), and command-line flags. Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
