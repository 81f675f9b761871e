package app

import (
	"github.com/brebuilds/brebot/internal/config"
)

// Config holds the application-level settings derived from command line
// flags, plus the launcher configuration loaded during bootstrap.
type Config struct {
	// UI mode
	NoTUI bool

	// Tool server
	NoTools bool

	// Debug settings
	Debug bool

	// ConfigPath overrides the layered configuration lookup with a single
	// file when non-empty.
	ConfigPath string

	// Version is the build version string shown in the dashboard and
	// announced by the tool server.
	Version string

	// Launcher configuration, populated by NewApplication.
	Launcher *config.Config
}

// NewConfig creates a new application configuration from flag values.
func NewConfig(noTUI, noTools, debug bool, configPath, version string) *Config {
	return &Config{
		NoTUI:      noTUI,
		NoTools:    noTools,
		Debug:      debug,
		ConfigPath: configPath,
		Version:    version,
	}
}
