package app

import (
	"context"
	"fmt"
	"os"

	"github.com/brebuilds/brebot/internal/config"
	"github.com/brebuilds/brebot/pkg/logging"
)

// Application is the main application structure that bootstraps and runs
// the launcher shell.
type Application struct {
	config   *Config
	services *Services
}

// NewApplication creates and initializes a new application instance.
func NewApplication(cfg *Config) (*Application, error) {
	// Configure logging based on debug flag
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}

	// Initialize logging for CLI output (replaced for TUI mode)
	logging.InitForCLI(appLogLevel, os.Stdout)

	var launcherCfg config.Config
	var err error

	if cfg.ConfigPath != "" {
		launcherCfg, err = config.LoadFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load launcher configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load launcher configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Info("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		launcherCfg, err = config.Load()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load launcher configuration")
			return nil, fmt.Errorf("failed to load launcher configuration: %w", err)
		}
		logging.Info("Bootstrap", "Loaded configuration using layered approach")
	}

	cfg.Launcher = &launcherCfg

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// Services exposes the wired facilities for command handlers that run
// one-shot operations outside of serve mode.
func (a *Application) Services() *Services {
	return a.services
}

// Config exposes the resolved application configuration.
func (a *Application) Config() *Config {
	return a.config
}

// Run executes the application in the appropriate mode.
func (a *Application) Run(ctx context.Context) error {
	if a.config.NoTUI {
		return runHeadlessMode(ctx, a.config, a.services)
	}
	return runDashboardMode(ctx, a.config, a.services)
}
