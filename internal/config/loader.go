package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/brebot"
	projectConfigDir = ".brebot"
	configFileName   = "config.yaml"
)

// Load assembles the effective configuration by layering, in order of
// increasing precedence: built-in defaults, the user file
// (~/.config/brebot/config.yaml), the project file (./.brebot/config.yaml),
// and finally BREBOT_* environment variables. A .env file in the working
// directory is folded into the environment first so the launcher and the
// Python backend read the same values.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := GetDefaultConfig()

	userPath, err := getUserConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not determine user config path: %v\n", err)
	} else if _, err := os.Stat(userPath); err == nil {
		overlay, err := loadFromFile(userPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading user config from %s: %w", userPath, err)
		}
		cfg = merge(cfg, overlay)
	}

	projectPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not determine project config path: %v\n", err)
	} else if _, err := os.Stat(projectPath); err == nil {
		overlay, err := loadFromFile(projectPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading project config from %s: %w", projectPath, err)
		}
		cfg = merge(cfg, overlay)
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

// LoadFromPath reads a single config file and layers it over the defaults,
// bypassing the user and project files. Used when the operator points the
// launcher at an explicit config.
func LoadFromPath(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := GetDefaultConfig()
	overlay, err := loadFromFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	cfg = merge(cfg, overlay)
	applyEnvOverrides(&cfg)
	return cfg, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func loadFromFile(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// merge overlays non-zero fields of overlay onto base. Slices replace
// wholesale when set; merging candidate lists element-wise would make the
// ordering, which is significant, unpredictable.
func merge(base, overlay Config) Config {
	merged := base

	if overlay.Workspace.RootRel != "" {
		merged.Workspace.RootRel = overlay.Workspace.RootRel
	}
	if overlay.Workspace.VenvPython != "" {
		merged.Workspace.VenvPython = overlay.Workspace.VenvPython
	}
	if overlay.Workspace.Interpreter != "" {
		merged.Workspace.Interpreter = overlay.Workspace.Interpreter
	}

	if overlay.Backend.Host != "" {
		merged.Backend.Host = overlay.Backend.Host
	}
	if overlay.Backend.OpenHost != "" {
		merged.Backend.OpenHost = overlay.Backend.OpenHost
	}
	if overlay.Backend.Port != 0 {
		merged.Backend.Port = overlay.Backend.Port
	}
	if overlay.Backend.HealthPath != "" {
		merged.Backend.HealthPath = overlay.Backend.HealthPath
	}
	if overlay.Backend.EntryScript != "" {
		merged.Backend.EntryScript = overlay.Backend.EntryScript
	}
	if overlay.Backend.Mode != "" {
		merged.Backend.Mode = overlay.Backend.Mode
	}

	if overlay.Services.Command != "" {
		merged.Services.Command = overlay.Services.Command
	}
	if overlay.Services.ComposeFile != "" {
		merged.Services.ComposeFile = overlay.Services.ComposeFile
	}
	if overlay.Services.Names != nil {
		merged.Services.Names = overlay.Services.Names
	}

	if overlay.Browser.Candidates != nil {
		merged.Browser.Candidates = overlay.Browser.Candidates
	}
	if overlay.Browser.UserDataDir != "" {
		merged.Browser.UserDataDir = overlay.Browser.UserDataDir
	}
	if overlay.Browser.FallbackOpener != nil {
		merged.Browser.FallbackOpener = overlay.Browser.FallbackOpener
	}

	if overlay.Shell.ToolServerHost != "" {
		merged.Shell.ToolServerHost = overlay.Shell.ToolServerHost
	}
	if overlay.Shell.ToolServerPort != 0 {
		merged.Shell.ToolServerPort = overlay.Shell.ToolServerPort
	}
	if overlay.Shell.HealthIntervalSeconds != 0 {
		merged.Shell.HealthIntervalSeconds = overlay.Shell.HealthIntervalSeconds
	}
	if overlay.Shell.HealthAttempts != 0 {
		merged.Shell.HealthAttempts = overlay.Shell.HealthAttempts
	}

	return merged
}

// applyEnvOverrides lets the environment win over every file layer. Only the
// handful of values that differ per machine are exposed this way.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BREBOT_BACKEND_HOST"); v != "" {
		cfg.Backend.Host = v
	}
	if v := os.Getenv("BREBOT_BACKEND_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Backend.Port = port
		}
	}
	if v := os.Getenv("BREBOT_COMPOSE_FILE"); v != "" {
		cfg.Services.ComposeFile = v
	}
	if v := os.Getenv("BREBOT_TOOL_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Shell.ToolServerPort = port
		}
	}
}

// GetUserConfigDir returns the user configuration directory path.
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
