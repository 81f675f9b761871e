package config

import (
	"fmt"
	"time"
)

// Config is the merged launcher configuration. All host names, ports, file
// paths, and argument lists the launcher uses come from here; the packages
// under internal/ receive them at construction time and never consult
// process-wide state themselves.
type Config struct {
	Workspace WorkspaceConfig `yaml:"workspace"`
	Backend   BackendConfig   `yaml:"backend"`
	Services  ServicesConfig  `yaml:"services"`
	Browser   BrowserConfig   `yaml:"browser"`
	Shell     ShellConfig     `yaml:"shell"`
}

// WorkspaceConfig locates the project tree relative to the installed
// launcher binary and selects the Python interpreter used for the backend.
type WorkspaceConfig struct {
	// RootRel is the path from the launcher's install directory to the
	// project root. The desktop bundle ships the binary two levels below
	// the checkout, hence the default "../..".
	RootRel string `yaml:"rootRel"`
	// VenvPython is the interpreter path relative to the project root that
	// wins when it exists.
	VenvPython string `yaml:"venvPython"`
	// Interpreter is the bare command used when no virtualenv is present.
	// It is resolved through PATH at spawn time.
	Interpreter string `yaml:"interpreter"`
}

// BackendConfig describes the Python backend process and its HTTP surface.
//
// Host and OpenHost are distinct on purpose: health probes and app-mode
// windows address the loopback IP directly, while the system browser gets
// the "localhost" spelling. Both reach the same server.
type BackendConfig struct {
	Host        string `yaml:"host"`
	OpenHost    string `yaml:"openHost"`
	Port        int    `yaml:"port"`
	HealthPath  string `yaml:"healthPath"`
	EntryScript string `yaml:"entryScript"`
	Mode        string `yaml:"mode"`
}

// URL returns the backend base URL used by probes and app-mode windows.
func (b BackendConfig) URL() string {
	return fmt.Sprintf("http://%s:%d", b.Host, b.Port)
}

// OpenURL returns the backend URL handed to the system default browser.
func (b BackendConfig) OpenURL() string {
	return fmt.Sprintf("http://%s:%d", b.OpenHost, b.Port)
}

// HealthURL returns the full health endpoint URL.
func (b BackendConfig) HealthURL() string {
	return b.URL() + b.HealthPath
}

// ServicesConfig describes the compose-managed auxiliary services the
// backend depends on.
type ServicesConfig struct {
	Command     string   `yaml:"command"`
	ComposeFile string   `yaml:"composeFile"`
	Names       []string `yaml:"names"`
}

// BrowserConfig controls how browser views are opened.
type BrowserConfig struct {
	// Candidates are absolute paths of app-mode capable browsers, tried in
	// order. Paths that do not exist are skipped.
	Candidates []string `yaml:"candidates"`
	// UserDataDir is the dedicated browser profile directory for the
	// app-mode window, kept apart from the user's regular profile.
	UserDataDir string `yaml:"userDataDir"`
	// FallbackOpener is the platform command that hands a URL to the
	// default browser when no candidate works.
	FallbackOpener []string `yaml:"fallbackOpener"`
}

// ShellConfig configures the hosting shell: the MCP tool listener and the
// dashboard's health polling cadence.
type ShellConfig struct {
	ToolServerHost        string `yaml:"toolServerHost"`
	ToolServerPort        int    `yaml:"toolServerPort"`
	HealthIntervalSeconds int    `yaml:"healthIntervalSeconds"`
	// HealthAttempts bounds the readiness poll performed after a combined
	// services-plus-backend start.
	HealthAttempts int `yaml:"healthAttempts"`
}

// ToolServerAddr returns the listen address for the MCP tool server.
func (s ShellConfig) ToolServerAddr() string {
	return fmt.Sprintf("%s:%d", s.ToolServerHost, s.ToolServerPort)
}

// HealthInterval returns the dashboard poll cadence as a duration.
func (s ShellConfig) HealthInterval() time.Duration {
	return time.Duration(s.HealthIntervalSeconds) * time.Second
}
