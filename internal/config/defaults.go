package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// GetDefaultConfig returns the built-in configuration. It matches the stock
// Brebot checkout layout: the backend entry point at src/main.py, a
// virtualenv under venv/, and the auxiliary services defined in
// docker/docker-compose.yml.
func GetDefaultConfig() Config {
	return Config{
		Workspace: WorkspaceConfig{
			RootRel:     filepath.Join("..", ".."),
			VenvPython:  filepath.Join("venv", "bin", "python3"),
			Interpreter: "python3",
		},
		Backend: BackendConfig{
			Host:        "127.0.0.1",
			OpenHost:    "localhost",
			Port:        8000,
			HealthPath:  "/api/health",
			EntryScript: "src/main.py",
			Mode:        "web",
		},
		Services: ServicesConfig{
			Command:     "docker",
			ComposeFile: "docker/docker-compose.yml",
			Names:       []string{"chromadb", "redis"},
		},
		Browser: BrowserConfig{
			Candidates:     defaultBrowserCandidates(),
			UserDataDir:    filepath.Join(os.TempDir(), "brebot-chrome"),
			FallbackOpener: defaultFallbackOpener(),
		},
		Shell: ShellConfig{
			ToolServerHost:        "localhost",
			ToolServerPort:        8765,
			HealthIntervalSeconds: 30,
			HealthAttempts:        20,
		},
	}
}

// defaultBrowserCandidates lists the app-mode capable browser installs for
// the current platform, preferred first.
func defaultBrowserCandidates() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
			"/Applications/Chromium.app/Contents/MacOS/Chromium",
		}
	case "linux":
		return []string{
			"/usr/bin/google-chrome",
			"/usr/bin/chromium-browser",
		}
	default:
		// No known stable install paths; the default-browser fallback
		// carries the platform.
		return nil
	}
}

// defaultFallbackOpener is the command that asks the OS to open a URL with
// whatever browser the user has configured.
func defaultFallbackOpener() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	default:
		return []string{"xdg-open"}
	}
}
