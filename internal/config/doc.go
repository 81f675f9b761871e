// Package config provides configuration management for the Brebot desktop
// launcher.
//
// The launcher itself is deliberately free of hard-coded endpoints: every
// port, path, and command it touches is defined here and injected into the
// core packages at construction time.
//
// # Configuration Layers
//
// Configuration is loaded and merged in the following order, with later
// sources overriding earlier ones:
//
//  1. Default Configuration (embedded in binary)
//     - Matches the stock Brebot checkout and desktop bundle layout
//     - Ensures the launcher works out-of-the-box
//
//  2. User Configuration (~/.config/brebot/config.yaml)
//     - Per-user settings that apply to every checkout
//
//  3. Project Configuration (./.brebot/config.yaml)
//     - Checkout-local settings, shareable via version control
//
//  4. Environment (BREBOT_BACKEND_HOST, BREBOT_BACKEND_PORT,
//     BREBOT_COMPOSE_FILE, BREBOT_TOOL_PORT)
//     - Machine-local overrides; a .env file in the working directory is
//     loaded first so the launcher and the Python backend agree
//
// # Configuration Structure
//
// The configuration file uses YAML with the following sections:
//
//	workspace:
//	  rootRel: "../.."
//	  venvPython: "venv/bin/python3"
//	  interpreter: "python3"
//
//	backend:
//	  host: "127.0.0.1"
//	  openHost: "localhost"
//	  port: 8000
//	  healthPath: "/api/health"
//	  entryScript: "src/main.py"
//	  mode: "web"
//
//	services:
//	  command: "docker"
//	  composeFile: "docker/docker-compose.yml"
//	  names: ["chromadb", "redis"]
//
//	browser:
//	  candidates:
//	    - "/usr/bin/google-chrome"
//	  userDataDir: "/tmp/brebot-chrome"
//	  fallbackOpener: ["xdg-open"]
//
//	shell:
//	  toolServerHost: "localhost"
//	  toolServerPort: 8765
//	  healthIntervalSeconds: 30
//	  healthAttempts: 20
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("probing", cfg.Backend.HealthURL())
package config
