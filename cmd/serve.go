package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brebuilds/brebot/internal/app"
)

// noTUI controls whether to run the tool server headless (true) or behind
// the interactive dashboard (false).
var serveNoTUI bool

// noTools disables the MCP tool server entirely.
var serveNoTools bool

// debug enables verbose logging across the application.
var serveDebug bool

// serveCmd defines the serve command structure.
// This is the main command of brebot-desktop: it runs the dashboard and the
// MCP tool server that lets AI assistants drive the launcher.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Brebot launcher shell with an interactive dashboard or headless.",
	Long: `Runs the Brebot launcher shell. It can run in two modes:

1. Interactive dashboard mode (default):
   - Launches a terminal dashboard showing workspace, launch and health state.
   - Start the backend and services, probe health, and open browser windows
     from the keyboard.
   - The MCP tool server runs alongside so AI assistants can trigger the
     same operations; tool-driven launches show up in the dashboard panels.

2. Headless mode (using --no-tui flag):
   - Runs only the MCP tool server in the foreground until Ctrl+C.
   - Useful on machines where the dashboard is not wanted, e.g. when another
     frontend owns the terminal.

Configuration is loaded from ~/.config/brebot/config.yaml, then
.brebot/config.yaml in the working directory, then BREBOT_* environment
variables. Use --config to point at an explicit file instead.`,
	Args: cobra.NoArgs, // No arguments required
	RunE: runServe,
}

// runServe is the main entry point for the serve command
func runServe(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(serveNoTUI, serveNoTools, serveDebug, configPath, rootCmd.Version)

	// Create and initialize the application
	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	// Run the application
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

// init registers the serve command and its flags with the root command.
// This is called automatically when the package is imported.
func init() {
	rootCmd.AddCommand(serveCmd)

	// Register command flags
	serveCmd.Flags().BoolVar(&serveNoTUI, "no-tui", false, "Disable the dashboard and run the tool server headless")
	serveCmd.Flags().BoolVar(&serveNoTools, "no-tools", false, "Disable the MCP tool server")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable general debug logging")
}
