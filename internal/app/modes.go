package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brebuilds/brebot/internal/shell"
	"github.com/brebuilds/brebot/internal/tui"
	"github.com/brebuilds/brebot/pkg/logging"
)

const toolServerStopTimeout = 5 * time.Second

// runHeadlessMode executes the non-interactive mode. The tool server runs in
// the foreground until interrupted.
func runHeadlessMode(ctx context.Context, cfg *Config, services *Services) error {
	logging.Info("CLI", "Running in no-TUI mode.")

	if cfg.NoTools {
		logging.Warn("CLI", "Tool server is disabled; nothing to run in no-TUI mode.")
		return nil
	}

	if err := services.ToolServer.Start(ctx); err != nil {
		logging.Error("CLI", err, "Failed to start tool server")
		return err
	}

	logging.Info("CLI", "Tool server listening on %s. Press Ctrl+C to stop and exit.", services.ToolServer.Endpoint())

	// Wait for interrupt signal to gracefully shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logging.Info("CLI", "\n--- Shutting down tool server ---")
	stopCtx, cancel := context.WithTimeout(context.Background(), toolServerStopTimeout)
	defer cancel()
	return services.ToolServer.Stop(stopCtx)
}

// runDashboardMode executes the interactive terminal dashboard.
func runDashboardMode(ctx context.Context, cfg *Config, services *Services) error {
	logging.Info("CLI", "Starting dashboard mode...")

	// Switch logging to channel-based delivery so records land in the
	// dashboard activity log instead of the alternate screen.
	logLevel := logging.LevelInfo
	if cfg.Debug {
		logLevel = logging.LevelDebug
	}
	logChan := logging.InitForTUI(logLevel)
	defer logging.CloseTUIChannel()

	dashboard := tui.NewModel(tui.Deps{
		Workspace: services.Workspace,
		Launcher:  services.Launcher,
		Browser:   services.Browser,
		Probe:     services.Probe,
		Windows:   services.Windows,
		Store:     services.Store,
		Config:    *cfg.Launcher,
		Version:   cfg.Version,
		LogCh:     logChan,
	})
	p := tea.NewProgram(dashboard, tea.WithAltScreen())

	// The dashboard doubles as the main window surface, so navigation
	// requests from tool clients reach it as program messages.
	services.Windows.Register(shell.MainWindow, tui.NewSurface(p.Send))
	defer services.Windows.Deregister(shell.MainWindow)

	if !cfg.NoTools {
		if err := services.ToolServer.Start(ctx); err != nil {
			logging.Error("ToolServer", err, "Failed to start tool server; continuing without tools")
		} else {
			defer func() {
				stopCtx, cancel := context.WithTimeout(context.Background(), toolServerStopTimeout)
				defer cancel()
				if err := services.ToolServer.Stop(stopCtx); err != nil {
					logging.Error("ToolServer", err, "Failed to stop tool server")
				}
			}()
		}
	}

	// Run the dashboard until the user exits
	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running dashboard program")
		return err
	}
	logging.Info("TUI-Lifecycle", "Dashboard exited.")

	return nil
}
