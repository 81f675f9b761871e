package toolserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/brebuilds/brebot/internal/reporting"
	"github.com/brebuilds/brebot/internal/shell"
)

// serverTools declares every launcher tool together with its handler.
func (s *Server) serverTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("launcher_start_backend",
				mcp.WithDescription("Start the Brebot backend as a detached process. Returns immediately with the PID; use launcher_check_health to observe readiness."),
			),
			Handler: s.handleStartBackend,
		},
		{
			Tool: mcp.NewTool("launcher_start_services",
				mcp.WithDescription("Start the auxiliary services (chromadb, redis) via docker compose."),
			),
			Handler: s.handleStartServices,
		},
		{
			Tool: mcp.NewTool("launcher_check_health",
				mcp.WithDescription("Probe the backend health endpoint once and report the classified result."),
			),
			Handler: s.handleCheckHealth,
		},
		{
			Tool: mcp.NewTool("launcher_open_browser",
				mcp.WithDescription("Open the backend UI in a browser."),
				mcp.WithString("mode",
					mcp.Description("How to open: 'default' uses the system browser, 'app' opens a standalone app-mode window"),
					mcp.Enum("default", "app"),
				),
			),
			Handler: s.handleOpenBrowser,
		},
		{
			Tool: mcp.NewTool("launcher_navigate_dashboard",
				mcp.WithDescription("Re-point the shell's main window at the backend dashboard."),
			),
			Handler: s.handleNavigateDashboard,
		},
		{
			Tool: mcp.NewTool("launcher_status",
				mcp.WithDescription("Report the recorded launch state of the backend and services as JSON."),
			),
			Handler: s.handleStatus,
		},
	}
}

func (s *Server) handleStartBackend(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	launch, err := s.deps.Launcher.StartBackend()
	if err != nil {
		s.deps.Store.Set(reporting.Update{Label: reporting.LabelBackend, State: reporting.StateFailed, Err: err})
		return mcp.NewToolResultError(fmt.Sprintf("Failed to start backend: %v", err)), nil
	}

	s.deps.Store.Set(reporting.Update{
		Label:  reporting.LabelBackend,
		State:  reporting.StateLaunched,
		PID:    launch.PID,
		Detail: launch.Spec.String(),
	})
	return mcp.NewToolResultText(fmt.Sprintf("Backend started (PID %d): %s", launch.PID, launch.Spec)), nil
}

func (s *Server) handleStartServices(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	launch, err := s.deps.Launcher.StartServices()
	if err != nil {
		s.deps.Store.Set(reporting.Update{Label: reporting.LabelServices, State: reporting.StateFailed, Err: err})
		return mcp.NewToolResultError(fmt.Sprintf("Failed to start services: %v", err)), nil
	}

	s.deps.Store.Set(reporting.Update{
		Label:  reporting.LabelServices,
		State:  reporting.StateLaunched,
		PID:    launch.PID,
		Detail: launch.Spec.String(),
	})
	return mcp.NewToolResultText(fmt.Sprintf("Services starting (compose PID %d): %s", launch.PID, launch.Spec)), nil
}

func (s *Server) handleCheckHealth(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := s.deps.Probe.Check(ctx)
	if !result.Healthy() {
		return mcp.NewToolResultError(result.Err().Error()), nil
	}
	return mcp.NewToolResultText(result.Body), nil
}

func (s *Server) handleOpenBrowser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mode := "default"
	if v, ok := req.GetArguments()["mode"].(string); ok && v != "" {
		mode = v
	}

	switch mode {
	case "app":
		launch, err := s.deps.Browser.OpenAppWindow(s.deps.AppURL)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to open app window: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Opened app window at %s (PID %d)", s.deps.AppURL, launch.PID)), nil
	case "default":
		launch, err := s.deps.Browser.OpenDefault(s.deps.OpenURL)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to open browser: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Opened %s in the default browser (PID %d)", s.deps.OpenURL, launch.PID)), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("Unknown mode %q, expected 'default' or 'app'", mode)), nil
	}
}

func (s *Server) handleNavigateDashboard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	err := s.deps.Windows.Navigate(shell.MainWindow, s.deps.AppURL)
	if err != nil {
		if errors.Is(err, shell.ErrWindowNotFound) {
			return mcp.NewToolResultError("Main window not found"), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("Navigation failed: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Main window navigated to %s", s.deps.AppURL)), nil
}

// statusEntry is the JSON shape of one snapshot in launcher_status output.
type statusEntry struct {
	State       string    `json:"state"`
	PID         int       `json:"pid,omitempty"`
	Detail      string    `json:"detail,omitempty"`
	Error       string    `json:"error,omitempty"`
	LastUpdated time.Time `json:"lastUpdated"`
}

func (s *Server) handleStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snapshots := s.deps.Store.All()

	entries := make(map[string]statusEntry, len(snapshots))
	for label, snapshot := range snapshots {
		entry := statusEntry{
			State:       string(snapshot.State),
			PID:         snapshot.PID,
			Detail:      snapshot.Detail,
			LastUpdated: snapshot.LastUpdated,
		}
		if snapshot.Err != nil {
			entry.Error = snapshot.Err.Error()
		}
		entries[label] = entry
	}

	resultJSON, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode status: %v", err)), nil
	}
	return mcp.NewToolResultText(string(resultJSON)), nil
}
