package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brebuilds/brebot/internal/browser"
	"github.com/brebuilds/brebot/internal/health"
	"github.com/brebuilds/brebot/internal/launcher"
	"github.com/brebuilds/brebot/internal/reporting"
	"github.com/brebuilds/brebot/internal/shell"
	"github.com/brebuilds/brebot/internal/workspace"
	"github.com/brebuilds/brebot/pkg/logging"
)

// The commands in this file wrap every blocking shell operation in a
// tea.Cmd so the update loop never stalls. Launch commands write the
// reporting store themselves; the resulting snapshots come back through
// the store subscription and keep the panels in sync with launches
// triggered from any surface, not just the keyboard.

// workspaceInfoCmd resolves the project root and interpreter for the
// workspace pane.
func workspaceInfoCmd(ws *workspace.Resolver) tea.Cmd {
	return func() tea.Msg {
		root, err := ws.Root()
		if err != nil {
			return workspaceInfoMsg{err: err}
		}
		return workspaceInfoMsg{root: root, interp: ws.Interpreter(root)}
	}
}

// startBackendCmd spawns the backend and records the outcome.
func startBackendCmd(store *reporting.Store, l *launcher.Launcher) tea.Cmd {
	return func() tea.Msg {
		launch, err := l.StartBackend()
		if err != nil {
			store.Set(reporting.Update{Label: reporting.LabelBackend, State: reporting.StateFailed, Err: err})
			return launchResultMsg{label: reporting.LabelBackend, err: err}
		}
		store.Set(reporting.Update{
			Label:  reporting.LabelBackend,
			State:  reporting.StateLaunched,
			PID:    launch.PID,
			Detail: launch.Spec.String(),
		})
		return launchResultMsg{label: reporting.LabelBackend, launch: launch}
	}
}

// startServicesCmd spawns the compose services and records the outcome.
func startServicesCmd(store *reporting.Store, l *launcher.Launcher) tea.Cmd {
	return func() tea.Msg {
		launch, err := l.StartServices()
		if err != nil {
			store.Set(reporting.Update{Label: reporting.LabelServices, State: reporting.StateFailed, Err: err})
			return launchResultMsg{label: reporting.LabelServices, err: err}
		}
		store.Set(reporting.Update{
			Label:  reporting.LabelServices,
			State:  reporting.StateLaunched,
			PID:    launch.PID,
			Detail: launch.Spec.String(),
		})
		return launchResultMsg{label: reporting.LabelServices, launch: launch}
	}
}

// probeHealthCmd performs one health probe against the current target.
func probeHealthCmd(p *health.Probe) tea.Cmd {
	return func() tea.Msg {
		return healthResultMsg{result: p.Check(context.Background())}
	}
}

// openAppWindowCmd opens a dedicated app-mode window for url.
func openAppWindowCmd(o *browser.Opener, url string) tea.Cmd {
	return func() tea.Msg {
		launch, err := o.OpenAppWindow(url)
		return browserOpenedMsg{mode: "app", url: url, launch: launch, err: err}
	}
}

// openDefaultBrowserCmd hands url to the system default browser.
func openDefaultBrowserCmd(o *browser.Opener, url string) tea.Cmd {
	return func() tea.Msg {
		launch, err := o.OpenDefault(url)
		return browserOpenedMsg{mode: "default", url: url, launch: launch, err: err}
	}
}

// navigateHomeCmd asks the window registry to point the main surface at
// url. The running dashboard is that surface, so the effect loops back in
// as a navigateToMsg.
func navigateHomeCmd(windows *shell.Registry, url string) tea.Cmd {
	return func() tea.Msg {
		return navigationResultMsg{url: url, err: windows.Navigate(shell.MainWindow, url)}
	}
}

// copyToClipboardCmd writes text to the system clipboard.
func copyToClipboardCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardResultMsg{err: clipboard.WriteAll(text)}
	}
}

// waitForLogEntry blocks on the logging channel for the next entry. The
// handler re-arms it after every delivery.
func waitForLogEntry(ch <-chan logging.LogEntry) tea.Cmd {
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return logChannelClosedMsg{}
		}
		return logEntryMsg{entry: entry}
	}
}

// waitForSnapshot blocks on the reporting subscription for the next launch
// snapshot. The handler re-arms it after every delivery.
func waitForSnapshot(sub *reporting.Subscription) tea.Cmd {
	return func() tea.Msg {
		snapshot, ok := <-sub.Channel
		if !ok {
			return snapshotFeedClosedMsg{}
		}
		return launchSnapshotMsg{snapshot: snapshot}
	}
}

// healthTickCmd arms the periodic health probe timer. A non-positive
// interval falls back to the default cadence.
func healthTickCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		interval = healthUpdateInterval
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return healthTickMsg{}
	})
}

// settleProbeCmd schedules the post-launch readiness probe.
func settleProbeCmd() tea.Cmd {
	return tea.Tick(launchSettleDelay, func(time.Time) tea.Msg {
		return probeRequestMsg{}
	})
}

// statusClearCmd schedules expiry of the transient status bar message with
// the given sequence number.
func statusClearCmd(seq int) tea.Cmd {
	return tea.Tick(statusMessageTTL, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}
