package tui

import (
	"github.com/brebuilds/brebot/internal/health"
	"github.com/brebuilds/brebot/internal/launcher"
	"github.com/brebuilds/brebot/internal/reporting"
	"github.com/brebuilds/brebot/internal/workspace"
	"github.com/brebuilds/brebot/pkg/logging"
)

// Messages delivered to the update loop. Every blocking call (spawns,
// probes, clipboard, channel reads) happens inside a tea.Cmd and comes back
// as one of these.

// launchResultMsg reports the outcome of a backend or services spawn.
type launchResultMsg struct {
	label  string
	launch launcher.Launch
	err    error
}

// healthResultMsg carries the classified outcome of one health probe.
type healthResultMsg struct {
	result health.Result
}

// healthTickMsg fires on the periodic health cadence. Handling it probes
// and re-arms the ticker.
type healthTickMsg struct{}

// probeRequestMsg asks for a single probe without touching the periodic
// ticker. Used for the delayed readiness check after a combined start.
type probeRequestMsg struct{}

// browserOpenedMsg reports the outcome of handing a URL to a browser.
// mode is "app" or "default".
type browserOpenedMsg struct {
	mode   string
	url    string
	launch launcher.Launch
	err    error
}

// navigateToMsg arrives from the main surface when something (the 'g' key,
// an MCP tool) navigates the dashboard to a URL.
type navigateToMsg struct {
	url string
}

// navigationResultMsg reports whether a Navigate call on the window
// registry was accepted.
type navigationResultMsg struct {
	url string
	err error
}

// clipboardResultMsg reports the outcome of a clipboard write.
type clipboardResultMsg struct {
	err error
}

// workspaceInfoMsg carries the resolved project root and interpreter for
// the workspace pane.
type workspaceInfoMsg struct {
	root   string
	interp workspace.Interpreter
	err    error
}

// logEntryMsg carries one entry from the logging channel.
type logEntryMsg struct {
	entry logging.LogEntry
}

// logChannelClosedMsg signals that the logging channel was closed and the
// reader should not be re-armed.
type logChannelClosedMsg struct{}

// launchSnapshotMsg carries a reporting store update, regardless of which
// surface (keys, CLI path, MCP tool) triggered the launch.
type launchSnapshotMsg struct {
	snapshot reporting.Snapshot
}

// snapshotFeedClosedMsg signals that the store subscription was closed.
type snapshotFeedClosedMsg struct{}

// statusClearMsg clears the transient status bar message if seq still
// matches the currently displayed one.
type statusClearMsg struct {
	seq int
}
