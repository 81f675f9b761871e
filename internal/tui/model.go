package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/brebuilds/brebot/internal/browser"
	"github.com/brebuilds/brebot/internal/config"
	"github.com/brebuilds/brebot/internal/health"
	"github.com/brebuilds/brebot/internal/launcher"
	"github.com/brebuilds/brebot/internal/reporting"
	"github.com/brebuilds/brebot/internal/shell"
	"github.com/brebuilds/brebot/internal/workspace"
	"github.com/brebuilds/brebot/pkg/logging"
)

// appMode defines the overall state or view of the dashboard.
// NOTE: The ordering MUST stay in-sync with the String() method.
type appMode int

const (
	// modeInitializing is the initial state before the first window size
	// message arrives.
	modeInitializing appMode = iota
	// modeMainDashboard is the primary view with all panels.
	modeMainDashboard
	// modeHelpOverlay is when the help screen is visible.
	modeHelpOverlay
	// modeLogOverlay is when the full-screen log viewer is active.
	modeLogOverlay
	// modeQuitting is when the dashboard is shutting down.
	modeQuitting
)

// String makes appMode satisfy the fmt.Stringer interface.
func (a appMode) String() string {
	switch a {
	case modeInitializing:
		return "Initializing"
	case modeMainDashboard:
		return "MainDashboard"
	case modeHelpOverlay:
		return "HelpOverlay"
	case modeLogOverlay:
		return "LogOverlay"
	case modeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// messageType selects the status bar styling for a transient message.
type messageType int

const (
	statusBarInfo messageType = iota
	statusBarSuccess
	statusBarError
	statusBarWarning
)

// maxLogLines caps the activity log so it cannot grow without bound.
const maxLogLines = 200

// Deps are the shell facilities the dashboard drives. Everything is
// required except LogCh, which may be nil when log streaming is off.
type Deps struct {
	Workspace *workspace.Resolver
	Launcher  *launcher.Launcher
	Browser   *browser.Opener
	Probe     *health.Probe
	Windows   *shell.Registry
	Store     *reporting.Store
	Config    config.Config
	Version   string
	LogCh     <-chan logging.LogEntry
}

// model represents the state of the entire dashboard.
type model struct {
	deps Deps

	// --- Workspace pane ---
	workspaceRoot string
	interp        workspace.Interpreter
	workspaceErr  error

	// --- Launch panes ---
	snapshots map[string]reporting.Snapshot
	sub       *reporting.Subscription

	// --- Health pane ---
	probe      *health.Probe
	lastHealth *health.Result
	probing    bool

	// --- Navigation ---
	currentURL string

	// --- Launch sequencing ---
	launchesInFlight int
	startAllPending  bool

	// --- UI state ---
	mode          appMode
	width, height int
	ready         bool

	logLines    []string
	logViewport viewport.Model

	statusMessage     string
	statusMessageType messageType
	statusSeq         int

	spinner spinner.Model
	help    help.Model
	keys    KeyMap
}

// NewModel builds the dashboard model. The first health probe is scheduled
// by Init, so the health pane starts in the probing state.
func NewModel(deps Deps) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0000CC", Dark: "#58A6FF"})

	snapshots := deps.Store.All()
	for _, label := range []string{reporting.LabelBackend, reporting.LabelServices} {
		if _, ok := snapshots[label]; !ok {
			snapshots[label] = reporting.Snapshot{Label: label, State: reporting.StateIdle}
		}
	}

	return model{
		deps:        deps,
		snapshots:   snapshots,
		sub:         deps.Store.Subscribe(),
		probe:       deps.Probe,
		probing:     true,
		currentURL:  deps.Config.Backend.URL(),
		mode:        modeInitializing,
		logViewport: viewport.New(0, 0),
		spinner:     sp,
		help:        help.New(),
		keys:        DefaultKeyMap(),
	}
}

// busy reports whether any launch or probe is in flight, which is when the
// spinner animates.
func (m model) busy() bool {
	return m.launchesInFlight > 0 || m.probing
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		workspaceInfoCmd(m.deps.Workspace),
		probeHealthCmd(m.probe),
		healthTickCmd(m.deps.Config.Shell.HealthInterval()),
		m.spinner.Tick,
	}
	if m.deps.LogCh != nil {
		cmds = append(cmds, waitForLogEntry(m.deps.LogCh))
	}
	if m.sub != nil {
		cmds = append(cmds, waitForSnapshot(m.sub))
	}
	return tea.Batch(cmds...)
}
