package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brebuilds/brebot/internal/health"
	"github.com/brebuilds/brebot/internal/reporting"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.sizeLogViewport()
		if !m.ready {
			m.ready = true
			if m.mode == modeInitializing {
				m.mode = modeMainDashboard
			}
		}
		return m, nil

	case spinner.TickMsg:
		// Only animate while something is in flight; dropping the tick
		// stops the ticker until the next busy phase re-arms it.
		if m.busy() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case workspaceInfoMsg:
		m.workspaceRoot = msg.root
		m.interp = msg.interp
		m.workspaceErr = msg.err
		if msg.err != nil {
			m.logError("Workspace resolution failed: %v", msg.err)
		} else {
			m.logInfo("Workspace root: %s (interpreter: %s)", msg.root, msg.interp)
		}
		return m, nil

	case launchResultMsg:
		return m.handleLaunchResult(msg)

	case healthResultMsg:
		return m.handleHealthResult(msg)

	case healthTickMsg:
		cmds = append(cmds, healthTickCmd(m.deps.Config.Shell.HealthInterval()))
		if !m.probing && m.mode != modeQuitting {
			m.probing = true
			cmds = append(cmds, probeHealthCmd(m.probe), m.spinner.Tick)
		}
		return m, tea.Batch(cmds...)

	case probeRequestMsg:
		if !m.probing {
			m.probing = true
			cmds = append(cmds, probeHealthCmd(m.probe), m.spinner.Tick)
		}
		return m, tea.Batch(cmds...)

	case browserOpenedMsg:
		if msg.err != nil {
			m.logError("Browser open (%s) failed for %s: %v", msg.mode, msg.url, msg.err)
			cmds = append(cmds, m.setStatus("Browser open failed", statusBarError))
		} else if msg.mode == "app" {
			m.logInfo("Opened app window for %s (PID %d).", msg.url, msg.launch.PID)
			cmds = append(cmds, m.setStatus("App window opened", statusBarSuccess))
		} else {
			m.logInfo("Handed %s to the default browser (PID %d).", msg.url, msg.launch.PID)
			cmds = append(cmds, m.setStatus("Opened in default browser", statusBarSuccess))
		}
		return m, tea.Batch(cmds...)

	case navigationResultMsg:
		if msg.err != nil {
			m.logError("Navigation to %s failed: %v", msg.url, msg.err)
			cmds = append(cmds, m.setStatus("Navigation failed", statusBarError))
		}
		return m, tea.Batch(cmds...)

	case navigateToMsg:
		m.currentURL = msg.url
		m.probe = health.New(strings.TrimRight(msg.url, "/")+m.deps.Config.Backend.HealthPath, nil)
		m.logInfo("Dashboard navigated to %s.", msg.url)
		cmds = append(cmds, m.setStatus("Navigated to "+msg.url, statusBarInfo))
		if !m.probing {
			m.probing = true
			cmds = append(cmds, probeHealthCmd(m.probe), m.spinner.Tick)
		}
		return m, tea.Batch(cmds...)

	case clipboardResultMsg:
		if msg.err != nil {
			m.logError("Clipboard write failed: %v", msg.err)
			cmds = append(cmds, m.setStatus("Copy failed", statusBarError))
		} else {
			cmds = append(cmds, m.setStatus("Copied to clipboard", statusBarSuccess))
		}
		return m, tea.Batch(cmds...)

	case logEntryMsg:
		m.appendLogLine(formatLogEntry(msg.entry))
		if m.mode == modeLogOverlay {
			m.logViewport.SetContent(m.styledLogContent())
			m.logViewport.GotoBottom()
		}
		return m, waitForLogEntry(m.deps.LogCh)

	case logChannelClosedMsg:
		// Shutdown path; nothing to re-arm.
		return m, nil

	case launchSnapshotMsg:
		m.snapshots[msg.snapshot.Label] = msg.snapshot
		return m, waitForSnapshot(m.sub)

	case snapshotFeedClosedMsg:
		return m, nil

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.statusMessage = ""
		}
		return m, nil
	}

	return m, tea.Batch(cmds...)
}

// handleKey routes key presses, giving overlays first claim on input.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeLogOverlay {
		switch msg.String() {
		case "L", "esc":
			m.mode = modeMainDashboard
			return m, nil
		case "y":
			return m, copyToClipboardCmd(strings.Join(m.logLines, "\n"))
		default:
			var vpCmd tea.Cmd
			m.logViewport, vpCmd = m.logViewport.Update(msg)
			return m, vpCmd
		}
	}

	if m.mode == modeHelpOverlay {
		switch msg.String() {
		case "?", "esc", "q":
			m.mode = modeMainDashboard
		}
		return m, nil
	}

	var cmds []tea.Cmd
	switch msg.String() {
	case "ctrl+c", "q":
		m.mode = modeQuitting
		if m.sub != nil {
			m.deps.Store.Unsubscribe(m.sub)
		}
		return m, tea.Quit

	case "s":
		m.launchesInFlight++
		m.snapshots[reporting.LabelServices] = launchingSnapshot(reporting.LabelServices)
		m.logInfo("Starting auxiliary services...")
		cmds = append(cmds, startServicesCmd(m.deps.Store, m.deps.Launcher), m.spinner.Tick)

	case "b":
		m.launchesInFlight++
		m.snapshots[reporting.LabelBackend] = launchingSnapshot(reporting.LabelBackend)
		m.logInfo("Starting backend...")
		cmds = append(cmds, startBackendCmd(m.deps.Store, m.deps.Launcher), m.spinner.Tick)

	case "a":
		if m.startAllPending {
			break
		}
		m.startAllPending = true
		m.launchesInFlight++
		m.snapshots[reporting.LabelServices] = launchingSnapshot(reporting.LabelServices)
		m.logInfo("Starting services, then the backend...")
		cmds = append(cmds, startServicesCmd(m.deps.Store, m.deps.Launcher), m.spinner.Tick)

	case "h":
		if !m.probing {
			m.probing = true
			m.logInfo("Probing backend health at %s...", m.probe.URL())
			cmds = append(cmds, probeHealthCmd(m.probe), m.spinner.Tick)
		}

	case "o":
		url := m.deps.Config.Backend.OpenURL()
		m.logInfo("Opening %s in the default browser...", url)
		cmds = append(cmds, openDefaultBrowserCmd(m.deps.Browser, url))

	case "w":
		url := m.deps.Config.Backend.URL()
		m.logInfo("Opening app window for %s...", url)
		cmds = append(cmds, openAppWindowCmd(m.deps.Browser, url))

	case "g":
		cmds = append(cmds, navigateHomeCmd(m.deps.Windows, m.deps.Config.Backend.URL()))

	case "y":
		cmds = append(cmds, copyToClipboardCmd(m.deps.Config.Backend.OpenURL()))

	case "L":
		m.mode = modeLogOverlay
		m.logViewport.SetContent(m.styledLogContent())
		m.logViewport.GotoBottom()

	case "?":
		m.mode = modeHelpOverlay
	}

	return m, tea.Batch(cmds...)
}

// handleLaunchResult settles in-flight accounting, logs the outcome, and
// drives the services-then-backend sequence for a combined start.
func (m model) handleLaunchResult(msg launchResultMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.launchesInFlight > 0 {
		m.launchesInFlight--
	}

	if msg.err != nil {
		m.logError("Failed to start %s: %v", msg.label, msg.err)
		cmds = append(cmds, m.setStatus(fmt.Sprintf("Start %s failed", msg.label), statusBarError))
		if msg.label == reporting.LabelServices && m.startAllPending {
			m.logWarn("Starting backend anyway; it may run degraded without the services.")
		}
	} else {
		m.logInfo("Launched %s (PID %d).", msg.label, msg.launch.PID)
		cmds = append(cmds, m.setStatus(fmt.Sprintf("%s launched (PID %d)", msg.label, msg.launch.PID), statusBarSuccess))
	}

	switch msg.label {
	case reporting.LabelServices:
		if m.startAllPending {
			m.launchesInFlight++
			m.snapshots[reporting.LabelBackend] = launchingSnapshot(reporting.LabelBackend)
			m.logInfo("Starting backend...")
			cmds = append(cmds, startBackendCmd(m.deps.Store, m.deps.Launcher), m.spinner.Tick)
		}
	case reporting.LabelBackend:
		if m.startAllPending {
			m.startAllPending = false
			if msg.err == nil {
				cmds = append(cmds, settleProbeCmd())
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// handleHealthResult stores the probe classification and surfaces it.
func (m model) handleHealthResult(msg healthResultMsg) (tea.Model, tea.Cmd) {
	m.probing = false
	result := msg.result
	m.lastHealth = &result

	var cmds []tea.Cmd
	switch result.Outcome {
	case health.OutcomeReachable:
		m.logInfo("Backend healthy: HTTP %d in %s.", result.Status, result.Latency.Round(time.Millisecond))
		cmds = append(cmds, m.setStatus("Backend healthy", statusBarSuccess))
	case health.OutcomeUnhealthyStatus:
		m.logWarn("Backend unhealthy: %v.", result.Err())
		cmds = append(cmds, m.setStatus(fmt.Sprintf("Backend unhealthy (HTTP %d)", result.Status), statusBarWarning))
	case health.OutcomeBodyReadFailed:
		m.logError("Backend answered but the response was lost: %v.", result.Err())
		cmds = append(cmds, m.setStatus("Health response unreadable", statusBarError))
	default:
		m.logError("Backend unreachable: %v.", result.Err())
		cmds = append(cmds, m.setStatus("Backend unreachable", statusBarError))
	}
	return m, tea.Batch(cmds...)
}

// setStatus installs a transient status bar message and returns the timer
// command that will clear it unless a newer message replaced it first.
func (m *model) setStatus(text string, kind messageType) tea.Cmd {
	m.statusMessage = text
	m.statusMessageType = kind
	m.statusSeq++
	return statusClearCmd(m.statusSeq)
}

// launchingSnapshot is the display-only pane state used while a spawn
// command is in flight; the durable record arrives from the store.
func launchingSnapshot(label string) reporting.Snapshot {
	return reporting.Snapshot{
		Label:       label,
		State:       reporting.StateLaunching,
		Detail:      "spawn in flight",
		LastUpdated: time.Now(),
	}
}

// sizeLogViewport fits the overlay viewport to the current terminal size.
func (m *model) sizeLogViewport() {
	w := m.width - logOverlayStyle.GetHorizontalFrameSize() - 4
	h := m.height - logOverlayStyle.GetVerticalFrameSize() - 6
	if w < 20 {
		w = 20
	}
	if h < 5 {
		h = 5
	}
	m.logViewport.Width = w
	m.logViewport.Height = h
	m.logViewport.SetContent(m.styledLogContent())
	m.logViewport.GotoBottom()
}
