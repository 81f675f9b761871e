package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brebuilds/brebot/internal/browser"
	"github.com/brebuilds/brebot/internal/config"
	"github.com/brebuilds/brebot/internal/health"
	"github.com/brebuilds/brebot/internal/launcher"
	"github.com/brebuilds/brebot/internal/reporting"
	"github.com/brebuilds/brebot/internal/shell"
	"github.com/brebuilds/brebot/internal/workspace"
)

// newTestModel wires a model against real collaborators. None of the
// returned commands are executed by these tests, so nothing is spawned.
func newTestModel(t *testing.T) model {
	t.Helper()

	cfg := config.GetDefaultConfig()
	ws, err := workspace.NewResolver(cfg.Workspace)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}

	deps := Deps{
		Workspace: ws,
		Launcher:  launcher.New(ws, cfg.Backend, cfg.Services),
		Browser:   browser.New(cfg.Browser),
		Probe:     health.New(cfg.Backend.HealthURL(), nil),
		Windows:   shell.NewRegistry(),
		Store:     reporting.NewStore(),
		Config:    cfg,
		Version:   "test",
	}
	return NewModel(deps)
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func asModel(t *testing.T, tm tea.Model) model {
	t.Helper()
	m, ok := tm.(model)
	if !ok {
		t.Fatalf("Update returned %T, want model", tm)
	}
	return m
}

func TestNewModelStartsInitializing(t *testing.T) {
	m := newTestModel(t)
	if m.mode != modeInitializing {
		t.Errorf("mode = %s, want %s", m.mode, modeInitializing)
	}
	if m.ready {
		t.Error("model should not be ready before the first window size message")
	}
	if !m.probing {
		t.Error("initial probe should be marked in flight")
	}
	for _, label := range []string{reporting.LabelBackend, reporting.LabelServices} {
		if got := m.snapshots[label].State; got != reporting.StateIdle {
			t.Errorf("snapshot %q state = %s, want %s", label, got, reporting.StateIdle)
		}
	}
}

func TestWindowSizeReadiesDashboard(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	mm := asModel(t, updated)
	if !mm.ready {
		t.Error("model should be ready after a window size message")
	}
	if mm.mode != modeMainDashboard {
		t.Errorf("mode = %s, want %s", mm.mode, modeMainDashboard)
	}
}

func TestQuitKeyClosesSubscription(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.Update(keyPress('q'))
	mm := asModel(t, updated)
	if mm.mode != modeQuitting {
		t.Errorf("mode = %s, want %s", mm.mode, modeQuitting)
	}
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	select {
	case _, ok := <-mm.sub.Channel:
		if ok {
			t.Error("subscription channel should be closed, got a value")
		}
	case <-time.After(time.Second):
		t.Error("subscription channel still open after quit")
	}
}

func TestStartAllSequencesServicesThenBackend(t *testing.T) {
	m := newTestModel(t)
	m.ready = true
	m.mode = modeMainDashboard

	updated, cmd := m.Update(keyPress('a'))
	mm := asModel(t, updated)
	if !mm.startAllPending {
		t.Fatal("start all should mark the sequence pending")
	}
	if mm.launchesInFlight != 1 {
		t.Errorf("launchesInFlight = %d, want 1", mm.launchesInFlight)
	}
	if got := mm.snapshots[reporting.LabelServices].State; got != reporting.StateLaunching {
		t.Errorf("services snapshot state = %s, want %s", got, reporting.StateLaunching)
	}
	if cmd == nil {
		t.Fatal("start all should return a command")
	}

	// Services spawn succeeded; the backend launch should chain.
	updated, cmd = mm.Update(launchResultMsg{
		label:  reporting.LabelServices,
		launch: launcher.Launch{PID: 101},
	})
	mm = asModel(t, updated)
	if !mm.startAllPending {
		t.Error("sequence should still be pending until the backend result")
	}
	if mm.launchesInFlight != 1 {
		t.Errorf("launchesInFlight = %d, want 1 while the backend starts", mm.launchesInFlight)
	}
	if got := mm.snapshots[reporting.LabelBackend].State; got != reporting.StateLaunching {
		t.Errorf("backend snapshot state = %s, want %s", got, reporting.StateLaunching)
	}
	if cmd == nil {
		t.Fatal("services result should chain a backend command")
	}

	updated, _ = mm.Update(launchResultMsg{
		label:  reporting.LabelBackend,
		launch: launcher.Launch{PID: 102},
	})
	mm = asModel(t, updated)
	if mm.startAllPending {
		t.Error("sequence should settle after the backend result")
	}
	if mm.launchesInFlight != 0 {
		t.Errorf("launchesInFlight = %d, want 0", mm.launchesInFlight)
	}
}

func TestStartAllChainsBackendEvenWhenServicesFail(t *testing.T) {
	m := newTestModel(t)
	m.ready = true
	m.mode = modeMainDashboard

	updated, _ := m.Update(keyPress('a'))
	mm := asModel(t, updated)

	updated, cmd := mm.Update(launchResultMsg{
		label: reporting.LabelServices,
		err:   errors.New("compose not found"),
	})
	mm = asModel(t, updated)
	if !mm.startAllPending {
		t.Error("sequence should continue to the backend after a services failure")
	}
	if got := mm.snapshots[reporting.LabelBackend].State; got != reporting.StateLaunching {
		t.Errorf("backend snapshot state = %s, want %s", got, reporting.StateLaunching)
	}
	if cmd == nil {
		t.Fatal("a backend command should still be issued")
	}
}

func TestHealthResultUpdatesPaneAndStatus(t *testing.T) {
	m := newTestModel(t)
	m.probing = true

	updated, _ := m.Update(healthResultMsg{result: health.Result{
		Outcome: health.OutcomeReachable,
		Status:  200,
		Body:    `{"status":"ok"}`,
		Latency: 12 * time.Millisecond,
	}})
	mm := asModel(t, updated)
	if mm.probing {
		t.Error("probe should be settled")
	}
	if mm.lastHealth == nil || !mm.lastHealth.Healthy() {
		t.Fatalf("lastHealth = %+v, want healthy result", mm.lastHealth)
	}
	if mm.statusMessage != "Backend healthy" {
		t.Errorf("statusMessage = %q, want %q", mm.statusMessage, "Backend healthy")
	}
	if mm.statusMessageType != statusBarSuccess {
		t.Errorf("statusMessageType = %d, want success", mm.statusMessageType)
	}
}

func TestHealthTickProbesAndRearms(t *testing.T) {
	m := newTestModel(t)
	m.probing = false

	updated, cmd := m.Update(healthTickMsg{})
	mm := asModel(t, updated)
	if !mm.probing {
		t.Error("tick should start a probe when none is in flight")
	}
	if cmd == nil {
		t.Fatal("tick should return the re-armed timer")
	}
}

func TestNavigateRepointsHealthTarget(t *testing.T) {
	m := newTestModel(t)
	m.probing = false

	updated, _ := m.Update(navigateToMsg{url: "http://127.0.0.1:9000"})
	mm := asModel(t, updated)
	if mm.currentURL != "http://127.0.0.1:9000" {
		t.Errorf("currentURL = %q, want the navigated URL", mm.currentURL)
	}
	want := "http://127.0.0.1:9000" + mm.deps.Config.Backend.HealthPath
	if got := mm.probe.URL(); got != want {
		t.Errorf("probe URL = %q, want %q", got, want)
	}
	if !mm.probing {
		t.Error("navigation should trigger an immediate probe")
	}
}

func TestLaunchSnapshotUpdatesPanel(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(launchSnapshotMsg{snapshot: reporting.Snapshot{
		Label: reporting.LabelBackend,
		State: reporting.StateLaunched,
		PID:   4242,
	}})
	mm := asModel(t, updated)
	if got := mm.snapshots[reporting.LabelBackend].PID; got != 4242 {
		t.Errorf("backend snapshot PID = %d, want 4242", got)
	}
	if cmd == nil {
		t.Error("snapshot handling should re-arm the subscription reader")
	}
}

func TestActivityLogIsTrimmed(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < maxLogLines+50; i++ {
		m.appendLogLine(fmt.Sprintf("line %d", i))
	}
	if len(m.logLines) != maxLogLines {
		t.Errorf("log length = %d, want %d", len(m.logLines), maxLogLines)
	}
	if m.logLines[0] != "line 50" {
		t.Errorf("oldest retained line = %q, want %q", m.logLines[0], "line 50")
	}
}

func TestStatusClearRespectsSequence(t *testing.T) {
	m := newTestModel(t)
	m.setStatus("first", statusBarInfo)
	stale := m.statusSeq
	m.setStatus("second", statusBarInfo)

	updated, _ := m.Update(statusClearMsg{seq: stale})
	mm := asModel(t, updated)
	if mm.statusMessage != "second" {
		t.Errorf("stale clear removed %q", mm.statusMessage)
	}

	updated, _ = mm.Update(statusClearMsg{seq: mm.statusSeq})
	mm = asModel(t, updated)
	if mm.statusMessage != "" {
		t.Errorf("statusMessage = %q, want cleared", mm.statusMessage)
	}
}

func TestOverlayToggles(t *testing.T) {
	m := newTestModel(t)
	m.ready = true
	m.mode = modeMainDashboard

	updated, _ := m.Update(keyPress('?'))
	mm := asModel(t, updated)
	if mm.mode != modeHelpOverlay {
		t.Errorf("mode = %s, want %s", mm.mode, modeHelpOverlay)
	}
	updated, _ = mm.Update(tea.KeyMsg{Type: tea.KeyEsc})
	mm = asModel(t, updated)
	if mm.mode != modeMainDashboard {
		t.Errorf("mode after esc = %s, want %s", mm.mode, modeMainDashboard)
	}

	updated, _ = mm.Update(keyPress('L'))
	mm = asModel(t, updated)
	if mm.mode != modeLogOverlay {
		t.Errorf("mode = %s, want %s", mm.mode, modeLogOverlay)
	}
	updated, _ = mm.Update(keyPress('L'))
	mm = asModel(t, updated)
	if mm.mode != modeMainDashboard {
		t.Errorf("mode after second L = %s, want %s", mm.mode, modeMainDashboard)
	}
}

func TestViewRendersAllPanels(t *testing.T) {
	m := newTestModel(t)
	m.ready = true
	m.mode = modeMainDashboard
	m.width = 120
	m.height = 40
	m.workspaceRoot = "/srv/brebot"
	m.interp = workspace.Interpreter{Path: "/srv/brebot/venv/bin/python3", FromVenv: true}

	out := m.View()
	for _, want := range []string{"Workspace", "Backend Health", "Backend", "Services", "Activity Log"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
