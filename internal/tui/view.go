package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/brebuilds/brebot/internal/health"
	"github.com/brebuilds/brebot/internal/reporting"
)

func (m model) View() string {
	if m.mode == modeQuitting {
		return statusStyle.Render("Shutting down dashboard...")
	}
	if !m.ready {
		return statusStyle.Render("Initializing...")
	}

	switch m.mode {
	case modeHelpOverlay:
		return m.renderHelpOverlay()
	case modeLogOverlay:
		return m.renderLogOverlay()
	}

	availableWidth := m.width - appStyle.GetHorizontalFrameSize()

	header := m.renderHeader(availableWidth)

	separator := lipgloss.NewStyle().Width(1).Render(" ")
	leftWidth := (availableWidth - 1) / 2
	rightWidth := availableWidth - 1 - leftWidth

	infoRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderWorkspacePane(leftWidth),
		separator,
		m.renderHealthPane(rightWidth),
	)

	launchRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderLaunchPanel(reporting.LabelBackend, leftWidth),
		separator,
		m.renderLaunchPanel(reporting.LabelServices, rightWidth),
	)

	sections := []string{
		header,
		lipgloss.NewStyle().MarginTop(1).Render(infoRow),
		lipgloss.NewStyle().MarginTop(1).Render(launchRow),
	}

	if m.height >= minHeightForMainLogView {
		used := 0
		for _, s := range sections {
			used += lipgloss.Height(s)
		}
		// Reserve room for status bar, help line, and margins.
		logHeight := m.height - used - 5
		if logHeight < 4 {
			logHeight = 4
		}
		sections = append(sections, lipgloss.NewStyle().MarginTop(1).Render(m.renderActivityLog(availableWidth, logHeight)))
	}

	sections = append(sections,
		lipgloss.NewStyle().MarginTop(1).Render(m.renderStatusBar(availableWidth)),
		m.help.View(m.keys),
	)

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m model) renderHeader(width int) string {
	title := iconText(IconRocket, fmt.Sprintf("Brebot Launcher %s", m.deps.Version))
	if m.busy() {
		title = m.spinner.View() + " " + title
	}
	return headerStyle.Copy().Width(width - headerStyle.GetHorizontalFrameSize()).Render(title)
}

func (m model) renderWorkspacePane(width int) string {
	contentWidth := width - workspacePaneStyle.GetHorizontalFrameSize()
	if contentWidth < 10 {
		contentWidth = 10
	}

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render(iconText(IconGear, "Workspace")))
	b.WriteString("\n")
	switch {
	case m.workspaceErr != nil:
		b.WriteString(errorStyle.Render(truncate(m.workspaceErr.Error(), contentWidth)))
	case m.workspaceRoot == "":
		b.WriteString(healthLoadingStyle.Render("Resolving project root..."))
	default:
		b.WriteString(truncate("Root: "+m.workspaceRoot, contentWidth))
		b.WriteString("\n")
		b.WriteString(truncate(iconText(IconSnake, m.interp.String()), contentWidth))
	}
	b.WriteString("\n")
	b.WriteString(truncate(iconText(IconLink, m.currentURL), contentWidth))

	return workspacePaneStyle.Copy().Width(contentWidth).Render(b.String())
}

func (m model) renderHealthPane(width int) string {
	contentWidth := width - panelStyle.GetHorizontalFrameSize()
	if contentWidth < 10 {
		contentWidth = 10
	}

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render(iconText(IconGlobe, "Backend Health")))
	b.WriteString("\n")

	switch {
	case m.probing:
		b.WriteString(healthLoadingStyle.Render(m.spinner.View() + " Probing..."))
	case m.lastHealth == nil:
		b.WriteString(healthLoadingStyle.Render("No probe yet"))
	default:
		r := *m.lastHealth
		switch r.Outcome {
		case health.OutcomeReachable:
			line := fmt.Sprintf("Healthy (HTTP %d, %s)", r.Status, r.Latency.Round(time.Millisecond))
			b.WriteString(healthGoodStyle.Render(iconText(IconCheck, line)))
		case health.OutcomeUnhealthyStatus:
			b.WriteString(healthWarnStyle.Render(iconText(IconWarning, fmt.Sprintf("Unhealthy (HTTP %d)", r.Status))))
		case health.OutcomeBodyReadFailed:
			b.WriteString(healthErrorStyle.Render(iconText(IconWarning, "Response unreadable")))
		default:
			b.WriteString(healthErrorStyle.Render(iconText(IconCross, "Unreachable")))
		}
	}
	b.WriteString("\n")
	b.WriteString(truncate("Target: "+m.probe.URL(), contentWidth))

	return panelStyle.Copy().Width(contentWidth).Render(b.String())
}

func (m model) renderLaunchPanel(label string, width int) string {
	snapshot := m.snapshots[label]

	style := panelStateIdleStyle
	stateStyle := stateMsgIdleStyle
	icon := IconHourglass
	switch snapshot.State {
	case reporting.StateLaunching:
		style = panelStateLaunchingStyle
		stateStyle = stateMsgLaunchingStyle
	case reporting.StateLaunched:
		style = panelStateLaunchedStyle
		stateStyle = stateMsgLaunchedStyle
		icon = IconCheck
	case reporting.StateFailed:
		style = panelStateFailedStyle
		stateStyle = stateMsgFailedStyle
		icon = IconCross
	}

	contentWidth := width - style.GetHorizontalFrameSize()
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := iconText(IconSnake, "Backend")
	if label == reporting.LabelServices {
		title = iconText(IconPackage, "Services")
	}

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render(title))
	b.WriteString("\n")

	stateLine := string(snapshot.State)
	if snapshot.State == reporting.StateLaunching {
		stateLine = m.spinner.View() + " " + stateLine
	} else {
		stateLine = iconText(icon, stateLine)
	}
	if snapshot.PID > 0 {
		stateLine += fmt.Sprintf(" (PID %d)", snapshot.PID)
	}
	b.WriteString(stateStyle.Render(truncate(stateLine, contentWidth)))

	if snapshot.Detail != "" {
		b.WriteString("\n")
		b.WriteString(truncate(snapshot.Detail, contentWidth))
	}
	if snapshot.Err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(truncate(snapshot.Err.Error(), contentWidth)))
	}
	if !snapshot.LastUpdated.IsZero() {
		b.WriteString("\n")
		b.WriteString(truncate("Updated "+snapshot.LastUpdated.Format("15:04:05"), contentWidth))
	}

	return style.Copy().Width(contentWidth).Render(b.String())
}

func (m model) renderActivityLog(width, height int) string {
	contentWidth := width - panelStyle.GetHorizontalFrameSize()
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := logPanelTitleStyle.Render(iconText(IconScroll, "Activity Log"))

	lines := m.logLines
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	styled := make([]string, 0, len(lines))
	for _, line := range lines {
		styled = append(styled, logLineStyleFor(line).Render(truncate(line, contentWidth)))
	}
	body := strings.Join(styled, "\n")
	if body == "" {
		body = logDebugStyle.Render("Nothing logged yet.")
	}

	return panelStyle.Copy().Width(contentWidth).Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}

func (m model) renderStatusBar(width int) string {
	bg := statusBarDefaultBg
	text := ""
	if m.statusMessage != "" {
		switch m.statusMessageType {
		case statusBarSuccess:
			bg = statusBarSuccessBg
		case statusBarError:
			bg = statusBarErrorBg
		case statusBarWarning:
			bg = statusBarWarningBg
		default:
			bg = statusBarInfoBg
		}
		text = m.statusMessage
	} else {
		left := fmt.Sprintf("Brebot Launcher %s", m.deps.Version)
		right := m.currentURL
		padding := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
		if padding > 0 {
			text = left + strings.Repeat(" ", padding) + right
		} else {
			text = left
		}
	}
	return statusBarBaseStyle.Copy().
		Background(bg).
		Width(width).
		Render(statusBarTextStyle.Render(truncate(text, width-2)))
}

func (m model) renderHelpOverlay() string {
	h := m.help
	h.ShowAll = true
	h.Width = m.width - helpOverlayStyle.GetHorizontalFrameSize() - 8

	content := lipgloss.JoinVertical(lipgloss.Left,
		helpTitleStyle.Render("Brebot Launcher Keys"),
		h.View(m.keys),
		"",
		statusStyle.Render("Press ? or esc to close."),
	)
	box := helpOverlayStyle.Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m model) renderLogOverlay() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		logPanelTitleStyle.Render(iconText(IconScroll, "Activity Log")),
		m.logViewport.View(),
		"",
		statusStyle.Render("L/esc close | y copy | ↑/↓ scroll"),
	)
	box := logOverlayStyle.Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// styledLogContent renders the full log for the overlay viewport.
func (m model) styledLogContent() string {
	styled := make([]string, 0, len(m.logLines))
	for _, line := range m.logLines {
		styled = append(styled, logLineStyleFor(line).Render(line))
	}
	return strings.Join(styled, "\n")
}

// logLineStyleFor picks a style from the level tag embedded in the line.
func logLineStyleFor(line string) lipgloss.Style {
	switch {
	case strings.Contains(line, "[ERROR]"):
		return logErrorStyle
	case strings.Contains(line, "[WARN]"):
		return logWarnStyle
	case strings.Contains(line, "[DEBUG]"):
		return logDebugStyle
	default:
		return logInfoStyle
	}
}
