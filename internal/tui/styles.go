package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Constants for dashboard behavior and internal logic.
const (
	// healthUpdateInterval is the default cadence for the periodic backend
	// probe, used when the configured shell interval is unset.
	healthUpdateInterval = 30 * time.Second
	// launchSettleDelay is how long a combined start waits after spawning
	// the backend before the first readiness probe. Uvicorn needs a moment
	// to bind its socket; probing immediately reports a connection failure
	// that resolves itself a second later.
	launchSettleDelay = 2 * time.Second
	// statusMessageTTL is how long transient status bar messages stay
	// visible before reverting to the default bar content.
	statusMessageTTL = 3 * time.Second
	// minHeightForMainLogView defines the minimum terminal height (in lines)
	// required to show the activity log inline. Shorter terminals still get
	// the log through the overlay ('L').
	minHeightForMainLogView = 24
)

// Icons used across the panels. Ensure the terminal font covers these glyphs.
const (
	IconCheck     = "✔" // U+2714
	IconCross     = "❌" // U+274C
	IconWarning   = "⚠" // U+26A0 without VS16
	IconHourglass = "⏳" // U+23F3
	IconRocket    = "🚀" // U+1F680
	IconGlobe     = "🌐" // U+1F310
	IconSnake     = "🐍" // U+1F40D
	IconPackage   = "📦" // U+1F4E6
	IconGear      = "⚙" // U+2699 without VS16
	IconScroll    = "📜" // U+1F4DC
	IconLink      = "🔗" // U+1F517
	IconInfo      = "ℹ" // U+2139 without VS16
)

// Styles for the dashboard, defined with lipgloss. Every color is an
// AdaptiveColor so both light and dark terminals stay readable.
var (
	// appStyle defines the overall margin for the application view.
	appStyle = lipgloss.NewStyle().Margin(0, 0)

	// headerStyle is for the title bar at the top of the dashboard.
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
			Background(lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#303030"}).
			Padding(0, 2).
			MarginBottom(0)

	// panelStyle is the base style for the rectangular panels (workspace,
	// launches, health, activity log).
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	// panelTitleStyle renders panel captions.
	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"})

	// statusStyle is a general-purpose style for plain informative text.
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"})

	// Log level styles applied per line in the activity log panel and the
	// log overlay.
	logInfoStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#E0E0E0"})
	logWarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#A07000", Dark: "#FFD066"}).Bold(true)
	logErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B30000", Dark: "#FF6B6B"}).Bold(true)
	logDebugStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#606060", Dark: "#909090"}).Italic(true)

	// errorStyle is a general style for error messages.
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B30000", Dark: "#FF6B6B"})

	logPanelTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				MarginBottom(1).
				Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"})

	// --- Help Overlay Styles ---
	helpOverlayStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
				Background(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#222222"}).
				Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
				Padding(1, 2).
				Margin(2, 4)

	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
			MarginBottom(1).
			Align(lipgloss.Center)

	// --- Log Overlay Styles ---
	logOverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
			Background(lipgloss.AdaptiveColor{Light: "#F8F8F8", Dark: "#2A2A3A"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
			Padding(1, 2)

	// --- Launch Panel Styles based on State ---
	// Background and border of the backend/services panels track the last
	// recorded launch state for that label.
	panelStateIdleStyle      = panelStyle.Copy().BorderForeground(lipgloss.AdaptiveColor{Light: "#606060", Dark: "#909090"}).Background(lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#202020"})
	panelStateLaunchingStyle = panelStyle.Copy().Background(lipgloss.AdaptiveColor{Light: "#E0E8FF", Dark: "#2A384D"}).BorderForeground(lipgloss.AdaptiveColor{Light: "#5060A0", Dark: "#6A78AD"})
	panelStateLaunchedStyle  = panelStyle.Copy().Background(lipgloss.AdaptiveColor{Light: "#D4EFDF", Dark: "#1A3A1A"}).BorderForeground(lipgloss.AdaptiveColor{Light: "#307030", Dark: "#60A060"})
	panelStateFailedStyle    = panelStyle.Copy().Background(lipgloss.AdaptiveColor{Light: "#FADBD8", Dark: "#4D2A2A"}).BorderForeground(lipgloss.AdaptiveColor{Light: "#A04040", Dark: "#B07070"})

	// --- Text Styles for state lines within Launch Panels ---
	stateMsgIdleStyle      = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#404040", Dark: "#B0B0B0"})
	stateMsgLaunchingStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#000080", Dark: "#82B0FF"})
	stateMsgLaunchedStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#004400", Dark: "#8AE234"})
	stateMsgFailedStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#880000", Dark: "#FF8787"})

	// --- Workspace Pane Styles ---
	workspacePaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1).
				BorderForeground(lipgloss.AdaptiveColor{Light: "#606060", Dark: "#A0A0A0"}).
				Background(lipgloss.AdaptiveColor{Light: "#F8F8F8", Dark: "#2A2A3A"}).
				Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"})

	// --- Health Status Text Styles (used within the Health Pane) ---
	healthLoadingStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#303030", Dark: "#F0F0F0"}).Bold(true)
	healthGoodStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#005500", Dark: "#90FF90"}).Bold(true)
	healthWarnStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#703000", Dark: "#FFFF00"}).Bold(true)
	healthErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#990000", Dark: "#FF9090"}).Bold(true)

	// --- Status Bar Styles ---
	statusBarDefaultBg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#374151"}
	statusBarSuccessBg = lipgloss.AdaptiveColor{Light: "#10B981", Dark: "#059669"}
	statusBarErrorBg   = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#DC2626"}
	statusBarWarningBg = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#D97706"}
	statusBarInfoBg    = lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#2563EB"}

	statusBarTextStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#F0F0F0"}).
				Padding(0, 1)

	statusBarBaseStyle = lipgloss.NewStyle().Height(1)
)
