package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the dashboard.
// It helps in managing and displaying help information.
type KeyMap struct {
	StartServices key.Binding
	StartBackend  key.Binding
	StartAll      key.Binding
	CheckHealth   key.Binding
	OpenBrowser   key.Binding
	OpenAppWindow key.Binding
	NavigateHome  key.Binding
	CopyURL       key.Binding
	ToggleLog     key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		StartServices: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start services"),
		),
		StartBackend: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "start backend"),
		),
		StartAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "start services + backend"),
		),
		CheckHealth: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "probe backend health"),
		),
		OpenBrowser: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open in browser"),
		),
		OpenAppWindow: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "open app window"),
		),
		NavigateHome: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to dashboard URL"),
		),
		CopyURL: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy backend URL"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

// FullHelp returns bindings for the help overlay.
// It's a slice of slices, where each inner slice is a column in the help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartServices, k.StartBackend, k.StartAll, k.CheckHealth}, // Launch column
		{k.OpenBrowser, k.OpenAppWindow, k.NavigateHome, k.CopyURL},  // Browser column
		{k.Help, k.ToggleLog, k.Quit},                                // UI/General column
	}
}

// ShortHelp returns a minimal set of bindings for the bottom help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartAll, k.OpenAppWindow, k.Help, k.Quit}
}
