package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brebuilds/brebot/internal/shell"
)

// Surface adapts the running dashboard program into a shell.Surface so
// window navigation can re-point it. Register it under shell.MainWindow
// once the program exists and deregister it when the program exits.
type Surface struct {
	send func(tea.Msg)
}

var _ shell.Surface = (*Surface)(nil)

// NewSurface wraps a message sink, normally (*tea.Program).Send.
func NewSurface(send func(tea.Msg)) *Surface {
	return &Surface{send: send}
}

// Navigate implements shell.Surface by delivering the URL to the update
// loop. Delivery is asynchronous; the dashboard applies it on its next
// cycle.
func (s *Surface) Navigate(url string) error {
	if s.send == nil {
		return errors.New("surface is not attached to a running program")
	}
	s.send(navigateToMsg{url: url})
	return nil
}
