// Package shell tracks the named UI surfaces the launcher can redirect.
//
// A surface is anything that can display a URL in place: the TUI dashboard
// registers itself under the well-known main name while it runs. Navigation
// strictly addresses one name; there is no fallback to another surface and
// no window creation on a miss.
package shell

import (
	"errors"
	"fmt"
	"sync"
)

// MainWindow is the name of the primary dashboard surface.
const MainWindow = "main"

// ErrWindowNotFound reports navigation to a name with no registered
// surface, for example when the shell runs headless.
var ErrWindowNotFound = errors.New("window not found")

// Surface is a named UI surface that can re-point itself at a URL.
type Surface interface {
	Navigate(url string) error
}

// NavigationError reports that a surface existed but failed to display the
// requested URL.
type NavigationError struct {
	Window string
	Err    error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigation failed on window %q: %v", e.Window, e.Err)
}

func (e *NavigationError) Unwrap() error {
	return e.Err
}

// Registry is a thread-safe name-to-surface table.
type Registry struct {
	mu       sync.RWMutex
	surfaces map[string]Surface
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		surfaces: make(map[string]Surface),
	}
}

// Register makes s addressable under name, replacing any previous surface
// with that name.
func (r *Registry) Register(name string, s Surface) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.surfaces[name] = s
}

// Deregister removes name from the registry. Removing an absent name is a
// no-op.
func (r *Registry) Deregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.surfaces, name)
}

// Names returns the currently registered surface names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.surfaces))
	for name := range r.surfaces {
		names = append(names, name)
	}
	return names
}

// Navigate asks the surface registered under name to display url. A missing
// name yields ErrWindowNotFound without any side effect; a surface failure
// is wrapped in NavigationError.
func (r *Registry) Navigate(name, url string) error {
	r.mu.RLock()
	surface, ok := r.surfaces[name]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %q", ErrWindowNotFound, name)
	}
	if err := surface.Navigate(url); err != nil {
		return &NavigationError{Window: name, Err: err}
	}
	return nil
}
