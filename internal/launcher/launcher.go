// Package launcher starts the Brebot backend and its auxiliary services as
// detached child processes.
//
// Launches are fire-and-forget: a successful Spawn returns the PID as a
// plain value and keeps no handle, performs no wait, and captures no output.
// The processes are expected to outlive the launcher and manage their own
// logging. Nothing here prevents duplicate launches; invoking an operation
// twice starts two processes.
package launcher

import (
	"fmt"
	"strings"

	"github.com/brebuilds/brebot/internal/config"
	"github.com/brebuilds/brebot/internal/workspace"
	"github.com/brebuilds/brebot/pkg/logging"
)

// Spec is a fully resolved launch request: the executable, its argument
// vector, and the working directory. Specs are value types; building one has
// no side effects, which keeps argv construction testable apart from
// spawning.
type Spec struct {
	Path string
	Args []string
	Dir  string
}

func (s Spec) String() string {
	if len(s.Args) == 0 {
		return s.Path
	}
	return s.Path + " " + strings.Join(s.Args, " ")
}

// Launch records a successful spawn. PID is informational only; the child
// has already been released and cannot be waited on through this value.
type Launch struct {
	Spec Spec
	PID  int
}

// SpawnError reports that the operating system could not start a process
// for the given spec.
type SpawnError struct {
	Spec Spec
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Spec.Path, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Launcher builds and spawns the backend and service processes. All paths
// and argument pieces come from configuration at construction time.
type Launcher struct {
	workspace *workspace.Resolver
	backend   config.BackendConfig
	services  config.ServicesConfig
}

// New returns a Launcher for the given workspace and process configuration.
func New(ws *workspace.Resolver, backend config.BackendConfig, services config.ServicesConfig) *Launcher {
	return &Launcher{
		workspace: ws,
		backend:   backend,
		services:  services,
	}
}

// BackendSpec resolves the project root and interpreter and builds the
// backend launch spec: <interpreter> <entryScript> <mode>, run from the
// project root so the backend's relative imports and .env loading work.
func (l *Launcher) BackendSpec() (Spec, error) {
	root, err := l.workspace.Root()
	if err != nil {
		return Spec{}, err
	}
	interp := l.workspace.Interpreter(root)
	logging.Debug("Launcher", "Backend interpreter: %s", interp)
	return Spec{
		Path: interp.Path,
		Args: []string{l.backend.EntryScript, l.backend.Mode},
		Dir:  root,
	}, nil
}

// ServicesSpec builds the compose invocation that brings up the auxiliary
// services: <command> compose -f <composeFile> up -d <names...>, run from
// the project root so the compose file path resolves.
func (l *Launcher) ServicesSpec() (Spec, error) {
	root, err := l.workspace.Root()
	if err != nil {
		return Spec{}, err
	}
	args := []string{"compose", "-f", l.services.ComposeFile, "up", "-d"}
	args = append(args, l.services.Names...)
	return Spec{
		Path: l.services.Command,
		Args: args,
		Dir:  root,
	}, nil
}

// StartBackend launches the backend process. It returns as soon as the
// process is started; readiness is observed separately via the health
// probe.
func (l *Launcher) StartBackend() (Launch, error) {
	spec, err := l.BackendSpec()
	if err != nil {
		return Launch{}, err
	}
	logging.Info("Launcher", "Starting backend: %s", spec)
	return Spawn(spec)
}

// StartServices launches the compose command for the auxiliary services.
// Compose itself exits after bringing the containers up; the containers'
// lifetime belongs to the container runtime, not to us.
func (l *Launcher) StartServices() (Launch, error) {
	spec, err := l.ServicesSpec()
	if err != nil {
		return Launch{}, err
	}
	logging.Info("Launcher", "Starting services: %s", spec)
	return Spawn(spec)
}
