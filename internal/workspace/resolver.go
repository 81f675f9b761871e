// Package workspace locates the Brebot project tree and picks the Python
// interpreter the backend runs under.
//
// The launcher binary ships inside the desktop bundle at a fixed depth below
// the project checkout, so the root is always derived from the binary's own
// location rather than the working directory the user happened to start it
// from.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/brebuilds/brebot/internal/config"
)

// For mocking in tests
var osExecutable = os.Executable

// Resolver derives the project root and interpreter choice from the install
// location. All inputs are fixed at construction; resolution only consults
// the filesystem.
type Resolver struct {
	// InstallDir is the directory holding the launcher binary.
	InstallDir string
	// RootRel is the relative path from InstallDir to the project root.
	RootRel string
	// VenvPython is the venv interpreter path relative to the root.
	VenvPython string
	// Fallback is the interpreter command used when the venv is absent.
	Fallback string
}

// Interpreter is the outcome of interpreter selection. Path is either an
// absolute venv path or a bare command left to PATH lookup at spawn time.
type Interpreter struct {
	Path     string
	FromVenv bool
}

func (i Interpreter) String() string {
	if i.FromVenv {
		return i.Path + " (venv)"
	}
	return i.Path + " (system)"
}

// ResolutionError reports a failure to derive the project root. It is
// structural: retrying without fixing the install layout will not help.
type ResolutionError struct {
	InstallDir string
	RootRel    string
	Err        error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve project root from %s via %s: %v", e.InstallDir, e.RootRel, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// NewResolver builds a Resolver anchored at the running binary's directory.
func NewResolver(cfg config.WorkspaceConfig) (*Resolver, error) {
	exe, err := osExecutable()
	if err != nil {
		return nil, fmt.Errorf("failed to locate launcher executable: %w", err)
	}
	return &Resolver{
		InstallDir: filepath.Dir(exe),
		RootRel:    cfg.RootRel,
		VenvPython: cfg.VenvPython,
		Fallback:   cfg.Interpreter,
	}, nil
}

// Root returns the canonical absolute project root. The relative hop from
// the install directory is resolved against the real filesystem, so the
// result is free of symlinks and ".." segments and safe to use as a child
// process working directory.
func (r *Resolver) Root() (string, error) {
	joined := filepath.Join(r.InstallDir, r.RootRel)

	abs, err := filepath.Abs(joined)
	if err != nil {
		return "", &ResolutionError{InstallDir: r.InstallDir, RootRel: r.RootRel, Err: err}
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		// Covers the directory not existing at all, which means the
		// install layout does not match expectations.
		return "", &ResolutionError{InstallDir: r.InstallDir, RootRel: r.RootRel, Err: err}
	}
	return canonical, nil
}

// Interpreter picks the backend interpreter for the given project root. The
// project venv wins when its interpreter exists; any stat failure counts as
// absence and falls back to the system command. The choice never fails, it
// only records which alternative was taken.
func (r *Resolver) Interpreter(root string) Interpreter {
	venv := filepath.Join(root, r.VenvPython)
	if _, err := os.Stat(venv); err == nil {
		return Interpreter{Path: venv, FromVenv: true}
	}
	return Interpreter{Path: r.Fallback, FromVenv: false}
}
