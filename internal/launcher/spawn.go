package launcher

import (
	"os/exec"
)

// Spawn starts the process described by spec, detached from the launcher:
// no inherited stdio, no controlling terminal, no retained handle. A bare
// command in Path is resolved through PATH; failures of lookup and of
// process creation both surface as SpawnError at start time.
func Spawn(spec Spec) (Launch, error) {
	cmd := exec.Command(spec.Path, spec.Args...)
	if spec.Dir != "" {
		cmd.Dir = spec.Dir
	}

	// The child owns its own logging; the launcher never reads from it.
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	detach(cmd)

	if err := cmd.Start(); err != nil {
		return Launch{}, &SpawnError{Spec: spec, Err: err}
	}

	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		return Launch{}, &SpawnError{Spec: spec, Err: err}
	}

	return Launch{Spec: spec, PID: pid}, nil
}
