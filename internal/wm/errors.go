package wm

import (
	"errors"
	"fmt"
	"os/exec"
)

// EnumerationError means the window-list snapshot could not be retrieved.
type EnumerationError struct {
	Err error
}

func (e *EnumerationError) Error() string {
	return fmt.Sprintf("failed to list windows: %v", e.Err)
}

func (e *EnumerationError) Unwrap() error { return e.Err }

// ActivationStage tells which step of process activation failed.
type ActivationStage int

const (
	// StageLookup covers translating a pid into the backend's process reference
	StageLookup ActivationStage = iota
	// StageRaise covers the foreground request itself
	StageRaise
)

// ActivationError means the window server rejected either the pid lookup or
// the foreground request. Code carries the OS-provided error code.
type ActivationError struct {
	Stage ActivationStage
	Code  int
	Err   error
}

func (e *ActivationError) Error() string {
	stage := "raise"
	if e.Stage == StageLookup {
		stage = "lookup"
	}
	return fmt.Sprintf("activation failed at %s stage (code %d): %v", stage, e.Code, e.Err)
}

func (e *ActivationError) Unwrap() error { return e.Err }

// commandExitCode extracts the exit status from an exec error, -1 when the
// command never ran.
func commandExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
