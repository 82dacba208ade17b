package launch

import (
	"errors"
	"fmt"
)

var (
	// ErrDirNotFound means the game directory could not be entered.
	ErrDirNotFound = errors.New("directory not found")
	// ErrSpawn means the interpreter could not be started.
	ErrSpawn = errors.New("cannot start interpreter")
)

// Launcher exit statuses for failures under PolicyReport. A child that ran
// contributes its own status instead.
const (
	ExitOK          = 0
	ExitDirFailed   = 3
	ExitSpawnFailed = 4
	// ExitChildKilled is passed through for a child that ended without an
	// exit status of its own.
	ExitChildKilled = 5
)

// Step names a stage of the launch.
type Step string

const (
	StepChdir Step = "chdir"
	StepSpawn Step = "spawn"
)

// StepError records which step failed and on what path.
type StepError struct {
	Step Step
	Path string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Step, e.Path, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
