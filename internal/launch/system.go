package launch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/openroads/launcher/internal/paths"
	"github.com/openroads/launcher/internal/platform"
)

// System is the boundary between the launcher and the operating system.
type System interface {
	// Chdir changes the process working directory.
	Chdir(dir string) error
	// Run starts the plan's interpreter from the current working directory
	// and waits for it. A child that ran reports its exit status with a nil
	// error; err is non-nil only if the child could not be started.
	Run(ctx context.Context, p Plan) (exitCode int, err error)
}

// OSSystem is the real System.
type OSSystem struct {
	Stdout io.Writer // nil means os.Stdout
	Stderr io.Writer // nil means os.Stderr
	Env    []string  // KEY=VALUE pairs added to the inherited environment
}

// Chdir changes the working directory of the whole process.
func (s *OSSystem) Chdir(dir string) error {
	if err := paths.ValidateDir(dir); err != nil {
		return err
	}
	return os.Chdir(dir)
}

// Run resolves the interpreter, checks the script exists and runs the child
// to completion. It never times out on its own; only ctx can stop the child.
func (s *OSSystem) Run(ctx context.Context, p Plan) (int, error) {
	interp, err := platform.ResolveInterpreter(".", p.Interpreter)
	if err != nil {
		return -1, err
	}
	if _, err := paths.ValidateFile(p.Script); err != nil {
		return -1, err
	}

	cmd := exec.CommandContext(ctx, interp, p.Args()...)
	cmd.Stdout = s.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = s.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	if len(s.Env) > 0 {
		cmd.Env = append(os.Environ(), s.Env...)
	}
	platform.HideWindow(cmd)

	err = cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// Non-zero exit is a result, not a launch failure
		return childExitCode(exitErr), nil
	}
	return -1, fmt.Errorf("run %s: %w", interp, err)
}

// childExitCode returns the status of a child that did not exit cleanly.
// A child killed by a signal has no exit code; it gets 128+signal, as a
// shell reports it, or ExitChildKilled when the signal is unknown.
func childExitCode(exitErr *exec.ExitError) int {
	if code := exitErr.ExitCode(); code >= 0 {
		return code
	}
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return ExitChildKilled
}
