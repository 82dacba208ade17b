package launch

import (
	"context"
	"fmt"

	"github.com/openroads/launcher/internal/log"
)

// Result is the outcome of a launch.
type Result struct {
	// ExitCode is the status the launcher process should exit with.
	ExitCode int
	// ChildExitCode is the interpreter's exit status; valid when Spawned.
	ChildExitCode int
	// Spawned reports whether the interpreter was started.
	Spawned bool
	// Err is the failure that determined ExitCode. Always nil under
	// PolicySilent.
	Err error
}

// Launcher carries out plans through a System.
type Launcher struct {
	sys    System
	policy FailurePolicy
}

// New returns a Launcher using sys and policy. An unknown policy is treated
// as DefaultPolicy.
func New(sys System, policy FailurePolicy) *Launcher {
	if policy != PolicySilent && policy != PolicyReport {
		policy = DefaultPolicy
	}
	return &Launcher{sys: sys, policy: policy}
}

// Policy returns the failure policy in effect.
func (l *Launcher) Policy() FailurePolicy {
	return l.policy
}

// Run changes into p.Dir, runs the interpreter and blocks until it returns.
// The calling process's working directory stays changed afterwards.
func (l *Launcher) Run(ctx context.Context, p Plan) Result {
	silent := l.policy == PolicySilent

	log.Debugf("Changing directory to %s", p.Dir)
	if err := l.sys.Chdir(p.Dir); err != nil {
		stepErr := &StepError{Step: StepChdir, Path: p.Dir, Err: fmt.Errorf("%w: %w", ErrDirNotFound, err)}
		if !silent {
			return Result{ExitCode: ExitDirFailed, Err: stepErr}
		}
		log.Debug(stepErr.Error())
	}

	log.Debugf("Running %s", p.CommandLine())
	code, err := l.sys.Run(ctx, p)
	if err != nil {
		stepErr := &StepError{Step: StepSpawn, Path: p.Interpreter, Err: fmt.Errorf("%w: %w", ErrSpawn, err)}
		if !silent {
			return Result{ExitCode: ExitSpawnFailed, Err: stepErr}
		}
		log.Debug(stepErr.Error())
		return Result{ExitCode: ExitOK}
	}

	log.Debugf("Interpreter exited with status %d", code)
	if silent {
		return Result{ExitCode: ExitOK, ChildExitCode: code, Spawned: true}
	}
	return Result{ExitCode: code, ChildExitCode: code, Spawned: true}
}
