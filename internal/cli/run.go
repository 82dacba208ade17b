package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/openroads/launcher/internal/config"
	"github.com/openroads/launcher/internal/launch"
	"github.com/openroads/launcher/internal/log"
	"github.com/openroads/launcher/internal/variant"
)

// runDefault is the default action when no subcommand is given.
func runDefault(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()

	if len(args) > 0 {
		log.Debugf("Ignoring arguments: %v", args)
	}

	policy, err := launch.ParsePolicy(resolveStringFlag(f, "policy", current.cfg.FailurePolicy))
	if err != nil {
		return err
	}

	plan := buildPlan(f, current.cfg)

	if dryRun, _ := f.GetBool("dry-run"); dryRun {
		log.Raw(log.Style.Dim("cd ") + plan.Dir)
		log.Raw(plan.CommandLine())
		return nil
	}

	silent := policy == launch.PolicySilent
	if current.logErr != nil && !silent {
		log.Warnf("Log file unavailable, logging to console: %v", current.logErr)
	}

	// Invalid entries are dropped; only the report policy refuses to launch
	childEnv, err := config.ConfigEnvToArray(current.cfg)
	if err != nil {
		if !silent {
			return err
		}
		log.Debugf("Skipping environment entries: %v", err)
	}

	sys := &launch.OSSystem{Env: childEnv}
	if current.logFile != nil {
		sys.Stdout = current.logFile
		sys.Stderr = current.logFile
	}

	log.Debugf("Launching %s edition (policy %s)", plan.Mode, policy)
	res := launch.New(sys, policy).Run(cmd.Context(), plan)
	if res.Err != nil {
		return &exitError{code: res.ExitCode, err: res.Err}
	}
	if res.ExitCode != 0 {
		log.Warnf("Game exited with status %d", res.ExitCode)
		return &exitError{code: res.ExitCode}
	}
	return nil
}

// buildPlan combines the compiled-in edition, the --base flag and the
// config file layout into a launch plan.
func buildPlan(f *pflag.FlagSet, cfg config.LauncherConfig) launch.Plan {
	base, _ := f.GetString("base")
	return launch.NewPlan(launch.Options{
		Variant:     variant.Current(),
		Base:        base,
		Dir:         cfg.Dir,
		Interpreter: cfg.Interpreter,
		Script:      cfg.Script,
	})
}
