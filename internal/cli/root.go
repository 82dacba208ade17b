// Package cli defines the launcher command-line interface using cobra.
//
// The root command IS the launch command: double-clicking the executable runs
// it with no arguments, which changes into the game directory and starts the
// interpreter. Subcommands (check, init, update) are registered separately.
package cli

import (
	"errors"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/openroads/launcher/internal/log"
	"github.com/openroads/launcher/internal/upgrade"
	"github.com/openroads/launcher/internal/variant"
)

// Version, Commit, and Date are set via ldflags at build time.
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

var rootCmd = &cobra.Command{
	Use:   "launcher [flags]",
	Short: "Start OpenRoads with its bundled node runtime",
	Long: `launcher changes into the game directory (Node) and runs
"node.exe NodeMain.js <edition>", where the edition (classic or xmas) is
fixed when the launcher is built.

Any positional arguments, such as a file dropped onto the executable, are
ignored.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	// Shortcuts and file associations may add arguments we do not know
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	Args:               cobra.ArbitraryArgs,
	PersistentPreRunE:  setupSession,
	RunE:               runDefault,
}

func init() {
	rootCmd.Version = upgrade.VersionString(Version, Commit, Date, variant.Current())
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// --- Persistent flags (available to all subcommands) ---
	pf := rootCmd.PersistentFlags()
	pf.BoolP("quiet", "q", false, "Suppress all output (exit code only)")
	pf.CountP("debug", "d", "Debug output (-d)")
	pf.String("log-file", "", "Append launcher and game output to this file")
	pf.String("base", "", "Directory the game directory is relative to (default: working directory)")

	// --- Local flags (root/launch command only) ---
	f := rootCmd.Flags()
	f.String("policy", "", "Failure policy: report (default) or silent")
	f.Bool("dry-run", false, "Print what would be run without running it")

	// --- Subcommands ---
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(updateCmd)
}

// exitError carries a specific process exit status out of a command.
// A nil err means the status speaks for itself and nothing is logged.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return "exit status " + strconv.Itoa(e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// exitCode maps a command error to a process exit status and reports
// whether the error should be logged.
func exitCode(err error) (int, bool) {
	if err == nil {
		return 0, false
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code, ee.err != nil
	}
	return 1, true
}

// Execute runs the root command and exits with the launch status.
func Execute() {
	err := rootCmd.Execute()
	code, report := exitCode(err)
	if report {
		log.Error(err.Error())
	}
	closeSession()
	if code != 0 {
		os.Exit(code)
	}
}
