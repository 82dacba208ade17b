package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/openroads/launcher/internal/config"
	"github.com/openroads/launcher/internal/log"
	"github.com/openroads/launcher/internal/paths"
)

// session is the state shared by all commands for one invocation.
type session struct {
	exeDir  string
	cfg     config.LauncherConfig
	logFile *os.File
	// logErr is set when the configured log file could not be opened.
	// Output then stays on the console and the launch goes ahead.
	logErr error
}

var current session

// setupSession applies output flags, loads the config file and opens the
// log file. It runs before every command and never fails: nothing here may
// keep the game from starting.
func setupSession(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()

	// Apply quiet mode before anything else
	if quiet, _ := f.GetBool("quiet"); quiet {
		log.EnableQuietMode()
	}
	debug, _ := f.GetCount("debug")
	if debug > 0 && !log.IsQuiet() {
		log.SetLevel(log.LevelDebug)
	}

	exeDir, err := paths.ExecutableDir()
	if err != nil {
		log.Debugf("Config next to executable skipped: %v", err)
	}
	current.exeDir = exeDir
	current.cfg = config.LoadConfig(exeDir)

	if current.cfg.Debug > 0 && !log.IsQuiet() {
		log.SetLevel(log.LevelDebug)
	}

	current.logErr = nil
	if logFile := resolveStringFlag(f, "log-file", current.cfg.LogFile); logFile != "" {
		if err := openLogFile(logFile); err != nil {
			log.Debugf("Logging to console: %v", err)
			current.logErr = err
		}
	}
	return nil
}

// openLogFile redirects log output to path, relative to the executable
// directory, appending to existing content.
func openLogFile(path string) error {
	resolved, err := paths.Resolve(current.exeDir, path)
	if err != nil {
		return err
	}
	file, err := os.OpenFile(resolved, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file %q: %w", resolved, err)
	}
	current.logFile = file
	log.SetOutput(file, file)
	log.SetPlain(true)
	log.SetPrefix(true)
	log.Debugf("Logging to %s", resolved)
	return nil
}

// closeSession restores console output and closes the log file.
func closeSession() {
	current.logErr = nil
	if current.logFile == nil {
		return
	}
	log.SetOutput(nil, nil)
	log.SetPlain(false)
	log.SetPrefix(false)
	_ = current.logFile.Close()
	current.logFile = nil
}

// resolveStringFlag returns the CLI flag value if explicitly set by the user,
// otherwise the config file value if non-empty, otherwise the flag default.
func resolveStringFlag(f *pflag.FlagSet, name string, configValue string) string {
	if f.Changed(name) {
		val, _ := f.GetString(name)
		return val
	}
	if configValue != "" {
		return configValue
	}
	val, _ := f.GetString(name)
	return val
}
