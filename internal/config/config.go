// Package config provides configuration types and constants for the launcher.
package config

import (
	"fmt"
	"regexp"
	"slices"
)

// --- LauncherConfig ---

// LauncherConfig represents the launcher configuration file.
// All fields are optional (zero value = not set). CLI flags take precedence.
//
// There is deliberately no field for the game mode: it is fixed when the
// binary is built.
type LauncherConfig struct {
	// Failure handling: "report" or "silent"
	FailurePolicy string `yaml:"failurePolicy,omitempty"`

	// Layout, relative to the launcher's working directory
	Dir         string `yaml:"dir,omitempty"`
	Interpreter string `yaml:"interpreter,omitempty"`
	Script      string `yaml:"script,omitempty"`

	// Logging
	LogFile string `yaml:"logFile,omitempty"` // relative to the executable directory
	Debug   int    `yaml:"debug,omitempty"`

	// Extra environment variables for the interpreter
	Env map[string]string `yaml:"env,omitempty"`
}

// --- Naming ---

const (
	// GlobalConfigDir is the per-user config directory under $HOME.
	GlobalConfigDir = ".openroads"
	// ConfigFileName is the primary config file name, both globally and
	// next to the executable.
	ConfigFileName = "launcher.yaml"
)

// --- Env vars ---

// EnvVarKeyRe matches a valid POSIX environment variable name.
var EnvVarKeyRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ConfigEnvToArray converts the Env map to a sorted slice of "KEY=VALUE"
// strings. Entries with invalid keys are left out and reported in the
// returned error; the valid entries are returned either way.
func ConfigEnvToArray(cfg LauncherConfig) ([]string, error) {
	if cfg.Env == nil {
		return nil, nil
	}
	result := make([]string, 0, len(cfg.Env))
	var invalid []string
	for k, v := range cfg.Env {
		if !EnvVarKeyRe.MatchString(k) {
			invalid = append(invalid, k)
			continue
		}
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	slices.Sort(result)
	if len(invalid) > 0 {
		slices.Sort(invalid)
		return result, fmt.Errorf("invalid env var keys %q: must match [A-Za-z_][A-Za-z0-9_]*", invalid)
	}
	return result, nil
}
