package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/openroads/launcher/embedded"
	"github.com/openroads/launcher/internal/log"
	"gopkg.in/yaml.v3"
)

// Config files looked up next to the executable, in order of precedence.
var localConfigFiles = []string{ConfigFileName, "launcher.yml", ".launcherrc"}

// globalConfigPath returns the global config file path (~/.openroads/launcher.yaml).
func globalConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir, ConfigFileName)
}

// LoadConfig loads and merges launcher configuration from the global config
// file and the files next to the executable.
//
// Precedence (later overrides earlier):
//  1. Global config (~/.openroads/launcher.yaml)
//  2. Local config (launcher.yaml, launcher.yml, .launcherrc in exeDir)
//
// CLI flags should be applied on top of the returned config by the caller.
func LoadConfig(exeDir string) LauncherConfig {
	globalCfg := loadGlobalConfig()
	localCfg := loadLocalConfig(exeDir)
	return mergeConfigs(globalCfg, localCfg)
}

// loadLocalConfig finds and loads the first config file in dir.
func loadLocalConfig(dir string) *LauncherConfig {
	if dir == "" {
		return nil
	}
	for _, filename := range localConfigFiles {
		configPath := filepath.Join(dir, filename)
		cfg := loadConfigFile(configPath)
		if cfg != nil {
			log.Debugf("Loaded config: %s", configPath)
			return cfg
		}
	}
	return nil
}

// loadGlobalConfig loads the global config file.
func loadGlobalConfig() *LauncherConfig {
	path := globalConfigPath()
	if path == "" {
		return nil
	}
	cfg := loadConfigFile(path)
	if cfg != nil {
		log.Debugf("Loaded global config: %s", path)
	}
	return cfg
}

// loadConfigFile reads and parses a single config file using yaml.v3.
// Returns nil if the file does not exist or cannot be parsed.
func loadConfigFile(path string) *LauncherConfig {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var cfg LauncherConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Debugf("Failed to parse config %s: %v", path, err)
		return nil
	}
	return &cfg
}

// mergeConfigs merges multiple configs with later values taking precedence.
// nil configs are skipped.
func mergeConfigs(configs ...*LauncherConfig) LauncherConfig {
	result := LauncherConfig{}

	for _, cfg := range configs {
		if cfg == nil {
			continue
		}

		if cfg.FailurePolicy != "" {
			result.FailurePolicy = cfg.FailurePolicy
		}
		if cfg.Dir != "" {
			result.Dir = cfg.Dir
		}
		if cfg.Interpreter != "" {
			result.Interpreter = cfg.Interpreter
		}
		if cfg.Script != "" {
			result.Script = cfg.Script
		}
		if cfg.LogFile != "" {
			result.LogFile = cfg.LogFile
		}
		if cfg.Debug > 0 {
			result.Debug = cfg.Debug
		}

		// Env vars: merge (later overrides same keys)
		if cfg.Env != nil {
			if result.Env == nil {
				result.Env = make(map[string]string)
			}
			for k, v := range cfg.Env {
				result.Env[k] = v
			}
		}
	}

	return result
}

// WriteSample writes the embedded sample config as dir/launcher.yaml and
// returns the path written. An existing file is only replaced when force is set.
func WriteSample(dir string, force bool) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("cannot determine the executable directory")
	}
	path := filepath.Join(dir, ConfigFileName)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := os.WriteFile(path, embedded.SampleConfig, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
