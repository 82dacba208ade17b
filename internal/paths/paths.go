// Package paths resolves the launcher's filesystem locations.
//
// Relative locations (the game directory, log file, config files) are
// resolved against a base directory, normally the process working
// directory or the directory holding the launcher executable.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// PathError represents a path validation or access error.
type PathError struct {
	Message string
}

func (e *PathError) Error() string {
	return e.Message
}

// ExecutableDir returns the directory containing the running executable,
// with symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("cannot locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return Normalize(filepath.Dir(exe)), nil
}

// Normalize returns a cleaned, NFC-normalized path.
// macOS hands out decomposed (NFD) names; comparisons and log output use NFC.
func Normalize(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Clean(norm.NFC.String(path))
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// Resolve returns path as an absolute, normalized path. Relative paths are
// joined onto base; an empty base means the current working directory.
func Resolve(base, path string) (string, error) {
	path = ExpandHome(path)
	if !filepath.IsAbs(path) {
		if base == "" {
			wd, err := os.Getwd()
			if err != nil {
				return "", &PathError{Message: fmt.Sprintf("Cannot determine working directory: %v", err)}
			}
			base = wd
		}
		path = filepath.Join(base, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &PathError{Message: fmt.Sprintf("Cannot resolve path: %s", path)}
	}
	return Normalize(abs), nil
}

// --- Path validation ---

// ValidateDir checks that path exists and is a directory.
func ValidateDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &PathError{Message: fmt.Sprintf("Directory does not exist: %s", path)}
		}
		return &PathError{Message: fmt.Sprintf("Cannot access path: %s: %v", path, err)}
	}
	if !info.IsDir() {
		return &PathError{Message: fmt.Sprintf("Path must be a directory: %s", path)}
	}
	return nil
}

// ValidateFile checks that path exists and is a regular file, returning its
// size in bytes.
func ValidateFile(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, &PathError{Message: fmt.Sprintf("File does not exist: %s", path)}
		}
		return 0, &PathError{Message: fmt.Sprintf("Cannot access path: %s: %v", path, err)}
	}
	if info.IsDir() {
		return 0, &PathError{Message: fmt.Sprintf("Path is not a file: %s", path)}
	}
	return info.Size(), nil
}
