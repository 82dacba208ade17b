// Package platform provides host platform detection and the platform-specific
// pieces of starting the game interpreter.
package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// HostPlatform represents the detected host operating system environment.
type HostPlatform string

const (
	// WindowsWSL is Windows Subsystem for Linux. Windows executables run
	// through interop, so node.exe is usable as-is.
	WindowsWSL HostPlatform = "windows-wsl"
	// WindowsNative is native Windows.
	WindowsNative HostPlatform = "windows-native"
	// MacOS is macOS.
	MacOS HostPlatform = "macos"
	// Linux is native Linux.
	Linux HostPlatform = "linux"
)

var (
	detectedPlatform HostPlatform
	detectOnce       sync.Once
)

// DetectHost returns the current host platform, caching the result.
//
// Detection logic:
//   - runtime.GOOS == "windows" -> WindowsNative
//   - runtime.GOOS == "darwin"  -> MacOS
//   - runtime.GOOS == "linux" + /proc/version contains "microsoft" -> WindowsWSL
//   - runtime.GOOS == "linux" (fallback) -> Linux
func DetectHost() HostPlatform {
	detectOnce.Do(func() {
		switch runtime.GOOS {
		case "windows":
			detectedPlatform = WindowsNative
		case "darwin":
			detectedPlatform = MacOS
		case "linux":
			if isWSL() {
				detectedPlatform = WindowsWSL
			} else {
				detectedPlatform = Linux
			}
		default:
			// Unknown OS, assume Linux-like behavior
			detectedPlatform = Linux
		}
	})
	return detectedPlatform
}

// isWSL checks if running inside WSL by reading /proc/version.
func isWSL() bool {
	// Check /proc/version for "microsoft" (covers WSL1 and WSL2)
	data, err := os.ReadFile("/proc/version")
	if err == nil && strings.Contains(strings.ToLower(string(data)), "microsoft") {
		return true
	}
	// Fallback: check WSL-specific environment variables
	if os.Getenv("WSL_DISTRO_NAME") != "" || os.Getenv("WSLENV") != "" {
		return true
	}
	return false
}

// HostOSName returns a human-readable OS name string.
func HostOSName() string {
	switch DetectHost() {
	case WindowsNative:
		return "Windows"
	case WindowsWSL:
		return "Windows (WSL)"
	case MacOS:
		return "macOS"
	case Linux:
		return "Linux"
	default:
		return "Unknown"
	}
}

// ErrInterpreterNotFound is returned when no candidate for the interpreter
// could be located.
var ErrInterpreterNotFound = errors.New("interpreter not found")

// ResolveInterpreter locates the interpreter executable named name, the way
// the Windows shell would when run from dir:
//
//  1. an absolute name is used as-is
//  2. dir/name, if it is a regular file
//  3. name on PATH
//
// On hosts that cannot run Windows binaries, steps 2-3 are first tried with
// a trailing ".exe" removed, so a native node beats a bundled node.exe.
//
// The returned path is absolute unless it came from PATH lookup.
func ResolveInterpreter(dir, name string) (string, error) {
	if filepath.IsAbs(name) {
		if isRegularFile(name) {
			return name, nil
		}
		return "", fmt.Errorf("%w: %s", ErrInterpreterNotFound, name)
	}

	for _, candidate := range interpreterCandidates(name) {
		local := filepath.Join(dir, candidate)
		if isRegularFile(local) {
			if abs, err := filepath.Abs(local); err == nil {
				return abs, nil
			}
			return local, nil
		}
		if found, err := exec.LookPath(candidate); err == nil {
			return found, nil
		}
	}
	return "", fmt.Errorf("%w: %s (searched %s and PATH)", ErrInterpreterNotFound, name, dir)
}

// interpreterCandidates lists the names tried for name on this host, in
// order of preference.
func interpreterCandidates(name string) []string {
	if !RunsWindowsBinaries() {
		if trimmed, ok := trimExeSuffix(name); ok {
			return []string{trimmed, name}
		}
	}
	return []string{name}
}

func trimExeSuffix(name string) (string, bool) {
	if len(name) > 4 && strings.EqualFold(name[len(name)-4:], ".exe") {
		return name[:len(name)-4], true
	}
	return "", false
}

// RunsWindowsBinaries reports whether .exe files can be executed directly.
func RunsWindowsBinaries() bool {
	p := DetectHost()
	return p == WindowsNative || p == WindowsWSL
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
