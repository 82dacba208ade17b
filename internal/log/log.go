// Package log provides the launcher's logging abstraction.
//
// All launcher output MUST go through this package.
// Uses lipgloss for terminal styling, stderr for warn/error, stdout for everything else.
// Output can be redirected to a file with SetOutput, in which case styling
// should be turned off with SetPlain.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// LogLevel controls the verbosity of log output.
type LogLevel int

const (
	// LevelDebug is the most verbose level.
	LevelDebug LogLevel = iota
	// LevelInfo is the default level.
	LevelInfo
	// LevelWarn shows only warnings and errors.
	LevelWarn
	// LevelError shows only errors.
	LevelError
	// LevelSilent suppresses all output.
	LevelSilent
)

// config holds the global logger configuration.
type config struct {
	mu     sync.RWMutex
	level  LogLevel
	prefix bool
	quiet  bool
	plain  bool
	out    io.Writer
	errOut io.Writer
}

var cfg = &config{
	level:  LevelInfo,
	out:    os.Stdout,
	errOut: os.Stderr,
}

// --- Lipgloss styles (package-level, initialized once) ---

var (
	dimStyle    = lipgloss.NewStyle().Faint(true)
	boldStyle   = lipgloss.NewStyle().Bold(true)
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cyanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// --- Configuration functions ---

// SetLevel sets the minimum log level. Messages below this level are suppressed.
func SetLevel(level LogLevel) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.level = level
}

// SetPrefix enables or disables the [launcher] prefix on all messages.
// Used when launcher lines share a file with game output.
func SetPrefix(enabled bool) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.prefix = enabled
}

// SetPlain disables lipgloss styling. Used when writing to a file.
func SetPlain(enabled bool) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.plain = enabled
}

// SetOutput redirects regular and error output. A nil writer restores the
// corresponding standard stream.
func SetOutput(out, errOut io.Writer) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	cfg.out = out
	cfg.errOut = errOut
}

// EnableQuietMode suppresses ALL output including errors.
// Only exit codes communicate success/failure.
func EnableQuietMode() {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.quiet = true
	cfg.level = LevelSilent
}

// IsQuiet returns whether quiet mode is enabled.
func IsQuiet() bool {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return cfg.quiet
}

// --- Internal helpers ---

// canOutput checks if output is allowed at the given level.
func canOutput(level LogLevel) bool {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return !cfg.quiet && cfg.level <= level
}

// formatMessage applies the optional [launcher] prefix.
func formatMessage(message string) string {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	if cfg.prefix {
		return "[launcher] " + message
	}
	return message
}

// render applies style unless plain mode is on.
func render(style lipgloss.Style, message string) string {
	cfg.mu.RLock()
	plain := cfg.plain
	cfg.mu.RUnlock()
	if plain {
		return message
	}
	return style.Render(message)
}

func writeOut(message string) {
	cfg.mu.RLock()
	w := cfg.out
	cfg.mu.RUnlock()
	fmt.Fprintln(w, message)
}

func writeErr(message string) {
	cfg.mu.RLock()
	w := cfg.errOut
	cfg.mu.RUnlock()
	fmt.Fprintln(w, message)
}

// --- Log output functions ---

// Debug outputs a debug-level message (dim styling).
// Only shown when level <= LevelDebug.
func Debug(message string) {
	if canOutput(LevelDebug) {
		writeOut(render(dimStyle, formatMessage(message)))
	}
}

// Debugf outputs a formatted debug-level message.
func Debugf(format string, args ...any) {
	if canOutput(LevelDebug) {
		Debug(fmt.Sprintf(format, args...))
	}
}

// Info outputs an info-level message (no styling).
func Info(message string) {
	if canOutput(LevelInfo) {
		writeOut(formatMessage(message))
	}
}

// Infof outputs a formatted info-level message.
func Infof(format string, args ...any) {
	if canOutput(LevelInfo) {
		Info(fmt.Sprintf(format, args...))
	}
}

// Warn outputs a warning message (yellow, to stderr).
func Warn(message string) {
	if canOutput(LevelWarn) {
		writeErr(render(yellowStyle, formatMessage(message)))
	}
}

// Warnf outputs a formatted warning message.
func Warnf(format string, args ...any) {
	if canOutput(LevelWarn) {
		Warn(fmt.Sprintf(format, args...))
	}
}

// Error outputs an error message (red, to stderr).
func Error(message string) {
	if canOutput(LevelError) {
		writeErr(render(redStyle, formatMessage(message)))
	}
}

// Success outputs a success message (green, info level).
func Success(message string) {
	if canOutput(LevelInfo) {
		writeOut(render(greenStyle, formatMessage(message)))
	}
}

// Dim outputs a subtle/dim message (info level).
func Dim(message string) {
	if canOutput(LevelInfo) {
		writeOut(render(dimStyle, formatMessage(message)))
	}
}

// Bold outputs a bold/emphasized message (info level).
func Bold(message string) {
	if canOutput(LevelInfo) {
		writeOut(render(boldStyle, formatMessage(message)))
	}
}

// Raw outputs a message without any styling (for pre-styled content).
// Respects log level (info).
func Raw(message string) {
	if canOutput(LevelInfo) {
		writeOut(message)
	}
}

// Newline outputs an empty line. Respects log level (info).
func Newline() {
	if canOutput(LevelInfo) {
		writeOut("")
	}
}

// --- Style builders (return styled strings without printing) ---

// Style provides string styling functions that return styled strings
// without printing them. Use with Raw() for complex compositions.
var Style = struct {
	Dim    func(string) string
	Red    func(string) string
	Green  func(string) string
	Yellow func(string) string
	Cyan   func(string) string
}{
	Dim:    func(s string) string { return render(dimStyle, s) },
	Red:    func(s string) string { return render(redStyle, s) },
	Green:  func(s string) string { return render(greenStyle, s) },
	Yellow: func(s string) string { return render(yellowStyle, s) },
	Cyan:   func(s string) string { return render(cyanStyle, s) },
}
