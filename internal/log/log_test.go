package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func resetLogger() {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.level = LevelInfo
	cfg.prefix = false
	cfg.quiet = false
	cfg.plain = false
	cfg.out = os.Stdout
	cfg.errOut = os.Stderr
}

func TestLogLevels(t *testing.T) {
	defer resetLogger()

	SetLevel(LevelWarn)
	if cfg.level != LevelWarn {
		t.Errorf("level = %d, want %d", cfg.level, LevelWarn)
	}

	SetLevel(LevelDebug)
	if cfg.level != LevelDebug {
		t.Errorf("level = %d, want %d", cfg.level, LevelDebug)
	}
}

func TestQuietMode(t *testing.T) {
	defer resetLogger()

	var out bytes.Buffer
	SetOutput(&out, &out)

	EnableQuietMode()
	if !IsQuiet() {
		t.Error("IsQuiet() should be true after EnableQuietMode")
	}
	if cfg.level != LevelSilent {
		t.Errorf("level should be LevelSilent after EnableQuietMode, got %d", cfg.level)
	}

	// Debug level requested later must not undo quiet mode
	SetLevel(LevelDebug)
	Error("broken")
	if out.Len() != 0 {
		t.Errorf("quiet mode wrote %q", out.String())
	}
}

func TestCanOutput(t *testing.T) {
	defer resetLogger()

	SetLevel(LevelWarn)

	tests := []struct {
		name  string
		level LogLevel
		want  bool
	}{
		{"Info at Warn", LevelInfo, false},
		{"Warn at Warn", LevelWarn, true},
		{"Error at Warn", LevelError, true},
		{"Debug at Warn", LevelDebug, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := canOutput(tt.level)
			if got != tt.want {
				t.Errorf("canOutput(%d) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestCanOutputQuietMode(t *testing.T) {
	defer resetLogger()

	EnableQuietMode()
	if canOutput(LevelError) {
		t.Error("canOutput should return false in quiet mode")
	}
}

func TestFormatMessage(t *testing.T) {
	defer resetLogger()

	t.Run("prefix off", func(t *testing.T) {
		SetPrefix(false)
		got := formatMessage("hello")
		if got != "hello" {
			t.Errorf("formatMessage(%q) = %q, want %q", "hello", got, "hello")
		}
	})

	t.Run("prefix on", func(t *testing.T) {
		SetPrefix(true)
		got := formatMessage("hello")
		if got != "[launcher] hello" {
			t.Errorf("formatMessage(%q) = %q, want %q", "hello", got, "[launcher] hello")
		}
	})
}

func TestSetOutput(t *testing.T) {
	defer resetLogger()

	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	SetPlain(true)

	Info("starting")
	Warn("careful")
	Error("broken")
	Debug("hidden at info level")

	if got := out.String(); got != "starting\n" {
		t.Errorf("stdout = %q, want %q", got, "starting\n")
	}
	if got := errOut.String(); got != "careful\nbroken\n" {
		t.Errorf("stderr = %q, want %q", got, "careful\nbroken\n")
	}
}

func TestPlainModeHasNoEscapes(t *testing.T) {
	defer resetLogger()

	var out bytes.Buffer
	SetOutput(&out, &out)
	SetPlain(true)
	SetLevel(LevelDebug)

	Success("ok")
	Dim("dim")
	Bold("bold")
	SetPrefix(true)
	Warnf("w=%d", 1)
	Debugf("n=%d", 3)

	if strings.Contains(out.String(), "\x1b[") {
		t.Errorf("plain output contains ANSI escapes: %q", out.String())
	}
	if !strings.Contains(out.String(), "[launcher] w=1") {
		t.Errorf("prefixed warning missing from %q", out.String())
	}
	if got := Style.Cyan("x"); got != "x" {
		t.Errorf("Style.Cyan in plain mode = %q, want %q", got, "x")
	}
}
