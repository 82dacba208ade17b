package paths

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	// "é" as e + combining acute (NFD) vs precomposed (NFC).
	nfd := "cafe\u0301"
	nfc := "caf\u00e9"

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"Node", "Node"},
		{filepath.Join("a", "..", "Node"), "Node"},
		{nfd, nfc},
	}

	for _, tt := range tests {
		result := Normalize(tt.input)
		if result != tt.expected {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestResolve(t *testing.T) {
	base := t.TempDir()

	t.Run("relative joins base", func(t *testing.T) {
		got, err := Resolve(base, "Node")
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		want := Normalize(filepath.Join(base, "Node"))
		if got != want {
			t.Errorf("Resolve(base, Node) = %q, want %q", got, want)
		}
	})

	t.Run("absolute ignores base", func(t *testing.T) {
		abs := filepath.Join(base, "elsewhere")
		got, err := Resolve("/unused", abs)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if got != Normalize(abs) {
			t.Errorf("Resolve(_, %q) = %q", abs, got)
		}
	})

	t.Run("empty base uses working directory", func(t *testing.T) {
		wd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		got, err := Resolve("", "Node")
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if got != Normalize(filepath.Join(wd, "Node")) {
			t.Errorf("Resolve(\"\", Node) = %q", got)
		}
	})
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := ExpandHome("~/x"); got != filepath.Join(home, "x") {
		t.Errorf("ExpandHome(~/x) = %q", got)
	}
	if got := ExpandHome("plain/x"); got != "plain/x" {
		t.Errorf("ExpandHome(plain/x) = %q, want unchanged", got)
	}
	if got := ExpandHome("~user/x"); got != "~user/x" {
		t.Errorf("ExpandHome(~user/x) = %q, want unchanged", got)
	}
}

func TestValidateDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := ValidateDir(dir); err != nil {
		t.Errorf("ValidateDir(dir) = %v, want nil", err)
	}

	err := ValidateDir(filepath.Join(dir, "missing"))
	if err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("ValidateDir(missing) = %v, want 'does not exist'", err)
	}

	err = ValidateDir(file)
	if err == nil || !strings.Contains(err.Error(), "must be a directory") {
		t.Errorf("ValidateDir(file) = %v, want 'must be a directory'", err)
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "NodeMain.js")
	if err := os.WriteFile(file, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	size, err := ValidateFile(file)
	if err != nil {
		t.Fatalf("ValidateFile: %v", err)
	}
	if size != 5 {
		t.Errorf("size = %d, want 5", size)
	}

	if _, err := ValidateFile(dir); err == nil {
		t.Error("ValidateFile(dir) should fail")
	}
	if _, err := ValidateFile(filepath.Join(dir, "nope.js")); err == nil {
		t.Error("ValidateFile(missing) should fail")
	}
}
