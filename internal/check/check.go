// Package check inspects a game installation for the files the launcher
// hands off to.
package check

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/docker/go-units"

	"github.com/openroads/launcher/internal/launch"
	"github.com/openroads/launcher/internal/paths"
	"github.com/openroads/launcher/internal/platform"
	"github.com/openroads/launcher/internal/variant"
)

// Status is the outcome of a single check.
type Status int

const (
	StatusOK Status = iota
	StatusWarn
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusWarn:
		return "warn"
	default:
		return "fail"
	}
}

// Finding is one line of a report.
type Finding struct {
	Name    string
	Path    string
	Status  Status
	Message string
	Size    int64 // bytes, for files; -1 when not applicable
}

// SizeString returns Size in human-readable form, or "" if not applicable.
func (f Finding) SizeString() string {
	if f.Size < 0 {
		return ""
	}
	return units.HumanSize(float64(f.Size))
}

// Report collects findings in check order.
type Report struct {
	Findings []Finding
}

// Failed reports whether any finding failed.
func (r Report) Failed() bool {
	for _, f := range r.Findings {
		if f.Status == StatusFail {
			return true
		}
	}
	return false
}

// Inspect checks the layout p expects. p.Dir is resolved against the
// current working directory when relative. Inspect never changes directory.
func Inspect(p launch.Plan) Report {
	var r Report

	dir := p.Dir
	if abs, err := paths.Resolve("", dir); err == nil {
		dir = abs
	}

	if err := paths.ValidateDir(dir); err != nil {
		r.Findings = append(r.Findings, Finding{Name: "game directory", Path: dir, Status: StatusFail, Message: err.Error(), Size: -1})
		// Nothing below can exist without the directory
		return r
	}
	r.Findings = append(r.Findings, Finding{Name: "game directory", Path: dir, Status: StatusOK, Size: -1})

	r.Findings = append(r.Findings, inspectInterpreter(dir, p.Interpreter))
	r.Findings = append(r.Findings, inspectFile("script", filepath.Join(dir, p.Script)))
	r.Findings = append(r.Findings, inspectData(dir, p.Mode))
	r.Findings = append(r.Findings, inspectSettings(dir, p.Mode))

	return r
}

func inspectInterpreter(dir, name string) Finding {
	f := Finding{Name: "interpreter", Path: name, Size: -1}
	found, err := platform.ResolveInterpreter(dir, name)
	if err != nil {
		f.Status = StatusFail
		f.Message = err.Error()
		return f
	}
	f.Path = found
	if info, err := os.Stat(found); err == nil {
		f.Size = info.Size()
	}
	switch {
	case !platform.RunsWindowsBinaries() && strings.EqualFold(filepath.Ext(found), ".exe"):
		f.Status = StatusWarn
		f.Message = "Windows binary, " + platform.HostOSName() + " cannot run it; install node on PATH"
	case filepath.Dir(found) != dir:
		f.Status = StatusWarn
		f.Message = "not bundled with the game, using " + platform.HostOSName() + " PATH"
	}
	return f
}

func inspectFile(name, path string) Finding {
	size, err := paths.ValidateFile(path)
	if err != nil {
		return Finding{Name: name, Path: path, Status: StatusFail, Message: err.Error(), Size: -1}
	}
	return Finding{Name: name, Path: path, Status: StatusOK, Size: size}
}

// inspectData only warns: assets belong to the game script, and it reports
// its own loading errors.
func inspectData(dir string, mode variant.Variant) Finding {
	path := filepath.Join(dir, mode.DataDir())
	f := Finding{Name: "data (" + mode.String() + ")", Path: path, Size: -1}
	if err := paths.ValidateDir(path); err != nil {
		f.Status = StatusWarn
		f.Message = err.Error()
		return f
	}
	if mode == variant.Unset {
		f.Status = StatusWarn
		f.Message = "built without an edition tag; the game falls back to classic assets"
	}
	return f
}

// inspectSettings looks at the directory the game keeps settings in. It is
// created by the game on first save, so only a non-directory in its place
// is a problem.
func inspectSettings(dir string, mode variant.Variant) Finding {
	path := filepath.Join(dir, mode.SaveDir())
	f := Finding{Name: "settings (" + mode.SaveDir() + ")", Path: path, Size: -1}
	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		f.Message = "not created yet"
	case err != nil:
		f.Status = StatusWarn
		f.Message = err.Error()
	case !info.IsDir():
		f.Status = StatusWarn
		f.Message = "exists but is not a directory; settings cannot be saved"
	}
	return f
}
