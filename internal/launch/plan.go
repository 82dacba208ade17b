// Package launch hands the game off to its script interpreter.
//
// Work is split in two: NewPlan computes what to run and where from plain
// values, and Launcher carries the plan out through a System, the only part
// that touches the filesystem or starts processes.
package launch

import (
	"path/filepath"
	"strings"

	"github.com/openroads/launcher/internal/variant"
)

const (
	// DefaultDir is the game directory, relative to the launcher's working
	// directory.
	DefaultDir = "Node"
	// DefaultInterpreter is the script runtime executable inside DefaultDir.
	DefaultInterpreter = "node.exe"
	// DefaultScript is the entry script passed to the interpreter.
	DefaultScript = "NodeMain.js"
)

// Options are the inputs to NewPlan. Empty fields take the defaults above.
type Options struct {
	Variant     variant.Variant
	Base        string // joined in front of a relative Dir; empty keeps Dir as-is
	Dir         string
	Interpreter string
	Script      string
}

// Plan is a fully resolved launch: change into Dir, then run
// Interpreter Script Mode.
type Plan struct {
	Dir         string
	Interpreter string
	Script      string
	Mode        variant.Variant
}

// NewPlan builds the plan for opts. It does no I/O.
func NewPlan(opts Options) Plan {
	p := Plan{
		Dir:         opts.Dir,
		Interpreter: opts.Interpreter,
		Script:      opts.Script,
		Mode:        opts.Variant,
	}
	if p.Dir == "" {
		p.Dir = DefaultDir
	}
	if p.Interpreter == "" {
		p.Interpreter = DefaultInterpreter
	}
	if p.Script == "" {
		p.Script = DefaultScript
	}
	if !p.Mode.Valid() {
		p.Mode = variant.Unset
	}
	if opts.Base != "" && !filepath.IsAbs(p.Dir) {
		p.Dir = filepath.Join(opts.Base, p.Dir)
	}
	return p
}

// Args returns the interpreter arguments: the script, then the mode label.
func (p Plan) Args() []string {
	return []string{p.Script, p.Mode.String()}
}

// Argv returns the interpreter followed by Args.
func (p Plan) Argv() []string {
	return append([]string{p.Interpreter}, p.Args()...)
}

// CommandLine returns Argv joined with single spaces, e.g.
// "node.exe NodeMain.js classic".
func (p Plan) CommandLine() string {
	return strings.Join(p.Argv(), " ")
}
