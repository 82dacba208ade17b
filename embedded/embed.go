// Package embedded holds files compiled into the launcher binary.
package embedded

import _ "embed"

// SampleConfig is the annotated launcher.yaml written by "init".
//
//go:embed launcher.yaml
var SampleConfig []byte
