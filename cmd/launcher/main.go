// Command launcher starts the OpenRoads game through its bundled node runtime.
//
// Build one binary per edition; on Windows link it as a GUI program so no
// console window appears when it is double-clicked:
//
//	go build -tags classic -ldflags "-H=windowsgui" -o OpenRoads.exe ./cmd/launcher
//	go build -tags xmas -ldflags "-H=windowsgui" -o OpenRoadsXMas.exe ./cmd/launcher
package main

import (
	"github.com/openroads/launcher/internal/cli"
)

func main() {
	cli.Execute()
}
