package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openroads/launcher/internal/check"
	"github.com/openroads/launcher/internal/log"
	"github.com/openroads/launcher/internal/platform"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the game files the launcher hands off to",
	RunE: func(cmd *cobra.Command, args []string) error {
		plan := buildPlan(cmd.Flags(), current.cfg)

		log.Bold(fmt.Sprintf("OpenRoads launcher [%s] on %s", plan.Mode, platform.HostOSName()))
		log.Dim(plan.CommandLine())
		log.Newline()

		report := check.Inspect(plan)
		for _, f := range report.Findings {
			log.Raw(formatFinding(f))
		}
		log.Newline()

		if report.Failed() {
			return &exitError{code: 1, err: errors.New("game installation is incomplete")}
		}
		log.Success("Ready to launch")
		return nil
	},
}

// formatFinding renders one report line: status, name, path, then size or
// message.
func formatFinding(f check.Finding) string {
	var status string
	switch f.Status {
	case check.StatusOK:
		status = log.Style.Green("  ok  ")
	case check.StatusWarn:
		status = log.Style.Yellow(" warn ")
	default:
		status = log.Style.Red(" fail ")
	}

	line := status + " " + log.Style.Cyan(fmt.Sprintf("%-14s", f.Name)) + " " + f.Path
	if size := f.SizeString(); size != "" {
		line += log.Style.Dim("  " + size)
	}
	if f.Message != "" {
		line += log.Style.Dim("  (" + f.Message + ")")
	}
	return line
}
