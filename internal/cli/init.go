package cli

import (
	"github.com/spf13/cobra"

	"github.com/openroads/launcher/internal/config"
	"github.com/openroads/launcher/internal/log"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample launcher.yaml next to the executable",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		path, err := config.WriteSample(current.exeDir, force)
		if err != nil {
			return err
		}
		log.Success("Wrote " + path)
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}
