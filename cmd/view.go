package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/blocks/internal/domain"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the results of a previous run",
		Long:  "View the results saved by a previous run from the reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			return workflow.View(domain.ViewArgs{Reports: reportsDir(cfg)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
