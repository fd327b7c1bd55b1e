package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [patterns...]",
		Short: "List registered suites",
		Long:  "List the registered suites, optionally only those matching the given glob patterns.",
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.List(args)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
