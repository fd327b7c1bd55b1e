package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/blocks/internal/domain"
	m "github.com/mouse-blink/blocks/internal/model"
)

var runNameFlags []string
var runTagFlags []string
var runExcludeTagFlags []string
var runSuiteFlags []string
var runRootFlag string
var runParallelFlag int

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run registered suites",
		Long: `Run the registered suites, each in its own session.

Flags override the values from blocks.toml. Suites run one at a time unless
--parallel is given; blocks inside a suite always run in order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			args := domain.RunArgs{
				Root:     m.Path(cfg.Root),
				Reports:  reportsDir(cfg),
				Parallel: cfg.Parallel,
				Suites:   cfg.Suites,
				Filter:   cfg.Filter,
			}

			flags := cmd.Flags()
			if flags.Changed("name") {
				args.Filter.Names = runNameFlags
			}

			if flags.Changed("tag") {
				args.Filter.Tags = runTagFlags
			}

			if flags.Changed("exclude-tag") {
				args.Filter.ExcludeTags = runExcludeTagFlags
			}

			if flags.Changed("suite") {
				args.Suites = runSuiteFlags
			}

			if flags.Changed("root") {
				args.Root = m.Path(runRootFlag)
			}

			if flags.Changed("parallel") {
				args.Parallel = runParallelFlag
			}

			return workflow.Run(cmd.Context(), args)
		},
	}
	cmd.Flags().StringArrayVarP(&runNameFlags, "name", "n", nil, "run only blocks whose name matches the glob (can be repeated)")
	cmd.Flags().StringArrayVarP(&runTagFlags, "tag", "t", nil, "run only blocks carrying one of these tags (can be repeated)")
	cmd.Flags().StringArrayVarP(&runExcludeTagFlags, "exclude-tag", "x", nil, "skip blocks carrying any of these tags (can be repeated)")
	cmd.Flags().StringArrayVarP(&runSuiteFlags, "suite", "s", nil, "run only suites whose name matches the glob (can be repeated)")
	cmd.Flags().StringVar(&runRootFlag, "root", "", "directory test drives are created under (default: system temp dir)")
	cmd.Flags().IntVarP(&runParallelFlag, "parallel", "p", 1, "number of suites to run at once")

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
