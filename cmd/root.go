// Package cmd provides the root command and CLI setup for blocks test programs.
package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/mouse-blink/blocks/internal/adapter"
	"github.com/mouse-blink/blocks/internal/controller"
	"github.com/mouse-blink/blocks/internal/domain"
	m "github.com/mouse-blink/blocks/internal/model"

	_ "github.com/tliron/commonlog/simple"
)

var registry = domain.NewSuiteRegistry()
var configFS = afero.NewOsFs()
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	workflow = domain.NewWorkflow(
		registry,
		adapter.NewLocalResultStore(),
		ui,
		nil,
	)
}

var configFlag string
var verboseFlag int
var reportsOutputDirFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blocks",
		Short: "Run Describe-block test suites",
		Long: `blocks runs the test suites registered by this program.

Each suite is a tree of Describe and Context blocks containing It units.
Blocks can be selected by name and tag:
  run --name "Add*"          only blocks whose name matches the glob
  run --tag slow             only blocks tagged slow
  run --exclude-tag wip      skip blocks tagged wip`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			commonlog.Configure(verboseFlag-1, nil)
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "path to a blocks.toml config file")
	cmd.PersistentFlags().CountVarP(&verboseFlag, "verbose", "v", "increase log verbosity (repeatable)")
	cmd.PersistentFlags().StringVarP(&reportsOutputDirFlag, "reports", "r", "", "directory results are saved to and viewed from")

	return cmd
}

// Register adds a suite to the program's registry.
func Register(name string, fn domain.SuiteFunc) error {
	return registry.Register(name, fn)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func loadConfig() (adapter.Config, error) {
	return adapter.LoadConfig(configFS, configFlag)
}

func reportsDir(cfg adapter.Config) m.Path {
	if reportsOutputDirFlag != "" {
		return m.Path(reportsOutputDirFlag)
	}

	return m.Path(cfg.Reports)
}
