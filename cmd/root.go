// Package cmd provides the root command and CLI setup for covmap.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"covmap.dev/pkg/covmap/internal/adapter"
	"covmap.dev/pkg/covmap/internal/controller"
	"covmap.dev/pkg/covmap/internal/domain"
	m "covmap.dev/pkg/covmap/internal/model"
)

var reportReader adapter.ReportReader
var attributionStore adapter.AttributionStore
var engine domain.AttributionEngine
var workflow domain.Workflow
var ui controller.UI

// outputDirFlag is a root-level flag shared by commands that read/write attributions.
var outputDirFlag string

var verboseFlag bool
var logFileFlag string

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	reportReader = adapter.NewLocalReportReader()
	attributionStore = adapter.NewAttributionStore()
	engine = domain.NewAttributionEngine()
	workflow = domain.NewWorkflow(
		reportReader,
		attributionStore,
		ui,
		engine,
	)
}

const rootLongDescription = `covmap turns a coverage.py JSON report collected with test contexts
(coverage json --show-contexts) into a hierarchical attribution index:
for every module, class and function, which tests covered which lines.

Function coverage rolls up into its classes and class coverage into its module.`

const buildLongDescription = `Build attribution indexes for the given coverage.py JSON reports.

Each report is written to the output directory as
<report path>.attribution.<format>. Reports are processed in parallel.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	ensureConfig()

	cmd := &cobra.Command{
		Use:   "covmap",
		Short: "Per-test coverage attribution for Python projects",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for attribution files",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
