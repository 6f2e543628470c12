package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"covmap.dev/pkg/covmap/internal/domain"
	m "covmap.dev/pkg/covmap/internal/model"
)

var buildFormatFlag string
var buildTestDirFlag string
var buildContextPrefixFlag []string
var buildParallelFlag int
var buildShowFlag bool

// buildCmd represents the build command.
var buildCmd = newBuildCmd()

func newBuildCmd() *cobra.Command {
	ensureConfig()

	cmd := &cobra.Command{
		Use:   "build <report.json>...",
		Short: "Build attribution indexes from coverage reports",
		Long:  buildLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Build(cmd.Context(), domain.BuildArgs{
				Reports:         parsePaths(args),
				Output:          m.Path(viper.GetString(outputFlagName)),
				Format:          viper.GetString(formatConfigKey),
				TestDirPrefix:   viper.GetString(testDirConfigKey),
				ContextPrefixes: viper.GetStringSlice(contextPrefixConfigKey),
				Threads:         viper.GetInt(buildParallelConfigKey),
				Show:            buildShowFlag,
			})
		},
	}

	configureBuildFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func configureBuildFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&buildFormatFlag, formatFlagName, "f", viper.GetString(formatConfigKey), "attribution file format (json or yaml)")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), formatConfigKey)

	cmd.Flags().StringVar(&buildTestDirFlag, testDirFlagName, viper.GetString(testDirConfigKey),
		"contexts starting with this prefix are explicit, others implicit (empty disables classification)")
	bindFlagToConfig(cmd.Flags().Lookup(testDirFlagName), testDirConfigKey)

	cmd.Flags().StringSliceVar(&buildContextPrefixFlag, contextPrefixFlagName, viper.GetStringSlice(contextPrefixConfigKey),
		"prefix identifying test contexts; a report needs at least one (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(contextPrefixFlagName), contextPrefixConfigKey)

	cmd.Flags().IntVarP(&buildParallelFlag, buildParallelFlagName, "p", viper.GetInt(buildParallelConfigKey), "number of reports built in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(buildParallelFlagName), buildParallelConfigKey)

	cmd.Flags().BoolVar(&buildShowFlag, "show", false, "display the attribution after building")
}
