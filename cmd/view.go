package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"covmap.dev/pkg/covmap/internal/domain"
	m "covmap.dev/pkg/covmap/internal/model"
)

var viewElementFlag string
var viewTestFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	ensureConfig()

	cmd := &cobra.Command{
		Use:   "view [attribution files...]",
		Short: "View previously built attribution indexes",
		Long: `View attribution files. Without arguments every attribution file in the
output directory is shown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{
				Paths:   parsePaths(args),
				Output:  m.Path(viper.GetString(outputFlagName)),
				Element: viewElementFlag,
				Test:    viewTestFlag,
			})
		},
	}

	cmd.Flags().StringVarP(&viewElementFlag, "element", "e", "", "only show elements whose path contains this text")
	cmd.Flags().StringVarP(&viewTestFlag, "test", "t", "", "only show tests whose id contains this text")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
