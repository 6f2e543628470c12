package cmd

import (
	"github.com/spf13/cobra"

	"covmap.dev/pkg/covmap/internal/domain"
	m "covmap.dev/pkg/covmap/internal/model"
)

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Compare two attribution files",
		Long:  "Show a unified diff between two attribution files, e.g. before and after a change.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Diff(cmd.Context(), domain.DiffArgs{
				Old: m.Path(args[0]),
				New: m.Path(args[1]),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
