package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const unknownVersion = "unknown"

// buildVersion returns the module version recorded at build time.
func buildVersion() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return unknownVersion, ""
	}

	return info.Main.Version, info.GoVersion
}

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the covmap build version and the Go version used to build it.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			version, goVersion := buildVersion()

			if short || version == unknownVersion {
				cmd.Println("version:", version)
				return
			}

			cmd.Println("covmap version\t", version)
			cmd.Println("go version\t", goVersion)
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print only the covmap version")

	return cmd
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
