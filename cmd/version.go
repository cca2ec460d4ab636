package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

// buildDetails extracts the version lines printed by the version command.
func buildDetails(info *debug.BuildInfo) [][2]string {
	details := [][2]string{
		{"perfchart", info.Main.Version},
		{"go", info.GoVersion},
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			details = append(details, [2]string{"revision", setting.Value})
		case "vcs.modified":
			if setting.Value == "true" {
				details = append(details, [2]string{"modified", "yes"})
			}
		}
	}

	return details
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version of perfchart, the Go version used to build it and the source revision when known.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
				return
			}

			for _, detail := range buildDetails(info) {
				cmd.Printf("%-10s %s\n", detail[0], detail[1])
			}
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
