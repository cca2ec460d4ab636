package cmd

import (
	"github.com/spf13/cobra"
	"perfchart.dev/pkg/perfchart/internal/domain"
	m "perfchart.dev/pkg/perfchart/internal/model"
)

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <definition>",
		Short: "Describe the inputs and outputs of a calculator",
		Long:  "Load a calculator definition and list its kind, its inputs with their units and ranges, and its outputs.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Inspect(cmd.Context(), domain.InspectArgs{Definition: m.FilePath(args[0])})
		},
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
