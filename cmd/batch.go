package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"perfchart.dev/pkg/perfchart/internal/domain"
	m "perfchart.dev/pkg/perfchart/internal/model"
)

const batchLongDescription = `Run every case of a YAML case file against one calculator.

A case file is a list of named input sets:

  - name: warm
    inputs:
      altitude: 5000
      temperature: 15

One report per case is saved to the reports directory and a summary is printed.
The command fails when any case fails.`

// batchCmd represents the batch command.
var batchCmd = newBatchCmd()

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <definition> <cases>",
		Short: "Calculate every case of a case file",
		Long:  batchLongDescription,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Batch(cmd.Context(), domain.BatchArgs{
				Definition: m.FilePath(args[0]),
				Cases:      m.FilePath(args[1]),
				Reports:    m.FilePath(viper.GetString(outputFlagName)),
				Threads:    viper.GetInt(batchParallelKey),
			})
		},
	}

	cmd.Flags().IntP(parallelFlagName, "p", defaultBatchParallel, "number of cases calculated in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), batchParallelKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
