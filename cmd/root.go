// Package cmd provides the root command and CLI setup for perfchart.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"perfchart.dev/pkg/perfchart/internal/adapter"
	"perfchart.dev/pkg/perfchart/internal/controller"
	"perfchart.dev/pkg/perfchart/internal/domain"
	m "perfchart.dev/pkg/perfchart/internal/model"
)

var definitionStore adapter.DefinitionStore
var reportStore adapter.ReportStore
var calculatorCache *domain.CalculatorCache
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	definitionStore = adapter.NewLocalDefinitionStore()
	reportStore = adapter.NewReportStore(
		m.ReportFormat(viper.GetString(reportFormatKey)),
		viper.GetBool(reportCompressKey),
	)
	calculatorCache = domain.NewCalculatorCache(viper.GetInt(cacheSizeKey), viper.GetDuration(cacheTTLKey))
	workflow = domain.NewWorkflow(definitionStore, reportStore, ui, calculatorCache)
}

const rootLongDescription = `Perfchart turns digitized aircraft performance charts into calculators.

A chart definition names the curve families traced from a printed chart and a
short script of chase and solve steps. Perfchart follows that script the way a
pilot follows the chart with a pencil and a ruler, and reports the values read
off the final scale together with the path it drew.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "perfchart",
		Short: "Aircraft performance chart calculator",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
}

// newRootCmd returns a root command with the persistent flags attached.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&reportsOutputDirFlag, outputFlagName, "o", viper.GetString(outputFlagName), "directory for calculation reports")
	bindFlagToConfig(flags.Lookup(outputFlagName), outputFlagName)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)
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
