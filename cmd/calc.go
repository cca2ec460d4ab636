package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"perfchart.dev/pkg/perfchart/internal/controller"
	"perfchart.dev/pkg/perfchart/internal/domain"
	m "perfchart.dev/pkg/perfchart/internal/model"
)

var errBadAssignment = errors.New("expected name=value")

const calcLongDescription = `Run a calculator definition against a set of inputs.

Inputs are given as name=value pairs. A value given in a unit other than the
one the chart declares is converted when its unit is named with --unit:

  perfchart calc cruise.json -i altitude=5000 -i temperature=41 -u temperature=fahrenheit

With --interactive, inputs missing from the command line are prompted for.`

// calcCmd represents the calc command.
var calcCmd = newCalcCmd()

func newCalcCmd() *cobra.Command {
	var (
		inputFlags  []string
		unitFlags   []string
		interactive bool
		save        bool
	)

	cmd := &cobra.Command{
		Use:   "calc <definition>",
		Short: "Calculate a chart for the given inputs",
		Long:  calcLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := parseInputs(inputFlags)
			if err != nil {
				return err
			}

			givenUnits, err := parseAssignments(unitFlags)
			if err != nil {
				return err
			}

			format, err := controller.ParseOutputFormat(viper.GetString(calcFormatKey))
			if err != nil {
				return err
			}

			return workflow.Calculate(cmd.Context(), domain.CalculateArgs{
				Definition:  m.FilePath(args[0]),
				Inputs:      inputs,
				Units:       givenUnits,
				Interactive: interactive,
				Format:      format,
				Save:        save,
				Reports:     m.FilePath(viper.GetString(outputFlagName)),
			})
		},
	}

	cmd.Flags().StringArrayVarP(&inputFlags, "input", "i", nil, "input value as name=value (can be repeated)")
	cmd.Flags().StringArrayVarP(&unitFlags, "unit", "u", nil, "unit of an input as name=unit (can be repeated)")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "prompt for missing inputs")
	cmd.Flags().BoolVar(&save, "save", false, "save the calculation as a report")
	cmd.Flags().StringP(formatFlagName, "f", defaultCalcFormat, "output format: table, json or yaml")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), calcFormatKey)

	return cmd
}

// parseAssignments splits name=value pairs. Later pairs override earlier ones.
func parseAssignments(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")

		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %q", errBadAssignment, pair)
		}

		out[name] = strings.TrimSpace(value)
	}

	return out, nil
}

func parseInputs(pairs []string) (map[string]float64, error) {
	assignments, err := parseAssignments(pairs)
	if err != nil {
		return nil, err
	}

	inputs := make(map[string]float64, len(assignments))

	for name, raw := range assignments {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("input %s: %w", name, err)
		}

		inputs[name] = value
	}

	return inputs, nil
}

func init() {
	rootCmd.AddCommand(calcCmd)
}
