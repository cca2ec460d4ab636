package controller

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	m "perfchart.dev/pkg/perfchart/internal/model"
)

// SimpleUI implements UI using the cobra command's input and output streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayCalculator prints the calculator kind and its variables.
func (s *SimpleUI) DisplayCalculator(ctx context.Context, info CalculatorInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s (%s)\n", info.Source, info.Kind)

	if info.Digest != "" {
		s.printf("digest: %s\n", info.Digest)
	}

	s.printf("\nInputs\n%s", renderVariables(info.Inputs))
	s.printf("\nOutputs\n%s", renderVariables(info.Outputs))

	return nil
}

// DisplayCalculation prints a calculation as a table or as a document.
func (s *SimpleUI) DisplayCalculation(ctx context.Context, calc *m.Calculation, format OutputFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(calc, "", "  ")
		if err != nil {
			return err
		}

		s.printf("%s\n", data)
	case FormatYAML:
		data, err := yaml.Marshal(calc)
		if err != nil {
			return err
		}

		s.printf("%s", data)
	default:
		s.printf("%s", renderCalculation(calc))
	}

	return nil
}

// DisplayReports prints one row per stored report.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(reports) == 0 {
		s.printf("No reports found\n")
		return nil
	}

	s.printf("%s", renderReports(reports))

	return nil
}

// PromptInputs reads one value per input, in name order, from the command's
// input stream. Invalid numbers are asked for again.
func (s *SimpleUI) PromptInputs(ctx context.Context, inputs map[string]m.Variable) (map[string]float64, error) {
	scanner := bufio.NewScanner(s.cmd.InOrStdin())
	values := make(map[string]float64, len(inputs))

	for _, name := range slices.Sorted(maps.Keys(inputs)) {
		for {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			s.printf("%s: ", promptLabel(name, inputs[name]))

			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return nil, err
				}

				return nil, fmt.Errorf("%w: no value for %s", io.ErrUnexpectedEOF, name)
			}

			value, err := parseValue(scanner.Text())
			if err != nil {
				s.printf("%v\n", err)
				continue
			}

			values[name] = value

			break
		}
	}

	return values, nil
}

func (s *SimpleUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func parseValue(text string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", strings.TrimSpace(text))
	}

	return value, nil
}

func promptLabel(name string, v m.Variable) string {
	label := name
	if v.Unit != "" {
		label += " [" + v.Unit + "]"
	}

	if v.Range != nil {
		label += fmt.Sprintf(" (%s..%s)", formatValue(v.Range[0]), formatValue(v.Range[1]))
	}

	return label
}

func formatValue(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e4)/1e4, 'f', -1, 64)
}

func formatRange(r *[2]float64) string {
	if r == nil {
		return "-"
	}

	return formatValue(r[0]) + " .. " + formatValue(r[1])
}

func newTable(buf *bytes.Buffer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func renderVariables(vars map[string]m.Variable) string {
	var buf bytes.Buffer

	table := newTable(&buf, "Name", "Unit", "Range")

	for _, name := range slices.Sorted(maps.Keys(vars)) {
		v := vars[name]
		table.Append([]string{name, v.Unit, formatRange(v.Range)})
	}

	table.Render()

	return buf.String()
}

func renderValues(buf *bytes.Buffer, title string, values map[string]float64) {
	table := newTable(buf, title, "Value")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, name := range slices.Sorted(maps.Keys(values)) {
		table.Append([]string{name, formatValue(values[name])})
	}

	table.Render()
}

func renderCalculation(calc *m.Calculation) string {
	var buf bytes.Buffer

	renderValues(&buf, "Input", calc.Inputs)
	buf.WriteString("\n")

	if len(calc.Outputs) > 0 {
		renderValues(&buf, "Output", calc.Outputs)
		buf.WriteString("\n")
	}

	if e := calc.Envelope; e != nil {
		limits := "outside limits"
		if e.WithinLimits {
			limits = "within limits"
		}

		fmt.Fprintf(&buf, "Envelope: %s at (%s, %s)", limits, formatValue(e.Position.X()), formatValue(e.Position.Y()))

		if e.Category != "" {
			fmt.Fprintf(&buf, ", category %s", e.Category)
		}

		buf.WriteString("\n")
	}

	if len(calc.Solution) > 0 {
		fmt.Fprintf(&buf, "Solution: %d segment(s), %d scale reading(s)\n", len(calc.Solution), len(calc.Scales))
	}

	return buf.String()
}

func renderReports(reports []m.Report) string {
	var buf bytes.Buffer

	table := newTable(&buf, "ID", "Created", "Definition", "Case", "Result")

	failed := 0

	for _, r := range reports {
		table.Append([]string{
			shortID(r.ID),
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			string(r.Definition),
			r.Case,
			summarize(r),
		})

		if r.Failed() {
			failed++
		}
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(reports)), "", "", "", fmt.Sprintf("%d failed", failed)})
	table.Render()

	return buf.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}

	return id
}

func summarize(r m.Report) string {
	if r.Failed() {
		return "error: " + r.Error
	}

	if r.Calculation == nil {
		return "-"
	}

	if e := r.Calculation.Envelope; e != nil {
		if !e.WithinLimits {
			return "outside limits"
		}

		return strings.TrimSpace("within limits " + e.Category)
	}

	parts := make([]string, 0, len(r.Calculation.Outputs))
	for _, name := range slices.Sorted(maps.Keys(r.Calculation.Outputs)) {
		parts = append(parts, name+"="+formatValue(r.Calculation.Outputs[name]))
	}

	return strings.Join(parts, " ")
}
