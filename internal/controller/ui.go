// Package controller renders calculators, calculations and reports for the CLI
// and collects calculator inputs from the user.
package controller

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "perfchart.dev/pkg/perfchart/internal/model"
)

// ErrPromptCancelled is returned when the user abandons an input prompt.
var ErrPromptCancelled = errors.New("input prompt cancelled")

// OutputFormat selects how a calculation is printed.
type OutputFormat string

// Available OutputFormat values.
const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a user supplied output format.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", s)
	}
}

// CalculatorInfo describes a loaded calculator for display.
type CalculatorInfo struct {
	Source  m.FilePath
	Kind    m.Kind
	Digest  string
	Inputs  map[string]m.Variable
	Outputs map[string]m.Variable
}

// UI defines how the workflows talk to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayCalculator(ctx context.Context, info CalculatorInfo) error
	DisplayCalculation(ctx context.Context, calc *m.Calculation, format OutputFormat) error
	DisplayReports(ctx context.Context, reports []m.Report) error
	// PromptInputs asks for a value of every declared input.
	PromptInputs(ctx context.Context, inputs map[string]m.Variable) (map[string]float64, error)
}

// NewUI returns the interactive UI on a terminal and the plain one otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
