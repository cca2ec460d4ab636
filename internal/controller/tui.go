package controller

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	m "perfchart.dev/pkg/perfchart/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	hintStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// TUI implements UI for terminals: styled output and a Bubble Tea input form.
type TUI struct {
	*SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd)}
}

// DisplayCalculator prints the calculator with a styled heading.
func (t *TUI) DisplayCalculator(ctx context.Context, info CalculatorInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.printf("%s %s\n", titleStyle.Render(string(info.Kind)), hintStyle.Render(string(info.Source)))

	if info.Digest != "" {
		t.printf("%s\n", hintStyle.Render("digest "+info.Digest))
	}

	t.printf("\n%s\n%s", labelStyle.Render("Inputs"), renderVariables(info.Inputs))
	t.printf("\n%s\n%s", labelStyle.Render("Outputs"), renderVariables(info.Outputs))

	return nil
}

// DisplayCalculation prints tables with a verdict line for envelopes.
func (t *TUI) DisplayCalculation(ctx context.Context, calc *m.Calculation, format OutputFormat) error {
	if err := t.SimpleUI.DisplayCalculation(ctx, calc, format); err != nil {
		return err
	}

	if format != FormatTable || calc.Envelope == nil {
		return nil
	}

	if calc.Envelope.WithinLimits {
		t.printf("%s\n", okStyle.Render("✔ within limits"))
	} else {
		t.printf("%s\n", errorStyle.Render("✘ outside limits"))
	}

	return nil
}

// PromptInputs runs an interactive form with one field per input.
func (t *TUI) PromptInputs(ctx context.Context, inputs map[string]m.Variable) (map[string]float64, error) {
	if len(inputs) == 0 {
		return map[string]float64{}, nil
	}

	program := tea.NewProgram(
		newInputForm(inputs),
		tea.WithContext(ctx),
		tea.WithInput(t.cmd.InOrStdin()),
		tea.WithOutput(t.cmd.OutOrStdout()),
	)

	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil, ctx.Err()
		}

		return nil, err
	}

	form, ok := final.(inputForm)
	if !ok || form.cancelled {
		return nil, ErrPromptCancelled
	}

	return form.values, nil
}

// inputForm is the Bubble Tea model behind PromptInputs.
type inputForm struct {
	names     []string
	vars      map[string]m.Variable
	fields    []textinput.Model
	focus     int
	values    map[string]float64
	err       error
	cancelled bool
}

func newInputForm(inputs map[string]m.Variable) inputForm {
	names := slices.Sorted(maps.Keys(inputs))
	fields := make([]textinput.Model, len(names))

	for i, name := range names {
		field := textinput.New()
		field.Prompt = "› "
		field.CharLimit = 32
		field.Placeholder = formatRange(inputs[name].Range)

		if field.Placeholder == "-" {
			field.Placeholder = "value"
		}

		fields[i] = field
	}

	fields[0].Focus()

	return inputForm{names: names, vars: inputs, fields: fields}
}

func (f inputForm) Init() tea.Cmd {
	return textinput.Blink
}

func (f inputForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateFocused(msg)
	}

	switch key.String() {
	case "ctrl+c", "esc":
		f.cancelled = true
		return f, tea.Quit
	case "tab", "down":
		return f.moveFocus(1), nil
	case "shift+tab", "up":
		return f.moveFocus(-1), nil
	case "enter":
		return f.submit()
	}

	return f.updateFocused(msg)
}

func (f inputForm) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	fields := slices.Clone(f.fields)

	var cmd tea.Cmd
	fields[f.focus], cmd = fields[f.focus].Update(msg)
	f.fields = fields

	return f, cmd
}

func (f inputForm) moveFocus(delta int) inputForm {
	fields := slices.Clone(f.fields)
	fields[f.focus].Blur()

	f.focus = (f.focus + delta + len(fields)) % len(fields)
	fields[f.focus].Focus()
	f.fields = fields

	return f
}

// submit validates the focused field and either advances or finishes the form.
func (f inputForm) submit() (tea.Model, tea.Cmd) {
	if _, err := parseValue(f.fields[f.focus].Value()); err != nil {
		f.err = fmt.Errorf("%s: %w", f.names[f.focus], err)
		return f, nil
	}

	f.err = nil

	for i, field := range f.fields {
		if _, err := parseValue(field.Value()); err != nil {
			if i == f.focus {
				continue
			}

			return f.moveFocus(i - f.focus), nil
		}
	}

	values := make(map[string]float64, len(f.names))
	for i, name := range f.names {
		values[name], _ = parseValue(f.fields[i].Value())
	}

	f.values = values

	return f, tea.Quit
}

func (f inputForm) View() string {
	if f.values != nil || f.cancelled {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Calculator inputs"))
	b.WriteString("\n\n")

	for i, name := range f.names {
		fmt.Fprintf(&b, "%s\n%s\n", labelStyle.Render(promptLabel(name, f.vars[name])), f.fields[i].View())
	}

	if f.err != nil {
		b.WriteString("\n" + errorStyle.Render(f.err.Error()) + "\n")
	}

	b.WriteString("\n" + hintStyle.Render("tab/↓ next • shift+tab/↑ previous • enter submit • esc cancel") + "\n")

	return b.String()
}
