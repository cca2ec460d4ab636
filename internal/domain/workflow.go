package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"perfchart.dev/pkg/perfchart/internal/adapter"
	"perfchart.dev/pkg/perfchart/internal/controller"
	m "perfchart.dev/pkg/perfchart/internal/model"
	"perfchart.dev/pkg/perfchart/internal/units"
)

// ErrCasesFailed is returned by Batch when at least one case did not calculate.
var ErrCasesFailed = errors.New("batch cases failed")

// CalculateArgs contains the arguments for a single calculation.
type CalculateArgs struct {
	Definition m.FilePath
	Inputs     map[string]float64
	// Units names the unit an input was given in when it differs from the
	// unit the calculator declares.
	Units       map[string]string
	Interactive bool
	Format      controller.OutputFormat
	Save        bool
	Reports     m.FilePath
}

// InspectArgs contains the arguments for describing a calculator.
type InspectArgs struct {
	Definition m.FilePath
}

// BatchArgs contains the arguments for running a case file.
type BatchArgs struct {
	Definition m.FilePath
	Cases      m.FilePath
	Reports    m.FilePath
	Threads    int
}

// ViewArgs contains the arguments for listing saved reports.
type ViewArgs struct {
	Reports m.FilePath
}

// Workflow defines the operations the CLI drives.
type Workflow interface {
	Calculate(ctx context.Context, args CalculateArgs) error
	Inspect(ctx context.Context, args InspectArgs) error
	Batch(ctx context.Context, args BatchArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.DefinitionStore
	adapter.ReportStore
	controller.UI

	cache *CalculatorCache
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	definitions adapter.DefinitionStore,
	reportStore adapter.ReportStore,
	ui controller.UI,
	cache *CalculatorCache,
) Workflow {
	return &workflow{
		DefinitionStore: definitions,
		ReportStore:     reportStore,
		UI:              ui,
		cache:           cache,
	}
}

func (w *workflow) calculator(path m.FilePath) (m.Definition, Calculator, error) {
	def, err := w.Load(path)
	if err != nil {
		return m.Definition{}, nil, fmt.Errorf("load definition: %w", err)
	}

	calc, err := w.cache.Get(def)
	if err != nil {
		slog.Error("failed to build calculator", "definition", path, "error", err)
		return m.Definition{}, nil, fmt.Errorf("build calculator %s: %w", path, err)
	}

	return def, calc, nil
}

// Calculate runs one calculation, prompting for missing inputs when
// interactive, and optionally stores the result as a report.
func (w *workflow) Calculate(ctx context.Context, args CalculateArgs) error {
	def, calc, err := w.calculator(args.Definition)
	if err != nil {
		return err
	}

	declared := calc.Inputs()

	inputs, err := convertInputs(declared, args.Inputs, args.Units)
	if err != nil {
		return err
	}

	if args.Interactive {
		if inputs, err = w.promptMissing(ctx, declared, inputs); err != nil {
			return err
		}
	}

	result, err := calc.Calculate(inputs)
	if err != nil {
		slog.Error("calculation failed", "definition", args.Definition, "error", err)
		return fmt.Errorf("calculate: %w", err)
	}

	if err := w.DisplayCalculation(ctx, result, args.Format); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if !args.Save {
		return nil
	}

	if err := w.SaveReports(args.Reports, []m.Report{newReport(def, "", result, nil)}); err != nil {
		slog.Error("failed to save report", "dir", args.Reports, "error", err)
		return fmt.Errorf("save report: %w", err)
	}

	return nil
}

func (w *workflow) promptMissing(ctx context.Context, declared map[string]m.Variable, inputs map[string]float64) (map[string]float64, error) {
	missing := map[string]m.Variable{}

	for _, name := range missingInputs(declared, inputs) {
		missing[name] = declared[name]
	}

	if len(missing) == 0 {
		return inputs, nil
	}

	prompted, err := w.PromptInputs(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("prompt inputs: %w", err)
	}

	for name, value := range prompted {
		inputs[name] = value
	}

	return inputs, nil
}

// convertInputs copies given into a new map, converting values whose unit
// differs from the declared one.
func convertInputs(declared map[string]m.Variable, given map[string]float64, givenUnits map[string]string) (map[string]float64, error) {
	inputs := make(map[string]float64, len(given))

	for name, value := range given {
		from, ok := givenUnits[name]
		to := declared[name].Unit

		if ok && to != "" && from != to {
			converted, err := units.Convert(value, from, to)
			if err != nil {
				return nil, fmt.Errorf("input %s: %w", name, err)
			}

			slog.Debug("converted input", "name", name, "value", value, "from", from, "to", to, "result", converted)
			value = converted
		}

		inputs[name] = value
	}

	return inputs, nil
}

// Inspect displays a calculator's kind and variables.
func (w *workflow) Inspect(ctx context.Context, args InspectArgs) error {
	def, calc, err := w.calculator(args.Definition)
	if err != nil {
		return err
	}

	return w.DisplayCalculator(ctx, controller.CalculatorInfo{
		Source:  def.Source,
		Kind:    calc.Kind(),
		Digest:  def.Digest,
		Inputs:  calc.Inputs(),
		Outputs: calc.Outputs(),
	})
}

// Batch runs every case of a case file against one shared calculator,
// saves a report per case and displays the summary.
func (w *workflow) Batch(ctx context.Context, args BatchArgs) error {
	def, calc, err := w.calculator(args.Definition)
	if err != nil {
		return err
	}

	cases, err := w.LoadCases(args.Cases)
	if err != nil {
		return fmt.Errorf("load cases: %w", err)
	}

	reports, err := runCases(ctx, def, calc, cases, args.Threads)
	if err != nil {
		return err
	}

	if err := w.SaveReports(args.Reports, reports); err != nil {
		slog.Error("failed to save reports", "dir", args.Reports, "error", err)
		return fmt.Errorf("save reports: %w", err)
	}

	if err := w.DisplayReports(ctx, reports); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	failed := 0

	for _, r := range reports {
		if r.Failed() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrCasesFailed, failed, len(reports))
	}

	return nil
}

// runCases calculates cases concurrently. Reports keep the case order.
func runCases(ctx context.Context, def m.Definition, calc Calculator, cases []m.Case, threads int) ([]m.Report, error) {
	reports := make([]m.Report, len(cases))

	group, groupCtx := errgroup.WithContext(ctx)
	if threads > 0 {
		group.SetLimit(threads)
	}

	for i, c := range cases {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			result, err := calc.Calculate(c.Inputs)
			if err != nil {
				slog.Debug("case failed", "case", c.Name, "error", err)
			}

			reports[i] = newReport(def, c.Name, result, err)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func newReport(def m.Definition, caseName string, calc *m.Calculation, err error) m.Report {
	report := m.Report{
		ID:          uuid.NewString(),
		Definition:  def.Source,
		Kind:        def.Kind,
		Case:        caseName,
		CreatedAt:   time.Now().UTC(),
		Calculation: calc,
	}

	if err != nil {
		report.Error = err.Error()
	}

	return report
}

// View lists the reports saved in a directory.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	reports, err := w.LoadReports(args.Reports)
	if err != nil {
		slog.Error("failed to load reports", "dir", args.Reports, "error", err)
		return fmt.Errorf("load reports: %w", err)
	}

	return w.DisplayReports(ctx, reports)
}
