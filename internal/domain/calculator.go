// Package domain implements the calculators built from chart definitions and
// the workflows the CLI drives them with.
package domain

import (
	"fmt"

	m "perfchart.dev/pkg/perfchart/internal/model"
)

// Calculator turns a set of named numeric inputs into a calculation.
// Implementations are immutable after construction and safe for concurrent use.
type Calculator interface {
	Kind() m.Kind
	Inputs() map[string]m.Variable
	Outputs() map[string]m.Variable
	Calculate(inputs map[string]float64) (*m.Calculation, error)
}

// NewCalculator builds the calculator a definition describes.
func NewCalculator(def m.Definition) (Calculator, error) {
	switch def.Kind {
	case m.KindChaseAround:
		if def.ChaseAround == nil || def.Project == nil {
			return nil, fmt.Errorf("%w: chase around definition without chart or project", ErrInvalidChart)
		}

		return NewChaseAround(*def.ChaseAround, *def.Project)
	case m.KindLoadEnvelope:
		if def.LoadEnvelope == nil || def.Project == nil {
			return nil, fmt.Errorf("%w: load envelope definition without chart or project", ErrInvalidChart)
		}

		return NewLoadEnvelope(*def.LoadEnvelope, *def.Project)
	case m.KindLoadArms:
		if def.LoadArms == nil {
			return nil, fmt.Errorf("%w: load arms definition without arms", ErrInvalidChart)
		}

		return NewLoadMoment(*def.LoadArms)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, def.Kind)
	}
}

func missingInputs(declared map[string]m.Variable, given map[string]float64) []string {
	var missing []string

	for _, name := range sortedNames(declared) {
		if _, ok := given[name]; !ok {
			missing = append(missing, name)
		}
	}

	return missing
}
