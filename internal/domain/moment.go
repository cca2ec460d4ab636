package domain

import (
	"fmt"

	"github.com/brunoga/deep"
	m "perfchart.dev/pkg/perfchart/internal/model"
)

// Output names of the load moment calculator.
const (
	OutputWeight          = "weight"
	OutputCenterOfGravity = "centerOfGravity"
)

// LoadMoment sums station weights and moments from a loading table.
type LoadMoment struct {
	units m.LoadUnits
	arms  map[string]float64
}

// NewLoadMoment builds the calculator from a loading table.
func NewLoadMoment(def m.LoadArmsDef) (*LoadMoment, error) {
	if len(def.Arms) == 0 {
		return nil, fmt.Errorf("%w: loading table has no stations", ErrInvalidChart)
	}

	return &LoadMoment{units: def.Units, arms: deep.MustCopy(def.Arms)}, nil
}

// Kind implements Calculator.
func (l *LoadMoment) Kind() m.Kind { return m.KindLoadArms }

// Inputs implements Calculator. Every station takes a weight.
func (l *LoadMoment) Inputs() map[string]m.Variable {
	inputs := make(map[string]m.Variable, len(l.arms))
	for name := range l.arms {
		inputs[name] = m.Variable{Unit: l.units.Weight}
	}

	return inputs
}

// Outputs implements Calculator.
func (l *LoadMoment) Outputs() map[string]m.Variable {
	return map[string]m.Variable{
		OutputCenterOfGravity: {Unit: l.units.Arm},
		OutputWeight:          {Unit: l.units.Weight},
	}
}

// Calculate totals the loading. Stations without an input weigh nothing.
func (l *LoadMoment) Calculate(inputs map[string]float64) (*m.Calculation, error) {
	var weight, moment float64

	for _, name := range sortedNames(l.arms) {
		w := inputs[name]
		weight += w
		moment += w * l.arms[name]
	}

	cg := 0.0
	if weight != 0 {
		cg = moment / weight
	}

	return &m.Calculation{
		Inputs: deep.MustCopy(inputs),
		Outputs: map[string]float64{
			OutputCenterOfGravity: cg,
			OutputWeight:          weight,
		},
	}, nil
}
