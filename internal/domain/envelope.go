package domain

import (
	"fmt"
	"strings"

	"github.com/brunoga/deep"
	"perfchart.dev/pkg/perfchart/internal/chart"
	m "perfchart.dev/pkg/perfchart/internal/model"
	"perfchart.dev/pkg/perfchart/internal/project"
)

type envelopeArea struct {
	m.AreaDef

	polygon m.Path
}

// LoadEnvelope locates a loading condition on a weight and balance envelope chart.
type LoadEnvelope struct {
	scales [2]*chart.Scale
	areas  []envelopeArea
	inputs map[string]m.Variable
}

// NewLoadEnvelope builds the calculator from its definition and digitized project.
// The definition must declare exactly two scales flowing along different axes.
func NewLoadEnvelope(def m.LoadEnvelopeDef, wpd m.WpdProject) (*LoadEnvelope, error) {
	if len(def.Scales) != 2 {
		return nil, fmt.Errorf("%w: load envelope needs two scales, got %d", ErrInvalidChart, len(def.Scales))
	}

	proj, err := project.New(wpd)
	if err != nil {
		return nil, fmt.Errorf("read project: %w", err)
	}

	e := &LoadEnvelope{inputs: map[string]m.Variable{}}

	for i, name := range sortedNames(def.Scales) {
		sd := def.Scales[name]

		scale, err := proj.Scale(name, sd.VariableName(name), sd.Unit, sd.Flow)
		if err != nil {
			return nil, fmt.Errorf("scale %q: %w", name, err)
		}

		e.scales[i] = scale
		e.inputs[scale.Variable()] = variableOf(scale, e.inputs)
	}

	a, b := e.scales[0].Direction(), e.scales[1].Direction()
	if isVertical(a) == isVertical(b) {
		return nil, fmt.Errorf("%w: envelope scales flow %s and %s", chart.ErrDirectionMismatch, a, b)
	}

	for _, area := range def.Areas {
		polygon, err := proj.Area(area.Area)
		if err != nil {
			return nil, err
		}

		e.areas = append(e.areas, envelopeArea{AreaDef: area, polygon: polygon})
	}

	return e, nil
}

func isVertical(d m.Direction) bool {
	return d == m.Up || d == m.Down
}

// Kind implements Calculator.
func (e *LoadEnvelope) Kind() m.Kind { return m.KindLoadEnvelope }

// Inputs implements Calculator.
func (e *LoadEnvelope) Inputs() map[string]m.Variable { return deep.MustCopy(e.inputs) }

// Outputs implements Calculator. The envelope reports its result in Calculation.Envelope.
func (e *LoadEnvelope) Outputs() map[string]m.Variable { return map[string]m.Variable{} }

// Calculate intersects the two scale readings and classifies the crossing by
// the first area, in declaration order, that contains it.
func (e *LoadEnvelope) Calculate(inputs map[string]float64) (*m.Calculation, error) {
	if missing := missingInputs(e.inputs, inputs); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrInputMismatch, strings.Join(missing, ", "))
	}

	var readings [2]*chart.Contour

	for i, scale := range e.scales {
		contour, err := scale.At(inputs[scale.Variable()])
		if err != nil {
			return nil, fmt.Errorf("read %q: %w", scale.Name(), err)
		}

		readings[i] = contour
	}

	position, ok, err := readings[0].Intersection(readings[1])
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, fmt.Errorf("%w: %s and %s readings do not cross", chart.ErrNoIntersection, e.scales[0].Name(), e.scales[1].Name())
	}

	solution := &m.EnvelopeSolution{Position: position}
	scales := []m.Path{readings[0].Path(), readings[1].Path()}

	for _, area := range e.areas {
		if !chart.PointInPolygon(position, area.polygon) {
			continue
		}

		solution.WithinLimits = area.WithinLimits
		solution.Category = area.Category

		for i, reading := range readings {
			head, _, err := reading.Split(position)
			if err != nil {
				return nil, err
			}

			scales[i] = head.Path()
		}

		break
	}

	return &m.Calculation{
		Inputs:   deep.MustCopy(inputs),
		Outputs:  map[string]float64{},
		Scales:   scales,
		Envelope: solution,
	}, nil
}
