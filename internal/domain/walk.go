package domain

import (
	"maps"
	"slices"

	"perfchart.dev/pkg/perfchart/internal/chart"
	m "perfchart.dev/pkg/perfchart/internal/model"
)

// walkContext is the state threaded through a chase-around script. Each step
// derives a new context; earlier contexts are never modified.
type walkContext struct {
	inputs   map[string]float64
	position *m.Point
	solution []*chart.Contour
	scales   []*chart.Contour
	outputs  map[string]float64
}

func newWalk(inputs map[string]float64) walkContext {
	return walkContext{inputs: inputs, outputs: map[string]float64{}}
}

func (w walkContext) movedTo(pt m.Point) walkContext {
	w.position = &pt
	return w
}

func (w walkContext) traced(c *chart.Contour) walkContext {
	w.solution = append(slices.Clip(w.solution), c)
	return w
}

func (w walkContext) read(c *chart.Contour) walkContext {
	w.scales = append(slices.Clip(w.scales), c)
	return w
}

func (w walkContext) solved(variable string, value float64) walkContext {
	w.outputs = maps.Clone(w.outputs)
	w.outputs[variable] = value

	return w
}

func paths(contours []*chart.Contour) []m.Path {
	out := make([]m.Path, 0, len(contours))
	for _, c := range contours {
		out = append(out, c.Path())
	}

	return out
}
