// Package chart implements the geometry of digitized performance charts:
// flows, contours, guide families and scales.
package chart

import (
	"cmp"
	"fmt"
	"slices"

	m "perfchart.dev/pkg/perfchart/internal/model"
)

// Flow maps between chart points and (position, value) pairs for one direction.
// For up and down the position is y and the value is x; for left and right the
// position is x and the value is y.
type Flow struct {
	direction  m.Direction
	vertical   bool
	descending bool
}

var flows = map[m.Direction]Flow{
	m.Up:    {direction: m.Up, vertical: true, descending: true},
	m.Down:  {direction: m.Down, vertical: true},
	m.Left:  {direction: m.Left, descending: true},
	m.Right: {direction: m.Right},
}

// FlowOf returns the flow for a direction.
func FlowOf(direction m.Direction) (Flow, error) {
	flow, ok := flows[direction]
	if !ok {
		return Flow{}, fmt.Errorf("unknown flow direction %q", direction)
	}

	return flow, nil
}

// Direction returns the flow's direction.
func (f Flow) Direction() m.Direction { return f.direction }

// Vertical reports whether positions are measured along the y axis.
func (f Flow) Vertical() bool { return f.vertical }

// Point builds a chart point from a position and a value.
func (f Flow) Point(position, value float64) m.Point {
	if f.vertical {
		return m.Point{value, position}
	}

	return m.Point{position, value}
}

// Position extracts the major-axis coordinate of pt.
func (f Flow) Position(pt m.Point) float64 {
	if f.vertical {
		return pt[1]
	}

	return pt[0]
}

// Value extracts the minor-axis coordinate of pt.
func (f Flow) Value(pt m.Point) float64 {
	if f.vertical {
		return pt[0]
	}

	return pt[1]
}

// Sort returns a copy of path ordered by position in the flow's direction:
// ascending for right and down, descending for left and up.
func (f Flow) Sort(path m.Path) m.Path {
	sorted := slices.Clone(path)
	slices.SortStableFunc(sorted, func(a, b m.Point) int {
		if f.descending {
			return cmp.Compare(f.Position(b), f.Position(a))
		}

		return cmp.Compare(f.Position(a), f.Position(b))
	})

	return sorted
}
