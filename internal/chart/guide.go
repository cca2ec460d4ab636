package chart

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	m "perfchart.dev/pkg/perfchart/internal/model"
)

// Entry pairs a guide contour with its parameter value.
type Entry struct {
	Value   float64
	Contour *Contour
}

// Guide is a family of contours sharing a direction, ordered by parameter
// value. Guides interpolate between neighbouring contours to answer queries
// for values or points that fall between them.
type Guide struct {
	name    string
	flow    Flow
	entries []Entry
	bounds  m.Box
}

// NewGuide builds a guide from its entries. Entries are copied and sorted by value.
func NewGuide(name string, entries []Entry, direction m.Direction) (*Guide, error) {
	flow, err := FlowOf(direction)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("guide %q: %w", name, ErrEmptyGuide)
	}

	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry) int { return cmp.Compare(a.Value, b.Value) })

	bounds := m.BoundsOf(sorted[0].Contour.path)

	for i, e := range sorted {
		if e.Contour.Direction() != direction {
			return nil, fmt.Errorf("guide %q: %w: contour %v flows %s, guide flows %s",
				name, ErrDirectionMismatch, e.Value, e.Contour.Direction(), direction)
		}

		if i > 0 && sorted[i-1].Value == e.Value {
			return nil, fmt.Errorf("guide %q: %w: %v", name, ErrDuplicateValue, e.Value)
		}

		bounds = bounds.Union(m.BoundsOf(e.Contour.path))
	}

	return &Guide{name: name, flow: flow, entries: sorted, bounds: bounds}, nil
}

// Name returns the guide's name.
func (g *Guide) Name() string { return g.name }

// Direction returns the direction shared by every contour.
func (g *Guide) Direction() m.Direction { return g.flow.direction }

// Bounds returns the union of the contours' extents.
func (g *Guide) Bounds() m.Box { return g.bounds }

// Entries returns a copy of the entries in ascending value order.
func (g *Guide) Entries() []Entry { return slices.Clone(g.entries) }

// Len returns the number of contours.
func (g *Guide) Len() int { return len(g.entries) }

// At returns the contour for a parameter value. Stored values return the
// stored contour; other values interpolate the bracketing pair, or
// extrapolate from the two extreme contours outside the stored range.
func (g *Guide) At(value float64) (*Contour, error) {
	i, found := slices.BinarySearchFunc(g.entries, value, func(e Entry, v float64) int {
		return cmp.Compare(e.Value, v)
	})
	if found {
		return g.entries[i].Contour, nil
	}

	n := len(g.entries)
	if n == 1 {
		return g.entries[0].Contour, nil
	}

	lo := min(max(i-1, 0), n-2)
	a, b := g.entries[lo], g.entries[lo+1]

	contour, err := a.Contour.Interpolate(b.Contour, inverseLerp(value, a.Value, b.Value))
	if err != nil {
		return nil, fmt.Errorf("guide %q at %v: %w", g.name, value, err)
	}

	return contour, nil
}

// Through returns the contour of the family that passes through pt.
func (g *Guide) Through(pt m.Point) (*Contour, error) {
	contour, _, err := g.locate(pt)
	return contour, err
}

// Value returns the parameter value of the contour passing through pt.
func (g *Guide) Value(pt m.Point) (float64, error) {
	_, value, err := g.locate(pt)
	return value, err
}

func (g *Guide) locate(pt m.Point) (*Contour, float64, error) {
	n := len(g.entries)
	if n == 1 {
		return g.entries[0].Contour, g.entries[0].Value, nil
	}

	pos, val := g.flow.Position(pt), g.flow.Value(pt)

	keys := make([]float64, n)
	for i, e := range g.entries {
		keys[i] = e.Contour.ValueAt(pos)
		if math.Abs(keys[i]-val) <= epsilon {
			return e.Contour, e.Value, nil
		}
	}

	lo := -1

	for i := 0; i+1 < n; i++ {
		if between(val, keys[i], keys[i+1]) {
			lo = i
			break
		}
	}

	if lo < 0 {
		// Outside the family: extrapolate from the nearer end pair.
		lo = 0
		if math.Abs(val-keys[n-1]) < math.Abs(val-keys[0]) {
			lo = n - 2
		}
	}

	a, b := g.entries[lo], g.entries[lo+1]
	factor := inverseLerp(val, keys[lo], keys[lo+1])

	contour, err := a.Contour.Interpolate(b.Contour, factor)
	if err != nil {
		return nil, 0, fmt.Errorf("guide %q through %v: %w", g.name, pt, err)
	}

	return contour, lerp(factor, a.Value, b.Value), nil
}
