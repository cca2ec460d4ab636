package chart

import (
	"fmt"
	"math"
	"slices"

	m "perfchart.dev/pkg/perfchart/internal/model"
)

// Contour is one curve of a chart, held in canonical order for its flow.
// Contours are immutable once built.
type Contour struct {
	flow Flow
	path m.Path
	// positions ascend; values[i] belongs to positions[i].
	positions []float64
	values    []float64
}

// NewContour canonicalizes path for the given direction: points are sorted by
// position, rounded to Precision digits, and repeated positions are dropped
// keeping the first point seen.
func NewContour(path m.Path, direction m.Direction) (*Contour, error) {
	flow, err := FlowOf(direction)
	if err != nil {
		return nil, err
	}

	c := canonical(path, flow)
	if len(c.positions) < 2 {
		return nil, fmt.Errorf("%w: got %d point(s)", ErrDegenerateContour, len(c.path))
	}

	return c, nil
}

func canonical(path m.Path, flow Flow) *Contour {
	sorted := flow.Sort(path)
	rounded := make(m.Path, 0, len(sorted))

	for _, pt := range sorted {
		pt = m.Point{round(pt[0]), round(pt[1])}
		if n := len(rounded); n > 0 && flow.Position(rounded[n-1]) == flow.Position(pt) {
			continue
		}

		rounded = append(rounded, pt)
	}

	return fromCanonical(rounded, flow)
}

// fromCanonical wraps a path that is already sorted and rounded. Split pieces
// go through here and may hold a single point.
func fromCanonical(path m.Path, flow Flow) *Contour {
	c := &Contour{
		flow:      flow,
		path:      path,
		positions: make([]float64, len(path)),
		values:    make([]float64, len(path)),
	}

	for i, pt := range path {
		j := i
		if flow.descending {
			j = len(path) - 1 - i
		}

		c.positions[j] = flow.Position(pt)
		c.values[j] = flow.Value(pt)
	}

	return c
}

// Path returns a copy of the canonical path.
func (c *Contour) Path() m.Path { return slices.Clone(c.path) }

// Len returns the number of points.
func (c *Contour) Len() int { return len(c.path) }

// Direction returns the contour's flow direction.
func (c *Contour) Direction() m.Direction { return c.flow.direction }

// Flow returns the contour's flow.
func (c *Contour) Flow() Flow { return c.flow }

// Start returns the first point in canonical order.
func (c *Contour) Start() m.Point { return c.path[0] }

// End returns the last point in canonical order.
func (c *Contour) End() m.Point { return c.path[len(c.path)-1] }

// Range returns the smallest and largest positions covered.
func (c *Contour) Range() [2]float64 {
	return [2]float64{c.positions[0], c.positions[len(c.positions)-1]}
}

// Contains reports whether pt's position lies within the contour's range.
func (c *Contour) Contains(pt m.Point) bool {
	r := c.Range()
	pos := round(c.flow.Position(pt))

	return r[0] <= pos && pos <= r[1]
}

// ValueAt returns the value at a position, interpolating linearly between
// neighbouring points and extrapolating the edge segment outside the range.
func (c *Contour) ValueAt(position float64) float64 {
	n := len(c.positions)
	if n == 1 {
		return c.values[0]
	}

	i, found := slices.BinarySearch(c.positions, position)
	if found {
		return c.values[i]
	}

	lo := min(max(i-1, 0), n-2)

	return lerp(inverseLerp(position, c.positions[lo], c.positions[lo+1]), c.values[lo], c.values[lo+1])
}

// Intersection returns the first crossing with other, scanning this contour's
// segments in canonical order. Segment endpoints count as crossings. The two
// contours must flow along different axes.
func (c *Contour) Intersection(other *Contour) (m.Point, bool, error) {
	if c.flow.vertical == other.flow.vertical {
		return m.Point{}, false, fmt.Errorf("%w: cannot intersect %s with %s", ErrDirectionMismatch, c.flow.direction, other.flow.direction)
	}

	mine, theirs := c.segments(), other.segments()

	for _, seg := range mine {
		bestT := math.Inf(1)

		var best m.Point

		for _, o := range theirs {
			t, pt, ok := segmentIntersection(seg[0], seg[1], o[0], o[1])
			if ok && t < bestT {
				bestT, best = t, pt
			}
		}

		if !math.IsInf(bestT, 1) {
			return m.Point{round(best[0]), round(best[1])}, true, nil
		}
	}

	return m.Point{}, false, nil
}

func (c *Contour) segments() [][2]m.Point {
	if len(c.path) == 1 {
		return [][2]m.Point{{c.path[0], c.path[0]}}
	}

	segs := make([][2]m.Point, 0, len(c.path)-1)
	for i := 0; i+1 < len(c.path); i++ {
		segs = append(segs, [2]m.Point{c.path[i], c.path[i+1]})
	}

	return segs
}

// Split cuts the contour at the position of pt and returns the part before and
// the part after it. A position matching a vertex splits there; otherwise an
// interpolated vertex is inserted and shared by both parts.
func (c *Contour) Split(pt m.Point) (*Contour, *Contour, error) {
	pos := round(c.flow.Position(pt))

	for i, vertex := range c.path {
		here := c.flow.Position(vertex)
		if here == pos {
			return fromCanonical(slices.Clone(c.path[:i+1]), c.flow), fromCanonical(slices.Clone(c.path[i:]), c.flow), nil
		}

		if i+1 == len(c.path) {
			break
		}

		next := c.flow.Position(c.path[i+1])
		if (here < pos && pos < next) || (next < pos && pos < here) {
			mid := c.flow.Point(pos, round(c.ValueAt(pos)))

			head := append(slices.Clone(c.path[:i+1]), mid)
			tail := append(m.Path{mid}, c.path[i+1:]...)

			return fromCanonical(head, c.flow), fromCanonical(tail, c.flow), nil
		}
	}

	return nil, nil, fmt.Errorf("%w: position %v outside [%v, %v]", ErrPointNotOnContour, pos, c.positions[0], c.positions[len(c.positions)-1])
}

// SplitBy splits the contour at its first crossing with other.
func (c *Contour) SplitBy(other *Contour) (*Contour, *Contour, error) {
	pt, ok, err := c.Intersection(other)
	if err != nil {
		return nil, nil, err
	}

	if !ok {
		return nil, nil, fmt.Errorf("%w: %s contour from %v to %v never meets %s contour from %v to %v",
			ErrNoIntersection, c.flow.direction, c.Start(), c.End(), other.flow.direction, other.Start(), other.End())
	}

	return c.Split(pt)
}

// Interpolate blends this contour towards other by factor. A factor of 0
// returns the receiver and 1 returns other; factors outside [0, 1]
// extrapolate. The result covers the union of both contours' positions
// within their common range.
func (c *Contour) Interpolate(other *Contour, factor float64) (*Contour, error) {
	if c.flow.direction != other.flow.direction {
		return nil, fmt.Errorf("%w: cannot interpolate %s with %s", ErrDirectionMismatch, c.flow.direction, other.flow.direction)
	}

	switch factor {
	case 0:
		return c, nil
	case 1:
		return other, nil
	}

	lo := max(c.positions[0], other.positions[0])
	hi := min(c.positions[len(c.positions)-1], other.positions[len(other.positions)-1])

	positions := mergePositions(c.positions, other.positions, lo, hi)
	if len(positions) < 2 {
		// Disjoint ranges: fall back to extrapolating over everything.
		positions = mergePositions(c.positions, other.positions, math.Inf(-1), math.Inf(1))
	}

	path := make(m.Path, 0, len(positions))
	for _, pos := range positions {
		path = append(path, c.flow.Point(pos, lerp(factor, c.ValueAt(pos), other.ValueAt(pos))))
	}

	return canonical(path, c.flow), nil
}

func mergePositions(a, b []float64, lo, hi float64) []float64 {
	merged := slices.Concat(a, b)
	slices.Sort(merged)
	merged = slices.Compact(merged)

	return slices.DeleteFunc(merged, func(p float64) bool {
		return p < lo || p > hi
	})
}
