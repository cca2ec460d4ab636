package chart

import (
	"cmp"
	"math"
	"slices"

	m "perfchart.dev/pkg/perfchart/internal/model"
)

func sub(a, b m.Point) m.Point { return m.Point{a[0] - b[0], a[1] - b[1]} }

func dot(a, b m.Point) float64 { return a[0]*b[0] + a[1]*b[1] }

func cross(a, b m.Point) float64 { return a[0]*b[1] - a[1]*b[0] }

// segmentIntersection intersects segments (p1, p2) and (p3, p4). It returns
// the parameter t of the crossing along p1->p2 and the crossing itself.
func segmentIntersection(p1, p2, p3, p4 m.Point) (float64, m.Point, bool) {
	r, s := sub(p2, p1), sub(p4, p3)
	qp := sub(p3, p1)

	denom := cross(r, s)
	if math.Abs(denom) < epsilon {
		return touching(p1, p2, p3, p4)
	}

	t := cross(qp, s) / denom
	u := cross(qp, r) / denom

	if t < -epsilon || t > 1+epsilon || u < -epsilon || u > 1+epsilon {
		return 0, m.Point{}, false
	}

	t = min(max(t, 0), 1)

	return t, m.Point{lerp(t, p1[0], p2[0]), lerp(t, p1[1], p2[1])}, true
}

// touching handles parallel and zero-length segments: the earliest endpoint
// along p1->p2 that lies on both segments wins.
func touching(p1, p2, p3, p4 m.Point) (float64, m.Point, bool) {
	r := sub(p2, p1)
	rr := dot(r, r)

	param := func(q m.Point) float64 {
		if rr == 0 {
			return 0
		}

		return dot(sub(q, p1), r) / rr
	}

	found := false
	bestT := math.Inf(1)

	var best m.Point

	for _, q := range []m.Point{p1, p2, p3, p4} {
		if pointSegmentDistance(q, p1, p2) > epsilon || pointSegmentDistance(q, p3, p4) > epsilon {
			continue
		}

		if t := param(q); t < bestT {
			found, bestT, best = true, t, q
		}
	}

	return bestT, best, found
}

func pointSegmentDistance(p, v, w m.Point) float64 {
	l := sub(w, v)

	l2 := dot(l, l)
	if l2 == 0 {
		return math.Hypot(p[0]-v[0], p[1]-v[1])
	}

	t := min(max(dot(sub(p, v), l)/l2, 0), 1)
	proj := m.Point{lerp(t, v[0], w[0]), lerp(t, v[1], w[1])}

	return math.Hypot(p[0]-proj[0], p[1]-proj[1])
}

// PolarSort orders unordered polygon vertices by angle around their centroid
// and closes the ring by repeating the first vertex.
func PolarSort(points m.Path) m.Path {
	if len(points) == 0 {
		return m.Path{}
	}

	var cx, cy float64
	for _, pt := range points {
		cx += pt[0]
		cy += pt[1]
	}

	cx /= float64(len(points))
	cy /= float64(len(points))

	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b m.Point) int {
		return cmp.Compare(math.Atan2(a[1]-cy, a[0]-cx), math.Atan2(b[1]-cy, b[0]-cx))
	})

	return append(sorted, sorted[0])
}

// PointInPolygon reports whether p lies inside the polygon or on its boundary.
// The polygon may be open or closed.
func PointInPolygon(p m.Point, polygon m.Path) bool {
	n := len(polygon)
	for i := range n {
		if pointSegmentDistance(p, polygon[i], polygon[(i+1)%n]) <= epsilon {
			return true
		}
	}

	inside := false

	for i := range n {
		p0, p1 := polygon[i], polygon[(i+1)%n]
		if (p0[1] <= p[1] && p[1] < p1[1]) || (p1[1] <= p[1] && p[1] < p0[1]) {
			x := p0[0] + (p[1]-p0[1])*(p1[0]-p0[0])/(p1[1]-p0[1])
			if x > p[0] {
				inside = !inside
			}
		}
	}

	return inside
}
