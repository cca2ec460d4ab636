package chart

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Precision is the number of decimal digits every stored coordinate is rounded to.
const Precision = 4

const (
	scale = 1e4
	// epsilon absorbs float noise when testing segment bounds.
	epsilon = 1e-9
)

func round(v float64) float64 {
	return math.Round(v*scale) / scale
}

func lerp[F constraints.Float](t, a, b F) F {
	return a + t*(b-a)
}

// inverseLerp returns t such that lerp(t, a, b) == v. A zero-length span yields 0.
func inverseLerp[F constraints.Float](v, a, b F) F {
	if b == a {
		return 0
	}

	return (v - a) / (b - a)
}

func between[F constraints.Float](v, a, b F) bool {
	lo, hi := min(a, b), max(a, b)
	return lo-epsilon <= v && v <= hi+epsilon
}
