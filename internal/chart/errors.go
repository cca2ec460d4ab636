package chart

import "errors"

// Geometry errors. They are returned wrapped with context; test with errors.Is.
var (
	ErrDirectionMismatch = errors.New("direction mismatch")
	ErrNoIntersection    = errors.New("no intersection")
	ErrPointNotOnContour = errors.New("point not on contour")
	ErrDegenerateContour = errors.New("contour needs at least two distinct positions")
	ErrEmptyGuide        = errors.New("guide has no contours")
	ErrDuplicateValue    = errors.New("duplicate guide value")
)
