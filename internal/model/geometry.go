// Package model holds the value types shared by the chart engine, the calculators and the CLI.
package model

import (
	"strconv"
	"strings"
)

// Point is an (x, y) location in chart coordinates.
type Point [2]float64

// X returns the horizontal coordinate.
func (p Point) X() float64 { return p[0] }

// Y returns the vertical coordinate.
func (p Point) Y() float64 { return p[1] }

// Path is an ordered sequence of points.
type Path []Point

// SVG renders the path as an SVG path string ("M x y L x y ...").
func (p Path) SVG() string {
	var b strings.Builder

	for i, pt := range p {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}

		b.WriteString(strconv.FormatFloat(pt[0], 'f', -1, 64))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(pt[1], 'f', -1, 64))
	}

	return b.String()
}

// Box is an axis-aligned rectangle given by its minimum and maximum corners.
type Box [2]Point

// Extend grows the box so that it contains pt.
func (b Box) Extend(pt Point) Box {
	return Box{
		{min(b[0][0], pt[0]), min(b[0][1], pt[1])},
		{max(b[1][0], pt[0]), max(b[1][1], pt[1])},
	}
}

// Union returns the smallest box containing both boxes.
func (b Box) Union(other Box) Box {
	return b.Extend(other[0]).Extend(other[1])
}

// BoundsOf returns the bounding box of a non-empty path.
func BoundsOf(path Path) Box {
	if len(path) == 0 {
		return Box{}
	}

	box := Box{path[0], path[0]}
	for _, pt := range path[1:] {
		box = box.Extend(pt)
	}

	return box
}
