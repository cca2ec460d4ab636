package chart

import m "perfchart.dev/pkg/perfchart/internal/model"

// Scale is a guide whose parameter values are readings of a named variable.
type Scale struct {
	*Guide

	variable   string
	unit       string
	valueRange [2]float64
}

// NewScale builds a scale; its range spans the smallest and largest entry values.
func NewScale(name string, entries []Entry, direction m.Direction, variable, unit string) (*Scale, error) {
	guide, err := NewGuide(name, entries, direction)
	if err != nil {
		return nil, err
	}

	return &Scale{
		Guide:      guide,
		variable:   variable,
		unit:       unit,
		valueRange: [2]float64{guide.entries[0].Value, guide.entries[len(guide.entries)-1].Value},
	}, nil
}

// Variable returns the input or output name the scale reads.
func (s *Scale) Variable() string { return s.variable }

// Unit returns the unit of the scale's values.
func (s *Scale) Unit() string { return s.unit }

// Range returns the smallest and largest stored values.
func (s *Scale) Range() [2]float64 { return s.valueRange }
