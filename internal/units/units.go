// Package units converts aviation quantities between the units charts are drawn in.
package units

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrNoConversion is returned for unit pairs without a known conversion.
var ErrNoConversion = errors.New("no conversion")

// Unit names as they appear in chart definitions.
const (
	Celsius         = "degrees celsius"
	Fahrenheit      = "degrees fahrenheit"
	Feet            = "feet"
	Meters          = "meters"
	FeetPerMinute   = "feet per minute"
	MetersPerSecond = "meters per second"
	Pounds          = "pounds"
	Kilograms       = "kilograms"
	Gallons         = "gallons"
	Liters          = "liters"
	InchesOfMercury = "inches of mercury"
	Hectopascals    = "hectopascals"
	Knots           = "knots"
	KilometersPerHr = "kilometers per hour"
	NauticalMiles   = "nautical miles"
	Kilometers      = "kilometers"
	Inches          = "inches"
	Millimeters     = "millimeters"
)

// standardPressure is the ISA sea level pressure in inches of mercury.
const standardPressure = 29.92

type conversion struct {
	proportion float64
	adjustment float64
}

// conversions holds to = from*proportion + adjustment per (from, to) pair.
// The reverse direction is derived.
var conversions = map[[2]string]conversion{
	{Celsius, Fahrenheit}:            {9.0 / 5.0, 32},
	{Feet, Meters}:                   {0.3048, 0},
	{FeetPerMinute, MetersPerSecond}: {0.00508, 0},
	{Pounds, Kilograms}:              {0.453592, 0},
	{Gallons, Liters}:                {3.785411784, 0},
	{InchesOfMercury, Hectopascals}:  {33.8639, 0},
	{Knots, KilometersPerHr}:         {1.852, 0},
	{NauticalMiles, Kilometers}:      {1.852, 0},
	{Inches, Millimeters}:            {25.4, 0},
}

// Convert converts value from one unit to another.
func Convert(value float64, from, to string) (float64, error) {
	if from == to {
		return value, nil
	}

	if c, ok := conversions[[2]string{from, to}]; ok {
		return value*c.proportion + c.adjustment, nil
	}

	if c, ok := conversions[[2]string{to, from}]; ok {
		return (value - c.adjustment) / c.proportion, nil
	}

	return 0, fmt.Errorf("%w: %s to %s", ErrNoConversion, from, to)
}

// Known lists every unit with at least one conversion, sorted.
func Known() []string {
	var names []string
	for pair := range conversions {
		names = append(names, pair[0], pair[1])
	}

	slices.Sort(names)

	return slices.Compact(names)
}

// PressureAltitude converts an indicated altitude in feet and an altimeter
// setting in inches of mercury to pressure altitude in feet.
func PressureAltitude(indicated, altimeter float64) float64 {
	return indicated + 145442.2*(1-math.Pow(altimeter/standardPressure, 0.190261))
}
