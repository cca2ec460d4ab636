package model

import "fmt"

// Direction names the way a curve family is read on a chart.
type Direction string

// Cardinal directions.
const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Directions lists every cardinal direction in a stable order.
var Directions = []Direction{Down, Left, Right, Up}

// ParseDirection validates a direction name.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case Up, Down, Left, Right:
		return d, nil
	default:
		return "", fmt.Errorf("unknown flow direction %q", s)
	}
}

// IsDirection reports whether name is one of the cardinal directions.
func IsDirection(name string) bool {
	_, err := ParseDirection(name)
	return err == nil
}
