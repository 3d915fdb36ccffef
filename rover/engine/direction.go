package engine

import (
	"fmt"
	"strings"
)

// Direction is one of the four compass headings a rover can face. The public
// contract is the enum; the integer value is only used for mod-4 rotation.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// deltas holds the unit displacement vector for each heading, indexed by
// Direction value.
var deltas = [4]Position{
	North: {X: 0, Y: 1},
	East:  {X: 1, Y: 0},
	South: {X: 0, Y: -1},
	West:  {X: -1, Y: 0},
}

var letters = [4]string{
	North: "N",
	East:  "E",
	South: "S",
	West:  "W",
}

// Left returns the heading after a 90-degree counter-clockwise turn.
// Left and Right are mutual inverses; four applications are the identity.
func (d Direction) Left() Direction {
	return (d + 3) % 4
}

// Right returns the heading after a 90-degree clockwise turn.
func (d Direction) Right() Direction {
	return (d + 1) % 4
}

// Delta returns the unit displacement a forward move applies for this heading.
func (d Direction) Delta() Position {
	return deltas[d]
}

// String returns the single-letter rendering used in mission text and reports.
func (d Direction) String() string {
	return letters[d]
}

// MarshalJSON renders the heading as its letter so API payloads and persisted
// sessions stay readable.
func (d Direction) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts the single-letter rendering, case-insensitively.
func (d *Direction) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, ok := ParseDirection(s)
	if !ok {
		return fmt.Errorf("invalid direction %q", s)
	}
	*d = parsed
	return nil
}

// ParseDirection matches a direction letter case-insensitively against
// {N,E,S,W}. The boolean is false for anything else.
func ParseDirection(letter string) (Direction, bool) {
	switch strings.ToUpper(letter) {
	case "N":
		return North, true
	case "E":
		return East, true
	case "S":
		return South, true
	case "W":
		return West, true
	default:
		return North, false
	}
}
