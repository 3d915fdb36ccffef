package engine

import (
	"fmt"
	"strings"
)

// Command is a single instruction consumed by the execution engine.
type Command int

const (
	TurnLeft Command = iota
	TurnRight
	MoveForward
)

// Letter returns the canonical uppercase command letter.
func (c Command) Letter() byte {
	switch c {
	case TurnLeft:
		return 'L'
	case TurnRight:
		return 'R'
	default:
		return 'M'
	}
}

// MarshalJSON renders the command as its letter.
func (c Command) MarshalJSON() ([]byte, error) {
	return []byte(`"` + string(c.Letter()) + `"`), nil
}

// UnmarshalJSON accepts L, R or M, case-insensitively.
func (c *Command) UnmarshalJSON(data []byte) error {
	switch strings.ToUpper(strings.Trim(string(data), `"`)) {
	case "L":
		*c = TurnLeft
	case "R":
		*c = TurnRight
	case "M":
		*c = MoveForward
	default:
		return fmt.Errorf("invalid command %q", string(data))
	}
	return nil
}

// String implements fmt.Stringer for logs and traces.
func (c Command) String() string {
	switch c {
	case TurnLeft:
		return "turn_left"
	case TurnRight:
		return "turn_right"
	default:
		return "move_forward"
	}
}

// Position represents x,y coordinates on the plateau.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Plateau defines the inclusive bounds [0,MaxX] x [0,MaxY] a rover may occupy.
// It is constructed once by the parser and never mutated.
type Plateau struct {
	MaxX int `json:"max_x"`
	MaxY int `json:"max_y"`
}

// Contains reports whether p lies within the plateau's inclusive bounds.
func (pl Plateau) Contains(p Position) bool {
	return p.X >= 0 && p.X <= pl.MaxX && p.Y >= 0 && p.Y <= pl.MaxY
}

// RoverState is a rover's complete instantaneous snapshot. States are produced
// fresh at each step and never mutated in place.
type RoverState struct {
	Position  Position  `json:"position"`
	Direction Direction `json:"direction"`
}

// RoverInput is one rover's program: a validated starting state plus the
// command sequence to fold over it.
type RoverInput struct {
	Start    RoverState `json:"start"`
	Commands []Command  `json:"commands"`
}

// CommandLetters renders the program's commands as the canonical L/R/M string.
func (r RoverInput) CommandLetters() string {
	letters := make([]byte, len(r.Commands))
	for i, c := range r.Commands {
		letters[i] = c.Letter()
	}
	return string(letters)
}

// Mission is the parser's sole output: plateau bounds plus the rover programs
// in input order. Rovers are reported in the order given.
type Mission struct {
	Plateau Plateau      `json:"plateau"`
	Rovers  []RoverInput `json:"rovers"`
}
