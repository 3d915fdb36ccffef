package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roversim/plateau/rover/engine"
)

// Parse tokenizes and validates raw mission text, returning the plateau bounds
// and rover programs in input order. It fails fast at the first violation and
// never returns a partial mission.
func Parse(raw string) (*engine.Mission, error) {
	lines := usableLines(raw)

	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no mission lines found", ErrEmptyInput)
	}
	if len(lines) < 3 {
		return nil, fmt.Errorf("%w: missing rover data, need a plateau line plus at least one position/commands pair, got %d lines", ErrStructure, len(lines))
	}
	if (len(lines)-1)%2 != 0 {
		return nil, fmt.Errorf("%w: rover lines must come in pairs of position and commands, got %d after the plateau line", ErrStructure, len(lines)-1)
	}

	plateau, err := parsePlateau(lines[0])
	if err != nil {
		return nil, err
	}

	mission := &engine.Mission{Plateau: plateau}
	for i := 1; i < len(lines); i += 2 {
		roverNum := (i + 1) / 2

		start, err := parsePosition(lines[i], plateau, roverNum)
		if err != nil {
			return nil, err
		}

		commands, err := parseCommands(lines[i+1], roverNum)
		if err != nil {
			return nil, err
		}

		mission.Rovers = append(mission.Rovers, engine.RoverInput{Start: start, Commands: commands})
	}

	return mission, nil
}

// usableLines trims every line and drops the blank ones, preserving order.
func usableLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// parsePlateau validates the first mission line: exactly two non-negative
// integer fields defining the inclusive upper-right corner.
func parsePlateau(line string) (engine.Plateau, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return engine.Plateau{}, fmt.Errorf("%w: invalid plateau line %q, expected 2 fields, got %d", ErrFormat, line, len(fields))
	}

	maxX, err := parseInt(fields[0], "plateau max x")
	if err != nil {
		return engine.Plateau{}, err
	}
	maxY, err := parseInt(fields[1], "plateau max y")
	if err != nil {
		return engine.Plateau{}, err
	}

	if maxX < 0 || maxY < 0 {
		return engine.Plateau{}, fmt.Errorf("%w: plateau bounds must be non-negative, got (%d, %d)", ErrRange, maxX, maxY)
	}

	return engine.Plateau{MaxX: maxX, MaxY: maxY}, nil
}

// parsePosition validates a rover's position line: x, y and a direction
// letter, with the position inside the already-parsed plateau.
func parsePosition(line string, plateau engine.Plateau, roverNum int) (engine.RoverState, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return engine.RoverState{}, fmt.Errorf("%w: invalid position line %q for rover %d, expected 3 fields, got %d", ErrFormat, line, roverNum, len(fields))
	}

	x, err := parseInt(fields[0], fmt.Sprintf("rover %d x", roverNum))
	if err != nil {
		return engine.RoverState{}, err
	}
	y, err := parseInt(fields[1], fmt.Sprintf("rover %d y", roverNum))
	if err != nil {
		return engine.RoverState{}, err
	}

	dir, ok := engine.ParseDirection(fields[2])
	if !ok {
		return engine.RoverState{}, fmt.Errorf("%w: rover %d heading %q is not one of N, E, S, W", ErrInvalidDirection, roverNum, fields[2])
	}

	pos := engine.Position{X: x, Y: y}
	if !plateau.Contains(pos) {
		return engine.RoverState{}, fmt.Errorf("%w: rover %d starting position (%d, %d) outside plateau bounds [0,%d]x[0,%d]", ErrRange, roverNum, x, y, plateau.MaxX, plateau.MaxY)
	}

	return engine.RoverState{Position: pos, Direction: dir}, nil
}

// parseCommands validates a commands line: one or more characters, each drawn
// from {L,R,M} after uppercasing, with no separators.
func parseCommands(line string, roverNum int) ([]engine.Command, error) {
	normalized := strings.ToUpper(line)
	commands := make([]engine.Command, 0, len(normalized))

	for i := 0; i < len(normalized); i++ {
		switch normalized[i] {
		case 'L':
			commands = append(commands, engine.TurnLeft)
		case 'R':
			commands = append(commands, engine.TurnRight)
		case 'M':
			commands = append(commands, engine.MoveForward)
		default:
			return nil, fmt.Errorf("%w: rover %d commands %q contain %q, expected only L, R, M", ErrInvalidCommand, roverNum, line, string(normalized[i]))
		}
	}

	if len(commands) == 0 {
		return nil, fmt.Errorf("%w: rover %d commands line is empty", ErrInvalidCommand, roverNum)
	}

	return commands, nil
}

// parseInt requires strict integer lexical form. Decimal-looking values such
// as "2.0" are rejected even though they denote whole numbers.
func parseInt(field, what string) (int, error) {
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrIntegerParse, what, field)
	}
	return n, nil
}
