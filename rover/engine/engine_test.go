package engine

import (
	"math/rand"
	"testing"
)

// commandsFromLetters builds a command slice from canonical letters. Test
// inputs are assumed valid; the parser owns rejection of anything else.
func commandsFromLetters(t *testing.T, letters string) []Command {
	t.Helper()
	cmds := make([]Command, 0, len(letters))
	for i := 0; i < len(letters); i++ {
		switch letters[i] {
		case 'L':
			cmds = append(cmds, TurnLeft)
		case 'R':
			cmds = append(cmds, TurnRight)
		case 'M':
			cmds = append(cmds, MoveForward)
		default:
			t.Fatalf("invalid test command letter %q", string(letters[i]))
		}
	}
	return cmds
}

func TestExecuteEmptySequenceIsIdentity(t *testing.T) {
	plateau := Plateau{MaxX: 5, MaxY: 5}
	start := RoverState{Position: Position{X: 3, Y: 4}, Direction: East}

	if got := Execute(start, nil, plateau); got != start {
		t.Errorf("Expected %+v on empty sequence, got %+v", start, got)
	}
}

func TestExecuteScenarios(t *testing.T) {
	tests := []struct {
		name     string
		plateau  Plateau
		start    RoverState
		commands string
		want     RoverState
	}{
		{
			name:     "first reference rover",
			plateau:  Plateau{MaxX: 5, MaxY: 5},
			start:    RoverState{Position: Position{X: 1, Y: 2}, Direction: North},
			commands: "LMLMLMLMM",
			want:     RoverState{Position: Position{X: 1, Y: 3}, Direction: North},
		},
		{
			name:     "second reference rover",
			plateau:  Plateau{MaxX: 5, MaxY: 5},
			start:    RoverState{Position: Position{X: 3, Y: 3}, Direction: East},
			commands: "MMRMMRMRRM",
			want:     RoverState{Position: Position{X: 5, Y: 1}, Direction: East},
		},
		{
			name:     "boundary rejected on both legs",
			plateau:  Plateau{MaxX: 2, MaxY: 2},
			start:    RoverState{Position: Position{X: 0, Y: 0}, Direction: North},
			commands: "MMMRMMM",
			want:     RoverState{Position: Position{X: 2, Y: 2}, Direction: East},
		},
		{
			name:     "single cell plateau rejects every move",
			plateau:  Plateau{MaxX: 0, MaxY: 0},
			start:    RoverState{Position: Position{X: 0, Y: 0}, Direction: North},
			commands: "MMMM",
			want:     RoverState{Position: Position{X: 0, Y: 0}, Direction: North},
		},
		{
			name:     "turns never change position",
			plateau:  Plateau{MaxX: 1, MaxY: 1},
			start:    RoverState{Position: Position{X: 1, Y: 0}, Direction: South},
			commands: "LLLLRRRR",
			want:     RoverState{Position: Position{X: 1, Y: 0}, Direction: South},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Execute(tt.start, commandsFromLetters(t, tt.commands), tt.plateau)
			if got != tt.want {
				t.Errorf("Expected final state %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestExecuteBoundaryContainment(t *testing.T) {
	// Adversarial sequences must never escape the plateau.
	rng := rand.New(rand.NewSource(42))
	plateau := Plateau{MaxX: 3, MaxY: 2}
	letters := []Command{TurnLeft, TurnRight, MoveForward}

	for trial := 0; trial < 100; trial++ {
		start := RoverState{
			Position:  Position{X: rng.Intn(plateau.MaxX + 1), Y: rng.Intn(plateau.MaxY + 1)},
			Direction: Direction(rng.Intn(4)),
		}

		cmds := make([]Command, 500)
		for i := range cmds {
			cmds[i] = letters[rng.Intn(len(letters))]
		}

		final := Execute(start, cmds, plateau)
		if !plateau.Contains(final.Position) {
			t.Fatalf("Trial %d: final position %+v escaped plateau %+v", trial, final.Position, plateau)
		}
	}
}

func TestExecuteTraceMatchesExecute(t *testing.T) {
	plateau := Plateau{MaxX: 5, MaxY: 5}
	start := RoverState{Position: Position{X: 1, Y: 2}, Direction: North}
	cmds := commandsFromLetters(t, "LMLMLMLMM")

	steps, final := ExecuteTrace(start, cmds, plateau)

	if want := Execute(start, cmds, plateau); final != want {
		t.Errorf("Expected trace final state %+v, got %+v", want, final)
	}
	if len(steps) != len(cmds) {
		t.Fatalf("Expected %d steps, got %d", len(cmds), len(steps))
	}

	// Steps must chain: each From equals the previous To.
	prev := start
	for _, step := range steps {
		if step.From != prev {
			t.Errorf("Step %d: expected from %+v, got %+v", step.Idx, prev, step.From)
		}
		prev = step.To
	}
}

func TestExecuteTraceRejectedMoves(t *testing.T) {
	plateau := Plateau{MaxX: 0, MaxY: 0}
	start := RoverState{Position: Position{X: 0, Y: 0}, Direction: North}

	steps, final := ExecuteTrace(start, commandsFromLetters(t, "MMLM"), plateau)

	if final != start {
		t.Errorf("Expected pinned rover to stay at %+v, got %+v", start, final)
	}

	rejected := 0
	for _, step := range steps {
		if step.Moved {
			t.Errorf("Step %d: expected no movement on single-cell plateau", step.Idx)
		}
		if step.Rejected {
			rejected++
		}
	}
	if rejected != 3 {
		t.Errorf("Expected 3 rejected moves, got %d", rejected)
	}
}

func TestExecuteMissionPreservesOrder(t *testing.T) {
	mission := Mission{
		Plateau: Plateau{MaxX: 5, MaxY: 5},
		Rovers: []RoverInput{
			{
				Start:    RoverState{Position: Position{X: 1, Y: 2}, Direction: North},
				Commands: commandsFromLetters(t, "LMLMLMLMM"),
			},
			{
				Start:    RoverState{Position: Position{X: 3, Y: 3}, Direction: East},
				Commands: commandsFromLetters(t, "MMRMMRMRRM"),
			},
		},
	}

	finals := ExecuteMission(mission)

	if len(finals) != 2 {
		t.Fatalf("Expected 2 final states, got %d", len(finals))
	}

	want0 := RoverState{Position: Position{X: 1, Y: 3}, Direction: North}
	want1 := RoverState{Position: Position{X: 5, Y: 1}, Direction: East}
	if finals[0] != want0 {
		t.Errorf("Expected rover 1 final %+v, got %+v", want0, finals[0])
	}
	if finals[1] != want1 {
		t.Errorf("Expected rover 2 final %+v, got %+v", want1, finals[1])
	}
}

func TestExecuteMissionManyRovers(t *testing.T) {
	// Results must line up with inputs even when many rovers run concurrently.
	plateau := Plateau{MaxX: 100, MaxY: 100}
	mission := Mission{Plateau: plateau}

	for i := 0; i < 50; i++ {
		mission.Rovers = append(mission.Rovers, RoverInput{
			Start:    RoverState{Position: Position{X: i, Y: 0}, Direction: North},
			Commands: commandsFromLetters(t, "M"),
		})
	}

	finals := ExecuteMission(mission)
	for i, final := range finals {
		want := RoverState{Position: Position{X: i, Y: 1}, Direction: North}
		if final != want {
			t.Errorf("Rover %d: expected %+v, got %+v", i, want, final)
		}
	}
}

func TestPlateauContains(t *testing.T) {
	plateau := Plateau{MaxX: 5, MaxY: 3}

	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{"origin", Position{0, 0}, true},
		{"upper right corner", Position{5, 3}, true},
		{"interior", Position{2, 1}, true},
		{"x above max", Position{6, 3}, false},
		{"y above max", Position{5, 4}, false},
		{"negative x", Position{-1, 0}, false},
		{"negative y", Position{0, -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := plateau.Contains(tt.pos); got != tt.want {
				t.Errorf("Expected Contains(%+v) = %v, got %v", tt.pos, tt.want, got)
			}
		})
	}
}
