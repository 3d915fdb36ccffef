package main

import (
	"testing"

	"github.com/roversim/plateau/rover/parser"
)

func TestGeneratorProducesValidMissions(t *testing.T) {
	gen := NewGenerator(42, 8, 4, 40)

	for i := 0; i < 100; i++ {
		text := gen.NextMission()

		mission, err := parser.Parse(text)
		if err != nil {
			t.Fatalf("Generated mission %d failed to parse: %v\n%s", i, err, text)
		}

		if len(mission.Rovers) < 1 || len(mission.Rovers) > 4 {
			t.Errorf("Expected 1-4 rovers, got %d", len(mission.Rovers))
		}
		if mission.Plateau.MaxX > 8 || mission.Plateau.MaxY > 8 {
			t.Errorf("Plateau %dx%d exceeds configured maximum", mission.Plateau.MaxX, mission.Plateau.MaxY)
		}

		for j, rover := range mission.Rovers {
			if !mission.Plateau.Contains(rover.Start.Position) {
				t.Errorf("Rover %d starts outside plateau: (%d, %d)",
					j+1, rover.Start.Position.X, rover.Start.Position.Y)
			}
			if len(rover.Commands) < 1 || len(rover.Commands) > 40 {
				t.Errorf("Expected 1-40 commands, got %d", len(rover.Commands))
			}
		}
	}
}

func TestGeneratorDeterministicForSeed(t *testing.T) {
	gen1 := NewGenerator(7, 5, 3, 20)
	gen2 := NewGenerator(7, 5, 3, 20)

	for i := 0; i < 10; i++ {
		m1 := gen1.NextMission()
		m2 := gen2.NextMission()
		if m1 != m2 {
			t.Fatalf("Mission %d differs for identical seeds:\n%s\nvs\n%s", i, m1, m2)
		}
	}
}

func TestGeneratorDegeneratePlateau(t *testing.T) {
	// maxSize 0 forces a 0x0 plateau where every move is rejected
	gen := NewGenerator(1, 0, 2, 10)

	text := gen.NextMission()
	mission, err := parser.Parse(text)
	if err != nil {
		t.Fatalf("Failed to parse degenerate mission: %v\n%s", err, text)
	}

	if mission.Plateau.MaxX != 0 || mission.Plateau.MaxY != 0 {
		t.Errorf("Expected 0x0 plateau, got %dx%d", mission.Plateau.MaxX, mission.Plateau.MaxY)
	}
	for i, rover := range mission.Rovers {
		if rover.Start.Position.X != 0 || rover.Start.Position.Y != 0 {
			t.Errorf("Rover %d should start at origin, got (%d, %d)",
				i+1, rover.Start.Position.X, rover.Start.Position.Y)
		}
	}
}
