package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/roversim/plateau/rover/engine"
)

const referenceMission = "5 5\n1 2 N\nLMLMLMLMM\n3 3 E\nMMRMMRMRRM"

func TestParseReferenceMission(t *testing.T) {
	mission, err := Parse(referenceMission)
	if err != nil {
		t.Fatalf("Failed to parse reference mission: %v", err)
	}

	if mission.Plateau.MaxX != 5 || mission.Plateau.MaxY != 5 {
		t.Errorf("Expected plateau (5, 5), got (%d, %d)", mission.Plateau.MaxX, mission.Plateau.MaxY)
	}
	if len(mission.Rovers) != 2 {
		t.Fatalf("Expected 2 rovers, got %d", len(mission.Rovers))
	}

	first := mission.Rovers[0]
	if first.Start.Position != (engine.Position{X: 1, Y: 2}) || first.Start.Direction != engine.North {
		t.Errorf("Expected rover 1 start (1, 2, N), got %+v", first.Start)
	}
	if first.CommandLetters() != "LMLMLMLMM" {
		t.Errorf("Expected rover 1 commands LMLMLMLMM, got %s", first.CommandLetters())
	}

	second := mission.Rovers[1]
	if second.Start.Position != (engine.Position{X: 3, Y: 3}) || second.Start.Direction != engine.East {
		t.Errorf("Expected rover 2 start (3, 3, E), got %+v", second.Start)
	}
	if second.CommandLetters() != "MMRMMRMRRM" {
		t.Errorf("Expected rover 2 commands MMRMMRMRRM, got %s", second.CommandLetters())
	}
}

func TestParseTolerantFormatting(t *testing.T) {
	// Blank lines, leading/trailing whitespace, tab separators and lowercase
	// letters all carry the same mission.
	raw := "\n  5\t5  \n\n  1  2   n\n\nlmlmlmlmm  \n"

	mission, err := Parse(raw)
	if err != nil {
		t.Fatalf("Failed to parse loosely formatted mission: %v", err)
	}

	if len(mission.Rovers) != 1 {
		t.Fatalf("Expected 1 rover, got %d", len(mission.Rovers))
	}
	if mission.Rovers[0].Start.Direction != engine.North {
		t.Errorf("Expected direction N, got %s", mission.Rovers[0].Start.Direction)
	}
	if mission.Rovers[0].CommandLetters() != "LMLMLMLMM" {
		t.Errorf("Expected uppercased commands, got %s", mission.Rovers[0].CommandLetters())
	}
}

func TestParseZeroSizePlateau(t *testing.T) {
	mission, err := Parse("0 0\n0 0 N\nMMMM")
	if err != nil {
		t.Fatalf("Failed to parse single-cell plateau mission: %v", err)
	}
	if mission.Plateau.MaxX != 0 || mission.Plateau.MaxY != 0 {
		t.Errorf("Expected plateau (0, 0), got %+v", mission.Plateau)
	}
}

func TestParseFailures(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"empty string", "", ErrEmptyInput},
		{"only whitespace", " \n\t\n  \n", ErrEmptyInput},
		{"plateau only", "5 5", ErrStructure},
		{"plateau and position only", "5 5\n1 2 N", ErrStructure},
		{"odd rover lines", "5 5\n1 2 N\nLM\n3 3 E", ErrStructure},
		{"plateau single field", "5\n1 2 N\nLM", ErrFormat},
		{"plateau three fields", "5 5 5\n1 2 N\nLM", ErrFormat},
		{"plateau non-numeric", "a 5\n1 2 N\nLM", ErrIntegerParse},
		{"plateau fractional", "5.0 5\n1 2 N\nLM", ErrIntegerParse},
		{"plateau NaN", "NaN 5\n1 2 N\nLM", ErrIntegerParse},
		{"plateau infinity", "Infinity 5\n1 2 N\nLM", ErrIntegerParse},
		{"plateau negative", "-1 5\n1 2 N\nLM", ErrRange},
		{"position two fields", "5 5\n1 2\nLM", ErrFormat},
		{"position four fields", "5 5\n1 2 N N\nLM", ErrFormat},
		{"position non-numeric x", "5 5\nx 2 N\nLM", ErrIntegerParse},
		{"position fractional y", "5 5\n1 2.5 N\nLM", ErrIntegerParse},
		{"invalid direction letter", "5 5\n1 2 Q\nLM", ErrInvalidDirection},
		{"direction word", "5 5\n1 2 NORTH\nLM", ErrInvalidDirection},
		{"start outside plateau x", "5 5\n6 2 N\nLM", ErrRange},
		{"start outside plateau y", "5 5\n2 6 N\nLM", ErrRange},
		{"start negative", "5 5\n-1 2 N\nLM", ErrRange},
		{"commands with digit", "5 5\n1 2 N\nLM3RM", ErrInvalidCommand},
		{"commands with other letter", "5 5\n1 2 N\nLMXRM", ErrInvalidCommand},
		{"commands with internal space", "5 5\n1 2 N\nLM RM", ErrInvalidCommand},
		{"second rover bad commands", "5 5\n1 2 N\nLM\n3 3 E\nMMQ", ErrInvalidCommand},
		{"second rover out of bounds", "5 5\n1 2 N\nLM\n9 9 E\nMM", ErrRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mission, err := Parse(tt.raw)
			if err == nil {
				t.Fatalf("Expected error wrapping %v, got mission %+v", tt.wantErr, mission)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error wrapping %v, got %v", tt.wantErr, err)
			}
			if mission != nil {
				t.Errorf("Expected nil mission on failure, got %+v", mission)
			}
		})
	}
}

func TestParseErrorNamesOffendingValue(t *testing.T) {
	_, err := Parse("5 5\n6 2 N\nLM")
	if err == nil {
		t.Fatal("Expected out-of-bounds error")
	}

	// Message must report both the offending point and the bounds.
	msg := err.Error()
	for _, want := range []string{"(6, 2)", "[0,5]x[0,5]"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected error message to contain %q, got %q", want, msg)
		}
	}
}

func TestParseFailFast(t *testing.T) {
	// The plateau error must win even though later lines are also invalid.
	_, err := Parse("bad plateau here\n9 9 Q\nXYZ")
	if !errors.Is(err, ErrFormat) {
		t.Errorf("Expected first violation (plateau format), got %v", err)
	}
}
