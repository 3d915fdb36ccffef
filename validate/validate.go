// Command validate provides a small CLI that validates mission text files in
// the ../missions directory. It checks:
//   - Mission structure (plateau line plus position/program pairs)
//   - Integer coordinates and plateau bounds
//   - Direction and command letters
//   - Start positions inside the plateau
//
// For valid files it also reports execution statistics: final positions,
// rejected boundary moves, and rovers sharing a start cell.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/roversim/plateau/rover/engine"
	"github.com/roversim/plateau/rover/formatter"
	"github.com/roversim/plateau/rover/parser"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateMission loads and validates a single mission text file. It performs
// the full fail-fast parse and, on success, executes the mission to gather
// informational statistics.
func validateMission(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	mission, err := parser.Parse(string(data))
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	totalCommands := 0
	rejectedMoves := 0
	finals := make([]engine.RoverState, len(mission.Rovers))
	for i, rover := range mission.Rovers {
		totalCommands += len(rover.Commands)
		steps, final := engine.ExecuteTrace(rover.Start, rover.Commands, mission.Plateau)
		finals[i] = final
		for _, s := range steps {
			if s.Rejected {
				rejectedMoves++
			}
		}
	}

	// Rovers sharing a start cell are legal but usually a mistake worth flagging
	starts := make(map[engine.Position][]int)
	for i, rover := range mission.Rovers {
		starts[rover.Start.Position] = append(starts[rover.Start.Position], i+1)
	}

	result.Errors = append(result.Errors, fmt.Sprintf("✓ Plateau: %dx%d", mission.Plateau.MaxX, mission.Plateau.MaxY))
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Rovers: %d", len(mission.Rovers)))
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Commands: %d", totalCommands))
	if rejectedMoves > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Rejected boundary moves during execution: %d", rejectedMoves))
	}
	for pos, indices := range starts {
		if len(indices) > 1 {
			result.Errors = append(result.Errors, fmt.Sprintf("✓ Note: rovers %v share start cell (%d, %d)", indices, pos.X, pos.Y))
		}
	}
	result.Errors = append(result.Errors, "✓ Report: "+strings.ReplaceAll(formatter.Report(finals), "\n", " | "))

	return result
}

// main scans ../missions for *.txt files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	missionsDir := "../missions"
	files, err := filepath.Glob(filepath.Join(missionsDir, "*.txt"))
	if err != nil {
		fmt.Printf("Error finding mission files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateMission(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All missions are valid!")
	} else {
		fmt.Println("❌ Some missions have errors")
		os.Exit(1)
	}
}
