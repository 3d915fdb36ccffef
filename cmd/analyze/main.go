// Command analyze prints quick, human-readable heuristics about mission files
// in the project's missions directory. It summarizes plateau dimensions, rover
// and command counts, boundary pressure (rejected moves), cell coverage, and
// highlights rovers that end on the same cell.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/roversim/plateau/rover/engine"
	"github.com/roversim/plateau/rover/formatter"
	"github.com/roversim/plateau/rover/parser"
)

func main() {
	files, err := filepath.Glob(filepath.Join("missions", "*.txt"))
	if err != nil {
		fmt.Printf("Error finding mission files: %v\n", err)
		return
	}

	for _, file := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(file))
		analyzeMission(file)
	}
}

func analyzeMission(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	mission, err := parser.Parse(string(data))
	if err != nil {
		fmt.Printf("Error parsing mission: %v\n", err)
		return
	}

	plateauCells := (mission.Plateau.MaxX + 1) * (mission.Plateau.MaxY + 1)
	fmt.Printf("Plateau: %d x %d (%d cells)\n", mission.Plateau.MaxX, mission.Plateau.MaxY, plateauCells)
	fmt.Printf("Rovers: %d\n", len(mission.Rovers))

	totalRejected := 0
	visited := make(map[engine.Position]bool)
	finals := make(map[engine.Position][]int)

	for i, rover := range mission.Rovers {
		steps, final := engine.ExecuteTrace(rover.Start, rover.Commands, mission.Plateau)

		rejected := 0
		visited[rover.Start.Position] = true
		for _, s := range steps {
			if s.Rejected {
				rejected++
			}
			visited[s.To.Position] = true
		}
		totalRejected += rejected
		finals[final.Position] = append(finals[final.Position], i+1)

		displacement := abs(final.Position.X-rover.Start.Position.X) + abs(final.Position.Y-rover.Start.Position.Y)
		fmt.Printf("Rover %d: %s -> %s (%d commands, %d rejected, net displacement %d)\n",
			i+1, formatter.State(rover.Start), formatter.State(final),
			len(rover.Commands), rejected, displacement)
	}

	if totalRejected > 0 {
		fmt.Printf("⚠️  WARNING: %d moves were rejected at the plateau boundary!\n", totalRejected)
		fmt.Printf("   The mission drives rovers against the fence; commands past the edge are wasted\n")
	} else {
		fmt.Printf("✅ No moves rejected at the boundary\n")
	}

	collisions := 0
	for pos, indices := range finals {
		if len(indices) > 1 {
			collisions++
			fmt.Printf("⚠️  WARNING: rovers %v end on the same cell (%d, %d)!\n", indices, pos.X, pos.Y)
		}
	}
	if collisions == 0 {
		fmt.Printf("✅ All rovers end on distinct cells\n")
	}

	coverage := float64(len(visited)) / float64(plateauCells) * 100
	fmt.Printf("Coverage: %d of %d cells visited (%.1f%%)\n", len(visited), plateauCells, coverage)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
