package main

import (
	"fmt"
	"math/rand"
	"strings"
)

// Generator produces random but always well-formed mission text: a random
// plateau, a handful of rovers starting inside the bounds, and command
// programs drawn from L, R and M.
type Generator struct {
	rng         *rand.Rand
	maxSize     int
	maxRovers   int
	maxCommands int
}

func NewGenerator(seed int64, maxSize, maxRovers, maxCommands int) *Generator {
	return &Generator{
		rng:         rand.New(rand.NewSource(seed)),
		maxSize:     maxSize,
		maxRovers:   maxRovers,
		maxCommands: maxCommands,
	}
}

// NextMission returns the text of a freshly generated mission.
func (g *Generator) NextMission() string {
	maxX := g.rng.Intn(g.maxSize + 1)
	maxY := g.rng.Intn(g.maxSize + 1)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d\n", maxX, maxY)

	rovers := 1 + g.rng.Intn(g.maxRovers)
	directions := []string{"N", "E", "S", "W"}
	letters := []byte{'L', 'R', 'M'}

	for i := 0; i < rovers; i++ {
		x := g.rng.Intn(maxX + 1)
		y := g.rng.Intn(maxY + 1)
		dir := directions[g.rng.Intn(len(directions))]
		fmt.Fprintf(&sb, "%d %d %s\n", x, y, dir)

		count := 1 + g.rng.Intn(g.maxCommands)
		program := make([]byte, count)
		for j := range program {
			program[j] = letters[g.rng.Intn(len(letters))]
		}
		sb.Write(program)
		sb.WriteByte('\n')
	}

	return sb.String()
}
