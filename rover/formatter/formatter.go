// Package formatter renders final rover states back to the canonical mission
// report text consumed by CLIs, the REST API, and MCP tools.
package formatter

import (
	"fmt"
	"strings"

	"github.com/roversim/plateau/rover/engine"
)

// State renders a single rover state as "<x> <y> <DIR>" with single-space
// separators.
func State(s engine.RoverState) string {
	return fmt.Sprintf("%d %d %s", s.Position.X, s.Position.Y, s.Direction)
}

// Report renders one line per rover in the given order, newline-joined with no
// trailing newline.
func Report(states []engine.RoverState) string {
	lines := make([]string, len(states))
	for i, s := range states {
		lines[i] = State(s)
	}
	return strings.Join(lines, "\n")
}
