package engine

import "sync"

// Step records the outcome of a single executed command. Steps feed the trace
// API, session history, and WebSocket broadcasts.
type Step struct {
	Idx      int        `json:"idx"` // 1-based position in the command sequence
	Command  Command    `json:"command"`
	From     RoverState `json:"from"`
	To       RoverState `json:"to"`
	Moved    bool       `json:"moved"`
	Rejected bool       `json:"rejected,omitempty"` // move discarded at the boundary
}

// Execute folds a command sequence over a starting state and returns the final
// state. It is pure and total: out-of-bounds moves are discarded as no-ops and
// execution always runs the sequence to completion. An empty sequence returns
// the start state unchanged.
func Execute(start RoverState, cmds []Command, plateau Plateau) RoverState {
	state := start
	for _, cmd := range cmds {
		state = apply(state, cmd, plateau)
	}
	return state
}

// ExecuteTrace runs the same fold as Execute while recording one Step per
// command. The returned final state always equals Execute over the same input.
func ExecuteTrace(start RoverState, cmds []Command, plateau Plateau) ([]Step, RoverState) {
	steps := make([]Step, 0, len(cmds))
	state := start
	for i, cmd := range cmds {
		next := apply(state, cmd, plateau)
		steps = append(steps, Step{
			Idx:      i + 1,
			Command:  cmd,
			From:     state,
			To:       next,
			Moved:    next.Position != state.Position,
			Rejected: cmd == MoveForward && next.Position == state.Position,
		})
		state = next
	}
	return steps, state
}

// apply advances the state by one command. Turns rotate the heading in place;
// a forward move commits the candidate position only when it stays on the
// plateau.
func apply(state RoverState, cmd Command, plateau Plateau) RoverState {
	switch cmd {
	case TurnLeft:
		state.Direction = state.Direction.Left()
	case TurnRight:
		state.Direction = state.Direction.Right()
	case MoveForward:
		delta := state.Direction.Delta()
		candidate := Position{X: state.Position.X + delta.X, Y: state.Position.Y + delta.Y}
		if plateau.Contains(candidate) {
			state.Position = candidate
		}
	}
	return state
}

// ExecuteMission executes every rover program in the mission and returns the
// final states in input order. Rovers are independent, so they run as a
// parallel map with results re-sequenced by index before reporting.
func ExecuteMission(m Mission) []RoverState {
	finals := make([]RoverState, len(m.Rovers))

	var wg sync.WaitGroup
	for i, rover := range m.Rovers {
		wg.Add(1)
		go func(i int, rover RoverInput) {
			defer wg.Done()
			finals[i] = Execute(rover.Start, rover.Commands, m.Plateau)
		}(i, rover)
	}
	wg.Wait()

	return finals
}
