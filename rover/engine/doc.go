// Package engine provides the core simulation logic for the Plateau Rover
// Mission Simulator.
//
// The engine package implements:
//   - The four-heading direction model and its turn/move arithmetic
//   - Pure, deterministic command execution for a single rover
//   - Boundary enforcement against the mission plateau
//   - Per-command step tracing for history and live transports
//   - Whole-mission execution with input-order result sequencing
//
// Core Types:
//
// Direction is a closed enum over the four compass headings. RoverState is a
// complete immutable snapshot (position + heading). Mission bundles the
// plateau bounds with the ordered rover programs produced by the parser.
//
// Usage:
//
//	final := engine.Execute(start, commands, plateau)
//	finals := engine.ExecuteMission(mission)
//
// Execution Rules:
//
// TurnLeft and TurnRight rotate the heading and leave the position unchanged.
// MoveForward advances one cell along the current heading; a move whose
// destination falls outside the plateau is silently discarded and execution
// continues with the next command. Execution never fails: malformed command
// text is rejected upstream by the parser, never here.
package engine
