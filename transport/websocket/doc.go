// Package websocket provides WebSocket transport for the Plateau Rover
// Mission Simulator.
//
// The websocket package implements:
//   - Real-time push of mission run results
//   - Session-aware WebSocket connections
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by dedicated read
// and write goroutines.
//
// Message Protocol:
//
// Messages are JSON-encoded. Clients subscribe to one session via query
// parameter (?session=abc1) and receive a message whenever that session is
// run or reset:
//   - {session_id, event: "run_complete", result: <RunResult>}
//   - {session_id, event: "session_reset"}
//
// Incoming client messages are not processed; the connection is read only to
// keep it alive.
//
// Concurrency:
//
// The hub event loop serializes registration, unregistration, and broadcast.
// Multiple clients can connect and disconnect concurrently without blocking
// each other.
package websocket
