// Package session provides session management for the Plateau Rover Mission
// Simulator.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Session lifecycle management and expiry cleanup
//   - Optional file-based persistence
//
// Core Types:
//
// Manager is the main session manager. Each session holds one parsed mission
// plus its run result, along with creation and last-access metadata.
//
// Session Identifiers:
//
// Sessions use 4-character hex IDs generated from cryptographic randomness.
// Lookups are case-insensitive.
//
// Persistence:
//
// When configured with a SessionPersistence implementation, the manager
// auto-saves on create and access updates, lazily loads sessions that are on
// disk but not in memory, and can prune memory entries whose files were
// removed. Persisted files store the raw mission text; reloading re-parses it,
// so a session can only ever be restored into a valid mission.
package session
