// Package mcp provides Model Context Protocol server implementation for the
// Plateau Rover Mission Simulator.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for mission operations
//   - Session-aware command execution
//   - Stdio transport mode
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - create_session: Create a new mission session
//   - list_sessions: List all active sessions
//   - get_session: Get session details
//   - run_mission: Execute every rover in a session
//   - mission_report: Get final positions as plain text
//   - rover_trace: Inspect one rover's per-command steps
//   - list_missions: List the mission library
//   - parse_mission: Validate mission text without creating a session
//
// Architecture:
//
// The MCP server is a thin client that proxies all requests to the REST API,
// keeping the mission logic in one place regardless of transport.
package mcp
