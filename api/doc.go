// Package api provides HTTP REST API handlers for the Plateau Rover Mission
// Simulator.
//
// The api package implements:
//   - RESTful endpoints for mission execution
//   - Session management endpoints
//   - Mission library listing, retrieval, and upload
//   - Stateless mission text validation
//   - WebSocket upgrade handling
//
// Endpoints:
//
//	POST   /api/sessions                     - Create a new session
//	GET    /api/sessions                     - List active sessions
//	GET    /api/sessions/{id}                - Get session details
//	DELETE /api/sessions/{id}                - Delete a session
//	POST   /api/sessions/{id}/run            - Execute the session's mission
//	POST   /api/sessions/{id}/reset          - Discard the session's run result
//	GET    /api/sessions/{id}/report         - Final positions as plain text
//	GET    /api/sessions/{id}/rovers/{n}/trace - Paginated per-rover step trace
//	GET    /api/missions                     - List mission library
//	GET    /api/missions/{name}              - Get raw mission text
//	POST   /api/missions                     - Validate and save a mission
//	POST   /api/parse                        - Validate mission text without saving
//	GET    /api/health                       - Health check
//	GET    /ws?session={id}                  - WebSocket upgrade
//
// Responses are JSON except the report endpoint, which returns the mission's
// canonical plain-text output (one "x y D" line per rover, input order).
package api
