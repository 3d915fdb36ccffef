// Package service provides the business logic layer for the Plateau Rover
// Mission Simulator.
//
// The service package implements:
//   - Multi-session mission management
//   - Mission library loading and saving
//   - Mission execution with per-rover step traces
//   - Session lifecycle management
//   - Paginated trace retrieval
//
// Core Interfaces:
//
// MissionService is the main service interface providing high-level mission
// operations. SessionManager handles session creation, retrieval, and
// lifecycle. MissionManager manages the mission text library.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the rover core (parser, engine, formatter), providing session isolation and
// orchestration. Each session holds one parsed mission; parsing happens once
// at session creation with the parser's fail-fast semantics, so a session can
// only ever hold a valid mission.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	missionMgr, _ := missions.NewManager("missions")
//	svc := service.NewMissionService(sessionMgr, missionMgr)
//
//	info, err := svc.CreateSession(ctx, "demo", "")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := svc.Run(ctx, info.ID, false)
//
// Session Management:
//
// Sessions are identified by unique 4-character IDs and are independent of
// each other. Rovers inside a session are executed independently too, with
// results re-sequenced to input order before reporting.
package service
