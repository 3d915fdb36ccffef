package service

import (
	"context"
	"time"

	"github.com/roversim/plateau/rover/engine"
)

// MissionService defines all mission-related operations.
type MissionService interface {
	// Session Management
	CreateSession(ctx context.Context, missionName, missionText string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Mission Execution
	Run(ctx context.Context, sessionID string, rerun bool) (*RunResult, error)
	Reset(ctx context.Context, sessionID string) (*SessionInfo, error)
	GetReport(ctx context.Context, sessionID string) (string, error)
	GetTrace(ctx context.Context, sessionID string, roverIndex int, opts TraceOptions) (*TraceResponse, error)

	// Mission Library
	ListMissions(ctx context.Context) ([]*MissionInfo, error)
	LoadMission(ctx context.Context, name string) (string, error)
	SaveMission(ctx context.Context, name, text string) error
}

// SessionManager defines session storage operations.
type SessionManager interface {
	Create(id, missionName, missionText string, mission *engine.Mission) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// MissionManager handles the mission text library.
type MissionManager interface {
	LoadMission(name string) (string, *engine.Mission, error)
	ListMissions() ([]*MissionInfo, error)
	GetDefault() (string, string)
	SaveMission(name, text string) error
}

// Session represents an active mission session. The parsed mission is
// immutable once created; Result is nil until the session is run.
type Session struct {
	ID             string
	MissionName    string
	MissionText    string
	Mission        *engine.Mission
	Result         *RunResult
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
