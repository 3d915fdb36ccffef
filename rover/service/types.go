package service

import (
	"time"

	"github.com/roversim/plateau/rover/engine"
)

// SessionInfo provides information about a mission session.
type SessionInfo struct {
	ID             string          `json:"id"`
	MissionName    string          `json:"mission_name"`
	CreatedAt      time.Time       `json:"created_at"`
	LastAccessedAt time.Time       `json:"last_accessed_at"`
	Plateau        engine.Plateau  `json:"plateau"`
	RoverCount     int             `json:"rover_count"`
	TotalCommands  int             `json:"total_commands"`
	Ran            bool            `json:"ran"`
	MissionText    string          `json:"mission_text,omitempty"`
	Mission        *engine.Mission `json:"mission,omitempty"`
}

// RunResult contains the outcome of executing every rover in a session.
type RunResult struct {
	SessionID     string         `json:"session_id"`
	MissionName   string         `json:"mission_name"`
	Plateau       engine.Plateau `json:"plateau"`
	Rovers        []RoverResult  `json:"rovers"`
	Report        string         `json:"report"`
	TotalCommands int            `json:"total_commands"`
	RejectedMoves int            `json:"rejected_moves"`
	ExecutedAt    time.Time      `json:"executed_at"`
}

// RoverResult is one rover's share of a run: where it started, where it ended,
// and the per-command trace in between.
type RoverResult struct {
	Index         int               `json:"index"` // 1-based, input order
	Start         engine.RoverState `json:"start"`
	Final         engine.RoverState `json:"final"`
	Commands      string            `json:"commands"`
	Steps         []engine.Step     `json:"steps,omitempty"`
	RejectedMoves int               `json:"rejected_moves"`
}

// TraceOptions configures per-rover step trace retrieval.
type TraceOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// TraceResponse contains a paginated slice of a rover's executed steps.
type TraceResponse struct {
	RoverIndex  int           `json:"rover_index"`
	Steps       []engine.Step `json:"steps"`
	TotalSteps  int           `json:"total_steps"`
	Page        int           `json:"page"`
	PageSize    int           `json:"page_size"`
	TotalPages  int           `json:"total_pages"`
	HasNext     bool          `json:"has_next"`
	HasPrevious bool          `json:"has_previous"`
}

// MissionInfo provides information about a mission file in the library.
type MissionInfo struct {
	Filename      string `json:"filename"`
	MissionID     string `json:"mission_id"` // identifier used for session creation
	PlateauMaxX   int    `json:"plateau_max_x"`
	PlateauMaxY   int    `json:"plateau_max_y"`
	RoverCount    int    `json:"rover_count"`
	TotalCommands int    `json:"total_commands"`
}
