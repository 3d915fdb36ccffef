package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/roversim/plateau/rover/engine"
	"github.com/roversim/plateau/rover/formatter"
	"github.com/roversim/plateau/rover/parser"
)

// missionServiceImpl implements the MissionService interface.
type missionServiceImpl struct {
	sessions SessionManager
	missions MissionManager
	mu       sync.RWMutex
}

// NewMissionService creates a new mission service instance.
func NewMissionService(sessions SessionManager, missions MissionManager) MissionService {
	return &missionServiceImpl{
		sessions: sessions,
		missions: missions,
	}
}

// CreateSession creates a new session from a named library mission or inline
// mission text. Inline text wins when both are provided. Parsing is fail-fast:
// invalid text never produces a session.
func (s *missionServiceImpl) CreateSession(ctx context.Context, missionName, missionText string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var mission *engine.Mission
	var err error

	switch {
	case missionText != "":
		mission, err = parser.Parse(missionText)
		if err != nil {
			return nil, fmt.Errorf("invalid mission text: %w", err)
		}
		if missionName == "" {
			missionName = "inline"
		}
	case missionName != "":
		missionText, mission, err = s.missions.LoadMission(missionName)
		if err != nil {
			if strings.Contains(err.Error(), "mission not found") {
				available, listErr := s.missions.ListMissions()
				if listErr == nil && len(available) > 0 {
					var ids []string
					for _, m := range available {
						ids = append(ids, m.MissionID)
					}
					return nil, fmt.Errorf("mission '%s' not found. Available missions: %v", missionName, ids)
				}
				return nil, fmt.Errorf("mission '%s' not found. Use /api/missions to list available missions", missionName)
			}
			return nil, fmt.Errorf("failed to load mission %s: %w", missionName, err)
		}
	default:
		missionName, missionText = s.missions.GetDefault()
		mission, err = parser.Parse(missionText)
		if err != nil {
			return nil, fmt.Errorf("default mission is invalid: %w", err)
		}
	}

	// Let the session manager generate a proper 4-character ID.
	sess, err := s.sessions.Create("", missionName, missionText, mission)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return sessionInfo(sess, false), nil
}

// GetSession retrieves session information, including the parsed mission.
func (s *missionServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return sessionInfo(sess, true), nil
}

// ListSessions returns all active sessions.
func (s *missionServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, sessionInfo(sess, false))
	}

	return result, nil
}

// DeleteSession removes a session.
func (s *missionServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Run executes every rover in the session and caches the result. A second call
// returns the cached result unless rerun is set; execution is deterministic,
// so a rerun can only differ in its timestamp.
func (s *missionServiceImpl) Run(ctx context.Context, sessionID string, rerun bool) (*RunResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	if sess.Result != nil && !rerun {
		return sess.Result, nil
	}

	sess.Result = executeMission(sess)

	// Auto-save session after run
	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after run: %v\n", sessionID, err)
	}

	return sess.Result, nil
}

// Reset discards a session's run result, returning it to its just-parsed
// state. The mission itself is immutable and survives untouched.
func (s *missionServiceImpl) Reset(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	sess.Result = nil

	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after reset: %v\n", sessionID, err)
	}

	return sessionInfo(sess, false), nil
}

// GetReport returns the formatted final-state report, running the mission
// first if it has not been run yet.
func (s *missionServiceImpl) GetReport(ctx context.Context, sessionID string) (string, error) {
	result, err := s.Run(ctx, sessionID, false)
	if err != nil {
		return "", err
	}
	return result.Report, nil
}

// GetTrace returns a paginated slice of one rover's executed steps.
// roverIndex is 1-based to match the report's rover numbering.
func (s *missionServiceImpl) GetTrace(ctx context.Context, sessionID string, roverIndex int, opts TraceOptions) (*TraceResponse, error) {
	result, err := s.Run(ctx, sessionID, false)
	if err != nil {
		return nil, err
	}

	if roverIndex < 1 || roverIndex > len(result.Rovers) {
		return nil, fmt.Errorf("rover index %d out of range, session has %d rovers", roverIndex, len(result.Rovers))
	}

	steps := result.Rovers[roverIndex-1].Steps
	total := len(steps)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "asc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	var page []engine.Step
	if opts.Order == "desc" {
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			page = append(page, steps[i])
		}
	} else if start < total {
		page = steps[start:end]
	}

	if page == nil {
		page = []engine.Step{}
	}

	return &TraceResponse{
		RoverIndex:  roverIndex,
		Steps:       page,
		TotalSteps:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListMissions returns the mission library contents.
func (s *missionServiceImpl) ListMissions(ctx context.Context) ([]*MissionInfo, error) {
	return s.missions.ListMissions()
}

// LoadMission returns the raw text of a library mission.
func (s *missionServiceImpl) LoadMission(ctx context.Context, name string) (string, error) {
	text, _, err := s.missions.LoadMission(name)
	return text, err
}

// SaveMission validates and stores mission text in the library.
func (s *missionServiceImpl) SaveMission(ctx context.Context, name, text string) error {
	return s.missions.SaveMission(name, text)
}

// executeMission runs every rover as an independent goroutine, re-sequencing
// results by index so the report preserves input order.
func executeMission(sess *Session) *RunResult {
	mission := sess.Mission
	rovers := make([]RoverResult, len(mission.Rovers))

	var wg sync.WaitGroup
	for i, input := range mission.Rovers {
		wg.Add(1)
		go func(i int, input engine.RoverInput) {
			defer wg.Done()

			steps, final := engine.ExecuteTrace(input.Start, input.Commands, mission.Plateau)

			rejected := 0
			for _, step := range steps {
				if step.Rejected {
					rejected++
				}
			}

			rovers[i] = RoverResult{
				Index:         i + 1,
				Start:         input.Start,
				Final:         final,
				Commands:      input.CommandLetters(),
				Steps:         steps,
				RejectedMoves: rejected,
			}
		}(i, input)
	}
	wg.Wait()

	finals := make([]engine.RoverState, len(rovers))
	totalCommands := 0
	totalRejected := 0
	for i, r := range rovers {
		finals[i] = r.Final
		totalCommands += len(r.Steps)
		totalRejected += r.RejectedMoves
	}

	return &RunResult{
		SessionID:     sess.ID,
		MissionName:   sess.MissionName,
		Plateau:       mission.Plateau,
		Rovers:        rovers,
		Report:        formatter.Report(finals),
		TotalCommands: totalCommands,
		RejectedMoves: totalRejected,
		ExecutedAt:    time.Now(),
	}
}

// sessionInfo builds the API view of a session. The mission text and parsed
// mission are only included in detail views.
func sessionInfo(sess *Session, detail bool) *SessionInfo {
	totalCommands := 0
	for _, r := range sess.Mission.Rovers {
		totalCommands += len(r.Commands)
	}

	info := &SessionInfo{
		ID:             sess.ID,
		MissionName:    sess.MissionName,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		Plateau:        sess.Mission.Plateau,
		RoverCount:     len(sess.Mission.Rovers),
		TotalCommands:  totalCommands,
		Ran:            sess.Result != nil,
	}
	if detail {
		info.MissionText = sess.MissionText
		info.Mission = sess.Mission
	}
	return info
}
