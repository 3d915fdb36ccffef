package missions

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/roversim/plateau/rover/engine"
	"github.com/roversim/plateau/rover/parser"
	"github.com/roversim/plateau/rover/service"
)

var (
	ErrMissionNotFound = errors.New("mission not found")
	ErrInvalidMission  = errors.New("invalid mission")
)

// DefaultMissionName identifies the built-in fallback mission.
const DefaultMissionName = "demo"

// defaultMissionText is the classic two-rover reference mission, used when the
// library has nothing else to offer.
const defaultMissionText = "5 5\n1 2 N\nLMLMLMLMM\n3 3 E\nMMRMMRMRRM"

// cachedMission pairs a mission's raw text with its parsed form.
type cachedMission struct {
	text    string
	mission *engine.Mission
}

// Manager handles mission file loading and caching.
type Manager struct {
	missionsDir string
	cache       map[string]cachedMission
	mu          sync.RWMutex
}

// NewManager creates a new mission library manager rooted at missionsDir.
func NewManager(missionsDir string) (*Manager, error) {
	if _, err := os.Stat(missionsDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("missions directory does not exist: %s", missionsDir)
	}

	return &Manager{
		missionsDir: missionsDir,
		cache:       make(map[string]cachedMission),
	}, nil
}

// LoadMission loads a mission by name, returning both its raw text and parsed
// form. Loaded missions are cached; files are immutable from the manager's
// point of view until RefreshCache.
func (m *Manager) LoadMission(name string) (string, *engine.Mission, error) {
	m.mu.RLock()
	if cached, exists := m.cache[name]; exists {
		m.mu.RUnlock()
		return cached.text, cached.mission, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring the write lock
	if cached, exists := m.cache[name]; exists {
		return cached.text, cached.mission, nil
	}

	if name == DefaultMissionName {
		// Prefer a demo.txt on disk over the built-in text
		if text, mission, err := m.loadFromDisk(name); err == nil {
			m.cache[name] = cachedMission{text: text, mission: mission}
			return text, mission, nil
		}
		mission, err := parser.Parse(defaultMissionText)
		if err != nil {
			return "", nil, fmt.Errorf("%w: built-in default: %v", ErrInvalidMission, err)
		}
		m.cache[name] = cachedMission{text: defaultMissionText, mission: mission}
		return defaultMissionText, mission, nil
	}

	text, mission, err := m.loadFromDisk(name)
	if err != nil {
		return "", nil, err
	}

	m.cache[name] = cachedMission{text: text, mission: mission}
	return text, mission, nil
}

// loadFromDisk reads and parses a mission file. Callers hold the lock.
func (m *Manager) loadFromDisk(name string) (string, *engine.Mission, error) {
	filename := name
	if !strings.HasSuffix(filename, ".txt") {
		filename = name + ".txt"
	}

	data, err := os.ReadFile(filepath.Join(m.missionsDir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, ErrMissionNotFound
		}
		return "", nil, fmt.Errorf("failed to read mission file: %w", err)
	}

	text := string(data)
	mission, err := parser.Parse(text)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidMission, err)
	}

	return text, mission, nil
}

// ListMissions returns information about all parseable missions in the
// library. Files the parser rejects are skipped rather than failing the list.
func (m *Manager) ListMissions() ([]*service.MissionInfo, error) {
	entries, err := os.ReadDir(m.missionsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read missions directory: %w", err)
	}

	var infos []*service.MissionInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".txt")
		_, mission, err := m.LoadMission(name)
		if err != nil {
			// Skip invalid missions
			continue
		}

		totalCommands := 0
		for _, r := range mission.Rovers {
			totalCommands += len(r.Commands)
		}

		infos = append(infos, &service.MissionInfo{
			Filename:      entry.Name(),
			MissionID:     name,
			PlateauMaxX:   mission.Plateau.MaxX,
			PlateauMaxY:   mission.Plateau.MaxY,
			RoverCount:    len(mission.Rovers),
			TotalCommands: totalCommands,
		})
	}

	return infos, nil
}

// GetDefault returns the default mission's name and text. A demo.txt in the
// library overrides the built-in reference mission.
func (m *Manager) GetDefault() (string, string) {
	text, _, err := m.LoadMission(DefaultMissionName)
	if err != nil {
		return DefaultMissionName, defaultMissionText
	}
	return DefaultMissionName, text
}

// SaveMission validates mission text and writes it to the library.
func (m *Manager) SaveMission(name, text string) error {
	mission, err := parser.Parse(text)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMission, err)
	}

	filename := name
	if !strings.HasSuffix(filename, ".txt") {
		filename = name + ".txt"
	}

	if err := os.WriteFile(filepath.Join(m.missionsDir, filename), []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write mission file: %w", err)
	}

	m.mu.Lock()
	m.cache[strings.TrimSuffix(filename, ".txt")] = cachedMission{text: text, mission: mission}
	m.mu.Unlock()

	return nil
}

// RefreshCache drops all cached missions so the next load re-reads disk.
func (m *Manager) RefreshCache() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache = make(map[string]cachedMission)
}
