package missions

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

const referenceMissionText = "5 5\n1 2 N\nLMLMLMLMM\n3 3 E\nMMRMMRMRRM\n"

func createTestMissionsDir(t *testing.T) string {
	dir, err := os.MkdirTemp("", "missions-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

func writeMissionFile(t *testing.T, dir, name, text string) {
	filename := name
	if filepath.Ext(filename) == "" {
		filename = name + ".txt"
	}

	if err := os.WriteFile(filepath.Join(dir, filename), []byte(text), 0644); err != nil {
		t.Fatalf("Failed to write mission file: %v", err)
	}
}

func TestNewManager(t *testing.T) {
	t.Run("valid directory", func(t *testing.T) {
		dir := createTestMissionsDir(t)

		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		if manager == nil {
			t.Error("Expected manager to be non-nil")
		}
	})

	t.Run("non-existent directory", func(t *testing.T) {
		_, err := NewManager("/non/existent/path")
		if err == nil {
			t.Error("Expected error for non-existent directory")
		}
	})
}

func TestLoadMission(t *testing.T) {
	dir := createTestMissionsDir(t)
	writeMissionFile(t, dir, "survey", referenceMissionText)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	t.Run("existing mission", func(t *testing.T) {
		text, mission, err := manager.LoadMission("survey")
		if err != nil {
			t.Fatalf("Failed to load mission: %v", err)
		}
		if text != referenceMissionText {
			t.Errorf("Expected raw text to round-trip, got %q", text)
		}
		if mission.Plateau.MaxX != 5 || mission.Plateau.MaxY != 5 {
			t.Errorf("Expected 5x5 plateau, got %dx%d", mission.Plateau.MaxX, mission.Plateau.MaxY)
		}
		if len(mission.Rovers) != 2 {
			t.Errorf("Expected 2 rovers, got %d", len(mission.Rovers))
		}
	})

	t.Run("name with extension", func(t *testing.T) {
		_, _, err := manager.LoadMission("survey.txt")
		if err != nil {
			t.Errorf("Expected mission to load with explicit extension, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, _, err := manager.LoadMission("missing")
		if !errors.Is(err, ErrMissionNotFound) {
			t.Errorf("Expected ErrMissionNotFound, got %v", err)
		}
	})

	t.Run("invalid mission file", func(t *testing.T) {
		writeMissionFile(t, dir, "broken", "5 5\n1 2 Q\nMMM\n")

		_, _, err := manager.LoadMission("broken")
		if !errors.Is(err, ErrInvalidMission) {
			t.Errorf("Expected ErrInvalidMission, got %v", err)
		}
	})
}

func TestLoadMission_DefaultFallsBackToBuiltin(t *testing.T) {
	dir := createTestMissionsDir(t)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	text, mission, err := manager.LoadMission(DefaultMissionName)
	if err != nil {
		t.Fatalf("Expected built-in default mission, got error: %v", err)
	}
	if text != defaultMissionText {
		t.Errorf("Expected built-in mission text, got %q", text)
	}
	if len(mission.Rovers) != 2 {
		t.Errorf("Expected 2 rovers in built-in mission, got %d", len(mission.Rovers))
	}
}

func TestLoadMission_DefaultPrefersDiskFile(t *testing.T) {
	dir := createTestMissionsDir(t)
	writeMissionFile(t, dir, "demo", "3 3\n0 0 N\nMM\n")

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	text, mission, err := manager.LoadMission(DefaultMissionName)
	if err != nil {
		t.Fatalf("Failed to load default mission: %v", err)
	}
	if strings.TrimSpace(text) != "3 3\n0 0 N\nMM" {
		t.Errorf("Expected disk demo.txt to win over built-in, got %q", text)
	}
	if mission.Plateau.MaxX != 3 {
		t.Errorf("Expected 3x3 plateau from disk, got %dx%d", mission.Plateau.MaxX, mission.Plateau.MaxY)
	}
}

func TestLoadMission_Caching(t *testing.T) {
	dir := createTestMissionsDir(t)
	writeMissionFile(t, dir, "survey", referenceMissionText)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	if _, _, err := manager.LoadMission("survey"); err != nil {
		t.Fatalf("Failed to load mission: %v", err)
	}

	// Deleting the file should not matter while cached
	os.Remove(filepath.Join(dir, "survey.txt"))

	if _, _, err := manager.LoadMission("survey"); err != nil {
		t.Errorf("Expected cached mission after file deletion, got %v", err)
	}

	manager.RefreshCache()

	if _, _, err := manager.LoadMission("survey"); !errors.Is(err, ErrMissionNotFound) {
		t.Errorf("Expected ErrMissionNotFound after cache refresh, got %v", err)
	}
}

func TestListMissions(t *testing.T) {
	dir := createTestMissionsDir(t)
	writeMissionFile(t, dir, "alpha", referenceMissionText)
	writeMissionFile(t, dir, "beta", "2 2\n0 0 N\nMM\n")
	writeMissionFile(t, dir, "broken", "not a mission\n")
	writeMissionFile(t, dir, "notes.md", "# not a mission file")

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	infos, err := manager.ListMissions()
	if err != nil {
		t.Fatalf("Failed to list missions: %v", err)
	}

	if len(infos) != 2 {
		t.Fatalf("Expected 2 parseable missions, got %d", len(infos))
	}

	byID := make(map[string]bool)
	for _, info := range infos {
		byID[info.MissionID] = true
	}
	if !byID["alpha"] || !byID["beta"] {
		t.Errorf("Expected alpha and beta missions, got %v", byID)
	}

	for _, info := range infos {
		if info.MissionID == "alpha" {
			if info.RoverCount != 2 {
				t.Errorf("Expected 2 rovers for alpha, got %d", info.RoverCount)
			}
			if info.TotalCommands != 19 {
				t.Errorf("Expected 19 commands for alpha, got %d", info.TotalCommands)
			}
			if info.PlateauMaxX != 5 || info.PlateauMaxY != 5 {
				t.Errorf("Expected 5x5 plateau for alpha, got %dx%d", info.PlateauMaxX, info.PlateauMaxY)
			}
		}
	}
}

func TestGetDefault(t *testing.T) {
	dir := createTestMissionsDir(t)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	name, text := manager.GetDefault()
	if name != DefaultMissionName {
		t.Errorf("Expected default name %q, got %q", DefaultMissionName, name)
	}
	if text != defaultMissionText {
		t.Errorf("Expected built-in default text, got %q", text)
	}
}

func TestSaveMission(t *testing.T) {
	dir := createTestMissionsDir(t)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	t.Run("valid mission", func(t *testing.T) {
		if err := manager.SaveMission("custom", "4 4\n1 1 E\nMRM\n"); err != nil {
			t.Fatalf("Failed to save mission: %v", err)
		}

		if _, err := os.Stat(filepath.Join(dir, "custom.txt")); err != nil {
			t.Errorf("Expected mission file on disk: %v", err)
		}

		text, _, err := manager.LoadMission("custom")
		if err != nil {
			t.Fatalf("Failed to load saved mission: %v", err)
		}
		if text != "4 4\n1 1 E\nMRM\n" {
			t.Errorf("Expected saved text to round-trip, got %q", text)
		}
	})

	t.Run("invalid mission rejected", func(t *testing.T) {
		err := manager.SaveMission("bad", "4 4\n1 1 E\nXYZ\n")
		if !errors.Is(err, ErrInvalidMission) {
			t.Errorf("Expected ErrInvalidMission, got %v", err)
		}

		if _, statErr := os.Stat(filepath.Join(dir, "bad.txt")); !os.IsNotExist(statErr) {
			t.Error("Expected no file written for invalid mission")
		}
	})
}

func TestManager_ConcurrentAccess(t *testing.T) {
	dir := createTestMissionsDir(t)
	writeMissionFile(t, dir, "survey", referenceMissionText)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				if _, _, err := manager.LoadMission("survey"); err != nil {
					t.Errorf("Concurrent load failed: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
