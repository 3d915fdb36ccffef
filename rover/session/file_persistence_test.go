package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/roversim/plateau/rover/service"
)

func newTestPersistence(t *testing.T) (*FilePersistence, string) {
	t.Helper()
	dir := t.TempDir()
	fp, err := NewFilePersistence(dir)
	if err != nil {
		t.Fatalf("Failed to create file persistence: %v", err)
	}
	return fp, dir
}

func newTestSession(t *testing.T, id string) *service.Session {
	t.Helper()
	mission := parseTestMission(t)
	return &service.Session{
		ID:             id,
		MissionName:    "demo",
		MissionText:    testMissionText,
		Mission:        mission,
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}
}

func TestNewFilePersistence(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "sessions")

	fp, err := NewFilePersistence(dir)
	if err != nil {
		t.Fatalf("Failed to create file persistence: %v", err)
	}
	if fp == nil {
		t.Fatal("Expected persistence to be non-nil")
	}

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("Expected sessions directory to be created: %v", err)
	}
}

func TestFilePersistence_SaveAndLoad(t *testing.T) {
	fp, dir := newTestPersistence(t)
	sess := newTestSession(t, "ab12")

	if err := fp.Save(sess); err != nil {
		t.Fatalf("Failed to save session: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "ab12.json")); err != nil {
		t.Errorf("Expected session file on disk: %v", err)
	}

	loaded, err := fp.Load("ab12")
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}

	if loaded.ID != "ab12" {
		t.Errorf("Expected ID ab12, got %s", loaded.ID)
	}
	if loaded.MissionName != "demo" {
		t.Errorf("Expected mission name demo, got %s", loaded.MissionName)
	}
	if loaded.MissionText != testMissionText {
		t.Errorf("Expected mission text to round-trip, got %q", loaded.MissionText)
	}
	if loaded.Mission == nil {
		t.Fatal("Expected mission to be re-parsed on load")
	}
	if len(loaded.Mission.Rovers) != 2 {
		t.Errorf("Expected 2 rovers after re-parse, got %d", len(loaded.Mission.Rovers))
	}
}

func TestFilePersistence_SaveNilSession(t *testing.T) {
	fp, _ := newTestPersistence(t)

	if err := fp.Save(nil); err == nil {
		t.Error("Expected error for nil session")
	}
}

func TestFilePersistence_LoadNotFound(t *testing.T) {
	fp, _ := newTestPersistence(t)

	_, err := fp.Load("ffff")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestFilePersistence_LoadCorruptMissionText(t *testing.T) {
	fp, dir := newTestPersistence(t)

	corrupt := `{"id":"ab12","mission_name":"demo","mission_text":"not a mission"}`
	if err := os.WriteFile(filepath.Join(dir, "ab12.json"), []byte(corrupt), 0644); err != nil {
		t.Fatalf("Failed to write corrupt session file: %v", err)
	}

	_, err := fp.Load("ab12")
	if err == nil {
		t.Error("Expected error for mission text that no longer parses")
	}
}

func TestFilePersistence_Delete(t *testing.T) {
	fp, _ := newTestPersistence(t)
	sess := newTestSession(t, "ab12")

	if err := fp.Save(sess); err != nil {
		t.Fatalf("Failed to save session: %v", err)
	}

	if err := fp.Delete("ab12"); err != nil {
		t.Fatalf("Failed to delete session: %v", err)
	}
	if fp.Exists("ab12") {
		t.Error("Expected session file to be removed")
	}

	if err := fp.Delete("ab12"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound for repeated delete, got %v", err)
	}
}

func TestFilePersistence_ListAll(t *testing.T) {
	fp, dir := newTestPersistence(t)

	ids, err := fp.ListAll()
	if err != nil {
		t.Fatalf("Failed to list sessions: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("Expected no sessions, got %v", ids)
	}

	fp.Save(newTestSession(t, "ab12"))
	fp.Save(newTestSession(t, "cd34"))

	// Non-JSON files are ignored
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a session"), 0644)

	ids, err = fp.ListAll()
	if err != nil {
		t.Fatalf("Failed to list sessions: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("Expected 2 session IDs, got %v", ids)
	}
}

func TestManagerWithPersistence(t *testing.T) {
	fp, _ := newTestPersistence(t)
	manager := NewManagerWithPersistence(fp)
	mission := parseTestMission(t)

	t.Run("create persists to disk", func(t *testing.T) {
		sess, err := manager.Create("ab12", "demo", testMissionText, mission)
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if !fp.Exists(sess.ID) {
			t.Error("Expected session to be persisted on create")
		}
	})

	t.Run("get falls back to persistence", func(t *testing.T) {
		if err := manager.DeleteFromMemory("ab12"); err != nil {
			t.Fatalf("Failed to evict session from memory: %v", err)
		}

		sess, err := manager.Get("ab12")
		if err != nil {
			t.Fatalf("Expected session to be restored from disk: %v", err)
		}
		if sess.MissionText != testMissionText {
			t.Errorf("Expected restored mission text, got %q", sess.MissionText)
		}
	})

	t.Run("delete removes persisted file", func(t *testing.T) {
		if err := manager.Delete("ab12"); err != nil {
			t.Fatalf("Failed to delete session: %v", err)
		}
		if fp.Exists("ab12") {
			t.Error("Expected persisted file to be removed")
		}
	})
}

func TestLoadPersistedSessions(t *testing.T) {
	fp, _ := newTestPersistence(t)

	fp.Save(newTestSession(t, "ab12"))
	fp.Save(newTestSession(t, "cd34"))

	manager := NewManagerWithPersistence(fp)
	if err := manager.LoadPersistedSessions(); err != nil {
		t.Fatalf("Failed to load persisted sessions: %v", err)
	}

	if manager.Count() != 2 {
		t.Errorf("Expected 2 restored sessions, got %d", manager.Count())
	}
	for _, id := range []string{"ab12", "cd34"} {
		if _, err := manager.Get(id); err != nil {
			t.Errorf("Expected session %s to be restored: %v", id, err)
		}
	}
}
