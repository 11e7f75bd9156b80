package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileMissingIsNotAnError(t *testing.T) {
	f, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	params, err := f.Params()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params.GoalHours != 6 || params.GoalMinutes != 30 {
		t.Errorf("goal = %dh%dm, want built-in default 6h30m", params.GoalHours, params.GoalMinutes)
	}
}

func TestLoadFileMergesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.yaml")
	raw := `port: "9090"
db_path: /tmp/planner.db
defaults:
  marathon_hours: 5
  marathon_minutes: 45
  max_gap_km: 6.5
`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Port != "9090" {
		t.Errorf("port = %q, want 9090", f.Port)
	}

	params, err := f.Params()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params.GoalHours != 5 || params.GoalMinutes != 45 {
		t.Errorf("goal = %dh%dm, want 5h45m", params.GoalHours, params.GoalMinutes)
	}
	if params.MaxGapKm != 6.5 {
		t.Errorf("max gap = %v, want 6.5", params.MaxGapKm)
	}
	// Untouched fields keep built-in defaults.
	if params.PaceMinutes != 6 || params.PaceSeconds != 30 {
		t.Errorf("pace = %d:%02d, want 6:30", params.PaceMinutes, params.PaceSeconds)
	}
}

func TestLoadFileRejectsInvalidDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.yaml")
	raw := "defaults:\n  marathon_hours: 12\n"
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.Params(); err == nil {
		t.Fatal("expected validation error for out-of-range defaults")
	}
}

func TestGetFallsBack(t *testing.T) {
	t.Setenv("PLANNER_TEST_KEY", "set")
	if got := Get("PLANNER_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("Get = %q, want set", got)
	}
	if got := Get("PLANNER_TEST_KEY_UNSET", "fallback"); got != "fallback" {
		t.Errorf("Get = %q, want fallback", got)
	}
}
