package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// isolateHome points the user config lookup at an empty directory.
func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	isolateHome(t)

	tests := []struct {
		id       string
		expected HolidayConfig
	}{
		{SleighID, DefaultSleighConfig()},
		{GiftsID, DefaultGiftsConfig()},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			cfg, err := Load(tc.id, "")
			if err != nil {
				t.Fatalf("Load(%q) failed: %v", tc.id, err)
			}
			if !reflect.DeepEqual(cfg, tc.expected) {
				t.Errorf("embedded %s.yaml differs from hardcoded defaults:\n got  %+v\n want %+v", tc.id, cfg, tc.expected)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("default config should be valid: %v", err)
			}
		})
	}
}

func TestLoadUnknownGame(t *testing.T) {
	if _, err := Load("flappy", ""); err == nil {
		t.Error("Load should fail for unknown game IDs")
	}
}

func TestLoadCustomPartialFile(t *testing.T) {
	isolateHome(t)

	path := filepath.Join(t.TempDir(), "gifts.yaml")
	data := []byte("spawn:\n  count: 3\ncapture:\n  radius: 1.5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(GiftsID, path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Spawn.Count != 3 {
		t.Errorf("spawn.count = %d, expected 3", cfg.Spawn.Count)
	}
	if cfg.Capture.Radius != 1.5 {
		t.Errorf("capture.radius = %v, expected 1.5", cfg.Capture.Radius)
	}
	// Untouched values keep their defaults
	if cfg.Player.ForwardSpeed != 1.5 {
		t.Errorf("player.forward_speed = %v, expected default 1.5", cfg.Player.ForwardSpeed)
	}
	if len(cfg.Scenery.Trees) != 1 {
		t.Errorf("expected default tree to survive, got %v", cfg.Scenery.Trees)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()

	if _, err := Load(SleighID, filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load should fail for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("spawn: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(SleighID, bad); err == nil {
		t.Error("Load should fail for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("capture:\n  radius: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(SleighID, invalid)
	if err == nil || !strings.Contains(err.Error(), "capture.radius") {
		t.Errorf("Load should reject invalid values, got %v", err)
	}
}

func TestLoadUserConfigOverridesEmbedded(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sleigh.yaml"), []byte("player:\n  forward_speed: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(SleighID, "")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.ForwardSpeed != 4 {
		t.Errorf("forward_speed = %v, expected user override 4", cfg.Player.ForwardSpeed)
	}
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := DefaultSleighConfig()
	cfg.Spawn.Count = -1
	cfg.Camera.Smoothing = 0
	cfg.Player.Movement = "diagonal"
	cfg.Snow.RespawnMin = -5

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	for _, field := range []string{"spawn.count", "camera.smoothing", "player.movement", "snow.respawn_min"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("Validate() error should mention %s: %v", field, err)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		enabled      bool
		initialLevel float64
	}{
		{"", false, 0.0},
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tc := range tests {
		cfg := DefaultGiftsConfig()
		ApplyPreset(&cfg, tc.preset)
		if cfg.Difficulty.Enabled != tc.enabled {
			t.Errorf("preset %q: enabled = %v, expected %v", tc.preset, cfg.Difficulty.Enabled, tc.enabled)
		}
		if cfg.Difficulty.InitialLevel != tc.initialLevel {
			t.Errorf("preset %q: initial level = %v, expected %v", tc.preset, cfg.Difficulty.InitialLevel, tc.initialLevel)
		}
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	if ParseDifficultyPreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParseDifficultyPreset("insane") != "" {
		t.Error("unknown presets should map to empty")
	}
}
