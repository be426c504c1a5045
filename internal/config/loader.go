package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads configuration for the given game.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default.
// Files are layered over the hardcoded defaults, so partial files are allowed.
func Load(gameID, customPath string) (HolidayConfig, error) {
	base, ok := DefaultConfig(gameID)
	if !ok {
		return HolidayConfig{}, fmt.Errorf("config: unknown game %q", gameID)
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data, base)
		if err != nil {
			return base, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return base, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath, base); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", filename), base); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parse(GetDefaultYAML(gameID), base)
	if err != nil {
		return base, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryFile loads an optional config file; unreadable or invalid files are skipped.
func tryFile(path string, base HolidayConfig) (HolidayConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg, err := parse(data, base)
	if err != nil || cfg.Validate() != nil {
		return base, false
	}
	return cfg, true
}

// parse decodes YAML on top of a copy of base.
func parse(data []byte, base HolidayConfig) (HolidayConfig, error) {
	cfg := base
	// Slices are replaced wholesale by the decoder, copy to avoid aliasing base
	cfg.Scenery.Trees = append([]Point(nil), base.Scenery.Trees...)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate reports every setting that would break the simulation.
func (c HolidayConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Player.ForwardSpeed >= 0, "player.forward_speed must be >= 0, got %v", c.Player.ForwardSpeed)
	check(c.Player.Step >= 0, "player.step must be >= 0, got %v", c.Player.Step)
	check(c.Player.Movement == MovementLateral || c.Player.Movement == MovementPlanar,
		"player.movement must be %q or %q, got %q", MovementLateral, MovementPlanar, c.Player.Movement)

	check(c.Spawn.Count >= 0, "spawn.count must be >= 0, got %d", c.Spawn.Count)
	check(c.Spawn.LateralSpread >= 0, "spawn.lateral_spread must be >= 0, got %v", c.Spawn.LateralSpread)
	check(c.Spawn.ForwardSpan >= 0, "spawn.forward_span must be >= 0, got %v", c.Spawn.ForwardSpan)

	check(c.Capture.Radius > 0, "capture.radius must be > 0, got %v", c.Capture.Radius)

	check(c.Snow.Count >= 0, "snow.count must be >= 0, got %d", c.Snow.Count)
	check(c.Snow.FallSpeed >= 0, "snow.fall_speed must be >= 0, got %v", c.Snow.FallSpeed)
	check(c.Snow.RespawnSpan >= 0, "snow.respawn_span must be >= 0, got %v", c.Snow.RespawnSpan)
	check(c.Snow.RespawnMin >= c.Snow.Floor,
		"snow.respawn_min (%v) must not be below snow.floor (%v)", c.Snow.RespawnMin, c.Snow.Floor)

	check(c.Effects.Duration >= 0, "effects.duration must be >= 0, got %v", c.Effects.Duration)
	check(c.Camera.Smoothing > 0 && c.Camera.Smoothing <= 1,
		"camera.smoothing must be in (0, 1], got %v", c.Camera.Smoothing)

	check(c.Controls.Confirm == ConfirmRestart || c.Controls.Confirm == ConfirmResume,
		"controls.confirm must be %q or %q, got %q", ConfirmRestart, ConfirmResume, c.Controls.Confirm)

	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		check(false, "difficulty.progression.type must be score, time or none, got %q", c.Difficulty.Progression.Type)
	}
	check(c.Difficulty.Scaling.RadiusReduction >= 0 && c.Difficulty.Scaling.RadiusReduction < 1,
		"difficulty.scaling.radius_reduction must be in [0, 1), got %v", c.Difficulty.Scaling.RadiusReduction)

	return errors.Join(errs...)
}
