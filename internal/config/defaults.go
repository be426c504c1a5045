package config

import (
	_ "embed"
)

// Game IDs with bundled configuration.
const (
	SleighID = "sleigh"
	GiftsID  = "gifts"
)

//go:embed defaults/sleigh.yaml
var defaultSleighYAML []byte

//go:embed defaults/gifts.yaml
var defaultGiftsYAML []byte

// DefaultSleighConfig returns the default Santa's Sleigh Ride configuration.
func DefaultSleighConfig() HolidayConfig {
	return HolidayConfig{
		Player: PlayerConfig{
			Start:        Point{X: 0, Y: 1, Z: 0},
			Spawn:        Point{X: 0, Y: 1, Z: 0},
			ForwardSpeed: 2.2,
			Step:         0.6,
			Movement:     MovementPlanar,
		},
		Spawn: SpawnConfig{
			Count:         10,
			LateralSpread: 12,
			ForwardMin:    2,
			ForwardSpan:   20,
			Height:        1,
		},
		Capture: CaptureConfig{Radius: 0.8},
		Snow:    defaultSnow(),
		Effects: EffectConfig{Duration: 0.4, Growth: 2},
		Camera: CameraConfig{
			Start:     Point{X: 0, Y: 4, Z: 10},
			Offset:    Point{X: 0, Y: 4, Z: 10},
			Smoothing: 0.08,
		},
		Controls:   ControlsConfig{Confirm: ConfirmResume},
		HUD:        HUDConfig{ScoreLabel: "Score"},
		Difficulty: defaultDifficulty(),
	}
}

// DefaultGiftsConfig returns the default Gift Grab configuration.
func DefaultGiftsConfig() HolidayConfig {
	return HolidayConfig{
		Player: PlayerConfig{
			Start:        Point{X: 0, Y: 0, Z: 0},
			Spawn:        Point{X: 0, Y: 0.5, Z: 0},
			ForwardSpeed: 1.5,
			Step:         0.6,
			Movement:     MovementLateral,
		},
		Spawn: SpawnConfig{
			Count:         10,
			LateralSpread: 12,
			ForwardMin:    2,
			ForwardSpan:   20,
			Height:        0.2,
		},
		Capture: CaptureConfig{Radius: 0.9},
		Snow:    defaultSnow(),
		Effects: EffectConfig{Duration: 0.6, Growth: 2},
		Camera: CameraConfig{
			Start:     Point{X: 0, Y: 4, Z: 8},
			Offset:    Point{X: 0, Y: 4, Z: 8},
			Smoothing: 0.08,
		},
		Controls: ControlsConfig{Confirm: ConfirmRestart},
		Scenery: SceneryConfig{
			Trees: []Point{{X: -3, Y: 0, Z: -3}},
		},
		HUD:        HUDConfig{ScoreLabel: "Gifts"},
		Difficulty: defaultDifficulty(),
	}
}

func defaultSnow() SnowConfig {
	return SnowConfig{
		Count:       120,
		Spread:      40,
		MinHeight:   1,
		HeightSpan:  10,
		FallSpeed:   1.5,
		Floor:       -1,
		RespawnMin:  6,
		RespawnSpan: 8,
	}
}

func defaultDifficulty() DifficultyConfig {
	return DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.0,
		Progression: ProgressionConfig{
			Type:  "none",
			MaxAt: 10,
		},
		Scaling: ScalingConfig{
			SpeedMultiplier: 1.0,
			RadiusReduction: 0.3,
		},
	}
}

// DefaultConfig returns the hardcoded configuration for a game.
// The second result is false for unknown game IDs.
func DefaultConfig(gameID string) (HolidayConfig, bool) {
	switch gameID {
	case SleighID:
		return DefaultSleighConfig(), true
	case GiftsID:
		return DefaultGiftsConfig(), true
	default:
		return HolidayConfig{}, false
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case SleighID:
		return defaultSleighYAML
	case GiftsID:
		return defaultGiftsYAML
	default:
		return nil
	}
}
