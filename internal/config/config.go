// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// Point is a position or offset in world space.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// MovementMode selects which axes the input adapter may move the player on.
type MovementMode string

const (
	MovementLateral MovementMode = "lateral" // left/right only
	MovementPlanar  MovementMode = "planar"  // left/right and forward/back
)

// ConfirmMode selects what the confirm action does.
type ConfirmMode string

const (
	// ConfirmRestart starts a fresh run, but only when no run is active.
	ConfirmRestart ConfirmMode = "restart"
	// ConfirmResume re-activates the current run without resetting it.
	ConfirmResume ConfirmMode = "resume"
)

// HolidayConfig contains all configuration for one holiday game preset.
type HolidayConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Capture    CaptureConfig    `yaml:"capture"`
	Snow       SnowConfig       `yaml:"snow"`
	Effects    EffectConfig     `yaml:"effects"`
	Camera     CameraConfig     `yaml:"camera"`
	Controls   ControlsConfig   `yaml:"controls"`
	Scenery    SceneryConfig    `yaml:"scenery"`
	HUD        HUDConfig        `yaml:"hud"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines the avatar's placement and movement.
type PlayerConfig struct {
	Start        Point        `yaml:"start"`         // Position when the scene is first built
	Spawn        Point        `yaml:"spawn"`         // Position restored at the start of every run
	ForwardSpeed float64      `yaml:"forward_speed"` // Units per second toward -Z while running
	Step         float64      `yaml:"step"`          // Distance of one manual step
	Movement     MovementMode `yaml:"movement"`
}

// SpawnConfig defines where collectibles appear relative to the player.
type SpawnConfig struct {
	Count         int     `yaml:"count"`
	LateralSpread float64 `yaml:"lateral_spread"` // Width of the band centered on the player's lane
	ForwardMin    float64 `yaml:"forward_min"`    // Nearest distance ahead of the player
	ForwardSpan   float64 `yaml:"forward_span"`   // Depth of the band beyond ForwardMin
	Height        float64 `yaml:"height"`
}

// CaptureConfig defines the pickup threshold.
type CaptureConfig struct {
	Radius float64 `yaml:"radius"`
}

// SnowConfig defines the ambient snow particles.
type SnowConfig struct {
	Count       int     `yaml:"count"`
	Spread      float64 `yaml:"spread"`       // Width/depth of the snow field around the origin
	MinHeight   float64 `yaml:"min_height"`   // Lowest initial altitude
	HeightSpan  float64 `yaml:"height_span"`  // Range of initial altitudes
	FallSpeed   float64 `yaml:"fall_speed"`   // Units per second
	Floor       float64 `yaml:"floor"`        // Altitude below which a flake wraps
	RespawnMin  float64 `yaml:"respawn_min"`  // Lowest altitude after wrapping
	RespawnSpan float64 `yaml:"respawn_span"` // Range of altitudes after wrapping
}

// EffectConfig defines the pickup pulse.
type EffectConfig struct {
	Duration float64 `yaml:"duration"` // Seconds
	Growth   float64 `yaml:"growth"`   // Extra scale reached at the end of the pulse
}

// CameraConfig defines the trailing camera.
type CameraConfig struct {
	Start     Point   `yaml:"start"`
	Offset    Point   `yaml:"offset"`    // Desired offset from the player
	Smoothing float64 `yaml:"smoothing"` // Fraction of the remaining distance covered per frame
}

// ControlsConfig defines input behavior.
type ControlsConfig struct {
	Confirm ConfirmMode `yaml:"confirm"`
}

// SceneryConfig lists static decorations.
type SceneryConfig struct {
	Trees []Point `yaml:"trees"`
}

// HUDConfig defines on-screen labels.
type HUDConfig struct {
	ScoreLabel string `yaml:"score_label"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // Score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to forward speed at max difficulty
	RadiusReduction float64 `yaml:"radius_reduction"` // Fraction of the capture radius removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a CLI value to a preset.
// Unknown or empty values return "" (use the config's own settings).
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *HolidayConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
