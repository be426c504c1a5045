// Package holiday implements the shared simulation behind the holiday
// mini-games. A Session owns the world; Game adapts it to the registry so the
// terminal platform can drive it frame by frame.
package holiday

import (
	"time"

	"github.com/vovakirdan/snowfall-arcade/internal/config"
	"github.com/vovakirdan/snowfall-arcade/internal/core"
	"github.com/vovakirdan/snowfall-arcade/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficultyPreset(preset)
}

// movementOrder fixes the order in which queued movement actions are applied.
var movementOrder = []core.Action{
	core.ActionLeft,
	core.ActionRight,
	core.ActionForward,
	core.ActionBackward,
}

// Game adapts a Session to registry.Game.
type Game struct {
	preset  Preset
	session *Session
	runtime core.RuntimeConfig
	paused  bool
}

// New creates a game for the given preset. The scene is built on Reset.
func New(p Preset) *Game {
	return &Game{preset: p}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.preset.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.preset.Title
}

// Reset loads the preset's configuration and builds a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(g.preset.ID, configPath)
	if err != nil {
		cfg, _ = config.DefaultConfig(g.preset.ID)
	}

	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}

	g.session = NewSession(cfg, runtime.Seed)
	g.paused = false
}

// Session exposes the underlying world, mostly for tests.
func (g *Game) Session() *Session {
	return g.session
}

// Step applies queued input and advances the world by dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}

	// Handle pause toggle, two presses in one frame cancel out
	if in.Count(core.ActionPause)%2 == 1 {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event

	for _, a := range movementOrder {
		for i := 0; i < in.Count(a); i++ {
			g.session.Move(a)
		}
	}

	if in.Has(core.ActionConfirm) && g.session.Confirm() {
		events = append(events, core.Event{Kind: core.EventRunStarted, Score: g.session.Score()})
	}

	before := g.session.Score()
	out := g.session.Tick(core.Seconds(dt))

	for i := range out.Pickups {
		events = append(events, core.Event{Kind: core.EventCollected, Score: before + i + 1})
	}
	if out.Won {
		events = append(events, core.Event{Kind: core.EventWon, Score: out.FinalScore})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Running:  g.session.Active(),
		GameOver: g.session.Won(),
		Paused:   g.paused,
	}
}

// Register both presets with the registry
func init() {
	for _, p := range []Preset{Sleigh, Gifts} {
		registry.Register(p.ID, func() registry.Game {
			return New(p)
		})
	}
}
