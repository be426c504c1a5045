package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snowfall-arcade/internal/audio"
	"github.com/vovakirdan/snowfall-arcade/internal/core"
	"github.com/vovakirdan/snowfall-arcade/internal/metrics"
	"github.com/vovakirdan/snowfall-arcade/internal/registry"
	"github.com/vovakirdan/snowfall-arcade/internal/storage"
)

// Options wires the collaborators a game reports to. Every field is optional.
type Options struct {
	Store   *storage.Store
	Chimer  audio.Chimer
	Metrics *metrics.Collector
	Logger  *log.Logger
	Player  string // Recorded with saved runs
}

func (o Options) withDefaults() Options {
	if o.Chimer == nil {
		o.Chimer = audio.Nop{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// GameModel is the Bubble Tea model for running one game.
// It turns simulation events into sounds, metrics, logs and saved runs.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	gen        uint64 // Tick generation owned by this model
	lastTick   time.Time
	runTime    time.Duration // Simulated time of the current run
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the current run has been saved
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, opts Options, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts.withDefaults(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		gen:        tickGen.Add(1),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The projection adapts to any size, the world is kept
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		m = m.handleTick(msg.At)
		return m, tickCmd(m.config.TickRate, m.gen)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu only between runs or while paused
	if action == core.ActionBack {
		if !m.gameState.Running || m.gameState.Paused {
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick advances the simulation by the time since the previous tick.
func (m GameModel) handleTick(now time.Time) GameModel {
	dt := frameDelta(m.lastTick, now)
	m.lastTick = now

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Has(core.EventRunStarted) {
		m.runTime = 0
		m.scoreSaved = false
	}
	if (result.State.Running || result.Has(core.EventWon)) && !result.State.Paused {
		m.runTime += dt
	}

	for _, ev := range result.Events {
		m.handleEvent(ev)
	}
	return m
}

// handleEvent dispatches one simulation event to the collaborators.
func (m *GameModel) handleEvent(ev core.Event) {
	id := m.game.ID()
	m.opts.Metrics.RecordEvent(id, ev)

	switch ev.Kind {
	case core.EventRunStarted:
		m.opts.Logger.Debug("run started", "game", id, "player", m.opts.Player)

	case core.EventCollected:
		m.opts.Chimer.Chime()

	case core.EventWon:
		m.opts.Metrics.ObserveRun(id, m.runTime)
		m.opts.Logger.Info("run won",
			"game", id,
			"player", m.opts.Player,
			"score", ev.Score,
			"duration", m.runTime.Round(time.Millisecond),
		)
		m.saveRun(ev.Score)
	}
}

// saveRun persists the finished run once. Failures are logged, play goes on.
func (m *GameModel) saveRun(score int) {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveRun(storage.RunRecord{
		GameID:   m.game.ID(),
		Player:   m.opts.Player,
		Score:    score,
		Duration: m.runTime,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save run", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game in the local terminal until the player quits or goes
// back to the menu.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, opts, cfg)

	opts.Metrics.SessionOpened()
	defer opts.Metrics.SessionClosed()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
