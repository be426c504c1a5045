package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snowfall-arcade/internal/audio"
	"github.com/vovakirdan/snowfall-arcade/internal/core"
	"github.com/vovakirdan/snowfall-arcade/internal/games/holiday"
	"github.com/vovakirdan/snowfall-arcade/internal/platform/tui"
	"github.com/vovakirdan/snowfall-arcade/internal/registry"
	"github.com/vovakirdan/snowfall-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right, A/D  - Steer
  Up/Down, W/S     - Forward/back (sleigh only)
  Enter/Space      - Start (or continue the sleigh ride)
  P                - Pause
  Esc/B            - Back (between runs or while paused)
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start slow, speed up as the run goes on
  normal - Start at 30% difficulty, speed up as the run goes on
  hard   - Start at 70% difficulty, speed up as the run goes on
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play gifts
  arcade play sleigh --difficulty hard
  arcade play gifts --config ./my-gifts.yaml --mute`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable the pickup chime")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	holiday.SetConfigPath(flagConfig)
	holiday.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	chimer, stopAudio := newChimer(logger)

	runErr := tui.Run(game, tui.Options{
		Store:  store,
		Chimer: chimer,
		Logger: logger,
		Player: os.Getenv("USER"),
	}, terminalConfig())

	stopAudio()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the runs database. Games still work without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// newChimer opens the audio device, falling back to silence.
func newChimer(logger *log.Logger) (audio.Chimer, func()) {
	if flagMute {
		return audio.Nop{}, func() {}
	}

	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		logger.Debug("audio disabled", "error", err)
		return audio.Nop{}, func() {}
	}
	return sm, sm.Cleanup
}
