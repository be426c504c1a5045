package tui

import (
	"time"

	"github.com/vovakirdan/snowfall-arcade/internal/core"
	"github.com/vovakirdan/snowfall-arcade/internal/registry"
)

// stubGame replays scripted events, one batch per Step.
type stubGame struct {
	script  map[int][]core.Event
	steps   int
	resets  int
	state   core.GameState
	dts     []time.Duration
	actions []core.Action
}

func newStubGame(script map[int][]core.Event) *stubGame {
	return &stubGame{script: script}
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub Game" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *stubGame) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.dts = append(g.dts, dt)
	for a, n := range in.Actions {
		for i := 0; i < n; i++ {
			g.actions = append(g.actions, a)
		}
	}

	if in.Count(core.ActionPause)%2 == 1 {
		g.state.Paused = !g.state.Paused
	}

	events := g.script[g.steps]
	g.steps++
	for _, ev := range events {
		switch ev.Kind {
		case core.EventRunStarted:
			g.state.Running = true
			g.state.GameOver = false
			g.state.Score = 0
		case core.EventCollected:
			g.state.Score = ev.Score
		case core.EventWon:
			g.state.Running = false
			g.state.GameOver = true
			g.state.Score = ev.Score
		}
	}
	return core.StepResult{State: g.state, Events: events}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return g.state }

func init() {
	registry.Register("stub", func() registry.Game { return newStubGame(nil) })
}

// countingChimer counts chimes instead of playing them.
type countingChimer struct {
	n int
}

func (c *countingChimer) Chime() { c.n++ }
