package holiday

import (
	"math"
	"testing"

	"github.com/vovakirdan/snowfall-arcade/internal/config"
	"github.com/vovakirdan/snowfall-arcade/internal/core"
)

func TestSnowStaysInBounds(t *testing.T) {
	s := newTestSession(t, config.SleighID)
	sc := s.Config().Snow
	top := sc.RespawnMin + sc.RespawnSpan

	for _, dt := range []float64{0, 0.016, 0.25, 1, 3.7, 100} {
		for i := 0; i < 200; i++ {
			s.Tick(dt)
			for _, f := range s.Snow() {
				y := f.Position.Y
				if y < sc.Floor {
					t.Fatalf("dt=%v: flake below floor at %.3f", dt, y)
				}
				if y >= math.Max(top, sc.MinHeight+sc.HeightSpan) {
					t.Fatalf("dt=%v: flake above ceiling at %.3f", dt, y)
				}
			}
		}
	}
}

func TestSnowFallsWhileInactive(t *testing.T) {
	s := newTestSession(t, config.GiftsID)
	before := s.Snow()[0].Position.Y

	s.Tick(0.1)

	after := s.Snow()[0].Position.Y
	if after >= before && after < 6 {
		t.Errorf("Expected flake to fall or wrap, before=%.3f after=%.3f", before, after)
	}
}

func TestPlayerAdvancesOnlyWhileActive(t *testing.T) {
	s := newTestSession(t, config.SleighID)

	s.Tick(1)
	if s.Player().Z != 0 {
		t.Errorf("Inactive player moved to z=%.2f", s.Player().Z)
	}

	s.Start()
	placeAt(s, core.V3(100, 0, 0)) // Keep the run from ending
	s.Tick(0.5)

	want := -0.5 * 2.2
	if math.Abs(s.Player().Z-want) > 1e-9 {
		t.Errorf("Expected z=%.3f, got %.3f", want, s.Player().Z)
	}
}

func TestCollectWithinRadius(t *testing.T) {
	tests := []struct {
		name       string
		offset     core.Vec3
		wantPickup bool
	}{
		{"same position", core.V3(0, 0, 0), true},
		{"just inside", core.V3(0.89, 0, 0), true},
		{"on the radius", core.V3(0.9, 0, 0), false},
		{"outside", core.V3(0, 0, 3), false},
		{"above", core.V3(0, 0.5, 0.5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, config.GiftsID)
			s.Start()
			far := s.player.Add(core.V3(0, 0, -50))
			placeAt(s, s.player.Add(tt.offset), far)

			out := s.Tick(0)

			if got := out.ScoreDelta(); (got == 1) != tt.wantPickup || got > 1 {
				t.Fatalf("Expected pickup=%v, got delta %d", tt.wantPickup, got)
			}
			if !tt.wantPickup {
				if s.Score() != 0 || len(s.Collectibles()) != 2 || len(s.Effects()) != 0 {
					t.Errorf("Unexpected change: score=%d pool=%d effects=%d", s.Score(), len(s.Collectibles()), len(s.Effects()))
				}
				return
			}
			if s.Score() != 1 {
				t.Errorf("Expected score 1, got %d", s.Score())
			}
			if len(s.Collectibles()) != 1 || s.Collectibles()[0].Position != far {
				t.Errorf("Expected only the far collectible to remain, got %+v", s.Collectibles())
			}
			if len(s.Effects()) != 1 || s.Effects()[0].Position != out.Pickups[0].Position {
				t.Errorf("Expected one effect at the pickup, got %+v", s.Effects())
			}
		})
	}
}

func TestCollectSeveralKeepsOrder(t *testing.T) {
	s := newTestSession(t, config.GiftsID)
	s.Start()
	p := s.player
	placeAt(s,
		p.Add(core.V3(0, 0, -10)),  // kept
		p.Add(core.V3(0.1, 0, 0)),  // hit
		p.Add(core.V3(0, 0, -20)),  // kept
		p.Add(core.V3(-0.2, 0, 0)), // hit
		p.Add(core.V3(0, 0, -30)),  // kept
	)
	ids := []int{s.collectibles[0].ID, s.collectibles[2].ID, s.collectibles[4].ID}

	out := s.Tick(0)

	if len(out.Pickups) != 2 || s.Score() != 2 || len(s.Effects()) != 2 {
		t.Fatalf("Expected 2 pickups, got pickups=%d score=%d effects=%d", len(out.Pickups), s.Score(), len(s.Effects()))
	}
	if len(s.Collectibles()) != 3 {
		t.Fatalf("Expected 3 remaining, got %d", len(s.Collectibles()))
	}
	for i, c := range s.Collectibles() {
		if c.ID != ids[i] {
			t.Errorf("Remaining[%d]: expected ID %d, got %d", i, ids[i], c.ID)
		}
	}
}

func TestCollectedNeverCountedAgain(t *testing.T) {
	s := newTestSession(t, config.SleighID)
	s.Start()
	placeAt(s, s.player, s.player.Add(core.V3(50, 0, 0)))

	s.Tick(0)
	if s.Score() != 1 {
		t.Fatalf("Expected score 1, got %d", s.Score())
	}

	// Hold the player still over the same spot
	for i := 0; i < 20; i++ {
		s.player = core.V3(0, 1, 0)
		out := s.Tick(0)
		if out.ScoreDelta() != 0 {
			t.Fatalf("Tick %d: collected again", i)
		}
	}
	if s.Score() != 1 {
		t.Errorf("Expected score to stay 1, got %d", s.Score())
	}
}

func TestInactiveDoesNotCollect(t *testing.T) {
	s := newTestSession(t, config.GiftsID)
	placeAt(s, s.player)

	out := s.Tick(0.1)

	if out.ScoreDelta() != 0 || s.Score() != 0 || len(s.Collectibles()) != 1 {
		t.Errorf("Inactive session collected: %+v", out)
	}
}

func TestWinFiresOnce(t *testing.T) {
	s := newTestSession(t, config.GiftsID)
	s.Start()
	s.score = 9
	placeAt(s, s.player)

	out := s.Tick(0.016)

	if !out.Won || out.FinalScore != 10 {
		t.Fatalf("Expected win with final score 10, got %+v", out)
	}
	if s.Active() || !s.Won() {
		t.Errorf("Expected inactive won session, got active=%v won=%v", s.Active(), s.Won())
	}

	for i := 0; i < 10; i++ {
		out = s.Tick(0.016)
		if out.Won {
			t.Fatalf("Win fired again on tick %d", i)
		}
	}
	if s.Score() != 10 {
		t.Errorf("Expected final score to stay 10, got %d", s.Score())
	}
}

func TestEffectsExpire(t *testing.T) {
	s := newTestSession(t, config.GiftsID)
	s.effects = append(s.effects, Effect{Position: core.V3(1, 0, 0), Duration: 0.5, Growth: 2})

	s.Tick(0.125)
	e := s.Effects()[0]
	if math.Abs(e.Progress()-0.25) > 1e-9 {
		t.Errorf("Expected progress 0.25, got %.3f", e.Progress())
	}
	if math.Abs(e.Scale()-1.5) > 1e-9 {
		t.Errorf("Expected scale 1.5, got %.3f", e.Scale())
	}
	if math.Abs(e.Opacity()-0.75) > 1e-9 {
		t.Errorf("Expected opacity 0.75, got %.3f", e.Opacity())
	}

	s.Tick(0.25)
	if len(s.Effects()) != 1 {
		t.Fatalf("Effect removed too early")
	}

	out := s.Tick(0.125)
	if len(s.Effects()) != 0 || out.Expired != 1 {
		t.Errorf("Expected effect to expire at its duration, effects=%d expired=%d", len(s.Effects()), out.Expired)
	}

	out = s.Tick(1)
	if out.Expired != 0 {
		t.Errorf("Expired effect reported again")
	}
}

func TestEffectZeroDuration(t *testing.T) {
	e := Effect{Duration: 0, Growth: 2}
	if !e.Done() || e.Progress() != 1 || e.Opacity() != 0 {
		t.Errorf("Zero-duration effect should be finished, got progress=%.2f", e.Progress())
	}
}

func TestCameraConvergesWithoutOvershoot(t *testing.T) {
	for _, id := range []string{config.SleighID, config.GiftsID} {
		t.Run(id, func(t *testing.T) {
			s := newTestSession(t, id)
			s.camera.Position = core.V3(10, -3, 40)

			off := s.Config().Camera.Offset
			goal := s.Player().Add(core.V3(off.X, off.Y, off.Z))
			prev := s.Camera().Position.DistanceTo(goal)

			for i := 0; i < 300; i++ {
				before := s.Camera().Position
				s.Tick(0.016)
				cam := s.Camera()

				dist := cam.Position.DistanceTo(goal)
				if dist > prev {
					t.Fatalf("Tick %d: camera moved away (%.4f > %.4f)", i, dist, prev)
				}
				prev = dist

				// Each axis stays between its previous value and the goal
				for _, ax := range [][3]float64{
					{before.X, cam.Position.X, goal.X},
					{before.Y, cam.Position.Y, goal.Y},
					{before.Z, cam.Position.Z, goal.Z},
				} {
					lo, hi := math.Min(ax[0], ax[2]), math.Max(ax[0], ax[2])
					if ax[1] < lo-1e-9 || ax[1] > hi+1e-9 {
						t.Fatalf("Tick %d: camera overshot goal on an axis: %v", i, ax)
					}
				}
				if cam.Target != s.Player() {
					t.Fatalf("Camera target %+v is not the player", cam.Target)
				}
			}

			if prev > 0.01 {
				t.Errorf("Camera did not converge, still %.4f away", prev)
			}
		})
	}
}

func TestNegativeDeltaIsZero(t *testing.T) {
	s := newTestSession(t, config.SleighID)
	s.Start()
	placeAt(s, core.V3(100, 0, 0))
	flake := s.Snow()[0].Position

	s.Tick(-1)
	s.Tick(math.NaN())

	if s.Player().Z != 0 {
		t.Errorf("Negative dt moved the player to z=%.2f", s.Player().Z)
	}
	if s.Snow()[0].Position != flake {
		t.Errorf("Negative dt moved snow")
	}
}

func TestCompactCollected(t *testing.T) {
	pool := []Collectible{
		{ID: 1, Collected: true},
		{ID: 2},
		{ID: 3, Collected: true},
		{ID: 4},
		{ID: 5},
	}

	got := compactCollected(pool)

	want := []int{2, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(got))
	}
	for i, c := range got {
		if c.ID != want[i] || c.Collected {
			t.Errorf("Entry %d: expected ID %d uncollected, got %+v", i, want[i], c)
		}
	}

	if got := compactCollected(nil); len(got) != 0 {
		t.Errorf("Expected empty result for nil pool")
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	a := newTestSession(t, config.SleighID)
	b := newTestSession(t, config.SleighID)
	a.Start()
	b.Start()

	for i := 0; i < 500; i++ {
		a.Tick(0.016)
		b.Tick(0.016)
	}

	if a.Score() != b.Score() || a.Player() != b.Player() {
		t.Errorf("Sessions diverged: %d/%+v vs %d/%+v", a.Score(), a.Player(), b.Score(), b.Player())
	}
	for i := range a.Snow() {
		if a.Snow()[i] != b.Snow()[i] {
			t.Fatalf("Snow diverged at %d", i)
		}
	}
}
