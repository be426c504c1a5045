package holiday

import (
	"math"
)

// Tick advances the world by dt seconds. Steps run in a fixed order:
// snow, player, collection, effects, camera. Rendering is left to the caller.
// Negative or NaN dt is treated as zero.
func (s *Session) Tick(dt float64) Outcome {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}

	var out Outcome

	// Snow falls even between runs
	s.advanceSnow(dt)

	if s.active {
		s.runTime += dt
		speed := s.difficulty.Speed(s.cfg.Player.ForwardSpeed, s.score, s.runTime)
		s.player.Z -= dt * speed

		out.Pickups = s.collect()

		if len(s.collectibles) == 0 {
			s.active = false
			s.won = true
			out.Won = true
			out.FinalScore = s.score
		}
	}

	out.Expired = s.advanceEffects(dt)

	cc := s.cfg.Camera
	s.camera.Follow(s.player, vec(cc.Offset), cc.Smoothing)

	return out
}

// advanceSnow drops every flake and recycles those below the floor.
func (s *Session) advanceSnow(dt float64) {
	sc := s.cfg.Snow
	for i := range s.snow {
		p := &s.snow[i].Position
		p.Y -= dt * sc.FallSpeed
		if p.Y < sc.Floor {
			p.Y = sc.RespawnMin + s.rng.Float64()*sc.RespawnSpan
		}
	}
}

// collect gathers every collectible within the capture radius.
// Hits are found first and the pool is compacted afterwards, so removal
// never shifts indices that are still being scanned.
func (s *Session) collect() []Pickup {
	radius := s.difficulty.CaptureRadius(s.cfg.Capture.Radius, s.score, s.runTime)

	var hits []int
	for i, c := range s.collectibles {
		if c.Collected {
			continue
		}
		if s.player.DistanceTo(c.Position) < radius {
			hits = append(hits, i)
		}
	}
	if len(hits) == 0 {
		return nil
	}

	pickups := make([]Pickup, 0, len(hits))
	for _, i := range hits {
		c := &s.collectibles[i]
		c.Collected = true
		s.score++

		pickups = append(pickups, Pickup{ID: c.ID, Position: c.Position, Variant: c.Variant})
		s.effects = append(s.effects, Effect{
			Position: c.Position,
			Duration: s.cfg.Effects.Duration,
			Growth:   s.cfg.Effects.Growth,
		})
	}

	s.collectibles = compactCollected(s.collectibles)
	return pickups
}

// compactCollected removes collected entries, keeping the order of the rest.
func compactCollected(pool []Collectible) []Collectible {
	kept := pool[:0]
	for _, c := range pool {
		if !c.Collected {
			kept = append(kept, c)
		}
	}
	return kept
}

// advanceEffects ages every effect and drops the expired ones.
// Returns how many were removed.
func (s *Session) advanceEffects(dt float64) int {
	kept := s.effects[:0]
	for _, e := range s.effects {
		e.Elapsed += dt
		if !e.Done() {
			kept = append(kept, e)
		}
	}
	expired := len(s.effects) - len(kept)
	s.effects = kept
	return expired
}
