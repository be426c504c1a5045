package holiday

import "github.com/vovakirdan/snowfall-arcade/internal/core"

// spawn appends n collectibles ahead of the player.
// Lateral positions are uniform in a band centered on the player's lane,
// forward positions uniform in [ForwardMin, ForwardMin+ForwardSpan) ahead.
func (s *Session) spawn(n int) {
	sc := s.cfg.Spawn
	for i := 0; i < n; i++ {
		pos := core.V3(
			s.player.X+(s.rng.Float64()-0.5)*sc.LateralSpread,
			sc.Height,
			s.player.Z-sc.ForwardMin-s.rng.Float64()*sc.ForwardSpan,
		)
		s.nextID++
		s.collectibles = append(s.collectibles, Collectible{
			ID:       s.nextID,
			Position: pos,
			Variant:  i % 2,
		})
	}
}
