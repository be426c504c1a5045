package holiday

import (
	"github.com/vovakirdan/snowfall-arcade/internal/config"
	"github.com/vovakirdan/snowfall-arcade/internal/core"
)

// Move applies one manual step for a movement action.
// Forward and backward only move the player when planar movement is enabled.
// Returns false if the action does not move the player.
func (s *Session) Move(a core.Action) bool {
	step := s.cfg.Player.Step
	planar := s.cfg.Player.Movement == config.MovementPlanar

	switch a {
	case core.ActionLeft:
		s.player.X -= step
	case core.ActionRight:
		s.player.X += step
	case core.ActionForward:
		if !planar {
			return false
		}
		s.player.Z -= step
	case core.ActionBackward:
		if !planar {
			return false
		}
		s.player.Z += step
	default:
		return false
	}
	return true
}

// Confirm handles the start/continue action. Returns true if the run went
// from inactive to active.
//
// In restart mode a fresh run starts only when none is active. In resume mode
// the current run is re-activated as is; a finished run (empty pool) is
// restarted instead.
func (s *Session) Confirm() bool {
	if s.active {
		return false
	}

	if s.cfg.Controls.Confirm == config.ConfirmResume && len(s.collectibles) > 0 {
		s.active = true
		return true
	}

	s.Start()
	return true
}

// Apply routes one logical action to Move or Confirm.
// Returns true if the action started or resumed a run.
func (s *Session) Apply(a core.Action) bool {
	if a == core.ActionConfirm {
		return s.Confirm()
	}
	s.Move(a)
	return false
}
