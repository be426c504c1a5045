package holiday

import (
	"github.com/vovakirdan/snowfall-arcade/internal/core"
)

// Collectible is a present waiting to be picked up.
type Collectible struct {
	ID        int
	Position  core.Vec3
	Variant   int  // Cosmetic only, alternates by spawn index
	Collected bool // Set once, the entity then leaves the pool
}

// Snowflake is an ambient particle. It is never destroyed, only recycled.
type Snowflake struct {
	Position core.Vec3
}

// Effect is the short pulse left behind where a collectible was picked up.
type Effect struct {
	Position core.Vec3
	Elapsed  float64 // Seconds since the pickup
	Duration float64 // Seconds until the effect expires
	Growth   float64 // Extra scale reached at the end
}

// Progress returns how far the effect has run, in [0, 1].
func (e Effect) Progress() float64 {
	if e.Duration <= 0 {
		return 1
	}
	return core.ClampF(e.Elapsed/e.Duration, 0, 1)
}

// Scale grows linearly from 1 to 1+Growth.
func (e Effect) Scale() float64 {
	return 1 + e.Progress()*e.Growth
}

// Opacity fades linearly from 1 to 0.
func (e Effect) Opacity() float64 {
	return 1 - e.Progress()
}

// Done reports whether the effect has expired.
func (e Effect) Done() bool {
	return e.Elapsed >= e.Duration
}

// Camera trails the player and always looks at it.
type Camera struct {
	Position core.Vec3
	Target   core.Vec3
}

// Follow moves the camera a fraction of the way toward target+offset.
// With smoothing in (0, 1] the camera approaches without overshooting.
func (c *Camera) Follow(target, offset core.Vec3, smoothing float64) {
	c.Position = c.Position.Lerp(target.Add(offset), smoothing)
	c.Target = target
}

// Pickup describes one collectible gathered during a tick.
type Pickup struct {
	ID       int
	Position core.Vec3
	Variant  int
}

// Outcome lists what a tick did, for the platform to act on.
type Outcome struct {
	Pickups    []Pickup
	Expired    int  // Effects removed this tick
	Won        bool // The pool emptied and the run ended this tick
	FinalScore int  // Valid when Won is set
}

// ScoreDelta returns how much the score grew this tick.
func (o Outcome) ScoreDelta() int {
	return len(o.Pickups)
}
