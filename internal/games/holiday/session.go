package holiday

import (
	"math/rand"

	"github.com/vovakirdan/snowfall-arcade/internal/config"
	"github.com/vovakirdan/snowfall-arcade/internal/core"
)

// Session owns one world: the player, every entity pool and the run state.
// It is not safe for concurrent use; the platform drives it from a single
// goroutine that handles both input and frame ticks.
type Session struct {
	cfg        config.HolidayConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	player       core.Vec3
	collectibles []Collectible
	snow         []Snowflake
	effects      []Effect
	trees        []core.Vec3
	camera       Camera

	score   int
	active  bool
	won     bool
	runTime float64 // Seconds of active play in the current run
	nextID  int
}

// NewSession builds the scene: static scenery, the snow field and an
// initial batch of collectibles. The run starts inactive.
func NewSession(cfg config.HolidayConfig, seed int64) *Session {
	s := &Session{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(seed)),
		player:     vec(cfg.Player.Start),
	}

	s.camera = Camera{
		Position: vec(cfg.Camera.Start),
		Target:   s.player,
	}

	for _, t := range cfg.Scenery.Trees {
		s.trees = append(s.trees, vec(t))
	}

	s.snow = make([]Snowflake, cfg.Snow.Count)
	for i := range s.snow {
		s.snow[i].Position = core.V3(
			(s.rng.Float64()-0.5)*cfg.Snow.Spread,
			cfg.Snow.MinHeight+s.rng.Float64()*cfg.Snow.HeightSpan,
			(s.rng.Float64()-0.5)*cfg.Snow.Spread,
		)
	}

	s.spawn(cfg.Spawn.Count)
	return s
}

// Start begins a fresh run: score and player are reset, every collectible
// and effect is cleared, a new batch is spawned and the run becomes active.
func (s *Session) Start() {
	s.score = 0
	s.runTime = 0
	s.won = false
	s.player = vec(s.cfg.Player.Spawn)

	s.collectibles = s.collectibles[:0]
	s.effects = s.effects[:0]

	s.spawn(s.cfg.Spawn.Count)
	s.active = true
}

// Score returns the number of collectibles gathered in the current run.
func (s *Session) Score() int { return s.score }

// Active reports whether a run is in progress.
func (s *Session) Active() bool { return s.active }

// Won reports whether the last run ended by emptying the pool.
func (s *Session) Won() bool { return s.won }

// Player returns the player position.
func (s *Session) Player() core.Vec3 { return s.player }

// Camera returns the camera state.
func (s *Session) Camera() Camera { return s.camera }

// Collectibles returns the active pool. The slice must not be modified.
func (s *Session) Collectibles() []Collectible { return s.collectibles }

// Snow returns the snow particles. The slice must not be modified.
func (s *Session) Snow() []Snowflake { return s.snow }

// Effects returns the running effects. The slice must not be modified.
func (s *Session) Effects() []Effect { return s.effects }

// Trees returns the positions of decorative trees.
func (s *Session) Trees() []core.Vec3 { return s.trees }

// Config returns the configuration the session was built with.
func (s *Session) Config() config.HolidayConfig { return s.cfg }

func vec(p config.Point) core.Vec3 {
	return core.V3(p.X, p.Y, p.Z)
}
