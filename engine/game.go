// Package engine runs one Avoid Boxes session. A Game owns the ECS world,
// translates wall-clock time into simulation time net of pauses, applies
// intents and advances the systems one tick per Update.
package engine

import (
	"io"
	"math/rand"
	"time"

	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/config"
	"github.com/automoto/avoidboxes/events"
	"github.com/automoto/avoidboxes/systems"
	"github.com/automoto/avoidboxes/systems/factory"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Intents is the batch of player requests applied at the start of a tick.
// Movement is level-triggered; the rest fire once.
type Intents struct {
	MoveLeft  bool
	MoveRight bool
	Skills    []components.Skill
	Fire      bool
	Fever     bool
}

type Option func(*Game)

// WithLogger routes engine logging to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(g *Game) { g.log = l }
}

// WithRand sets the source of every random roll.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithSeed is WithRand with a fresh source seeded by seed.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

type Game struct {
	cfg config.Config
	log logrus.FieldLogger
	rng *rand.Rand
	ecs *ecs.ECS

	startedAt   time.Time
	paused      bool
	pausedAt    time.Time
	pausedTotal time.Duration
}

// NewGame validates cfg and builds a game waiting for Start.
func NewGame(cfg config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	g := &Game{
		cfg: cfg,
		log: discard,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.build()
	return g, nil
}

func (g *Game) build() {
	world := donburi.NewWorld()
	e := ecs.NewECS(world)

	e.AddSystem(systems.WithRunningCheck(systems.UpdateProgression))
	e.AddSystem(systems.WithRunningCheck(systems.UpdatePlayer))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateMovement))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateProjectiles))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateCulling))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateCollisions))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateItems))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateBoss))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateSpawner))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateEffects))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateParticles))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateNotifications))

	factory.CreateSpace(e, int(g.cfg.Arena.Width), int(g.cfg.Arena.Height), g.cfg.Arena.CellSize, g.cfg.Arena.CellSize)
	factory.CreateSession(e, &g.cfg, g.rng, g.log)
	factory.CreatePlayer(e, &g.cfg)

	g.ecs = e
	g.paused = false
	g.pausedTotal = 0
}

func (g *Game) session() *components.SessionData {
	return systems.GetSession(g.ecs)
}

// Start begins a run at now. Starting a finished run rebuilds the world
// first. It returns false if a run is already in progress.
func (g *Game) Start(now time.Time) bool {
	switch g.session().State {
	case components.SessionRunning:
		return false
	case components.SessionOver:
		g.build()
	}
	g.startedAt = now
	g.session().State = components.SessionRunning
	g.log.WithFields(logrus.Fields{"width": g.cfg.Arena.Width, "height": g.cfg.Arena.Height, "speed": g.cfg.GameSpeed}).Info("run started")
	return true
}

// Reset discards the current run and waits for Start.
func (g *Game) Reset() {
	g.build()
}

// TogglePause suspends or resumes a running game. Time spent paused never
// reaches the simulation clock.
func (g *Game) TogglePause(now time.Time) bool {
	if !g.session().Running() {
		return false
	}
	if g.paused {
		g.pausedTotal += now.Sub(g.pausedAt)
		g.paused = false
	} else {
		g.pausedAt = now
		g.paused = true
	}
	return true
}

func (g *Game) Paused() bool { return g.paused }

// SetGameSpeed changes the global fall speed scale.
func (g *Game) SetGameSpeed(v float64) error {
	if v <= 0 {
		return errors.Errorf("game speed must be positive, got %v", v)
	}
	g.cfg.GameSpeed = v
	return nil
}

// Elapsed returns simulation time at wall time now.
func (g *Game) Elapsed(now time.Time) time.Duration {
	if g.session().State == components.SessionWaiting {
		return 0
	}
	if g.paused {
		now = g.pausedAt
	}
	return now.Sub(g.startedAt) - g.pausedTotal
}

// sync advances the simulation clock to now. The clock never moves back
// and freezes once the run is over.
func (g *Game) sync(now time.Time) bool {
	s := g.session()
	if !s.Running() || g.paused {
		return false
	}
	if t := g.Elapsed(now); t > s.Now {
		s.Now = t
	}
	return true
}

// SetMove sets the held movement intents. It is a no-op unless a run is
// in progress.
func (g *Game) SetMove(left, right bool) {
	if !g.session().Running() {
		return
	}
	if e := systems.GetPlayer(g.ecs); e != nil {
		p := components.Player.Get(e)
		p.MoveLeft = left
		p.MoveRight = right
	}
}

func (g *Game) ActivateSkill(skill components.Skill, now time.Time) bool {
	if !g.sync(now) {
		return false
	}
	return systems.TryActivate(g.ecs, skill)
}

func (g *Game) Fire(now time.Time) bool {
	if !g.sync(now) {
		return false
	}
	return systems.Fire(g.ecs)
}

func (g *Game) ActivateFever(now time.Time) bool {
	if !g.sync(now) {
		return false
	}
	return systems.ActivateFever(g.ecs)
}

// Update applies in and advances one tick at wall time now. It returns every
// event emitted since the previous Update, including those raised by
// discrete intent calls. Nothing advances while paused, waiting or over.
func (g *Game) Update(in Intents, now time.Time) []events.Event {
	if !g.sync(now) {
		return g.session().Drain()
	}
	g.SetMove(in.MoveLeft, in.MoveRight)
	for _, s := range in.Skills {
		systems.TryActivate(g.ecs, s)
	}
	if in.Fire {
		systems.Fire(g.ecs)
	}
	if in.Fever {
		systems.ActivateFever(g.ecs)
	}
	g.ecs.Update()
	return g.session().Drain()
}
