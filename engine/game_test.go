package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/config"
	"github.com/automoto/avoidboxes/events"
	"github.com/automoto/avoidboxes/gamemath"
	"github.com/automoto/avoidboxes/systems"
	"github.com/automoto/avoidboxes/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 16 * time.Millisecond

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestGame(t *testing.T, adjust ...func(*config.Config)) *Game {
	t.Helper()
	c := config.Default()
	for _, fn := range adjust {
		fn(&c)
	}
	g, err := NewGame(c, WithSeed(12345))
	require.NoError(t, err)
	return g
}

func kinds(evs []events.Event) []events.Kind {
	out := make([]events.Kind, 0, len(evs))
	for _, e := range evs {
		out = append(out, e.Kind)
	}
	return out
}

func TestNewGameRejectsBadConfig(t *testing.T) {
	c := config.Default()
	c.Player.MaxLives = 0

	_, err := NewGame(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestNothingRunsBeforeStart(t *testing.T) {
	g := newTestGame(t)

	assert.Empty(t, g.Update(Intents{MoveLeft: true}, epoch.Add(time.Second)))
	assert.False(t, g.Fire(epoch))
	s := g.Snapshot()
	assert.Equal(t, components.SessionWaiting, s.State)
	assert.Zero(t, s.Frame)
	assert.Equal(t, 220.0, s.Player.X)
}

func TestStartOnlyOnce(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.Start(epoch))
	assert.False(t, g.Start(epoch.Add(time.Second)))
}

func TestInvariantsHoldOverLongRun(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.Start(epoch))
	rng := rand.New(rand.NewSource(7))

	now := epoch
	for i := 0; i < 20000; i++ {
		now = now.Add(tick)
		in := Intents{
			MoveLeft:  rng.Intn(3) == 0,
			MoveRight: rng.Intn(3) == 0,
			Fire:      rng.Intn(4) == 0,
		}
		if rng.Intn(50) == 0 {
			in.Skills = []components.Skill{components.Skill(rng.Intn(int(components.SkillCount)))}
		}
		g.Update(in, now)

		s := g.Snapshot()
		require.GreaterOrEqual(t, s.Player.X, 0.0)
		require.LessOrEqual(t, s.Player.X, 480-s.Player.W)
		require.GreaterOrEqual(t, s.Lives, 0)
		require.LessOrEqual(t, s.Lives, s.MaxLives)
		require.GreaterOrEqual(t, s.Score, 0)
		require.LessOrEqual(t, s.Combo, s.MaxCombo)
		if !s.Shrunk && s.State != components.SessionOver {
			require.Equal(t, 40.0, s.Player.W)
			require.Equal(t, 20.0, s.Player.H)
		}
		if s.State == components.SessionOver {
			break
		}
	}
}

func TestProgressionFollowsSimTime(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.Start(epoch))

	g.Update(Intents{}, epoch.Add(19*time.Second))
	assert.Equal(t, 1, g.Snapshot().Difficulty)

	g.Update(Intents{}, epoch.Add(45*time.Second))
	s := g.Snapshot()
	assert.Equal(t, 3, s.Difficulty)
	assert.Equal(t, 2, s.Wave)
}

func TestPauseDoesNotAdvanceTime(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.Start(epoch))
	g.Update(Intents{}, epoch.Add(time.Second))
	frame := g.Snapshot().Frame

	require.True(t, g.TogglePause(epoch.Add(time.Second)))
	assert.True(t, g.Snapshot().Paused)
	assert.Empty(t, g.Update(Intents{Fire: true}, epoch.Add(5*time.Second)))
	assert.False(t, g.ActivateSkill(components.SkillHide, epoch.Add(6*time.Second)))
	assert.Equal(t, frame, g.Snapshot().Frame)
	assert.Equal(t, time.Second, g.Elapsed(epoch.Add(9*time.Second)))

	require.True(t, g.TogglePause(epoch.Add(11*time.Second)))
	g.Update(Intents{}, epoch.Add(12*time.Second))

	s := g.Snapshot()
	assert.Equal(t, 2*time.Second, s.Now)
	assert.Equal(t, frame+1, s.Frame)
	assert.Equal(t, 1, s.Difficulty)
}

func TestSkillTimersSurvivePause(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.Start(epoch))
	require.True(t, g.ActivateSkill(components.SkillHide, epoch))

	g.TogglePause(epoch.Add(500 * time.Millisecond))
	g.TogglePause(epoch.Add(10 * time.Second))
	g.Update(Intents{}, epoch.Add(10*time.Second+400*time.Millisecond))

	s := g.Snapshot()
	assert.True(t, s.Hidden)
	assert.Equal(t, 100*time.Millisecond, s.Skills[components.SkillHide].Remaining)
}

func TestGameOverHaltsSimulation(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.Start(epoch))
	factory.CreateObstacle(g.ecs, components.ObstacleElectric, gamemath.Rect{X: 0, Y: 575, W: 480, H: 8}, 0, 0)

	evs := g.Update(Intents{}, epoch.Add(tick))

	assert.Contains(t, kinds(evs), events.GameOver)
	s := g.Snapshot()
	assert.Equal(t, components.SessionOver, s.State)
	assert.Equal(t, events.CauseElectric, s.Cause)
	assert.Zero(t, s.Lives)
	assert.Zero(t, s.Frame, "spawner never ran after the fatal hit")

	assert.Empty(t, g.Update(Intents{Fire: true, MoveLeft: true}, epoch.Add(2*tick)))
	assert.False(t, g.Fire(epoch.Add(3*tick)))
	assert.False(t, g.TogglePause(epoch.Add(3*tick)))
	assert.Equal(t, s.Player, g.Snapshot().Player)

	g.SetMove(true, false)
	p := components.Player.Get(systems.GetPlayer(g.ecs))
	assert.False(t, p.MoveLeft, "movement intents are ignored once the run is over")
	assert.False(t, p.MoveRight)

	require.True(t, g.Start(epoch.Add(time.Minute)))
	fresh := g.Snapshot()
	assert.Equal(t, components.SessionRunning, fresh.State)
	assert.Equal(t, 3, fresh.Lives)
	assert.Empty(t, fresh.Obstacles)
}

func TestIntentsApplyBeforeTick(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.Start(epoch))

	evs := g.Update(Intents{Fire: true, MoveRight: true, Skills: []components.Skill{components.SkillHide}}, epoch.Add(tick))

	assert.Contains(t, kinds(evs), events.ProjectileFired)
	assert.Contains(t, kinds(evs), events.SkillActivated)
	s := g.Snapshot()
	assert.Equal(t, 225.0, s.Player.X)
	require.Len(t, s.Projectiles, 1)
	assert.Equal(t, 562.0, s.Projectiles[0].Y)
	assert.True(t, s.Hidden)
}

func TestResetReturnsToWaiting(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.Start(epoch))
	g.Update(Intents{MoveLeft: true}, epoch.Add(tick))

	g.Reset()

	s := g.Snapshot()
	assert.Equal(t, components.SessionWaiting, s.State)
	assert.Equal(t, 220.0, s.Player.X)
	assert.Zero(t, s.Score)
}

func TestSetGameSpeed(t *testing.T) {
	g := newTestGame(t)
	assert.Error(t, g.SetGameSpeed(0))
	require.NoError(t, g.SetGameSpeed(1.5))
	assert.Equal(t, 1.5, g.cfg.GameSpeed)
}
