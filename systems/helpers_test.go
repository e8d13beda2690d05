package systems

import (
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/config"
	"github.com/automoto/avoidboxes/events"
	"github.com/automoto/avoidboxes/gamemath"
	"github.com/automoto/avoidboxes/systems/factory"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestWorld builds a running session with the stock tuning, optionally
// adjusted, and a seeded random source. The player sits at x=220, y=570
// with a 40x20 body.
func newTestWorld(t *testing.T, adjust ...func(*config.Config)) *ecs.ECS {
	t.Helper()
	c := config.Default()
	for _, fn := range adjust {
		fn(&c)
	}
	require.NoError(t, c.Validate())

	log := logrus.New()
	log.SetOutput(io.Discard)

	w := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(w, int(c.Arena.Width), int(c.Arena.Height), c.Arena.CellSize, c.Arena.CellSize)
	factory.CreateSession(w, &c, rand.New(rand.NewSource(12345)), log)
	factory.CreatePlayer(w, &c)
	GetSession(w).State = components.SessionRunning
	return w
}

func setNow(w *ecs.ECS, now time.Duration) {
	GetSession(w).Now = now
}

func playerRect(w *ecs.ECS) gamemath.Rect {
	return components.Object.Get(GetPlayer(w)).AABB()
}

func lives(w *ecs.ECS) int {
	return components.Lives.Get(GetPlayer(w)).Lives
}

func effectsOf(w *ecs.ECS) *components.EffectsData {
	return components.Effects.Get(GetPlayer(w))
}

// emitted returns the pending events of kind without draining them.
func emitted(w *ecs.ECS, kind events.Kind) []events.Event {
	var out []events.Event
	for _, e := range GetSession(w).Events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// onPlayer returns a rect overlapping the player's body.
func onPlayer(w *ecs.ECS, width, height float64) gamemath.Rect {
	p := playerRect(w)
	return gamemath.Rect{X: p.X, Y: p.Y - height/2, W: width, H: height}
}

func placeObstacle(w *ecs.ECS, kind components.ObstacleKind, r gamemath.Rect) *donburi.Entry {
	return factory.CreateObstacle(w, kind, r, 2, 0)
}

// spawnShot places a projectile with its top-left corner at x, y.
func spawnShot(w *ecs.ECS, x, y float64) *donburi.Entry {
	c := GetSession(w).Config.Combat
	shooter := &components.ObjectData{Object: resolv.NewObject(x+c.ProjectileWidth/2, y, 0, 0)}
	return factory.CreateProjectile(w, GetSession(w).Config, shooter)
}

// alive reports whether id is still in the world. Entries are pooled per
// id and re-pointed when an id is recycled, so tests hold ids instead.
func alive(w *ecs.ECS, id donburi.Entity) bool {
	return w.World.Valid(id)
}

func count[T any](w *ecs.ECS, c *donburi.ComponentType[T]) int {
	n := 0
	c.Each(w.World, func(*donburi.Entry) { n++ })
	return n
}
