package systems

import (
	"testing"
	"time"

	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/events"
	"github.com/automoto/avoidboxes/gamemath"
	"github.com/automoto/avoidboxes/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestFireCooldown(t *testing.T) {
	w := newTestWorld(t)

	require.True(t, Fire(w))
	setNow(w, 200*time.Millisecond)
	assert.False(t, Fire(w))
	setNow(w, 300*time.Millisecond)
	assert.True(t, Fire(w))

	assert.Equal(t, 2, count(w, components.Projectile))
	assert.Len(t, emitted(w, events.ProjectileFired), 2)
}

func TestFireSpawnsAtPlayerTopCentre(t *testing.T) {
	w := newTestWorld(t)
	require.True(t, Fire(w))

	var shot gamemath.Rect
	components.Projectile.Each(w.World, func(e *donburi.Entry) {
		shot = components.Object.Get(e).AABB()
	})
	p := playerRect(w)
	assert.Equal(t, p.Center().X, shot.Center().X)
	assert.Equal(t, p.Y, shot.Y)
	assert.Equal(t, 6.0, shot.W)
	assert.Equal(t, 12.0, shot.H)
}

func TestProjectileDetonatesBomb(t *testing.T) {
	w := newTestWorld(t)
	bomb := placeObstacle(w, components.ObstacleBomb, gamemath.Rect{X: 200, Y: 100, W: 40, H: 40}).Entity()
	near := placeObstacle(w, components.ObstacleNormal, gamemath.Rect{X: 240, Y: 140, W: 40, H: 20}).Entity()
	far := placeObstacle(w, components.ObstacleNormal, gamemath.Rect{X: 400, Y: 100, W: 40, H: 20}).Entity()
	shot := spawnShot(w, 215, 110).Entity()

	UpdateProjectiles(w)

	assert.False(t, alive(w, shot))
	assert.False(t, alive(w, bomb))
	assert.False(t, alive(w, near))
	assert.True(t, alive(w, far))
	assert.Equal(t, 10, GetScore(w).Score)
	assert.Len(t, emitted(w, events.BombExploded), 1)
	assert.Equal(t, 3, lives(w))
}

func TestProjectileStoppedByPlainObstacle(t *testing.T) {
	w := newTestWorld(t)
	ob := placeObstacle(w, components.ObstacleExplosive, gamemath.Rect{X: 200, Y: 100, W: 40, H: 20}).Entity()
	shot := spawnShot(w, 215, 110).Entity()

	UpdateProjectiles(w)

	assert.False(t, alive(w, shot))
	assert.True(t, alive(w, ob))
}

func TestProjectilePassesElectric(t *testing.T) {
	w := newTestWorld(t)
	wall := placeObstacle(w, components.ObstacleElectric, gamemath.Rect{X: 0, Y: 100, W: 300, H: 8}).Entity()
	shot := spawnShot(w, 215, 100).Entity()

	UpdateProjectiles(w)

	assert.True(t, alive(w, shot))
	assert.True(t, alive(w, wall))
}

func TestProjectileHitsBossFirst(t *testing.T) {
	w := newTestWorld(t)
	boss := factory.CreateBoss(w, components.BossNormal, gamemath.Rect{X: 180, Y: 90, W: 80, H: 40}, 0.4, 3)
	bomb := placeObstacle(w, components.ObstacleBomb, gamemath.Rect{X: 200, Y: 100, W: 40, H: 40}).Entity()
	components.Player.Get(GetPlayer(w)).AttackPower = 2
	shot := spawnShot(w, 215, 110).Entity()

	UpdateProjectiles(w)

	assert.False(t, alive(w, shot))
	assert.True(t, alive(w, bomb))
	assert.Equal(t, 1, components.Boss.Get(boss).HP)
	hits := emitted(w, events.BossDamaged)
	require.Len(t, hits, 1)
	assert.Equal(t, 1, hits[0].Value)
}

func TestGatedProjectileIsStillConsumed(t *testing.T) {
	w := newTestWorld(t)
	boss := factory.CreateBoss(w, components.BossNormal, gamemath.Rect{X: 180, Y: 90, W: 80, H: 40}, 0.4, 3)
	components.Player.Get(GetPlayer(w)).DamageGate.Stamp(0)
	setNow(w, 500*time.Millisecond)
	shot := spawnShot(w, 215, 110).Entity()

	UpdateProjectiles(w)

	assert.False(t, alive(w, shot))
	assert.Equal(t, 3, components.Boss.Get(boss).HP)
}
