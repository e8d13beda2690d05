package systems

import (
	"testing"

	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestSpawnInterval(t *testing.T) {
	c := config.Default().Spawn
	assert.Equal(t, 28, SpawnInterval(c, 1))
	assert.Equal(t, 20, SpawnInterval(c, 5))
	assert.Equal(t, 15, SpawnInterval(c, 8))
	assert.Equal(t, 15, SpawnInterval(c, 50))
}

func TestSpeedMultiplier(t *testing.T) {
	c := config.Default().Spawn
	assert.Equal(t, 1.0, SpeedMultiplier(c, 1))
	assert.InDelta(t, 1.4, SpeedMultiplier(c, 3), 1e-9)
}

func TestRollObstacleKind(t *testing.T) {
	c := config.Default().Spawn
	tests := []struct {
		roll       float64
		difficulty int
		want       components.ObstacleKind
	}{
		{0.10, 5, components.ObstacleNormal},
		{0.80, 1, components.ObstacleNormal},
		{0.80, 2, components.ObstacleMoving},
		{0.86, 2, components.ObstacleNormal},
		{0.90, 2, components.ObstacleNormal},
		{0.91, 2, components.ObstacleNormal},
		{0.92, 2, components.ObstacleBomb},
		{0.90, 3, components.ObstacleExplosive},
		{0.95, 1, components.ObstacleNormal},
		{0.95, 2, components.ObstacleBomb},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RollObstacleKind(c, tt.roll, tt.difficulty), "roll %v difficulty %d", tt.roll, tt.difficulty)
	}
}

func TestLockedKindsDegradeToNormal(t *testing.T) {
	c := config.Default().Spawn
	counts := map[components.ObstacleKind]int{}
	for i := 0; i < 1000; i++ {
		counts[RollObstacleKind(c, float64(i)/1000, 2)]++
	}
	assert.Equal(t, 80, counts[components.ObstacleBomb], "bomb keeps its own band")
	assert.Equal(t, 150, counts[components.ObstacleMoving])
	assert.Zero(t, counts[components.ObstacleExplosive])
	assert.Equal(t, 770, counts[components.ObstacleNormal])
}

func TestRollItemKind(t *testing.T) {
	c := config.Default().Spawn
	assert.Equal(t, components.ItemInvincible, RollItemKind(c, 0.1))
	assert.Equal(t, components.ItemShrink, RollItemKind(c, 0.5))
	assert.Equal(t, components.ItemHeart, RollItemKind(c, 0.82))
	assert.Equal(t, components.ItemSlowMotion, RollItemKind(c, 0.9))
	assert.Equal(t, components.ItemAttackPower, RollItemKind(c, 0.99))
}

func TestElectricSpans(t *testing.T) {
	tests := []struct {
		name   string
		g1, g2 float64
		want   [][2]float64
	}{
		{"apart", 100, 300, [][2]float64{{0, 100}, {180, 120}, {380, 100}}},
		{"swapped", 300, 100, [][2]float64{{0, 100}, {180, 120}, {380, 100}}},
		{"pushed apart", 0, 10, [][2]float64{{80, 40}, {200, 280}}},
		{"pinned at edge", 350, 360, [][2]float64{{0, 280}, {360, 40}}},
		{"same start at edge", 398, 398, [][2]float64{{0, 280}, {360, 40}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ElectricSpans(480, 80, 40, tt.g1, tt.g2))
		})
	}
}

func TestElectricWallAlwaysLeavesGap(t *testing.T) {
	w := newTestWorld(t)
	rng := GetSession(w).Rand
	for i := 0; i < 500; i++ {
		g1 := float64(int(rng.Float64() * 359))
		g2 := float64(int(rng.Float64() * 359))
		spans := ElectricSpans(480, 80, 40, g1, g2)
		require.NotEmpty(t, spans)

		covered := 0.0
		for _, s := range spans {
			assert.GreaterOrEqual(t, s[0], 0.0)
			assert.LessOrEqual(t, s[0]+s[1], 480.0)
			assert.Positive(t, s[1])
			covered += s[1]
		}
		assert.LessOrEqual(t, covered, 480.0-2*80, "two separate gaps for %v, %v", g1, g2)
	}
}

func TestUpdateSpawnerCadence(t *testing.T) {
	w := newTestWorld(t)

	for i := 0; i < 27; i++ {
		UpdateSpawner(w)
	}
	assert.Zero(t, count(w, components.Obstacle))

	UpdateSpawner(w)
	require.Equal(t, 1, count(w, components.Obstacle))
	assert.Equal(t, int64(28), GetSession(w).Frame)

	components.Obstacle.Each(w.World, func(e *donburi.Entry) {
		r := components.Object.Get(e).AABB()
		assert.Zero(t, r.Y)
		assert.GreaterOrEqual(t, r.X, 0.0)
		assert.LessOrEqual(t, r.Right(), 480.0)
	})
}
