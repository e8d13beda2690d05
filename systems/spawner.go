package systems

import (
	"math"

	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/config"
	"github.com/automoto/avoidboxes/gamemath"
	"github.com/automoto/avoidboxes/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner advances the frame counter and runs the obstacle, item and
// electric wall cadences.
func UpdateSpawner(ecs *ecs.ECS) {
	session := GetSession(ecs)
	prog := GetProgression(ecs)
	c := session.Config.Spawn

	session.Frame++
	frame := session.Frame

	if frame%int64(SpawnInterval(session.Config.Spawn, prog.Difficulty)) == 0 {
		spawnObstacle(ecs)
	}
	if frame%int64(c.ItemInterval) == 0 && session.Rand.Float64() < c.ItemChance {
		spawnItem(ecs)
	}
	if frame%int64(c.ElectricInterval) == 0 && session.Rand.Float64() < c.ElectricChance {
		spawnElectricWall(ecs)
	}
}

// SpawnInterval returns the obstacle cadence in ticks for a difficulty.
func SpawnInterval(c config.SpawnConfig, difficulty int) int {
	return max(c.MinSpawnInterval, c.BaseSpawnRate-difficulty*c.SpawnRateStep)
}

// SpeedMultiplier scales fall speeds with difficulty.
func SpeedMultiplier(c config.SpawnConfig, difficulty int) float64 {
	return 1 + float64(difficulty-1)*c.DifficultySpeedStep
}

// RollObstacleKind maps a uniform roll to an obstacle kind. Kinds locked
// behind a higher difficulty degrade to Normal.
func RollObstacleKind(c config.SpawnConfig, roll float64, difficulty int) components.ObstacleKind {
	kind, minDifficulty := components.ObstacleNormal, 0
	switch {
	case roll < c.NormalChance:
	case roll < c.MovingChance:
		kind, minDifficulty = components.ObstacleMoving, c.MovingMinDifficulty
	case roll < c.ExplosiveChance:
		kind, minDifficulty = components.ObstacleExplosive, c.ExplosiveMinDifficulty
	case roll < c.BombChance:
		kind, minDifficulty = components.ObstacleBomb, c.BombMinDifficulty
	}
	if difficulty < minDifficulty {
		return components.ObstacleNormal
	}
	return kind
}

// RollItemKind maps a uniform roll to an item kind.
func RollItemKind(c config.SpawnConfig, roll float64) components.ItemKind {
	w := c.ItemWeights
	switch {
	case roll < w[0]:
		return components.ItemInvincible
	case roll < w[1]:
		return components.ItemShrink
	case roll < w[2]:
		return components.ItemHeart
	case roll < w[3]:
		return components.ItemSlowMotion
	}
	return components.ItemAttackPower
}

func spawnObstacle(ecs *ecs.ECS) {
	session := GetSession(ecs)
	difficulty := GetProgression(ecs).Difficulty
	c := session.Config.Spawn
	rng := session.Rand

	base := c.BaseSpeed * SpeedMultiplier(c, difficulty)
	x := rng.Float64() * (session.Config.Arena.Width - c.ObstacleWidth)
	kind := RollObstacleKind(c, rng.Float64(), difficulty)

	r := gamemath.Rect{X: x, Y: 0, W: c.ObstacleWidth, H: c.ObstacleHeight}
	var speed, hs float64
	switch kind {
	case components.ObstacleMoving:
		speed = base + rng.Float64()*c.SlowSpeedJitter
		hs = c.MovingHorizontalSpeed
		if rng.Float64() < 0.5 {
			hs = -hs
		}
	case components.ObstacleBomb:
		r.W, r.H = c.BombSize, c.BombSize
		speed = base + rng.Float64()*c.SlowSpeedJitter
	default:
		speed = base + rng.Float64()*c.SpeedJitter
	}
	factory.CreateObstacle(ecs, kind, r, speed, hs)
}

func spawnItem(ecs *ecs.ECS) {
	session := GetSession(ecs)
	c := session.Config.Spawn
	rng := session.Rand

	kind := RollItemKind(c, rng.Float64())
	x := rng.Float64() * (session.Config.Arena.Width - c.ItemSize)
	speed := (c.ItemBaseSpeed + rng.Float64()*c.ItemSpeedJitter) * SpeedMultiplier(c, GetProgression(ecs).Difficulty)
	factory.CreateItem(ecs, kind, x, 0, c.ItemSize, speed)
}

func spawnElectricWall(ecs *ecs.ECS) {
	session := GetSession(ecs)
	c := session.Config.Spawn
	width := session.Config.Arena.Width
	rng := session.Rand

	gap := session.Config.Player.Width + c.ElectricGapMargin
	speed := c.ElectricBaseSpeed + rng.Float64()*c.ElectricSpeedJitter

	maxStart := math.Max(1, width-gap-1)
	g1 := math.Floor(rng.Float64() * maxStart)
	g2 := math.Floor(rng.Float64() * maxStart)

	spans := ElectricSpans(width, gap, c.ElectricGapSeparation, g1, g2)
	factory.CreateElectricWall(ecs, spans, 0, c.ElectricThickness, speed)
}

// ElectricSpans cuts a full-width wall around two gaps starting at g1 and
// g2. The starts are ordered and the second is pushed right until the gaps
// are at least separation apart. When that would leave the arena the second
// is pinned to the right edge and the first pulled left instead. Each span
// is {x, width} and empty spans are dropped.
func ElectricSpans(width, gap, separation, g1, g2 float64) [][2]float64 {
	if g1 > g2 {
		g1, g2 = g2, g1
	}
	if g2 < g1+gap+separation {
		g2 = math.Min(width-gap, g1+gap+separation)
		g1 = math.Max(0, math.Min(g1, g2-gap-separation))
	}

	var spans [][2]float64
	if g1 > 0 {
		spans = append(spans, [2]float64{0, g1})
	}
	if midStart := g1 + gap; g2 > midStart {
		spans = append(spans, [2]float64{midStart, g2 - midStart})
	}
	if rightStart := g2 + gap; rightStart < width {
		spans = append(spans, [2]float64{rightStart, width - rightStart})
	}
	return spans
}
