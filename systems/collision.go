package systems

import (
	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/events"
	"github.com/automoto/avoidboxes/systems/factory"
	"github.com/automoto/avoidboxes/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves the player against every hazard in fixed order:
// bosses, electric walls, explosive obstacles, then the rest. All categories
// share one damage gate, so at most one hit registers per cooldown window.
func UpdateCollisions(ecs *ecs.ECS) {
	e := GetPlayer(ecs)
	if e == nil {
		return
	}
	session := GetSession(ecs)
	now := session.Now
	c := session.Config.Combat
	player := components.Player.Get(e)
	effects := components.Effects.Get(e)
	obj := components.Object.Get(e)

	// Boss contact ignores invulnerability and is only gated by the cooldown.
	if len(overlapping(obj, tags.ResolvBoss)) > 0 && player.DamageGate.Exceeded(now, c.DamageCooldown) {
		killPlayer(ecs, e, events.CauseBoss)
		return
	}

	hazards := overlapping(obj, tags.ResolvHazard)
	if len(hazards) == 0 {
		return
	}
	invulnerable := effects.Invulnerable(now)

	// Electric walls ignore the cooldown but not invulnerability.
	if !invulnerable {
		for _, h := range hazards {
			if components.Obstacle.Get(h).Kind == components.ObstacleElectric {
				killPlayer(ecs, e, events.CauseElectric)
				return
			}
		}
	}
	if invulnerable {
		return
	}

	ids := make([]donburi.Entity, len(hazards))
	for i, h := range hazards {
		ids[i] = h.Entity()
	}
	for _, pass := range []func(components.ObstacleKind) bool{isExplosive, isPlain} {
		for _, id := range ids {
			if !ecs.World.Valid(id) {
				continue
			}
			h := ecs.World.Entry(id)
			if !pass(components.Obstacle.Get(h).Kind) {
				continue
			}
			if !player.DamageGate.Exceeded(now, c.DamageCooldown) {
				return
			}
			amount, cause := 1, events.CauseObstacle
			if isExplosive(components.Obstacle.Get(h).Kind) {
				amount, cause = c.ExplosiveDamage, events.CauseExplosive
			}
			factory.Destroy(ecs, h)
			if damagePlayer(ecs, e, amount, cause) {
				return
			}
		}
	}
}

func isExplosive(k components.ObstacleKind) bool { return k == components.ObstacleExplosive }

func isPlain(k components.ObstacleKind) bool {
	switch k {
	case components.ObstacleNormal, components.ObstacleMoving, components.ObstacleBomb:
		return true
	}
	return false
}

// hazardsAt lists every obstacle entity, for callers that need the full pool.
func hazardsAt(ecs *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	components.Obstacle.Each(ecs.World, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}
