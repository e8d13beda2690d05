package systems

import (
	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/events"
	"github.com/automoto/avoidboxes/gamemath"
	"github.com/automoto/avoidboxes/systems/factory"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Explode applies an area pulse centred on at. Distances are measured
// between centres and the radius is inclusive. Electric walls are immune.
func Explode(ecs *ecs.ECS, at math.Vec2) {
	session := GetSession(ecs)
	c := session.Config.Combat
	radius := c.ExplosionRadius

	factory.CreateParticles(ecs, session.Rand, at, bombBurst(session.Config))
	session.Emit(events.Event{Kind: events.BombExploded})

	for _, h := range hazardsAt(ecs) {
		if !components.Obstacle.Get(h).Kind.Destructible() {
			continue
		}
		center := components.Object.Get(h).AABB().Center()
		if !gamemath.WithinRadius(at, center, radius) {
			continue
		}
		factory.Destroy(ecs, h)
		AddScore(ecs, c.ExplosionScore)
		factory.CreateParticles(ecs, session.Rand, center, bombBurst(session.Config))
	}

	for _, id := range GetEncounter(ecs).BossIDs() {
		if !ecs.World.Valid(id) {
			continue
		}
		b := ecs.World.Entry(id)
		if gamemath.WithinRadius(at, components.Object.Get(b).AABB().Center(), radius) {
			DamageBoss(ecs, b, c.ExplosionBossDamage)
		}
	}

	e := GetPlayer(ecs)
	if e == nil {
		return
	}
	player := components.Player.Get(e)
	effects := components.Effects.Get(e)
	center := components.Object.Get(e).AABB().Center()
	if gamemath.WithinRadius(at, center, radius) &&
		!effects.Invulnerable(session.Now) &&
		player.DamageGate.Exceeded(session.Now, c.DamageCooldown) {
		damagePlayer(ecs, e, 1, events.CauseExplosion)
	}
}
