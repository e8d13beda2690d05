package systems

import (
	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/events"
	"github.com/automoto/avoidboxes/systems/factory"
	"github.com/automoto/avoidboxes/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Fire launches a projectile from the player unless the shot cooldown is
// still running.
func Fire(ecs *ecs.ECS) bool {
	session := GetSession(ecs)
	e := GetPlayer(ecs)
	if !session.Running() || e == nil {
		return false
	}
	player := components.Player.Get(e)
	if !player.ShotGate.Cleared(session.Now, session.Config.Combat.ProjectileCooldown) {
		return false
	}
	player.ShotGate.Stamp(session.Now)
	factory.CreateProjectile(ecs, session.Config, components.Object.Get(e))
	session.Emit(events.Event{Kind: events.ProjectileFired})
	return true
}

// UpdateProjectiles resolves projectile hits. Bosses take priority over
// obstacles; a projectile is consumed by the first thing it hits.
func UpdateProjectiles(ecs *ecs.ECS) {
	var shots []donburi.Entity
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		shots = append(shots, e.Entity())
	})

	for _, id := range shots {
		if !GetSession(ecs).Running() {
			return
		}
		if ecs.World.Valid(id) {
			resolveProjectile(ecs, ecs.World.Entry(id))
		}
	}
}

func resolveProjectile(ecs *ecs.ECS, p *donburi.Entry) {
	obj := components.Object.Get(p)

	if bosses := overlapping(obj, tags.ResolvBoss); len(bosses) > 0 {
		factory.Destroy(ecs, p)
		if e := GetPlayer(ecs); e != nil {
			DamageBoss(ecs, bosses[0], components.Player.Get(e).AttackPower)
		}
		return
	}

	for _, h := range overlapping(obj, tags.ResolvHazard) {
		ob := components.Obstacle.Get(h)
		if !ob.Kind.Destructible() {
			continue
		}
		factory.Destroy(ecs, p)
		if ob.Kind == components.ObstacleBomb {
			center := components.Object.Get(h).AABB().Center()
			factory.Destroy(ecs, h)
			Explode(ecs, center)
		}
		return
	}
}
