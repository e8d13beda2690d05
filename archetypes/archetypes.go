package archetypes

import (
	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Session = newArchetype(
		components.Session,
		components.Score,
		components.Progression,
		components.Encounter,
	)
	Space = newArchetype(
		components.Space,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Lives,
		components.Effects,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
		components.Object,
	)
	Item = newArchetype(
		tags.Item,
		components.Item,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	Boss = newArchetype(
		tags.Boss,
		components.Boss,
		components.Object,
	)
	Fragment = newArchetype(
		tags.Fragment,
		components.Boss,
		components.Object,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	Notification = newArchetype(
		tags.Notification,
		components.Notification,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.World.Create(
		append(a.components, cs...)...,
	))
	return e
}
