package factory

import (
	"github.com/automoto/avoidboxes/archetypes"
	"github.com/automoto/avoidboxes/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// attach links obj to its entity and registers it with the world's space.
func attach(ecs *ecs.ECS, e *donburi.Entry, obj *resolv.Object) {
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// Destroy unregisters an entity's collision body and removes the entity.
// Entries that were already removed are ignored.
func Destroy(ecs *ecs.ECS, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}
