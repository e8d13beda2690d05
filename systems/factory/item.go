package factory

import (
	"github.com/automoto/avoidboxes/archetypes"
	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateItem(ecs *ecs.ECS, kind components.ItemKind, x, y, size, speed float64) *donburi.Entry {
	it := archetypes.Item.Spawn(ecs)

	obj := resolv.NewObject(x, y, size, size, tags.ResolvItem)
	attach(ecs, it, obj)

	components.Item.SetValue(it, components.ItemData{
		Kind:  kind,
		Speed: speed,
	})
	return it
}
