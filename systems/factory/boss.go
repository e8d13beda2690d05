package factory

import (
	"github.com/automoto/avoidboxes/archetypes"
	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/gamemath"
	"github.com/automoto/avoidboxes/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateBoss(ecs *ecs.ECS, kind components.BossKind, r gamemath.Rect, speed float64, hp int) *donburi.Entry {
	boss := archetypes.Boss.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvBoss)
	attach(ecs, boss, obj)

	components.Boss.SetValue(boss, components.BossData{
		Kind:  kind,
		Speed: speed,
		HP:    hp,
		MaxHP: hp,
	})
	return boss
}

// CreateFragment spawns a one-hit mini boss left behind by a split boss.
func CreateFragment(ecs *ecs.ECS, r gamemath.Rect, speed float64) *donburi.Entry {
	frag := archetypes.Fragment.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvBoss)
	attach(ecs, frag, obj)

	components.Boss.SetValue(frag, components.BossData{
		Kind:     components.BossSplit,
		Speed:    speed,
		HP:       1,
		MaxHP:    1,
		Fragment: true,
	})
	return frag
}
