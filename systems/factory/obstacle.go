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

func CreateObstacle(ecs *ecs.ECS, kind components.ObstacleKind, r gamemath.Rect, speed, horizontalSpeed float64) *donburi.Entry {
	ob := archetypes.Obstacle.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, obstacleTags(kind)...)
	attach(ecs, ob, obj)

	components.Obstacle.SetValue(ob, components.ObstacleData{
		Kind:            kind,
		Speed:           speed,
		HorizontalSpeed: horizontalSpeed,
	})
	return ob
}

func obstacleTags(kind components.ObstacleKind) []string {
	switch kind {
	case components.ObstacleElectric:
		return []string{tags.ResolvHazard, tags.ResolvElectric}
	case components.ObstacleBomb:
		return []string{tags.ResolvHazard, tags.ResolvBomb}
	}
	return []string{tags.ResolvHazard}
}

// CreateElectricWall emits one segment per span, all sharing y and speed.
func CreateElectricWall(ecs *ecs.ECS, spans [][2]float64, y, thickness, speed float64) []*donburi.Entry {
	out := make([]*donburi.Entry, 0, len(spans))
	for _, sp := range spans {
		r := gamemath.Rect{X: sp[0], Y: y, W: sp[1], H: thickness}
		out = append(out, CreateObstacle(ecs, components.ObstacleElectric, r, speed, 0))
	}
	return out
}
