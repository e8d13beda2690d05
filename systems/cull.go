package systems

import (
	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/systems/factory"
	"github.com/automoto/avoidboxes/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCulling removes bodies that have left the arena. Normal, Moving and
// Explosive obstacles passing the bottom edge count as a dodge.
func UpdateCulling(ecs *ecs.ECS) {
	session := GetSession(ecs)
	height := session.Config.Arena.Height

	var gone []*donburi.Entry
	dodges := 0
	components.Obstacle.Each(ecs.World, func(e *donburi.Entry) {
		if components.Object.Get(e).Y < height {
			return
		}
		if components.Obstacle.Get(e).Kind.ScoresDodge() {
			dodges++
		}
		gone = append(gone, e)
	})
	components.Item.Each(ecs.World, func(e *donburi.Entry) {
		if components.Object.Get(e).Y >= height {
			gone = append(gone, e)
		}
	})
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Y+obj.H < 0 {
			gone = append(gone, e)
		}
	})

	for _, e := range gone {
		factory.Destroy(ecs, e)
	}
	for i := 0; i < dodges; i++ {
		AddScore(ecs, session.Config.Score.DodgeScore)
	}
}
