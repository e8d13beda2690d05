package systems

import (
	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement advances every falling or rising body by one tick.
// Hazards feel both slow motion and fever; items and projectiles only slow
// motion.
func UpdateMovement(ecs *ecs.ECS) {
	session := GetSession(ecs)
	slow, fever := SpeedFactors(ecs)
	scale := session.Config.GameSpeed
	width := session.Config.Arena.Width

	components.Obstacle.Each(ecs.World, func(e *donburi.Entry) {
		ob := components.Obstacle.Get(e)
		obj := components.Object.Get(e)
		if ob.Kind == components.ObstacleMoving {
			obj.X += ob.HorizontalSpeed * slow
			if obj.X <= 0 || obj.X+obj.W >= width {
				ob.HorizontalSpeed = -ob.HorizontalSpeed
			}
		}
		obj.Move(0, ob.Speed*slow*fever*scale)
	})

	components.Boss.Each(ecs.World, func(e *donburi.Entry) {
		boss := components.Boss.Get(e)
		components.Object.Get(e).Move(0, boss.Speed*slow*fever*scale)
	})

	components.Item.Each(ecs.World, func(e *donburi.Entry) {
		it := components.Item.Get(e)
		components.Object.Get(e).Move(0, it.Speed*slow*scale)
	})

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		components.Object.Get(e).Move(0, p.Speed*slow*scale)
	})
}

// SpeedFactors returns the slow motion and fever multipliers in effect now.
func SpeedFactors(ecs *ecs.ECS) (slow, fever float64) {
	session := GetSession(ecs)
	slow, fever = 1, 1
	e := GetPlayer(ecs)
	if e == nil {
		return slow, fever
	}
	effects := components.Effects.Get(e)
	if effects.Skills[components.SkillSlowMotion].Active(session.Now) {
		slow = session.Config.Effects.SlowFactor
	}
	if effects.Fever.Active(session.Now) {
		fever = session.Config.Fever.SpeedMultiplier
	}
	return slow, fever
}
