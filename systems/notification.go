package systems

import (
	"github.com/automoto/avoidboxes/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateNotifications advances each notification tween by the simulation
// time since its last update and removes finished ones.
func UpdateNotifications(ecs *ecs.ECS) {
	now := GetSession(ecs).Now
	var done []donburi.Entity
	components.Notification.Each(ecs.World, func(e *donburi.Entry) {
		n := components.Notification.Get(e)
		dt := float32((now - n.UpdatedAt).Seconds())
		n.UpdatedAt = now
		remaining, finished := n.Tween.Update(dt)
		n.Remaining = remaining
		n.Alpha = min(1, max(0, remaining))
		if finished {
			n.Done = true
			done = append(done, e.Entity())
		}
	})
	for _, e := range done {
		ecs.World.Remove(e)
	}
}
