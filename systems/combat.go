package systems

import (
	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/events"
	"github.com/automoto/avoidboxes/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// damagePlayer registers a life loss: it stamps the shared damage gate,
// resets the combo and ends the game when no lives are left. It returns
// true when the game ended.
func damagePlayer(ecs *ecs.ECS, e *donburi.Entry, amount int, cause events.Cause) bool {
	session := GetSession(ecs)
	player := components.Player.Get(e)
	lives := components.Lives.Get(e)

	lost := lives.Lose(amount)
	player.DamageGate.Stamp(session.Now)
	resetCombo(ecs)
	session.Emit(events.Event{Kind: events.DamageTaken, Cause: cause, Value: lost})

	if lives.Dead() {
		endGame(ecs, cause)
		return true
	}
	return false
}

// killPlayer removes every remaining life.
func killPlayer(ecs *ecs.ECS, e *donburi.Entry, cause events.Cause) {
	damagePlayer(ecs, e, components.Lives.Get(e).Lives, cause)
}

// overlapping returns the entities tagged tag whose bodies overlap obj. The
// space narrows the candidates and the exact rectangle test confirms them.
func overlapping(obj *components.ObjectData, tag string) []*donburi.Entry {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	r := obj.AABB()
	seen := make(map[donburi.Entity]bool)
	var out []*donburi.Entry
	for _, o := range check.ObjectsByTags(tag) {
		e, ok := o.Data.(*donburi.Entry)
		if !ok || e == nil || !e.Valid() || seen[e.Entity()] {
			continue
		}
		seen[e.Entity()] = true
		if r.Overlaps(gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}) {
			out = append(out, e)
		}
	}
	return out
}
