package systems

import (
	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer applies the held movement intents and keeps the player
// inside the arena.
func UpdatePlayer(ecs *ecs.ECS) {
	e := GetPlayer(ecs)
	if e == nil {
		return
	}
	player := components.Player.Get(e)
	obj := components.Object.Get(e)

	dx := 0.0
	if player.MoveLeft {
		dx -= player.Speed
	}
	if player.MoveRight {
		dx += player.Speed
	}
	obj.X += dx
	clampPlayer(ecs, obj)
}

func clampPlayer(ecs *ecs.ECS, obj *components.ObjectData) {
	width := GetSession(ecs).Config.Arena.Width
	obj.X = gamemath.Clamp(obj.X, 0, width-obj.W)
	obj.Update()
}

// SetPlayerSize resizes the player around its top-left corner and
// re-clamps it horizontally.
func SetPlayerSize(ecs *ecs.ECS, e *donburi.Entry, w, h float64) {
	obj := components.Object.Get(e)
	obj.W = w
	obj.H = h
	clampPlayer(ecs, obj)
}
