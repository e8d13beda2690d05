package components

import (
	"github.com/automoto/avoidboxes/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData holds the collision body of a pooled entity. Its position and
// size are the single source of truth for where the entity is.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// AABB returns the object's rectangle for exact overlap tests.
func (o ObjectData) AABB() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// Move shifts the object and re-registers it with its space.
func (o ObjectData) Move(dx, dy float64) {
	o.X += dx
	o.Y += dy
	o.Update()
}

var Space = donburi.NewComponentType[resolv.Space]()
