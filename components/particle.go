package components

import (
	"image/color"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ParticleData is purely cosmetic. Gameplay never reads it.
type ParticleData struct {
	Pos     math.Vec2
	Vel     math.Vec2
	Life    int
	MaxLife int
	Size    float64
	Color   color.RGBA
}

var Particle = donburi.NewComponentType[ParticleData]()
