package factory

import (
	"image/color"
	"math/rand"

	"github.com/automoto/avoidboxes/archetypes"
	"github.com/automoto/avoidboxes/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// ParticleBurst describes a cosmetic spray of particles.
type ParticleBurst struct {
	Count  int
	Life   int
	Spread float64 // maximum speed on each axis is Spread/2
	Size   float64 // minimum radius; each particle adds up to Size more
	Color  color.RGBA
}

func CreateParticles(ecs *ecs.ECS, rng *rand.Rand, at math.Vec2, b ParticleBurst) {
	for i := 0; i < b.Count; i++ {
		p := archetypes.Particle.Spawn(ecs)
		components.Particle.SetValue(p, components.ParticleData{
			Pos:     at,
			Vel:     math.Vec2{X: (rng.Float64() - 0.5) * b.Spread, Y: (rng.Float64() - 0.5) * b.Spread},
			Life:    b.Life,
			MaxLife: b.Life,
			Size:    b.Size + rng.Float64()*b.Size,
			Color:   b.Color,
		})
	}
}
