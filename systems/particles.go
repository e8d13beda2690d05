package systems

import (
	"image/color"

	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/config"
	"github.com/automoto/avoidboxes/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateParticles(ecs *ecs.ECS) {
	var dead []donburi.Entity
	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		p.Pos.X += p.Vel.X
		p.Pos.Y += p.Vel.Y
		p.Life--
		if p.Life <= 0 {
			dead = append(dead, e.Entity())
		}
	})
	for _, e := range dead {
		ecs.World.Remove(e)
	}
}

func pickupBurst(c *config.Config, clr color.RGBA) factory.ParticleBurst {
	return factory.ParticleBurst{
		Count:  c.Particles.PickupCount,
		Life:   c.Particles.PickupLife,
		Spread: c.Particles.PickupSpread,
		Size:   3,
		Color:  clr,
	}
}

func bombBurst(c *config.Config) factory.ParticleBurst {
	return factory.ParticleBurst{
		Count:  c.Particles.BombCount,
		Life:   c.Particles.BombLife,
		Spread: c.Particles.BombSpread,
		Size:   4,
		Color:  config.UI.BombColor,
	}
}
