package factory

import (
	"github.com/automoto/avoidboxes/archetypes"
	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/config"
	"github.com/automoto/avoidboxes/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a shot centred on the top edge of the shooter.
func CreateProjectile(ecs *ecs.ECS, c *config.Config, shooter *components.ObjectData) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	x := shooter.X + shooter.W/2 - c.Combat.ProjectileWidth/2
	obj := resolv.NewObject(x, shooter.Y, c.Combat.ProjectileWidth, c.Combat.ProjectileHeight, tags.ResolvProjectile)
	attach(ecs, p, obj)

	components.Projectile.SetValue(p, components.ProjectileData{Speed: c.Combat.ProjectileSpeed})
	return p
}
