package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Obstacle     = donburi.NewTag().SetName("Obstacle")
	Item         = donburi.NewTag().SetName("Item")
	Projectile   = donburi.NewTag().SetName("Projectile")
	Particle     = donburi.NewTag().SetName("Particle")
	Boss         = donburi.NewTag().SetName("Boss")
	Fragment     = donburi.NewTag().SetName("Fragment")
	Notification = donburi.NewTag().SetName("Notification")
)

// Resolv tags for the collision broadphase
const (
	ResolvPlayer     = "player"
	ResolvHazard     = "hazard"
	ResolvElectric   = "electric"
	ResolvBomb       = "bomb"
	ResolvItem       = "item"
	ResolvProjectile = "projectile"
	ResolvBoss       = "boss"
)
