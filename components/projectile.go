package components

import "github.com/yohamta/donburi"

type ProjectileData struct {
	Speed float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()
