package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	BaseWidth  float64
	BaseHeight float64
	Speed      float64

	// Level-triggered movement intents, held until changed
	MoveLeft  bool
	MoveRight bool

	AttackPower int

	// DamageGate is shared by every life loss and every hit on a boss.
	DamageGate Gate
	ShotGate   Gate
}

var Player = donburi.NewComponentType[PlayerData]()
