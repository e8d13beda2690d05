package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type ProgressionData struct {
	Difficulty int
	Wave       int

	// BossSpawns counts every boss ever spawned this run and selects the tier.
	BossSpawns    int
	LastBossSpawn time.Duration
}

var Progression = donburi.NewComponentType[ProgressionData]()
