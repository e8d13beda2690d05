package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type ScoreData struct {
	Score    int
	Combo    int
	MaxCombo int

	// LastScoreAt is stamped by every scoring event.
	LastScoreAt time.Duration
	Scored      bool

	// Item combo: consecutive pickups of the same stock item
	ItemCombo      int
	LastItem       ItemKind
	HasLastItem    bool
	LastItemAt     time.Duration
	ItemsCollected int
}

var Score = donburi.NewComponentType[ScoreData]()
