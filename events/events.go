// Package events defines the edge-triggered notifications emitted by the
// simulation each tick. Collaborators such as audio, persistence and the
// HUD consume them; the simulation never reads them back.
package events

import "time"

type Kind int

const (
	ItemPickedUp Kind = iota
	ItemCombo
	DamageTaken
	SkillActivated
	SkillExpired
	ProjectileFired
	BombExploded
	BossSpawned
	BossPhaseChanged
	BossDamaged
	BossDefeated
	BossEscaped
	WaveAdvanced
	FeverStarted
	GameOver
)

var kindNames = [...]string{
	ItemPickedUp:     "item_picked_up",
	ItemCombo:        "item_combo",
	DamageTaken:      "damage_taken",
	SkillActivated:   "skill_activated",
	SkillExpired:     "skill_expired",
	ProjectileFired:  "projectile_fired",
	BombExploded:     "bomb_exploded",
	BossSpawned:      "boss_spawned",
	BossPhaseChanged: "boss_phase_changed",
	BossDamaged:      "boss_damaged",
	BossDefeated:     "boss_defeated",
	BossEscaped:      "boss_escaped",
	WaveAdvanced:     "wave_advanced",
	FeverStarted:     "fever_started",
	GameOver:         "game_over",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Cause identifies what removed lives from the player.
type Cause int

const (
	CauseNone Cause = iota
	CauseObstacle
	CauseExplosive
	CauseElectric
	CauseBoss
	CauseExplosion
	CauseBossBreach
)

var causeNames = [...]string{
	CauseNone:       "none",
	CauseObstacle:   "obstacle",
	CauseExplosive:  "explosive",
	CauseElectric:   "electric",
	CauseBoss:       "boss",
	CauseExplosion:  "explosion",
	CauseBossBreach: "boss_breach",
}

func (c Cause) String() string {
	if c < 0 || int(c) >= len(causeNames) {
		return "unknown"
	}
	return causeNames[c]
}

// Event is a single notification. Only the fields relevant to Kind are set:
//   - ItemPickedUp, ItemCombo: Subject (item kind), Value (combo level)
//   - DamageTaken: Cause, Value (lives lost)
//   - SkillActivated, SkillExpired: Subject (skill)
//   - BossSpawned, BossDamaged: Subject (boss kind), Value (hp left)
//   - BossPhaseChanged: Subject (boss kind), Value (fragments left)
//   - WaveAdvanced: Value (wave number)
//   - GameOver: Cause, Score, Elapsed, MaxCombo
type Event struct {
	Kind     Kind
	At       time.Duration
	Cause    Cause
	Subject  string
	Value    int
	Score    int
	MaxCombo int
	Elapsed  time.Duration
}
