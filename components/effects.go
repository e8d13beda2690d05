package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type Skill int

const (
	SkillHide Skill = iota
	SkillInvincible
	SkillShrink
	SkillSlowMotion
	SkillCount // Must be last - used for array sizing
)

func (s Skill) String() string {
	switch s {
	case SkillHide:
		return "hide"
	case SkillInvincible:
		return "invincible"
	case SkillShrink:
		return "shrink"
	case SkillSlowMotion:
		return "slow_motion"
	}
	return "unknown"
}

// UsesStock reports whether activation consumes a picked-up item.
func (s Skill) UsesStock() bool {
	return s != SkillHide
}

// TimedEffect tracks one skill or fever. Duration and Cooldown hold the
// current derived values; they are recomputed from base values and Uses.
type TimedEffect struct {
	ActiveUntil time.Duration
	ReadyAt     time.Duration
	Stock       int
	Uses        int
	Duration    time.Duration
	Cooldown    time.Duration

	// Boosted extends the next activation by the item combo multiplier.
	Boosted bool
	// Running is set on activation and cleared once expiry has been reported.
	Running bool
}

func (t *TimedEffect) Active(now time.Duration) bool { return now < t.ActiveUntil }
func (t *TimedEffect) Ready(now time.Duration) bool  { return now >= t.ReadyAt }

// CanActivate reports whether Activate would succeed.
func (t *TimedEffect) CanActivate(now time.Duration, stocked bool) bool {
	if !t.Ready(now) {
		return false
	}
	return !stocked || t.Stock > 0
}

// Activate starts the effect for the current duration, scaled by boost when
// Boosted is set. It returns false without touching any field when the effect
// is cooling down or out of stock.
func (t *TimedEffect) Activate(now time.Duration, stocked bool, boost float64) bool {
	if !t.CanActivate(now, stocked) {
		return false
	}
	if stocked {
		t.Stock--
	}
	d := t.Duration
	if t.Boosted {
		d = time.Duration(float64(d) * boost)
		t.Boosted = false
	}
	t.ActiveUntil = now + d
	t.ReadyAt = now + t.Cooldown
	t.Uses++
	t.Running = true
	return true
}

// Remaining returns how long the effect stays active.
func (t *TimedEffect) Remaining(now time.Duration) time.Duration {
	if !t.Active(now) {
		return 0
	}
	return t.ActiveUntil - now
}

type EffectsData struct {
	Skills [SkillCount]TimedEffect
	Fever  TimedEffect
}

var Effects = donburi.NewComponentType[EffectsData]()

// Invulnerable reports whether hazards other than bosses are ignored.
func (e *EffectsData) Invulnerable(now time.Duration) bool {
	return e.Skills[SkillInvincible].Active(now) || e.Skills[SkillHide].Active(now)
}
