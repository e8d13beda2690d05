package systems

import (
	"math"
	"time"

	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/config"
	"github.com/automoto/avoidboxes/events"
	"github.com/automoto/avoidboxes/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// TryActivate starts a skill. It is a silent no-op returning false while the
// skill is cooling down, out of stock, or no run is in progress.
func TryActivate(ecs *ecs.ECS, skill components.Skill) bool {
	session := GetSession(ecs)
	e := GetPlayer(ecs)
	if !session.Running() || e == nil || skill < 0 || skill >= components.SkillCount {
		return false
	}
	effects := components.Effects.Get(e)
	if !effects.Skills[skill].Activate(session.Now, skill.UsesStock(), session.Config.Effects.ItemComboBoost) {
		return false
	}
	if skill == components.SkillShrink {
		w, h := ShrunkSize(session.Config.Player)
		SetPlayerSize(ecs, e, w, h)
	}
	ApplyUpgrades(session.Config, effects)
	session.Emit(events.Event{Kind: events.SkillActivated, Subject: skill.String()})
	return true
}

// ActivateFever starts fever when the combo is high enough and fever is not
// already running.
func ActivateFever(ecs *ecs.ECS) bool {
	session := GetSession(ecs)
	e := GetPlayer(ecs)
	if !session.Running() || e == nil {
		return false
	}
	c := session.Config
	fever := &components.Effects.Get(e).Fever
	if GetScore(ecs).Combo < c.Fever.ComboThreshold || fever.Active(session.Now) {
		return false
	}
	fever.ActiveUntil = session.Now + c.Fever.Duration
	fever.Uses++
	fever.Running = true
	factory.CreateNotification(ecs, components.NoticeFever, "FEVER!", c.Notifications.Fever, session.Now)
	session.Emit(events.Event{Kind: events.FeverStarted})
	session.Log.WithField("combo", GetScore(ecs).Combo).Info("fever started")
	return true
}

// UpdateEffects reports expiries and rolls back Shrink once it ends.
func UpdateEffects(ecs *ecs.ECS) {
	session := GetSession(ecs)
	e := GetPlayer(ecs)
	if e == nil {
		return
	}
	now := session.Now
	effects := components.Effects.Get(e)

	for s := components.Skill(0); s < components.SkillCount; s++ {
		te := &effects.Skills[s]
		if te.Running && !te.Active(now) {
			te.Running = false
			session.Emit(events.Event{Kind: events.SkillExpired, Subject: s.String()})
		}
	}
	if effects.Fever.Running && !effects.Fever.Active(now) {
		effects.Fever.Running = false
		session.Emit(events.Event{Kind: events.SkillExpired, Subject: "fever"})
	}

	player := components.Player.Get(e)
	obj := components.Object.Get(e)
	if !effects.Skills[components.SkillShrink].Active(now) && (obj.W != player.BaseWidth || obj.H != player.BaseHeight) {
		SetPlayerSize(ecs, e, player.BaseWidth, player.BaseHeight)
	}
}

// ShrunkSize returns the player's dimensions while Shrink is active.
func ShrunkSize(c config.PlayerConfig) (w, h float64) {
	w = math.Max(c.ShrinkMinWidth, math.Floor(c.Width*c.ShrinkScale))
	h = math.Max(c.ShrinkMinHeight, math.Floor(c.Height*c.ShrinkScale))
	return w, h
}

// ApplyUpgrades recomputes every skill's duration and cooldown from its base
// values and use count. The result depends only on the use counts.
func ApplyUpgrades(c *config.Config, effects *components.EffectsData) {
	for s := components.Skill(0); s < components.SkillCount; s++ {
		base := factory.SkillConfig(c, s)
		te := &effects.Skills[s]
		te.Duration = UpgradedDuration(base.Duration, base.DurationUpgrade, te.Uses)
		te.Cooldown = UpgradedCooldown(base.Cooldown, base.CooldownUpgrade, te.Uses)
	}
}

func upgradeBonus(r config.UpgradeRule, uses int) float64 {
	if r.Every <= 0 {
		return 0
	}
	return math.Min(r.Cap, float64(uses/r.Every)*r.Step)
}

// UpgradedDuration lengthens base by the rule's bonus, floored to whole
// milliseconds.
func UpgradedDuration(base time.Duration, r config.UpgradeRule, uses int) time.Duration {
	ms := float64(base.Milliseconds())
	return time.Duration(math.Floor(ms*(1+upgradeBonus(r, uses)))) * time.Millisecond
}

// UpgradedCooldown shortens base by the rule's bonus, floored to whole
// milliseconds and never below the rule's floor fraction of base.
func UpgradedCooldown(base time.Duration, r config.UpgradeRule, uses int) time.Duration {
	ms := float64(base.Milliseconds())
	reduced := math.Floor(ms * (1 - upgradeBonus(r, uses)))
	return time.Duration(math.Max(ms*r.Floor, reduced) * float64(time.Millisecond))
}
