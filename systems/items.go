package systems

import (
	"fmt"

	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/config"
	"github.com/automoto/avoidboxes/events"
	"github.com/automoto/avoidboxes/systems/factory"
	"github.com/automoto/avoidboxes/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateItems collects every item touching the player and expires a stale
// item combo.
func UpdateItems(ecs *ecs.ECS) {
	e := GetPlayer(ecs)
	if e == nil {
		return
	}
	session := GetSession(ecs)
	for _, it := range overlapping(components.Object.Get(e), tags.ResolvItem) {
		collectItem(ecs, e, it)
	}

	score := GetScore(ecs)
	if score.ItemCombo > 0 && session.Now-score.LastItemAt > session.Config.Effects.ItemComboWindow {
		score.ItemCombo = 0
		score.HasLastItem = false
	}
}

func collectItem(ecs *ecs.ECS, e *donburi.Entry, it *donburi.Entry) {
	session := GetSession(ecs)
	score := GetScore(ecs)
	c := session.Config.Effects
	now := session.Now
	kind := components.Item.Get(it).Kind

	if skill, ok := kind.Skill(); ok {
		effects := components.Effects.Get(e)
		if score.HasLastItem && score.LastItem == kind && now-score.LastItemAt < c.ItemComboWindow {
			score.ItemCombo = min(c.ItemComboCap, score.ItemCombo+1)
			if score.ItemCombo >= 2 {
				AddScore(ecs, c.ItemComboBonus*score.ItemCombo)
				factory.CreateNotification(ecs, components.NoticeItemCombo,
					fmt.Sprintf("%d COMBO!", score.ItemCombo), session.Config.Notifications.ItemCombo, now)
				session.Emit(events.Event{Kind: events.ItemCombo, Subject: kind.String(), Value: score.ItemCombo})
			}
			if score.ItemCombo >= c.ItemComboBoostAt {
				effects.Skills[skill].Boosted = true
			}
		} else {
			score.ItemCombo = 1
			score.LastItem = kind
			score.HasLastItem = true
		}
		score.LastItemAt = now
		effects.Skills[skill].Stock++
		score.ItemsCollected++
	} else {
		score.ItemCombo = 0
		score.HasLastItem = false
		switch kind {
		case components.ItemHeart:
			components.Lives.Get(e).Gain(1)
		case components.ItemAttackPower:
			components.Player.Get(e).AttackPower++
			score.ItemsCollected++
		}
	}

	center := components.Object.Get(it).AABB().Center()
	factory.Destroy(ecs, it)
	factory.CreateParticles(ecs, session.Rand, center, pickupBurst(session.Config, config.UI.ItemColors[kind]))
	session.Emit(events.Event{Kind: events.ItemPickedUp, Subject: kind.String(), Value: score.ItemCombo})
}
