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

// CreatePlayer places the player centred near the arena floor with full
// lives and every skill ready.
func CreatePlayer(ecs *ecs.ECS, c *config.Config) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	x := (c.Arena.Width - c.Player.Width) / 2
	y := max(0, c.Arena.Height-c.Player.Height-c.Player.BottomOffset)
	obj := resolv.NewObject(x, y, c.Player.Width, c.Player.Height, tags.ResolvPlayer)
	attach(ecs, player, obj)

	components.Player.SetValue(player, components.PlayerData{
		BaseWidth:   c.Player.Width,
		BaseHeight:  c.Player.Height,
		Speed:       c.Player.Speed,
		AttackPower: c.Combat.StartingAttackPower,
	})
	components.Lives.SetValue(player, components.LivesData{
		Lives:    c.Player.MaxLives,
		MaxLives: c.Player.MaxLives,
	})

	var effects components.EffectsData
	for s := components.Skill(0); s < components.SkillCount; s++ {
		base := SkillConfig(c, s)
		effects.Skills[s] = components.TimedEffect{
			Duration: base.Duration,
			Cooldown: base.Cooldown,
		}
	}
	effects.Fever = components.TimedEffect{Duration: c.Fever.Duration}
	components.Effects.SetValue(player, effects)

	return player
}

// SkillConfig returns the base timing of a skill.
func SkillConfig(c *config.Config, s components.Skill) config.SkillConfig {
	switch s {
	case components.SkillHide:
		return c.Effects.Hide
	case components.SkillInvincible:
		return c.Effects.Invincible
	case components.SkillShrink:
		return c.Effects.Shrink
	case components.SkillSlowMotion:
		return c.Effects.SlowMotion
	}
	return config.SkillConfig{}
}
