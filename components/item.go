package components

import "github.com/yohamta/donburi"

type ItemKind int

const (
	ItemInvincible ItemKind = iota
	ItemShrink
	ItemHeart
	ItemSlowMotion
	ItemAttackPower
)

func (k ItemKind) String() string {
	switch k {
	case ItemInvincible:
		return "invincible"
	case ItemShrink:
		return "shrink"
	case ItemHeart:
		return "heart"
	case ItemSlowMotion:
		return "slow_motion"
	case ItemAttackPower:
		return "attack_power"
	}
	return "unknown"
}

// Skill returns the stock skill an item feeds, if any.
func (k ItemKind) Skill() (Skill, bool) {
	switch k {
	case ItemInvincible:
		return SkillInvincible, true
	case ItemShrink:
		return SkillShrink, true
	case ItemSlowMotion:
		return SkillSlowMotion, true
	}
	return 0, false
}

type ItemData struct {
	Kind  ItemKind
	Speed float64
}

var Item = donburi.NewComponentType[ItemData]()
