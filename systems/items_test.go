package systems

import (
	"testing"
	"time"

	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/events"
	"github.com/automoto/avoidboxes/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func dropOnPlayer(w *ecs.ECS, kind components.ItemKind) *donburi.Entry {
	p := playerRect(w)
	return factory.CreateItem(w, kind, p.X, p.Y-5, 22, 2)
}

func TestPickupAddsStock(t *testing.T) {
	w := newTestWorld(t)
	it := dropOnPlayer(w, components.ItemShrink).Entity()

	UpdateItems(w)

	assert.False(t, alive(w, it))
	assert.Equal(t, 1, effectsOf(w).Skills[components.SkillShrink].Stock)
	assert.Equal(t, 1, GetScore(w).ItemsCollected)
	picked := emitted(w, events.ItemPickedUp)
	require.Len(t, picked, 1)
	assert.Equal(t, "shrink", picked[0].Subject)
	assert.Positive(t, count(w, components.Particle))
}

func TestHeartIsCappedAtMaxLives(t *testing.T) {
	w := newTestWorld(t)
	dropOnPlayer(w, components.ItemHeart)
	UpdateItems(w)
	assert.Equal(t, 3, lives(w))

	components.Lives.Get(GetPlayer(w)).Lives = 1
	dropOnPlayer(w, components.ItemHeart)
	UpdateItems(w)
	assert.Equal(t, 2, lives(w))
	assert.Zero(t, GetScore(w).ItemsCollected)
}

func TestAttackPowerPickup(t *testing.T) {
	w := newTestWorld(t)
	dropOnPlayer(w, components.ItemAttackPower)

	UpdateItems(w)

	assert.Equal(t, 2, components.Player.Get(GetPlayer(w)).AttackPower)
	assert.Equal(t, 1, GetScore(w).ItemsCollected)
}

func TestItemComboBoostsNextActivation(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 3; i++ {
		setNow(w, time.Duration(i)*time.Second)
		dropOnPlayer(w, components.ItemInvincible)
		UpdateItems(w)
	}

	score := GetScore(w)
	inv := effectsOf(w).Skills[components.SkillInvincible]
	assert.Equal(t, 3, score.ItemCombo)
	assert.Equal(t, 3, inv.Stock)
	assert.True(t, inv.Boosted)
	// 50*2 at combo 1, then 50*3 at combo 2
	assert.Equal(t, 100+165, score.Score)

	combos := emitted(w, events.ItemCombo)
	require.Len(t, combos, 2)
	assert.Equal(t, 3, combos[1].Value)
	assert.Equal(t, 1, count(w, components.Notification), "combo banners replace each other")
}

func TestItemComboIsCapped(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 8; i++ {
		setNow(w, time.Duration(i)*500*time.Millisecond)
		dropOnPlayer(w, components.ItemSlowMotion)
		UpdateItems(w)
	}
	assert.Equal(t, 5, GetScore(w).ItemCombo)
}

func TestItemComboBreaks(t *testing.T) {
	w := newTestWorld(t)
	dropOnPlayer(w, components.ItemInvincible)
	UpdateItems(w)

	setNow(w, time.Second)
	dropOnPlayer(w, components.ItemShrink)
	UpdateItems(w)
	assert.Equal(t, 1, GetScore(w).ItemCombo, "a different kind starts over")

	setNow(w, 4001*time.Millisecond)
	UpdateItems(w)
	assert.Zero(t, GetScore(w).ItemCombo, "combo times out")
	assert.Empty(t, emitted(w, events.ItemCombo))
}

func TestDistantItemIsIgnored(t *testing.T) {
	w := newTestWorld(t)
	it := factory.CreateItem(w, components.ItemHeart, 10, 10, 22, 2).Entity()

	UpdateItems(w)

	assert.True(t, alive(w, it))
}
