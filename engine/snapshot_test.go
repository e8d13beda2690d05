package engine

import (
	"testing"
	"time"

	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/gamemath"
	"github.com/automoto/avoidboxes/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotCopiesWorld(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.Start(epoch))
	factory.CreateObstacle(g.ecs, components.ObstacleBomb, gamemath.Rect{X: 10, Y: 10, W: 40, H: 40}, 2, 0)
	factory.CreateItem(g.ecs, components.ItemHeart, 200, 10, 22, 2)

	s := g.Snapshot()
	require.Len(t, s.Obstacles, 1)
	require.Len(t, s.Items, 1)
	assert.Equal(t, components.ObstacleBomb, s.Obstacles[0].Kind)
	assert.Equal(t, components.ItemHeart, s.Items[0].Kind)

	s.Obstacles[0].Rect.X = 999
	assert.Equal(t, 10.0, g.Snapshot().Obstacles[0].Rect.X)
}

func TestSnapshotReportsSkills(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.Start(epoch))
	require.True(t, g.ActivateSkill(components.SkillHide, epoch.Add(time.Second)))

	hide := g.Snapshot().Skills[components.SkillHide]
	assert.True(t, hide.Active)
	assert.False(t, hide.Ready)
	assert.Equal(t, 15*time.Second, hide.ReadyIn)
	assert.Equal(t, 2*time.Second, hide.ActiveUntil)
	assert.Equal(t, 16*time.Second, hide.ReadyAt)
	assert.Equal(t, 1, hide.Uses)

	inv := g.Snapshot().Skills[components.SkillInvincible]
	assert.True(t, inv.Ready)
	assert.Zero(t, inv.Stock)
	assert.Equal(t, 5*time.Second, inv.Duration)
}
