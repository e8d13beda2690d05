package systems

import (
	"testing"
	"time"

	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestNotificationFadesAndExpires(t *testing.T) {
	w := newTestWorld(t)
	n := factory.CreateNotification(w, components.NoticeWave, "WAVE 2", 2*time.Second, 0)
	id := n.Entity()
	data := components.Notification.Get(n)
	assert.Equal(t, float32(1), data.Alpha)

	setNow(w, time.Second)
	UpdateNotifications(w)
	assert.Equal(t, float32(1), data.Alpha)

	setNow(w, 1500*time.Millisecond)
	UpdateNotifications(w)
	assert.InDelta(t, 0.5, data.Alpha, 1e-4)

	setNow(w, 2*time.Second)
	UpdateNotifications(w)
	assert.False(t, alive(w, id))
}

func TestNotificationReplacesSameKind(t *testing.T) {
	w := newTestWorld(t)
	factory.CreateNotification(w, components.NoticeWave, "WAVE 2", 2*time.Second, 0)
	factory.CreateNotification(w, components.NoticeBoss, "BOSS", 3*time.Second, 0)
	latest := factory.CreateNotification(w, components.NoticeWave, "WAVE 3", 2*time.Second, 0)

	assert.Equal(t, 2, count(w, components.Notification))
	assert.Equal(t, "WAVE 3", components.Notification.Get(latest).Text)
	id := latest.Entity()

	factory.DismissNotifications(w, components.NoticeBoss)
	assert.Equal(t, 1, count(w, components.Notification))
	assert.True(t, alive(w, id), "only the dismissed kind is removed")
}
