package factory

import (
	"time"

	"github.com/automoto/avoidboxes/archetypes"
	"github.com/automoto/avoidboxes/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateNotification shows text for d. Only one notification of each kind
// is kept; a newer one replaces the old.
func CreateNotification(ecs *ecs.ECS, kind components.NotificationKind, text string, d time.Duration, now time.Duration) *donburi.Entry {
	DismissNotifications(ecs, kind)

	n := archetypes.Notification.Spawn(ecs)
	secs := float32(d.Seconds())
	components.Notification.SetValue(n, components.NotificationData{
		Kind:      kind,
		Text:      text,
		Tween:     gween.New(secs, 0, secs, ease.Linear),
		Remaining: secs,
		Alpha:     min(1, secs),
		UpdatedAt: now,
	})
	return n
}

// DismissNotifications removes every notification of kind.
func DismissNotifications(ecs *ecs.ECS, kind components.NotificationKind) {
	var stale []donburi.Entity
	components.Notification.Each(ecs.World, func(e *donburi.Entry) {
		if components.Notification.Get(e).Kind == kind {
			stale = append(stale, e.Entity())
		}
	})
	for _, e := range stale {
		ecs.World.Remove(e)
	}
}
