package components

import (
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type NotificationKind int

const (
	NoticeWave NotificationKind = iota
	NoticeBoss
	NoticeFever
	NoticeItemCombo
)

// NotificationData is a transient HUD message. Tween counts the remaining
// seconds down to zero; the message fades out over its last second.
type NotificationData struct {
	Kind      NotificationKind
	Text      string
	Tween     *gween.Tween
	Remaining float32
	Alpha     float32
	UpdatedAt time.Duration
	Done      bool
}

var Notification = donburi.NewComponentType[NotificationData]()
