package systems

import (
	"fmt"
	"time"

	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/events"
	"github.com/automoto/avoidboxes/systems/factory"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProgression raises difficulty and wave from elapsed simulation time.
// Neither ever goes down.
func UpdateProgression(ecs *ecs.ECS) {
	session := GetSession(ecs)
	prog := GetProgression(ecs)
	c := session.Config

	if d := DifficultyAt(session.Now, c.Progression.DifficultyInterval); d > prog.Difficulty {
		prog.Difficulty = d
		session.Log.WithField("difficulty", d).Debug("difficulty increased")
	}

	wave := WaveAt(session.Now, c.Progression.WaveInterval)
	if wave <= prog.Wave {
		return
	}
	prog.Wave = wave
	AddScore(ecs, c.Score.WaveBonus*wave)
	factory.CreateNotification(ecs, components.NoticeWave, fmt.Sprintf("WAVE %d", wave), c.Notifications.Wave, session.Now)
	session.Emit(events.Event{Kind: events.WaveAdvanced, Value: wave})
	session.Log.WithFields(logrus.Fields{"wave": wave, "score": GetScore(ecs).Score}).Info("wave advanced")
}

// DifficultyAt returns floor(elapsed/interval)+1.
func DifficultyAt(elapsed, interval time.Duration) int {
	return int(elapsed/interval) + 1
}

// WaveAt returns floor(elapsed/interval)+1.
func WaveAt(elapsed, interval time.Duration) int {
	return int(elapsed/interval) + 1
}
