package systems

import (
	"time"

	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/events"
	"github.com/automoto/avoidboxes/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WithRunningCheck wraps a system to skip execution unless a run is in
// progress. A system that ends the game stops every later system of the
// same tick.
func WithRunningCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !GetSession(e).Running() {
			return
		}
		system(e)
	}
}

func GetSession(ecs *ecs.ECS) *components.SessionData {
	return components.MustSession(ecs.World)
}

func GetScore(ecs *ecs.ECS) *components.ScoreData {
	return components.Score.Get(components.Score.MustFirst(ecs.World))
}

func GetProgression(ecs *ecs.ECS) *components.ProgressionData {
	return components.Progression.Get(components.Progression.MustFirst(ecs.World))
}

func GetEncounter(ecs *ecs.ECS) *components.EncounterData {
	return components.Encounter.Get(components.Encounter.MustFirst(ecs.World))
}

// GetPlayer returns the player entry, or nil before the run is set up.
func GetPlayer(ecs *ecs.ECS) *donburi.Entry {
	e, ok := tags.Player.First(ecs.World)
	if !ok {
		return nil
	}
	return e
}

// endGame moves the session to its terminal state and reports the result.
func endGame(ecs *ecs.ECS, cause events.Cause) {
	session := GetSession(ecs)
	if session.State == components.SessionOver {
		return
	}
	score := GetScore(ecs)
	session.State = components.SessionOver
	session.Cause = cause
	session.Emit(events.Event{
		Kind:     events.GameOver,
		Cause:    cause,
		Score:    score.Score,
		MaxCombo: score.MaxCombo,
		Elapsed:  session.Now,
	})
	session.Log.WithFields(logrus.Fields{
		"cause":     cause.String(),
		"score":     score.Score,
		"max_combo": score.MaxCombo,
		"elapsed":   session.Now.Truncate(time.Millisecond).String(),
	}).Info("game over")
}
