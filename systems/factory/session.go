package factory

import (
	"math/rand"

	"github.com/automoto/avoidboxes/archetypes"
	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/config"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the singleton holding configuration, randomness,
// score, progression and the boss encounter.
func CreateSession(ecs *ecs.ECS, c *config.Config, rng *rand.Rand, log logrus.FieldLogger) *donburi.Entry {
	s := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(s, components.SessionData{
		Config: c,
		Rand:   rng,
		Log:    log,
		State:  components.SessionWaiting,
	})
	components.Score.SetValue(s, components.ScoreData{})
	components.Progression.SetValue(s, components.ProgressionData{
		Difficulty: 1,
		Wave:       1,
	})
	components.Encounter.SetValue(s, components.EncounterData{})
	return s
}
