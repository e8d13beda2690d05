package scenes

import (
	"github.com/automoto/avoidboxes/config"
	"github.com/automoto/avoidboxes/stats"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Shared is the state that outlives any single scene.
type Shared struct {
	Config     config.Config
	Stats      *stats.Tracker
	Log        logrus.FieldLogger
	SpeedIndex int
}

// GameSpeed returns the selected global speed scale.
func (s *Shared) GameSpeed() float64 {
	return config.GameSpeeds[s.SpeedIndex%len(config.GameSpeeds)]
}

// NextSpeed cycles through the selectable speeds.
func (s *Shared) NextSpeed() {
	s.SpeedIndex = (s.SpeedIndex + 1) % len(config.GameSpeeds)
}

// input is a double-buffered view of the bound actions.
type input struct {
	current  [config.ActionCount]bool
	previous [config.ActionCount]bool
}

// poll swaps the buffers and reads every binding.
func (in *input) poll() {
	in.previous = in.current
	in.current = [config.ActionCount]bool{}
	for action, binding := range config.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				in.current[action] = true
			}
		}
	}
}

func (in *input) pressed(a config.ActionID) bool {
	return in.current[a]
}

func (in *input) justPressed(a config.ActionID) bool {
	return in.current[a] && !in.previous[a]
}
