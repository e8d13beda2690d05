package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/automoto/avoidboxes/components"
	cfg "github.com/automoto/avoidboxes/config"
	"github.com/automoto/avoidboxes/engine"
	"github.com/automoto/avoidboxes/events"
	"github.com/automoto/avoidboxes/stats"
	"github.com/hajimehoshi/ebiten/v2"
)

var skillActions = map[cfg.ActionID]components.Skill{
	cfg.ActionHide:       components.SkillHide,
	cfg.ActionInvincible: components.SkillInvincible,
	cfg.ActionShrink:     components.SkillShrink,
	cfg.ActionSlowMotion: components.SkillSlowMotion,
}

// GameScene runs one session and feeds its events to the stats tracker.
type GameScene struct {
	sceneChanger SceneChanger
	shared       *Shared
	game         *engine.Game
	input        input
	unlocked     []stats.Achievement
	once         sync.Once
}

func NewGameScene(sc SceneChanger, shared *Shared) *GameScene {
	return &GameScene{sceneChanger: sc, shared: shared}
}

func (gs *GameScene) configure() {
	c := gs.shared.Config
	c.GameSpeed = gs.shared.GameSpeed()

	g, err := engine.NewGame(c, engine.WithLogger(gs.shared.Log), engine.WithSeed(time.Now().UnixNano()))
	if err != nil {
		gs.shared.Log.WithError(err).Error("could not start game")
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger, gs.shared))
		return
	}
	gs.game = g
	gs.input.poll()
	gs.game.Start(time.Now())
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	if gs.game == nil {
		return
	}
	gs.input.poll()
	now := time.Now()

	if gs.input.justPressed(cfg.ActionPause) {
		gs.game.TogglePause(now)
	}

	in := engine.Intents{
		MoveLeft:  gs.input.pressed(cfg.ActionMoveLeft),
		MoveRight: gs.input.pressed(cfg.ActionMoveRight),
		Fire:      gs.input.pressed(cfg.ActionFire),
		Fever:     gs.input.justPressed(cfg.ActionFever),
	}
	for action, skill := range skillActions {
		if gs.input.justPressed(action) {
			in.Skills = append(in.Skills, skill)
		}
	}

	evs := gs.game.Update(in, now)
	s := gs.game.Snapshot()
	if gs.shared.Stats != nil {
		gs.unlocked = append(gs.unlocked, gs.shared.Stats.Observe(evs, runOf(s))...)
	}

	for _, e := range evs {
		if e.Kind == events.GameOver {
			gs.sceneChanger.ChangeScene(NewGameOverScene(gs.sceneChanger, gs.shared, s, gs.unlocked))
			return
		}
	}
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	if gs.game == nil {
		return
	}
	drawSnapshot(screen, gs.game.Snapshot())
}

func runOf(s engine.Snapshot) stats.Run {
	return stats.Run{
		Score:          s.Score,
		MaxCombo:       s.MaxCombo,
		Elapsed:        s.Now,
		Lives:          s.Lives,
		MaxLives:       s.MaxLives,
		ItemsCollected: s.ItemsCollected,
	}
}
