package scenes

import (
	"fmt"
	"image/color"
	"sync"

	cfg "github.com/automoto/avoidboxes/config"
	"github.com/automoto/avoidboxes/engine"
	"github.com/automoto/avoidboxes/stats"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GameOverScene shows the final result over the last frame of the run.
type GameOverScene struct {
	sceneChanger SceneChanger
	shared       *Shared
	final        engine.Snapshot
	unlocked     []stats.Achievement
	input        input
	once         sync.Once
}

func NewGameOverScene(sc SceneChanger, shared *Shared, final engine.Snapshot, unlocked []stats.Achievement) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, shared: shared, final: final, unlocked: unlocked}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.input.poll()

	switch {
	case gs.input.justPressed(cfg.ActionStart):
		gs.sceneChanger.ChangeScene(NewGameScene(gs.sceneChanger, gs.shared))
	case gs.input.justPressed(cfg.ActionPause):
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger, gs.shared))
	}
}

func (gs *GameOverScene) configure() {
	gs.input.poll()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	drawSnapshot(screen, gs.final)

	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, w, h, cfg.UI.OverlayColor, false)

	s := gs.final
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("score      %d", s.Score),
		fmt.Sprintf("survived   %.1fs", s.Now.Seconds()),
		fmt.Sprintf("max combo  %dx", s.MaxCombo),
		fmt.Sprintf("wave       %d", s.Wave),
		fmt.Sprintf("cause      %s", s.Cause),
	}
	if len(gs.unlocked) > 0 {
		lines = append(lines, "", "achievements unlocked:")
		for _, a := range gs.unlocked {
			lines = append(lines, fmt.Sprintf("  %s - %s", a.Name, a.Desc))
		}
	}
	lines = append(lines, "", "ENTER  retry", "ESC    menu")

	x := cfg.UI.HUDMargin * 4
	y := int(h) / 4
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x, y+i*cfg.UI.LineHeight)
	}
}
