package scenes

import (
	"fmt"
	"image/color"
	"sync"

	cfg "github.com/automoto/avoidboxes/config"
	"github.com/automoto/avoidboxes/stats"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MenuScene shows lifetime stats and starts a run.
type MenuScene struct {
	sceneChanger SceneChanger
	shared       *Shared
	input        input
	once         sync.Once
}

func NewMenuScene(sc SceneChanger, shared *Shared) *MenuScene {
	return &MenuScene{sceneChanger: sc, shared: shared}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.input.poll()

	if ms.input.justPressed(cfg.ActionGameSpeed) {
		ms.shared.NextSpeed()
	}
	if ms.input.justPressed(cfg.ActionStart) {
		ms.sceneChanger.ChangeScene(NewGameScene(ms.sceneChanger, ms.shared))
	}
}

func (ms *MenuScene) configure() {
	// Ignore the key that brought us here.
	ms.input.poll()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, w, h, cfg.UI.Background, false)

	x := cfg.UI.HUDMargin * 4
	y := int(h) / 4
	lines := []string{
		cfg.UI.Title,
		"",
		"ENTER  start",
		fmt.Sprintf("G      speed x%.2f", ms.shared.GameSpeed()),
		"",
		"<- ->  move        A  fire",
		"SPACE  hide        Q  invincible",
		"W      shrink      E  slow motion",
		"R      fever       P  pause",
	}
	if ms.shared.Stats != nil {
		s := ms.shared.Stats.Stats()
		lines = append(lines,
			"",
			fmt.Sprintf("best score  %d", s.BestScore),
			fmt.Sprintf("best time   %.1fs", s.BestTime.Seconds()),
			fmt.Sprintf("best combo  %dx", s.BestCombo),
			fmt.Sprintf("games       %d", s.TotalGames),
			fmt.Sprintf("achievements %d/%d", len(ms.shared.Stats.Unlocked()), len(stats.Achievements)),
		)
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x, y+i*cfg.UI.LineHeight)
	}
}
