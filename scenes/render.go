package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/avoidboxes/components"
	cfg "github.com/automoto/avoidboxes/config"
	"github.com/automoto/avoidboxes/engine"
	"github.com/automoto/avoidboxes/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func fillRect(screen *ebiten.Image, r gamemath.Rect, clr color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func strokeRect(screen *ebiten.Image, r gamemath.Rect, clr color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, clr, false)
}

// fade scales a color by alpha in [0, 1].
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := gamemath.Clamp(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func obstacleColor(k components.ObstacleKind) color.RGBA {
	switch k {
	case components.ObstacleElectric:
		return cfg.UI.ElectricColor
	case components.ObstacleBomb:
		return cfg.UI.BombColor
	}
	return cfg.UI.ObstacleColors[k]
}

// drawSnapshot renders the arena, bodies and HUD of one frame.
func drawSnapshot(screen *ebiten.Image, s engine.Snapshot) {
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, w, h, cfg.UI.Background, false)

	for _, o := range s.Obstacles {
		fillRect(screen, o.Rect, obstacleColor(o.Kind))
		if o.Kind == components.ObstacleExplosive {
			strokeRect(screen, o.Rect, cfg.Yellow)
		}
	}
	for _, it := range s.Items {
		fillRect(screen, it.Rect, cfg.UI.ItemColors[it.Kind])
	}
	for _, p := range s.Projectiles {
		fillRect(screen, p, cfg.UI.ProjectileColor)
	}
	for _, b := range s.Bosses {
		fillRect(screen, b.Rect, cfg.UI.BossColors[b.Kind])
		drawBossHP(screen, b)
	}
	for _, p := range s.Particles {
		vector.FillCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), fade(p.Color, p.Alpha), false)
	}

	player := cfg.UI.PlayerColor
	if s.Hidden {
		player = cfg.UI.HiddenColor
	}
	fillRect(screen, s.Player, player)
	if s.Invulnerable && !s.Hidden {
		strokeRect(screen, s.Player, cfg.UI.ShieldColor)
	}

	drawHUD(screen, s)
	drawNotifications(screen, s)

	if s.Paused {
		vector.FillRect(screen, 0, 0, w, h, cfg.UI.OverlayColor, false)
		ebitenutil.DebugPrintAt(screen, "PAUSED", int(w)/2-18, int(h)/2)
	}
}

func drawBossHP(screen *ebiten.Image, b engine.BossView) {
	if b.MaxHP <= 0 {
		return
	}
	bar := gamemath.Rect{X: b.Rect.X, Y: b.Rect.Y - 6, W: b.Rect.W, H: 4}
	fillRect(screen, bar, color.RGBA{R: 40, G: 40, B: 40, A: 255})
	bar.W *= float64(max(0, b.HP)) / float64(b.MaxHP)
	fillRect(screen, bar, cfg.LightGreen)
}

func drawHUD(screen *ebiten.Image, s engine.Snapshot) {
	m := cfg.UI.HUDMargin
	lh := cfg.UI.LineHeight
	lines := []string{
		fmt.Sprintf("SCORE %d  COMBO %dx  LIVES %d/%d", s.Score, s.Combo, s.Lives, s.MaxLives),
		fmt.Sprintf("TIME %.1fs  WAVE %d  LV %d  ATK %d", s.Now.Seconds(), s.Wave, s.Difficulty, s.AttackPower),
	}
	names := [components.SkillCount]string{"HIDE", "INV", "SHRINK", "SLOW"}
	for i, v := range s.Skills {
		lines = append(lines, skillLine(names[i], v, components.Skill(i).UsesStock()))
	}
	if s.Fever.Active {
		lines = append(lines, fmt.Sprintf("FEVER %.1fs", s.Fever.Remaining.Seconds()))
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, m, m+i*lh)
	}
}

func skillLine(name string, v engine.EffectView, stocked bool) string {
	state := "ready"
	switch {
	case v.Active:
		state = fmt.Sprintf("on %.1fs", v.Remaining.Seconds())
	case !v.Ready:
		state = fmt.Sprintf("cd %.0fs", v.ReadyIn.Seconds())
	}
	if v.Boosted {
		state += " +"
	}
	if stocked {
		return fmt.Sprintf("%-6s x%d %s", name, v.Stock, state)
	}
	return fmt.Sprintf("%-6s    %s", name, state)
}

func drawNotifications(screen *ebiten.Image, s engine.Snapshot) {
	w := screen.Bounds().Dx()
	y := screen.Bounds().Dy() / 3
	for _, n := range s.Notifications {
		if n.Alpha <= 0 {
			continue
		}
		x := w/2 - len(n.Text)*3
		ebitenutil.DebugPrintAt(screen, n.Text, x, y)
		y += cfg.UI.LineHeight * 2
	}
}
