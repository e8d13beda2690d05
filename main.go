package main

import (
	"image"

	"github.com/automoto/avoidboxes/config"
	"github.com/automoto/avoidboxes/logger"
	"github.com/automoto/avoidboxes/scenes"
	"github.com/automoto/avoidboxes/stats"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	width  int
	height int
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(shared *scenes.Shared) *Game {
	g := &Game{
		width:  int(shared.Config.Arena.Width),
		height: int(shared.Config.Arena.Height),
	}
	g.scene = scenes.NewMenuScene(g, shared)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, g.width, g.height)
	return g.width, g.height
}

func main() {
	logger.Init()
	log := logger.Log

	c := config.Default()
	if err := c.Validate(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}

	// Stats are optional; without a data directory they live in memory.
	var store stats.Store
	if m, err := stats.OpenStore("avoidboxes"); err != nil {
		log.WithError(err).Warn("could not initialize persistence")
	} else {
		store = m
	}

	shared := &scenes.Shared{
		Config:     c,
		Stats:      stats.NewTracker(store, log),
		Log:        log,
		SpeedIndex: 1,
	}

	ebiten.SetWindowSize(int(c.Arena.Width), int(c.Arena.Height))
	ebiten.SetWindowTitle(config.UI.Title)

	if err := ebiten.RunGame(NewGame(shared)); err != nil {
		log.WithError(err).Fatal("game exited")
	}
}
