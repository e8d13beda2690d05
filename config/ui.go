package config

import "image/color"

// UIConfig contains window and HUD configuration values
type UIConfig struct {
	Title      string
	HUDMargin  int
	LineHeight int

	Background      color.RGBA
	PlayerColor     color.RGBA
	HiddenColor     color.RGBA
	ShieldColor     color.RGBA
	ProjectileColor color.RGBA
	ElectricColor   color.RGBA
	BombColor       color.RGBA
	BossColors      [4]color.RGBA // Normal, Fast, Large, Split
	ItemColors      [5]color.RGBA // Invincible, Shrink, Heart, SlowMotion, AttackPower
	ObstacleColors  [3]color.RGBA // Normal, Moving, Explosive
	OverlayColor    color.RGBA
}

// GameSpeeds are the selectable global speed scales.
var GameSpeeds = []float64{0.75, 1.0, 1.5}

var UI UIConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 235, B: 59, A: 255}
	Orange       = color.RGBA{R: 255, G: 152, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 68, B: 68, A: 255}
	Cyan         = color.RGBA{R: 38, G: 198, B: 218, A: 255}
	LightGreen   = color.RGBA{R: 156, G: 204, B: 101, A: 255}
	Pink         = color.RGBA{R: 255, G: 92, B: 138, A: 255}
	Purple       = color.RGBA{R: 156, G: 39, B: 176, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	UI = UIConfig{
		Title:      "Avoid Boxes",
		HUDMargin:  8,
		LineHeight: 14,

		Background:      color.RGBA{R: 18, G: 18, B: 28, A: 255},
		PlayerColor:     color.RGBA{R: 0, G: 150, B: 255, A: 255},
		HiddenColor:     color.RGBA{R: 0, G: 150, B: 255, A: 80},
		ShieldColor:     Cyan,
		ProjectileColor: Yellow,
		ElectricColor:   color.RGBA{R: 255, G: 213, B: 79, A: 255},
		BombColor:       Red,
		BossColors: [4]color.RGBA{
			{R: 255, G: 23, B: 68, A: 255},
			{R: 255, G: 107, B: 0, A: 255},
			{R: 197, G: 17, B: 98, A: 255},
			Purple,
		},
		ItemColors: [5]color.RGBA{Cyan, LightGreen, Pink, Purple, Orange},
		ObstacleColors: [3]color.RGBA{
			{R: 255, G: 99, B: 71, A: 255},
			{R: 100, G: 181, B: 246, A: 255},
			{R: 255, G: 0, B: 0, A: 255},
		},
		OverlayColor: BlackOverlay,
	}
}
