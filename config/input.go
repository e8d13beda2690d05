package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionHide
	ActionInvincible
	ActionShrink
	ActionSlowMotion
	ActionFire
	ActionFever
	ActionPause
	ActionStart
	ActionGameSpeed
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to a single action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:   {Keys: []ebiten.Key{ebiten.KeyLeft}},
			ActionMoveRight:  {Keys: []ebiten.Key{ebiten.KeyRight}},
			ActionHide:       {Keys: []ebiten.Key{ebiten.KeySpace}},
			ActionInvincible: {Keys: []ebiten.Key{ebiten.KeyQ}},
			ActionShrink:     {Keys: []ebiten.Key{ebiten.KeyW}},
			ActionSlowMotion: {Keys: []ebiten.Key{ebiten.KeyE}},
			ActionFire:       {Keys: []ebiten.Key{ebiten.KeyA}},
			ActionFever:      {Keys: []ebiten.Key{ebiten.KeyR}},
			ActionPause:      {Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP}},
			ActionStart:      {Keys: []ebiten.Key{ebiten.KeyEnter}},
			ActionGameSpeed:  {Keys: []ebiten.Key{ebiten.KeyG}},
		},
	}
}
