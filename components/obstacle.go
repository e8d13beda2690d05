package components

import "github.com/yohamta/donburi"

type ObstacleKind int

const (
	ObstacleNormal ObstacleKind = iota
	ObstacleMoving
	ObstacleExplosive
	ObstacleBomb
	ObstacleElectric
)

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleNormal:
		return "normal"
	case ObstacleMoving:
		return "moving"
	case ObstacleExplosive:
		return "explosive"
	case ObstacleBomb:
		return "bomb"
	case ObstacleElectric:
		return "electric"
	}
	return "unknown"
}

// Destructible reports whether projectiles and explosions affect the kind.
func (k ObstacleKind) Destructible() bool {
	return k != ObstacleElectric
}

// ScoresDodge reports whether leaving the arena bottom is worth a dodge.
func (k ObstacleKind) ScoresDodge() bool {
	switch k {
	case ObstacleNormal, ObstacleMoving, ObstacleExplosive:
		return true
	}
	return false
}

type ObstacleData struct {
	Kind            ObstacleKind
	Speed           float64
	HorizontalSpeed float64 // Moving only
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
