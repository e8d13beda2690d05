package systems

import (
	"math"

	"github.com/yohamta/donburi/ecs"
)

// AddScore credits a scoring event. Events less than the combo window apart
// extend the combo; otherwise the combo restarts at 1. It returns the points
// actually added.
func AddScore(ecs *ecs.ECS, base int) int {
	session := GetSession(ecs)
	score := GetScore(ecs)
	c := session.Config.Score
	now := session.Now

	if score.Scored && now-score.LastScoreAt < c.ComboWindow {
		score.Combo++
	} else {
		score.Combo = 1
	}
	score.LastScoreAt = now
	score.Scored = true
	score.MaxCombo = max(score.MaxCombo, score.Combo)

	bonus := 1 + float64(score.Combo-1)*c.ComboBonusStep
	points := int(math.Floor(float64(base) * c.Multiplier * bonus))
	score.Score += points
	return points
}

// resetCombo is applied by every registered life loss.
func resetCombo(ecs *ecs.ECS) {
	GetScore(ecs).Combo = 0
}
