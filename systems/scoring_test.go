package systems

import (
	"testing"
	"time"

	"github.com/automoto/avoidboxes/config"
	"github.com/stretchr/testify/assert"
)

func TestAddScoreBuildsCombo(t *testing.T) {
	w := newTestWorld(t)

	setNow(w, 0)
	assert.Equal(t, 10, AddScore(w, 10))
	setNow(w, time.Second)
	assert.Equal(t, 11, AddScore(w, 10))
	setNow(w, 2*time.Second)
	assert.Equal(t, 12, AddScore(w, 10))

	score := GetScore(w)
	assert.Equal(t, 33, score.Score)
	assert.Equal(t, 3, score.Combo)
	assert.Equal(t, 3, score.MaxCombo)
}

func TestAddScoreComboWindowIsExclusive(t *testing.T) {
	w := newTestWorld(t)

	AddScore(w, 10)
	setNow(w, 3*time.Second)
	AddScore(w, 10)

	score := GetScore(w)
	assert.Equal(t, 1, score.Combo)
	assert.Equal(t, 20, score.Score)
	assert.Equal(t, 1, score.MaxCombo)
}

func TestAddScoreAppliesMultiplier(t *testing.T) {
	w := newTestWorld(t, func(c *config.Config) { c.Score.Multiplier = 1.5 })

	assert.Equal(t, 15, AddScore(w, 10))
	setNow(w, time.Second)
	// floor(10 * 1.5 * 1.1)
	assert.Equal(t, 16, AddScore(w, 10))
}

func TestResetComboKeepsMax(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 4; i++ {
		setNow(w, time.Duration(i)*time.Second)
		AddScore(w, 10)
	}
	resetCombo(w)

	score := GetScore(w)
	assert.Zero(t, score.Combo)
	assert.Equal(t, 4, score.MaxCombo)

	AddScore(w, 10)
	assert.Equal(t, 1, score.Combo)
}
