package components

import "github.com/yohamta/donburi"

type LivesData struct {
	Lives    int
	MaxLives int
}

var Lives = donburi.NewComponentType[LivesData]()

// Lose removes n lives, never going below zero, and returns how many were
// actually removed.
func (l *LivesData) Lose(n int) int {
	if n > l.Lives {
		n = l.Lives
	}
	l.Lives -= n
	return n
}

// Gain adds n lives up to MaxLives.
func (l *LivesData) Gain(n int) {
	l.Lives = min(l.MaxLives, l.Lives+n)
}

func (l *LivesData) Dead() bool { return l.Lives <= 0 }
