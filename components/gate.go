package components

import "time"

// Gate is a timestamp-based cooldown. An unarmed gate is always open.
type Gate struct {
	Last  time.Duration
	Armed bool
}

// Cleared reports whether at least window has passed since the last stamp.
func (g Gate) Cleared(now, window time.Duration) bool {
	return !g.Armed || now-g.Last >= window
}

// Exceeded reports whether strictly more than window has passed since the
// last stamp.
func (g Gate) Exceeded(now, window time.Duration) bool {
	return !g.Armed || now-g.Last > window
}

func (g *Gate) Stamp(now time.Duration) {
	g.Last = now
	g.Armed = true
}
