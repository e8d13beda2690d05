package stats

import "time"

// Run is what a tracker knows about the game in progress.
type Run struct {
	Score          int
	MaxCombo       int
	Elapsed        time.Duration
	Lives          int
	MaxLives       int
	ItemsCollected int
}

type Achievement struct {
	ID    string
	Name  string
	Desc  string
	check func(Run) bool
}

var Achievements = []Achievement{
	{ID: "survive_10s", Name: "Survivor", Desc: "Survive 10 seconds", check: survived(10 * time.Second)},
	{ID: "survive_30s", Name: "Veteran", Desc: "Survive 30 seconds", check: survived(30 * time.Second)},
	{ID: "survive_60s", Name: "Legend", Desc: "Survive 60 seconds", check: survived(60 * time.Second)},
	{ID: "score_1000", Name: "Score Master", Desc: "Reach 1000 points", check: scored(1000)},
	{ID: "score_5000", Name: "Score God", Desc: "Reach 5000 points", check: scored(5000)},
	{ID: "combo_10", Name: "Combo Rookie", Desc: "Reach a 10x combo", check: comboed(10)},
	{ID: "combo_50", Name: "Combo Master", Desc: "Reach a 50x combo", check: comboed(50)},
	{ID: "combo_100", Name: "Combo God", Desc: "Reach a 100x combo", check: comboed(100)},
	{ID: "perfect_run", Name: "Flawless", Desc: "Survive 20 seconds without losing a life", check: func(r Run) bool {
		return r.Elapsed >= 20*time.Second && r.Lives == r.MaxLives
	}},
	{ID: "item_collector", Name: "Collector", Desc: "Collect 10 items in one game", check: func(r Run) bool {
		return r.ItemsCollected >= 10
	}},
}

func survived(d time.Duration) func(Run) bool {
	return func(r Run) bool { return r.Elapsed >= d }
}

func scored(n int) func(Run) bool {
	return func(r Run) bool { return r.Score >= n }
}

func comboed(n int) func(Run) bool {
	return func(r Run) bool { return r.MaxCombo >= n }
}

// Lookup returns the achievement with the given id.
func Lookup(id string) (Achievement, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
