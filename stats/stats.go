// Package stats keeps lifetime statistics and unlocked achievements across
// runs. It only reacts to engine events and never influences gameplay.
package stats

import (
	"encoding/json"
	"time"

	"github.com/automoto/avoidboxes/events"
	"github.com/pkg/errors"
	"github.com/quasilyte/gdata"
	"github.com/sirupsen/logrus"
)

const (
	statsKey        = "stats"
	achievementsKey = "achievements"
)

// Store is the persistence backend. *gdata.Manager satisfies it. A missing
// key loads as nil data and a nil error.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// OpenStore opens the per-user data directory for appName.
func OpenStore(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, errors.Wrap(err, "open data store")
	}
	return m, nil
}

// Stats is the persisted lifetime record.
type Stats struct {
	BestScore     int           `json:"bestScore"`
	BestTime      time.Duration `json:"bestTime"`
	BestCombo     int           `json:"bestCombo"`
	TotalGames    int           `json:"totalGames"`
	TotalPlayTime time.Duration `json:"totalPlayTime"`
}

type Tracker struct {
	store    Store
	log      logrus.FieldLogger
	stats    Stats
	unlocked []string
}

// NewTracker loads saved statistics from store. Load failures are logged
// and leave the tracker empty. A nil store keeps everything in memory.
func NewTracker(store Store, log logrus.FieldLogger) *Tracker {
	t := &Tracker{store: store, log: log}
	if err := t.load(statsKey, &t.stats); err != nil {
		log.WithError(err).Warn("could not load stats")
	}
	if err := t.load(achievementsKey, &t.unlocked); err != nil {
		log.WithError(err).Warn("could not load achievements")
	}
	return t
}

func (t *Tracker) load(key string, v interface{}) error {
	if t.store == nil {
		return nil
	}
	data, err := t.store.LoadItem(key)
	if err != nil {
		return errors.Wrapf(err, "load %s", key)
	}
	if len(data) == 0 {
		return nil
	}
	return errors.Wrapf(json.Unmarshal(data, v), "parse %s", key)
}

func (t *Tracker) save(key string, v interface{}) error {
	if t.store == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}
	return errors.Wrapf(t.store.SaveItem(key, data), "save %s", key)
}

func (t *Tracker) Stats() Stats { return t.stats }

// Unlocked returns the ids of unlocked achievements in unlock order.
func (t *Tracker) Unlocked() []string {
	return append([]string(nil), t.unlocked...)
}

func (t *Tracker) isUnlocked(id string) bool {
	for _, u := range t.unlocked {
		if u == id {
			return true
		}
	}
	return false
}

// Check unlocks every achievement run satisfies and returns the new ones.
func (t *Tracker) Check(run Run) []Achievement {
	var fresh []Achievement
	for _, a := range Achievements {
		if t.isUnlocked(a.ID) || !a.check(run) {
			continue
		}
		t.unlocked = append(t.unlocked, a.ID)
		fresh = append(fresh, a)
		t.log.WithField("achievement", a.ID).Info("achievement unlocked")
	}
	if len(fresh) > 0 {
		if err := t.save(achievementsKey, t.unlocked); err != nil {
			t.log.WithError(err).Warn("could not save achievements")
		}
	}
	return fresh
}

// Record folds a finished run into the lifetime statistics, then checks
// achievements.
func (t *Tracker) Record(run Run) []Achievement {
	t.stats.BestScore = max(t.stats.BestScore, run.Score)
	t.stats.BestTime = max(t.stats.BestTime, run.Elapsed)
	t.stats.BestCombo = max(t.stats.BestCombo, run.MaxCombo)
	t.stats.TotalGames++
	t.stats.TotalPlayTime += run.Elapsed
	if err := t.save(statsKey, t.stats); err != nil {
		t.log.WithError(err).Warn("could not save stats")
	}
	return t.Check(run)
}

// Observe reacts to one tick's events. Boss defeats check achievements
// mid-run; game over records the run. run describes the state after the
// tick; score, combo and elapsed time are taken from the game over event
// when there is one.
func (t *Tracker) Observe(evs []events.Event, run Run) []Achievement {
	var fresh []Achievement
	for _, e := range evs {
		switch e.Kind {
		case events.BossDefeated:
			fresh = append(fresh, t.Check(run)...)
		case events.GameOver:
			run.Score = e.Score
			run.MaxCombo = e.MaxCombo
			run.Elapsed = e.Elapsed
			fresh = append(fresh, t.Record(run)...)
		}
	}
	return fresh
}
