package components

import (
	"math/rand"
	"time"

	"github.com/automoto/avoidboxes/config"
	"github.com/automoto/avoidboxes/events"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

type SessionState int

const (
	SessionWaiting SessionState = iota
	SessionRunning
	SessionOver
)

// SessionData is the singleton shared by every system of one run.
type SessionData struct {
	Config *config.Config
	Rand   *rand.Rand
	Log    logrus.FieldLogger

	// Now is simulation time: wall time since start minus time spent paused.
	Now time.Duration
	// Frame counts ticks since start and drives the spawn cadences.
	Frame int64

	State SessionState
	Cause events.Cause

	// Events collects everything emitted since the last drain.
	Events []events.Event
}

var Session = donburi.NewComponentType[SessionData]()

func (s *SessionData) Running() bool { return s.State == SessionRunning }

func (s *SessionData) Emit(e events.Event) {
	e.At = s.Now
	s.Events = append(s.Events, e)
}

// Drain returns and clears the pending events.
func (s *SessionData) Drain() []events.Event {
	out := s.Events
	s.Events = nil
	return out
}

// MustSession returns the run's singleton session.
func MustSession(w donburi.World) *SessionData {
	return Session.Get(Session.MustFirst(w))
}
