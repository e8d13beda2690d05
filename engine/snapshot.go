package engine

import (
	"image/color"
	"time"

	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/events"
	"github.com/automoto/avoidboxes/gamemath"
	"github.com/automoto/avoidboxes/systems"
	"github.com/automoto/avoidboxes/tags"
	"github.com/yohamta/donburi"
)

type ObstacleView struct {
	Rect gamemath.Rect
	Kind components.ObstacleKind
}

type ItemView struct {
	Rect gamemath.Rect
	Kind components.ItemKind
}

type BossView struct {
	Rect     gamemath.Rect
	Kind     components.BossKind
	HP       int
	MaxHP    int
	Fragment bool
}

type ParticleView struct {
	X, Y  float64
	Size  float64
	Alpha float64
	Color color.RGBA
}

// EffectView carries both the raw timestamps, in sim time, and the values
// derived from them at the snapshot's Now.
type EffectView struct {
	Active      bool
	Ready       bool
	ActiveUntil time.Duration
	ReadyAt     time.Duration
	Remaining   time.Duration
	ReadyIn     time.Duration
	Duration    time.Duration
	Cooldown    time.Duration
	Stock       int
	Uses        int
	Boosted     bool
}

type NotificationView struct {
	Kind  components.NotificationKind
	Text  string
	Alpha float32
}

// Snapshot is a read-only copy of everything a renderer needs. It shares no
// memory with the world.
type Snapshot struct {
	State  components.SessionState
	Cause  events.Cause
	Paused bool
	Now    time.Duration
	Frame  int64

	Player       gamemath.Rect
	Invulnerable bool
	Hidden       bool
	Shrunk       bool
	Lives        int
	MaxLives     int
	AttackPower  int

	Score          int
	Combo          int
	MaxCombo       int
	ItemCombo      int
	ItemsCollected int
	Difficulty     int
	Wave           int

	Skills [components.SkillCount]EffectView
	Fever  EffectView

	Encounter components.EncounterPhase

	Obstacles     []ObstacleView
	Items         []ItemView
	Projectiles   []gamemath.Rect
	Bosses        []BossView
	Particles     []ParticleView
	Notifications []NotificationView
}

func effectView(t components.TimedEffect, now time.Duration) EffectView {
	v := EffectView{
		Active:    t.Active(now),
		Ready:       t.Ready(now),
		ActiveUntil: t.ActiveUntil,
		ReadyAt:     t.ReadyAt,
		Remaining:   t.Remaining(now),
		Duration:    t.Duration,
		Cooldown:    t.Cooldown,
		Stock:       t.Stock,
		Uses:        t.Uses,
		Boosted:     t.Boosted,
	}
	if !v.Ready {
		v.ReadyIn = t.ReadyAt - now
	}
	return v
}

// Snapshot copies the current state of the world.
func (g *Game) Snapshot() Snapshot {
	session := g.session()
	now := session.Now
	score := systems.GetScore(g.ecs)
	prog := systems.GetProgression(g.ecs)

	s := Snapshot{
		State:          session.State,
		Cause:          session.Cause,
		Paused:         g.paused,
		Now:            now,
		Frame:          session.Frame,
		Score:          score.Score,
		Combo:          score.Combo,
		MaxCombo:       score.MaxCombo,
		ItemCombo:      score.ItemCombo,
		ItemsCollected: score.ItemsCollected,
		Difficulty:     prog.Difficulty,
		Wave:           prog.Wave,
		Encounter:      systems.GetEncounter(g.ecs).Phase,
	}

	if e := systems.GetPlayer(g.ecs); e != nil {
		p := components.Player.Get(e)
		lives := components.Lives.Get(e)
		effects := components.Effects.Get(e)
		s.Player = components.Object.Get(e).AABB()
		s.Invulnerable = effects.Invulnerable(now)
		s.Hidden = effects.Skills[components.SkillHide].Active(now)
		s.Shrunk = effects.Skills[components.SkillShrink].Active(now)
		s.Lives = lives.Lives
		s.MaxLives = lives.MaxLives
		s.AttackPower = p.AttackPower
		for i, t := range effects.Skills {
			s.Skills[i] = effectView(t, now)
		}
		s.Fever = effectView(effects.Fever, now)
	}

	components.Obstacle.Each(g.ecs.World, func(e *donburi.Entry) {
		s.Obstacles = append(s.Obstacles, ObstacleView{
			Rect: components.Object.Get(e).AABB(),
			Kind: components.Obstacle.Get(e).Kind,
		})
	})
	components.Item.Each(g.ecs.World, func(e *donburi.Entry) {
		s.Items = append(s.Items, ItemView{
			Rect: components.Object.Get(e).AABB(),
			Kind: components.Item.Get(e).Kind,
		})
	})
	tags.Projectile.Each(g.ecs.World, func(e *donburi.Entry) {
		s.Projectiles = append(s.Projectiles, components.Object.Get(e).AABB())
	})
	components.Boss.Each(g.ecs.World, func(e *donburi.Entry) {
		b := components.Boss.Get(e)
		s.Bosses = append(s.Bosses, BossView{
			Rect:     components.Object.Get(e).AABB(),
			Kind:     b.Kind,
			HP:       b.HP,
			MaxHP:    b.MaxHP,
			Fragment: b.Fragment,
		})
	})
	components.Particle.Each(g.ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		alpha := 0.0
		if p.MaxLife > 0 {
			alpha = float64(p.Life) / float64(p.MaxLife)
		}
		s.Particles = append(s.Particles, ParticleView{
			X: p.Pos.X, Y: p.Pos.Y, Size: p.Size, Alpha: alpha, Color: p.Color,
		})
	})
	components.Notification.Each(g.ecs.World, func(e *donburi.Entry) {
		n := components.Notification.Get(e)
		if n.Done {
			return
		}
		s.Notifications = append(s.Notifications, NotificationView{Kind: n.Kind, Text: n.Text, Alpha: n.Alpha})
	})
	return s
}
