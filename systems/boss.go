package systems

import (
	"math"
	"time"

	"github.com/automoto/avoidboxes/components"
	"github.com/automoto/avoidboxes/config"
	"github.com/automoto/avoidboxes/events"
	"github.com/automoto/avoidboxes/gamemath"
	"github.com/automoto/avoidboxes/systems/factory"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BossStats are the derived properties of a freshly spawned boss.
type BossStats struct {
	Width, Height float64
	Speed         float64
	HP            int
}

// BossTier maps the 1-based spawn count to a boss kind. Each tier lasts
// span spawns and the last tier repeats forever.
func BossTier(spawns, span int) components.BossKind {
	tier := (spawns - 1) / span
	return components.BossKind(min(max(tier, 0), int(components.BossSplit)))
}

// BossStatsFor returns the size, speed and hp of a boss of kind spawned
// during wave.
func BossStatsFor(c config.BossConfig, kind components.BossKind, wave int) BossStats {
	base := c.BaseHP + (wave-1)*c.HPPerWave
	s := BossStats{Width: c.Width, Height: c.Height, Speed: c.Speed, HP: base}
	switch kind {
	case components.BossFast:
		s.Speed = c.Speed * c.FastSpeedMultiplier
		s.HP = max(1, int(math.Floor(float64(base)*c.FastHPMultiplier)))
	case components.BossLarge:
		s.Width = c.Width * c.LargeSizeMultiplier
		s.Height = c.Height * c.LargeSizeMultiplier
		s.HP = int(math.Floor(float64(base) * c.LargeHPMultiplier))
	}
	return s
}

// UpdateBoss handles bosses leaving the arena, bosses reaching the player's
// line and the spawn timer.
func UpdateBoss(ecs *ecs.ECS) {
	session := GetSession(ecs)
	enc := GetEncounter(ecs)
	c := session.Config
	height := c.Arena.Height

	switch enc.Phase {
	case components.EncounterSingle:
		if b := ecs.World.Entry(enc.Primary); components.Object.Get(b).Y > height {
			factory.Destroy(ecs, b)
			AddScore(ecs, c.Boss.ScoreBonus/2)
			finishEncounter(ecs, events.BossEscaped)
		}
	case components.EncounterFragments:
		var kept []donburi.Entity
		for _, id := range enc.Fragments {
			if f := ecs.World.Entry(id); components.Object.Get(f).Y > height {
				factory.Destroy(ecs, f)
				continue
			}
			kept = append(kept, id)
		}
		enc.Fragments = kept
		if len(kept) == 0 {
			finishEncounter(ecs, events.BossEscaped)
		}
	}

	if c.Boss.BreachLethal {
		if e := GetPlayer(ecs); e != nil {
			line := components.Object.Get(e).Y
			for _, b := range enc.Bosses(ecs.World) {
				if components.Object.Get(b).AABB().Bottom() >= line {
					killPlayer(ecs, e, events.CauseBossBreach)
					return
				}
			}
		}
	}

	if BossDue(c.Boss, GetProgression(ecs), enc, session.Now) {
		SpawnBoss(ecs)
	}
}

// BossDue reports whether a new boss should appear now. The first boss
// waits for FirstSpawnAt, later ones for SpawnInterval after the previous
// spawn. No boss spawns while an encounter is running.
func BossDue(c config.BossConfig, prog *components.ProgressionData, enc *components.EncounterData, now time.Duration) bool {
	if enc.Active() || now < c.FirstSpawnAt {
		return false
	}
	if prog.BossSpawns == 0 {
		return true
	}
	return now-prog.LastBossSpawn >= c.SpawnInterval
}

// SpawnBoss starts a new encounter at the top of the arena.
func SpawnBoss(ecs *ecs.ECS) *donburi.Entry {
	session := GetSession(ecs)
	prog := GetProgression(ecs)
	enc := GetEncounter(ecs)
	c := session.Config

	prog.BossSpawns++
	prog.LastBossSpawn = session.Now
	kind := BossTier(prog.BossSpawns, c.Boss.TierSpan)
	stats := BossStatsFor(c.Boss, kind, prog.Wave)

	x := session.Rand.Float64() * max(0, c.Arena.Width-stats.Width)
	boss := factory.CreateBoss(ecs, kind, gamemath.Rect{X: x, Y: 0, W: stats.Width, H: stats.Height}, stats.Speed, stats.HP)

	enc.Phase = components.EncounterSingle
	enc.Kind = kind
	enc.Primary = boss.Entity()
	enc.Fragments = nil

	factory.CreateNotification(ecs, components.NoticeBoss, "BOSS: "+kind.String(), c.Notifications.Boss, session.Now)
	session.Emit(events.Event{Kind: events.BossSpawned, Subject: kind.String(), Value: stats.HP})
	session.Log.WithFields(logrus.Fields{
		"kind":  kind.String(),
		"hp":    stats.HP,
		"spawn": prog.BossSpawns,
		"wave":  prog.Wave,
	}).Info("boss spawned")
	return boss
}

// DamageBoss applies dmg to a boss or fragment through the shared damage
// gate. It returns false when the gate blocked the hit.
func DamageBoss(ecs *ecs.ECS, b *donburi.Entry, dmg int) bool {
	session := GetSession(ecs)
	e := GetPlayer(ecs)
	if e == nil || !b.Valid() {
		return false
	}
	player := components.Player.Get(e)
	if !player.DamageGate.Exceeded(session.Now, session.Config.Combat.DamageCooldown) {
		return false
	}
	player.DamageGate.Stamp(session.Now)

	boss := components.Boss.Get(b)
	boss.HP -= dmg
	center := components.Object.Get(b).AABB().Center()
	factory.CreateParticles(ecs, session.Rand, center, pickupBurst(session.Config, config.UI.BossColors[boss.Kind]))
	session.Emit(events.Event{Kind: events.BossDamaged, Subject: boss.Kind.String(), Value: max(0, boss.HP)})

	if boss.HP > 0 {
		return true
	}
	switch {
	case boss.Fragment:
		defeatFragment(ecs, b)
	case boss.Kind == components.BossSplit:
		splitBoss(ecs, b)
	default:
		factory.Destroy(ecs, b)
		AddScore(ecs, session.Config.Boss.ScoreBonus)
		finishEncounter(ecs, events.BossDefeated)
	}
	return true
}

// splitBoss replaces a defeated split boss with two fragments placed
// symmetrically either side of its centre.
func splitBoss(ecs *ecs.ECS, b *donburi.Entry) {
	session := GetSession(ecs)
	enc := GetEncounter(ecs)
	c := session.Config.Boss

	center := components.Object.Get(b).AABB().Center()
	w := c.Width * c.FragmentScale
	h := c.Height * c.FragmentScale
	speed := c.Speed * c.FragmentSpeedMultiplier
	y := center.Y - h/2

	factory.Destroy(ecs, b)
	left := factory.CreateFragment(ecs, gamemath.Rect{X: center.X - c.FragmentOffset - w, Y: y, W: w, H: h}, speed)
	right := factory.CreateFragment(ecs, gamemath.Rect{X: center.X + c.FragmentOffset, Y: y, W: w, H: h}, speed)

	enc.Phase = components.EncounterFragments
	enc.Primary = donburi.Null
	enc.Fragments = []donburi.Entity{left.Entity(), right.Entity()}
	session.Emit(events.Event{Kind: events.BossPhaseChanged, Subject: enc.Kind.String(), Value: len(enc.Fragments)})
}

func defeatFragment(ecs *ecs.ECS, f *donburi.Entry) {
	session := GetSession(ecs)
	enc := GetEncounter(ecs)
	bonus := session.Config.Boss.ScoreBonus / 2

	id := f.Entity()
	kept := enc.Fragments[:0]
	for _, other := range enc.Fragments {
		if other != id {
			kept = append(kept, other)
		}
	}
	enc.Fragments = kept
	factory.Destroy(ecs, f)
	AddScore(ecs, bonus)

	if len(enc.Fragments) == 0 {
		AddScore(ecs, bonus)
		finishEncounter(ecs, events.BossDefeated)
	}
}

// finishEncounter returns the state machine to None and drops the boss
// banner.
func finishEncounter(ecs *ecs.ECS, kind events.Kind) {
	session := GetSession(ecs)
	enc := GetEncounter(ecs)
	bossKind := enc.Kind
	enc.Clear()
	factory.DismissNotifications(ecs, components.NoticeBoss)
	session.Emit(events.Event{Kind: kind, Subject: bossKind.String()})
	session.Log.WithFields(logrus.Fields{"kind": bossKind.String(), "outcome": kind.String()}).Info("boss encounter finished")
}
