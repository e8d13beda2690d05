package components

import "github.com/yohamta/donburi"

type BossKind int

const (
	BossNormal BossKind = iota
	BossFast
	BossLarge
	BossSplit
)

func (k BossKind) String() string {
	switch k {
	case BossNormal:
		return "normal"
	case BossFast:
		return "fast"
	case BossLarge:
		return "large"
	case BossSplit:
		return "split"
	}
	return "unknown"
}

// BossData is attached to the primary boss and to each fragment.
type BossData struct {
	Kind     BossKind
	Speed    float64
	HP       int
	MaxHP    int
	Fragment bool
}

var Boss = donburi.NewComponentType[BossData]()

type EncounterPhase int

const (
	EncounterNone EncounterPhase = iota
	EncounterSingle
	EncounterFragments
)

func (p EncounterPhase) String() string {
	switch p {
	case EncounterNone:
		return "none"
	case EncounterSingle:
		return "single"
	case EncounterFragments:
		return "fragments"
	}
	return "unknown"
}

// EncounterData is the boss state machine. Primary is set only in
// EncounterSingle and Fragments is non-empty only in EncounterFragments.
// Bodies are held by entity id since entries are recycled by the world.
type EncounterData struct {
	Phase     EncounterPhase
	Kind      BossKind
	Primary   donburi.Entity
	Fragments []donburi.Entity
}

var Encounter = donburi.NewComponentType[EncounterData]()

func (e *EncounterData) Active() bool { return e.Phase != EncounterNone }

// BossIDs returns the ids of every boss body of the encounter.
func (e *EncounterData) BossIDs() []donburi.Entity {
	switch e.Phase {
	case EncounterSingle:
		return []donburi.Entity{e.Primary}
	case EncounterFragments:
		return append([]donburi.Entity(nil), e.Fragments...)
	}
	return nil
}

// Bosses resolves the encounter's live boss bodies in w.
func (e *EncounterData) Bosses(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	for _, id := range e.BossIDs() {
		if w.Valid(id) {
			out = append(out, w.Entry(id))
		}
	}
	return out
}

func (e *EncounterData) Clear() {
	e.Phase = EncounterNone
	e.Primary = donburi.Null
	e.Fragments = nil
}
