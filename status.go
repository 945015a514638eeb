package blast

import "fmt"

// Status describes different kind of timed statuses.
type Status int

const (
	StatusStun Status = iota
	StatusConfusion
	StatusFear
	StatusSleep
	StatusFast
	StatusSlow
	StatusInvulnerable
	StatusBlind
	StatusParalysis
	StatusPoison
	StatusCut
	StatusHallucination
	StatusWraithForm
)

// NStatuses is the number of different kind of statuses.
const NStatuses = StatusWraithForm + 1

// maxStatusTurns caps status durations.
const maxStatusTurns = 10000

// Bad reports whether the status is inherently bad.
func (st Status) Bad() bool {
	switch st {
	case StatusFast, StatusInvulnerable, StatusWraithForm:
		return false
	default:
		return true
	}
}

var statusName = []string{
	StatusStun:          "Stun",
	StatusConfusion:     "Confusion",
	StatusFear:          "Fear",
	StatusSleep:         "Sleep",
	StatusFast:          "Haste",
	StatusSlow:          "Slowness",
	StatusInvulnerable:  "Invulnerability",
	StatusBlind:         "Blindness",
	StatusParalysis:     "Paralysis",
	StatusPoison:        "Poison",
	StatusCut:           "Cut",
	StatusHallucination: "Hallucination",
	StatusWraithForm:    "Wraith Form",
}

func (st Status) Name() string {
	return statusName[st]
}

var statusAdjective = []string{
	StatusStun:          "dazed",
	StatusConfusion:     "confused",
	StatusFear:          "afraid",
	StatusSleep:         "asleep",
	StatusFast:          "fast",
	StatusSlow:          "slowed",
	StatusInvulnerable:  "invulnerable",
	StatusBlind:         "blind",
	StatusParalysis:     "paralyzed",
	StatusPoison:        "poisoned",
	StatusCut:           "bleeding",
	StatusHallucination: "hallucinating",
	StatusWraithForm:    "incorporeal",
}

func (st Status) String() string {
	return statusAdjective[st]
}

// Statuses maps ongoing statuses to their remaining turns. Slices of that
// type should be created with NStatuses elements.
type Statuses []int

// Has reports whether the given status is ongoing.
func (sts Statuses) Has(st Status) bool {
	return sts[st] > 0
}

// immuneTo reports whether the actor's resistances prevent a status.
func (a *Actor) immuneTo(st Status) bool {
	switch st {
	case StatusStun:
		return a.Resists.Any(ResStun)
	case StatusConfusion:
		return a.Resists.Any(ResConf)
	case StatusFear:
		return a.Resists.Any(ResFear)
	case StatusSleep:
		return a.Resists.Any(ResSleep)
	case StatusBlind:
		return a.Resists.Any(ResBlind)
	case StatusParalysis:
		return a.Abilities.Any(AbilityFreeAction)
	case StatusPoison:
		return a.Resists.Any(ImPoison)
	}
	return false
}

// putStatus adds a status on an actor for a given number of turns. If the
// status is already active, half the new duration is added to the remaining
// one and a different notice is emitted. It reports whether the status was
// applied.
func (e *Engine) putStatus(a *Actor, st Status, turns int) bool {
	if a.IsDead() || turns <= 0 || a.immuneTo(st) {
		return false
	}
	active := a.Has(st)
	if active {
		turns = a.Statuses[st] + turns/2
		if turns == a.Statuses[st] {
			return false
		}
	}
	a.Statuses[st] = min(turns, maxStatusTurns)
	e.statusNotice(a, st, active)
	return true
}

func (e *Engine) statusNotice(a *Actor, st Status, active bool) {
	switch {
	case e.isPlayer(a):
		style := logNotable
		if st.Bad() {
			style = logHurtPlayer
		}
		if active {
			e.LogfStyled("You are more %s.", style, st)
		} else {
			e.LogfStyled("You are %s.", style, st)
			if st.Bad() {
				e.Book.Diary(fmt.Sprintf("Got %s", st))
			}
		}
	case e.seen(a.P):
		if active {
			e.Logf("The %s is more %s.", a.Name, st)
		} else {
			e.Logf("The %s is %s.", a.Name, st)
		}
	}
}

// clearStatus removes a status on an actor.
func (e *Engine) clearStatus(a *Actor, st Status) {
	if a.Statuses[st] <= 0 {
		return
	}
	a.Statuses[st] = 0
	switch {
	case e.isPlayer(a):
		e.LogfStyled("You are no longer %s.", logStatusEnd, st)
	case e.seen(a.P) && !a.IsDead():
		e.Logf("The %s is no longer %s.", a.Name, st)
	}
}
