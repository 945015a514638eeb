package blast

import "codeberg.org/anaseto/gruid"

// Actor holds data relevant to any kind of actor (player or monster).
type Actor struct {
	Name      string       // name
	P         gruid.Point  // map position
	HP        int          // health points
	MaxHP     int          // maximum health points
	Statuses  Statuses     // statuses (confused, etc.)
	Resists   ResistFlags  // immunities, resistances and vulnerabilities
	Abilities AbilityFlags // special capabilities
}

// Has reports whether the actor has status st.
func (a *Actor) Has(st Status) bool {
	return a.Statuses.Has(st)
}

// Resist reports whether the actor has any of the resistance flags.
func (a *Actor) Resist(r ResistFlags) bool {
	return a.Resists.Any(r)
}

// Can reports whether the actor has any of the abilities.
func (a *Actor) Can(ab AbilityFlags) bool {
	return a.Abilities.Any(ab)
}

// IsDead reports whether the actor has no health points left.
func (a *Actor) IsDead() bool {
	return a.HP <= 0
}

// Allegiance describes whose side a monster is on.
type Allegiance int

const (
	Hostile Allegiance = iota
	Ally               // ally of the player
	Neutral
)

func (al Allegiance) String() string {
	switch al {
	case Ally:
		return "ally"
	case Neutral:
		return "neutral"
	default:
		return "hostile"
	}
}

// Monster is a monster instance.
type Monster struct {
	Actor
	Species    *Species
	Allegiance Allegiance
	Speed      int
	MaxMaxHP   int  // maximum HP before any time-weakening
	NoPet      bool // cannot be tamed anymore
	Clone      bool // spawned by cloning
}

// NewMonster returns a new monster of the given species at p.
func NewMonster(sp *Species, p gruid.Point) *Monster {
	hp := max(1, sp.HP)
	return &Monster{
		Actor: Actor{
			Name:      sp.Name,
			P:         p,
			HP:        hp,
			MaxHP:     hp,
			Statuses:  make(Statuses, NStatuses),
			Resists:   sp.Resists,
			Abilities: sp.Abilities,
		},
		Species:  sp,
		Speed:    sp.Speed,
		MaxMaxHP: hp,
	}
}

// Level returns the monster's level.
func (m *Monster) Level() int {
	return m.Species.Level
}

// Race reports whether the monster's species has any of the race flags.
func (m *Monster) Race(r RaceFlags) bool {
	return m.Species.Race.Any(r)
}

// Stat describes a player's primary statistic.
type Stat int

const (
	StatStr Stat = iota
	StatInt
	StatWis
	StatDex
	StatCon
	StatChr
	NStats
)

var statNames = [NStats]string{"strength", "intelligence", "wisdom", "dexterity", "constitution", "charisma"}

func (s Stat) String() string {
	return statNames[s]
}

// Player holds the player's data relevant to effects.
type Player struct {
	Actor
	Race        RaceFlags
	Level       int
	Exp         int
	MaxExp      int
	Mana        int
	MaxMana     int
	Stats       [NStats]int
	Sustains    [NStats]bool
	Skill       int     // saving throw skill (percentage)
	RidingSkill int     // riding skill
	Riding      Handle  // ridden monster, if any
	Decoy       bool    // substitute decoy ready
	Equipment   []*Item // worn items
	Inventory   []*Item // carried items
	Killer      string  // what killed the player, if dead
}

// NewPlayer returns a new player with the given level and hit points.
func NewPlayer(name string, level, hp int) *Player {
	pl := &Player{
		Actor: Actor{
			Name:     name,
			HP:       hp,
			MaxHP:    hp,
			Statuses: make(Statuses, NStatuses),
		},
		Level:  level,
		Skill:  30 + level,
		Riding: NoHandle,
	}
	for i := range pl.Stats {
		pl.Stats[i] = 15
	}
	return pl
}

// IsRiding reports whether the player is mounted.
func (pl *Player) IsRiding() bool {
	return pl.Riding.Valid()
}
