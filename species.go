package blast

// RaceFlags describes the nature of a creature as a bitset.
type RaceFlags uint64

// Any reports whether any of the flags is in the set.
func (r RaceFlags) Any(of RaceFlags) bool {
	return r&of != 0
}

// Race flags.
const (
	RaceUndead RaceFlags = 1 << iota
	RaceDemon
	RaceEvil
	RaceGood
	RaceAnimal
	RaceNonliving
	RaceDragon
	RaceGiant
	RaceOrc
	RaceTroll
	RaceHuman
	RaceUnique // one of a kind
	RaceQuest  // quest-protected

	NoRace RaceFlags = 0
)

// nonliving reports whether the flags describe something not truly alive.
func (r RaceFlags) nonliving() bool {
	return r.Any(RaceUndead | RaceDemon | RaceNonliving)
}

// ResistFlags describes immunities, resistances and vulnerabilities as a
// bitset.
type ResistFlags uint64

// Any reports whether any of the flags is in the set.
func (r ResistFlags) Any(of ResistFlags) bool {
	return r&of != 0
}

// Resistance flags. Monsters treat ResX as partial and ImX as near-total
// protection; players take a third of the damage with ResX and none with ImX.
const (
	ImAcid ResistFlags = 1 << iota
	ImElec
	ImFire
	ImCold
	ImPoison
	ResAcid
	ResElec
	ResFire
	ResCold
	ResPoison
	ResLight
	ResDark
	ResNether
	ResWater
	ResPlasma
	ResShards
	ResSound
	ResChaos
	ResNexus
	ResDisen
	ResForce
	ResInertia
	ResTime
	ResGravity
	ResTeleport
	ResAll // resists everything but beneficial effects
	ResFear
	ResConf
	ResSleep
	ResStun
	ResBlind

	HurtLight
	HurtRock
	HurtFire
	HurtCold

	NoResist ResistFlags = 0
)

// AbilityFlags describes special capabilities as a bitset.
type AbilityFlags uint64

// Any reports whether any of the flags is in the set.
func (a AbilityFlags) Any(of AbilityFlags) bool {
	return a&of != 0
}

// Ability flags.
const (
	AbilityReflect AbilityFlags = 1 << iota
	AbilityEmptyMind
	AbilityWeirdMind
	AbilityStupid
	AbilityPowerful
	AbilitySpellcaster
	AbilityInvisible
	AbilityRidable
	AbilityFreeAction
	AbilityHoldLife
	AbilitySeeInvisible
	AbilityLevitation

	NoAbility AbilityFlags = 0
)

// Knowledge gathers flags an observer has learned about a species.
type Knowledge struct {
	Race      RaceFlags
	Resists   ResistFlags
	Abilities AbilityFlags
}

// Empty reports whether nothing is known.
func (k Knowledge) Empty() bool {
	return k.Race == 0 && k.Resists == 0 && k.Abilities == 0
}

// Merge returns the union of two pieces of knowledge.
func (k Knowledge) Merge(other Knowledge) Knowledge {
	return Knowledge{
		Race:      k.Race | other.Race,
		Resists:   k.Resists | other.Resists,
		Abilities: k.Abilities | other.Abilities,
	}
}

// Species describes a kind of monster.
type Species struct {
	Name      string
	Level     int
	Speed     int
	HP        int // starting hit points
	Race      RaceFlags
	Resists   ResistFlags
	Abilities AbilityFlags
	Known     Knowledge // flags observed by the player
}

// Unique reports whether the species is one of a kind.
func (sp *Species) Unique() bool {
	return sp.Race.Any(RaceUnique)
}
