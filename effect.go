package blast

import (
	"fmt"
	"strings"
)

// EffectType identifies what a delivery does to the things it reaches.
type EffectType int

// Effect types. Values outside [EffectNone, NEffects) are treated as
// unsupported and skipped.
const (
	EffectNone EffectType = iota

	// Damaging elements and projectiles.
	EffectAcid
	EffectElec
	EffectFire
	EffectCold
	EffectPoison
	EffectPlasma
	EffectWater
	EffectLight
	EffectDark
	EffectLightWeak // only hurts light-sensitive creatures
	EffectDarkWeak  // only darkens
	EffectNether
	EffectChaos
	EffectShards
	EffectSound
	EffectConfusion
	EffectDisenchant
	EffectNexus
	EffectForce
	EffectInertia
	EffectTime
	EffectGravity
	EffectIce
	EffectNuke
	EffectRocket
	EffectMana
	EffectMeteor
	EffectMissile
	EffectArrow
	EffectDisintegrate
	EffectHolyFire
	EffectHellFire
	EffectPsySpear // ignores invulnerability
	EffectSeeker
	EffectSuperRay
	EffectBloodCurse
	EffectAttack

	// Terrain shaping.
	EffectKillWall // stone to mud
	EffectKillDoor
	EffectKillTrap
	EffectMakeWall
	EffectMakeDoor
	EffectMakeTrap
	EffectMakeTree
	EffectMakeRune
	EffectJamDoor
	EffectStoneWall
	EffectLavaFlow
	EffectWaterFlow

	// Classic monster spells.
	EffectOldClone
	EffectOldPoly
	EffectOldHeal
	EffectOldSpeed
	EffectOldSlow
	EffectOldConf
	EffectOldSleep
	EffectStarHeal
	EffectStasis
	EffectStasisEvil
	EffectStun

	// Race-gated banishment, fear and dispelling.
	EffectAwayUndead
	EffectAwayEvil
	EffectAwayAll
	EffectTurnUndead
	EffectTurnEvil
	EffectTurnAll
	EffectDispUndead
	EffectDispEvil
	EffectDispGood
	EffectDispDemon
	EffectDispLiving
	EffectDispAll

	// Draining.
	EffectDrainLife
	EffectDrainMana
	EffectDeathRay

	// Mind attacks.
	EffectMindBlast
	EffectBrainSmash
	EffectPsi
	EffectPsiDrain
	EffectTelekinesis
	EffectDomination

	// Curses.
	EffectCause1
	EffectCause2
	EffectCause3
	EffectCause4
	EffectHandDoom
	EffectWounds
	EffectCurseEquip
	EffectBlind
	EffectScare

	// Allegiance.
	EffectCharm
	EffectControlUndead
	EffectControlDemon
	EffectControlAnimal
	EffectControlLiving
	EffectCrusade
	EffectGenocide

	// Miscellaneous.
	EffectCapture
	EffectPhoto
	EffectIdentify
	EffectEngetsu // moon gaze

	NEffects
)

var effectNames = [...]string{
	EffectNone:          "none",
	EffectAcid:          "acid",
	EffectElec:          "elec",
	EffectFire:          "fire",
	EffectCold:          "cold",
	EffectPoison:        "poison",
	EffectPlasma:        "plasma",
	EffectWater:         "water",
	EffectLight:         "light",
	EffectDark:          "dark",
	EffectLightWeak:     "light_weak",
	EffectDarkWeak:      "dark_weak",
	EffectNether:        "nether",
	EffectChaos:         "chaos",
	EffectShards:        "shards",
	EffectSound:         "sound",
	EffectConfusion:     "confusion",
	EffectDisenchant:    "disenchant",
	EffectNexus:         "nexus",
	EffectForce:         "force",
	EffectInertia:       "inertia",
	EffectTime:          "time",
	EffectGravity:       "gravity",
	EffectIce:           "ice",
	EffectNuke:          "nuke",
	EffectRocket:        "rocket",
	EffectMana:          "mana",
	EffectMeteor:        "meteor",
	EffectMissile:       "missile",
	EffectArrow:         "arrow",
	EffectDisintegrate:  "disintegrate",
	EffectHolyFire:      "holy_fire",
	EffectHellFire:      "hell_fire",
	EffectPsySpear:      "psy_spear",
	EffectSeeker:        "seeker",
	EffectSuperRay:      "super_ray",
	EffectBloodCurse:    "blood_curse",
	EffectAttack:        "attack",
	EffectKillWall:      "kill_wall",
	EffectKillDoor:      "kill_door",
	EffectKillTrap:      "kill_trap",
	EffectMakeWall:      "make_wall",
	EffectMakeDoor:      "make_door",
	EffectMakeTrap:      "make_trap",
	EffectMakeTree:      "make_tree",
	EffectMakeRune:      "make_rune",
	EffectJamDoor:       "jam_door",
	EffectStoneWall:     "stone_wall",
	EffectLavaFlow:      "lava_flow",
	EffectWaterFlow:     "water_flow",
	EffectOldClone:      "old_clone",
	EffectOldPoly:       "old_poly",
	EffectOldHeal:       "old_heal",
	EffectOldSpeed:      "old_speed",
	EffectOldSlow:       "old_slow",
	EffectOldConf:       "old_conf",
	EffectOldSleep:      "old_sleep",
	EffectStarHeal:      "star_heal",
	EffectStasis:        "stasis",
	EffectStasisEvil:    "stasis_evil",
	EffectStun:          "stun",
	EffectAwayUndead:    "away_undead",
	EffectAwayEvil:      "away_evil",
	EffectAwayAll:       "away_all",
	EffectTurnUndead:    "turn_undead",
	EffectTurnEvil:      "turn_evil",
	EffectTurnAll:       "turn_all",
	EffectDispUndead:    "disp_undead",
	EffectDispEvil:      "disp_evil",
	EffectDispGood:      "disp_good",
	EffectDispDemon:     "disp_demon",
	EffectDispLiving:    "disp_living",
	EffectDispAll:       "disp_all",
	EffectDrainLife:     "drain_life",
	EffectDrainMana:     "drain_mana",
	EffectDeathRay:      "death_ray",
	EffectMindBlast:     "mind_blast",
	EffectBrainSmash:    "brain_smash",
	EffectPsi:           "psi",
	EffectPsiDrain:      "psi_drain",
	EffectTelekinesis:   "telekinesis",
	EffectDomination:    "domination",
	EffectCause1:        "cause_1",
	EffectCause2:        "cause_2",
	EffectCause3:        "cause_3",
	EffectCause4:        "cause_4",
	EffectHandDoom:      "hand_doom",
	EffectWounds:        "wounds",
	EffectCurseEquip:    "curse_equip",
	EffectBlind:         "blind",
	EffectScare:         "scare",
	EffectCharm:         "charm",
	EffectControlUndead: "control_undead",
	EffectControlDemon:  "control_demon",
	EffectControlAnimal: "control_animal",
	EffectControlLiving: "control_living",
	EffectCrusade:       "crusade",
	EffectGenocide:      "genocide",
	EffectCapture:       "capture",
	EffectPhoto:         "photo",
	EffectIdentify:      "identify",
	EffectEngetsu:       "engetsu",
}

// Valid reports whether the effect type is a known one.
func (t EffectType) Valid() bool {
	return t > EffectNone && t < NEffects
}

func (t EffectType) String() string {
	if t < 0 || t >= NEffects {
		return fmt.Sprintf("effect(%d)", int(t))
	}
	return effectNames[t]
}

// Noun returns a short noun phrase describing what hits the player.
func (t EffectType) Noun() string {
	switch t {
	case EffectElec:
		return "lightning"
	case EffectCold:
		return "frost"
	case EffectDark, EffectDarkWeak:
		return "darkness"
	case EffectLight, EffectLightWeak:
		return "light"
	case EffectShards:
		return "something sharp"
	case EffectSound:
		return "a loud noise"
	case EffectForce, EffectGravity, EffectInertia, EffectMissile, EffectArrow, EffectAttack:
		return "something"
	case EffectDisintegrate:
		return "pure energy"
	case EffectHolyFire:
		return "holy fire"
	case EffectHellFire:
		return "hellfire"
	case EffectNuke:
		return "radiation"
	case EffectPsySpear, EffectMindBlast, EffectBrainSmash, EffectPsi, EffectPsiDrain:
		return "a psionic blast"
	case EffectMana, EffectSeeker, EffectSuperRay:
		return "mana"
	case EffectCause1, EffectCause2, EffectCause3, EffectCause4, EffectWounds, EffectHandDoom, EffectBloodCurse:
		return "a curse"
	}
	if !t.Valid() {
		return "something"
	}
	return strings.ReplaceAll(effectNames[t], "_", " ")
}

// lightLike reports whether the effect spreads along lines of sight rather
// than lines of fire.
func (t EffectType) lightLike() bool {
	return t == EffectLight || t == EffectLightWeak
}

// ParseEffectType returns the effect type with the given name.
func ParseEffectType(s string) (EffectType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range effectNames {
		if name == s {
			return EffectType(i), nil
		}
	}
	return EffectNone, fmt.Errorf("unknown effect type: %q", s)
}
