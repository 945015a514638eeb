package blast

// hitContext gathers what the monster-side switch needs to decide the
// outcome of an effect on a monster.
type hitContext struct {
	dl          *delivery
	h           Handle
	mons        *Monster
	typ         EffectType
	dam         int      // damage after fall-off
	dist        int      // effective distance
	caster      *Monster // source monster, if any
	casterLevel int      // level used for saving throws
	byPlayer    bool     // whether the player originated the effect
	seen        bool     // whether the player sees the target
}

// outcome is the result of the monster-side switch for a single target. It
// only proposes changes: they are applied afterwards by affectMonster.
type outcome struct {
	dam        int    // final damage
	skipped    bool   // the effect does not apply: the target is not disturbed
	unaffected bool   // the effect applies, but does nothing
	obvious    bool   // something observable happened
	note       string // notice about the target
	dieNote    string // notice if the target dies

	stun  int // stun proposal
	conf  int // confusion proposal
	fear  int // fear proposal
	sleep int // sleep proposal
	slow  int // slowness proposal
	fast  int // haste proposal
	blind int // blindness proposal
	time  int // maximum HP loss proposal
	dist  int // teleport-away distance

	poly      bool // polymorph attempt
	heal      int  // healing
	cure      bool // remove stun, confusion and fear
	vitality  bool // restore maximum HP
	tame      bool // becomes an ally of the player
	noPet     bool // cannot be tamed anymore
	capture   bool // captured into a ball
	photo     bool // photographed
	clone     bool // cloned
	genocide  int  // removed from the level, with the given cost for the player
	reveal    bool // all flags revealed
	casterHP  int  // healing for the caster
	casterSP  int  // mana for the caster (player only)
	backlash  int  // damage turned back on the caster
	backlashS bool // the backlash may add a random status on the caster

	learn Knowledge // flags revealed to the observer
}

func (oc *outcome) unaffect(note string) {
	oc.unaffected = true
	oc.note = note
	oc.dam = 0
}

// resisted applies a random partial resistance to damage.
func (e *Engine) resisted(dam int) int {
	return dam * 3 / (e.Die(6) + 6)
}

// resistedSome is a weaker random resistance, used for light and darkness.
func (e *Engine) resistedSome(dam int) int {
	return dam * 2 / (e.Die(6) + 6)
}

// immune applies a near-total immunity to damage.
func immune(dam int) int {
	return dam / 9
}

// vulnerable applies a vulnerability to damage.
func vulnerable(dam int) int {
	return dam * 2
}

// beneficial reports whether an effect type bypasses the resist-all
// short-circuit.
func beneficial(typ EffectType) bool {
	switch typ {
	case EffectOldClone, EffectOldHeal, EffectOldSpeed, EffectStarHeal, EffectCapture, EffectPhoto:
		return true
	}
	return false
}

// statusSaves reports whether a monster resists a level-gated status of the
// given power. Uniques always resist.
func (e *Engine) statusSaves(mons *Monster, power int) bool {
	return mons.Species.Unique() || e.saves(mons.Level(), power)
}

// monsterOutcome is the effect-type switch of the monster side. It decides
// damage transforms and status proposals and leaves the target untouched:
// affectMonster applies the result. The only side effects are dice rolls and
// the virtue changes reported to the Bookkeeper as each outcome is decided.
func (e *Engine) monsterOutcome(hc *hitContext) outcome {
	mons := hc.mons
	sp := mons.Species
	dam := hc.dam
	r := hc.dist
	oc := outcome{dam: dam, obvious: hc.seen}
	if mons.Resist(ResAll) && !beneficial(hc.typ) {
		oc.unaffect("is immune.")
		oc.learn.Resists |= ResAll
		return oc
	}
	elemental := func(im, res, hurt ResistFlags) {
		switch {
		case im != 0 && mons.Resist(im):
			oc.note = "resists a lot."
			oc.dam = immune(dam)
			oc.learn.Resists |= im
		case res != 0 && mons.Resist(res):
			oc.note = "resists."
			oc.dam = e.resisted(dam)
			oc.learn.Resists |= res
		case hurt != 0 && mons.Resist(hurt):
			oc.note = "is hit hard."
			oc.dam = vulnerable(dam)
			oc.learn.Resists |= hurt
		}
	}
	switch hc.typ {
	case EffectMissile, EffectArrow, EffectAttack, EffectMeteor, EffectMana, EffectSeeker,
		EffectSuperRay, EffectBloodCurse, EffectPsySpear:
	case EffectAcid:
		elemental(ImAcid, ResAcid, 0)
	case EffectElec:
		elemental(ImElec, ResElec, 0)
	case EffectFire:
		elemental(ImFire, ResFire, HurtFire)
	case EffectCold:
		elemental(ImCold, ResCold, HurtCold)
	case EffectPoison:
		elemental(ImPoison, ResPoison, 0)
	case EffectNuke:
		if mons.Resist(ImPoison) {
			oc.note = "resists."
			oc.dam = e.resisted(dam)
			oc.learn.Resists |= ImPoison
		} else if e.OneIn(3) {
			oc.poly = true
		}
	case EffectHellFire:
		if mons.Race(RaceGood) {
			oc.note = "is hit hard."
			oc.dam = vulnerable(dam)
			oc.learn.Race |= RaceGood
		}
	case EffectHolyFire:
		switch {
		case mons.Race(RaceGood):
			oc.note = "is immune."
			oc.dam = 0
			oc.learn.Race |= RaceGood
		case mons.Race(RaceEvil):
			oc.note = "is hit hard."
			oc.dam = vulnerable(dam)
			oc.learn.Race |= RaceEvil
		default:
			oc.note = "resists."
			oc.dam = e.resisted(dam)
		}
	case EffectPlasma:
		elemental(0, ResPlasma, 0)
	case EffectNether:
		switch {
		case mons.Race(RaceUndead):
			oc.note = "is immune."
			oc.dam = 0
			oc.learn.Race |= RaceUndead
		case mons.Resist(ResNether):
			oc.note = "resists."
			oc.dam = e.resisted(dam)
			oc.learn.Resists |= ResNether
		case mons.Race(RaceEvil):
			oc.note = "resists somewhat."
			oc.dam = dam / 2
			oc.learn.Race |= RaceEvil
		}
	case EffectWater:
		elemental(0, ResWater, 0)
	case EffectChaos:
		if mons.Resist(ResChaos) {
			oc.note = "resists."
			oc.dam = e.resisted(dam)
			oc.learn.Resists |= ResChaos
			break
		}
		if mons.Race(RaceDemon) && e.OneIn(3) {
			oc.note = "resists somewhat."
			oc.dam = e.resisted(dam)
			oc.learn.Race |= RaceDemon
		}
		oc.poly = true
		oc.conf = e.distStatus(5, 11, r)
	case EffectShards:
		elemental(0, ResShards, 0)
	case EffectRocket:
		if mons.Resist(ResShards) {
			oc.note = "resists somewhat."
			oc.dam = dam / 2
			oc.learn.Resists |= ResShards
		}
	case EffectSound:
		if mons.Resist(ResSound) {
			oc.note = "resists."
			oc.dam = dam * 2 / (e.Die(6) + 6)
			oc.learn.Resists |= ResSound
		} else {
			oc.stun = e.distStatus(10, 15, r)
		}
	case EffectConfusion:
		if mons.Resist(ResConf) {
			oc.note = "resists."
			oc.dam = e.resisted(dam)
			oc.learn.Resists |= ResConf
		} else {
			oc.conf = e.distStatus(10, 15, r)
		}
	case EffectDisenchant:
		elemental(0, ResDisen, 0)
	case EffectNexus:
		elemental(0, ResNexus, 0)
	case EffectForce:
		if mons.Resist(ResForce) {
			oc.note = "resists."
			oc.dam = e.resisted(dam)
			oc.learn.Resists |= ResForce
		} else {
			oc.stun = e.distStatus(0, 15, r)
		}
	case EffectInertia:
		if mons.Resist(ResInertia) {
			oc.note = "resists."
			oc.dam = e.resisted(dam)
			oc.learn.Resists |= ResInertia
		} else if !e.statusSaves(mons, dam) {
			oc.slow = 50
		}
	case EffectTime:
		if mons.Resist(ResTime) {
			oc.note = "resists."
			oc.dam = e.resisted(dam)
			oc.learn.Resists |= ResTime
		} else {
			oc.time = (dam + 1) / 2
		}
	case EffectGravity:
		if mons.Resist(ResGravity) {
			oc.note = "resists."
			oc.dam = e.resisted(dam)
			oc.learn.Resists |= ResGravity
			break
		}
		if !e.resistsTeleport(mons, &oc) {
			oc.dist = 10
		}
		if !e.statusSaves(mons, dam) {
			oc.slow = 50
		}
		if !e.statusSaves(mons, dam) {
			oc.stun = e.Dice(hc.casterLevel/20+3, max(1, dam)) + 1
		}
	case EffectIce:
		oc.stun = (e.Die(15) + 1) / (r + 1)
		elemental(ImCold, ResCold, HurtCold)
	case EffectLight:
		switch {
		case mons.Resist(ResLight):
			oc.note = "resists."
			oc.dam = e.resistedSome(dam)
			oc.learn.Resists |= ResLight
		case mons.Resist(HurtLight):
			oc.note = "cringes from the light!"
			oc.dieNote = "shrivels away in the light!"
			oc.dam = vulnerable(dam)
			oc.learn.Resists |= HurtLight
		}
	case EffectLightWeak:
		if !mons.Resist(HurtLight) {
			oc.skipped = true
			oc.dam = 0
			break
		}
		oc.note = "cringes from the light!"
		oc.dieNote = "shrivels away in the light!"
		oc.learn.Resists |= HurtLight
	case EffectDark:
		if mons.Resist(ResDark) {
			oc.note = "resists."
			oc.dam = e.resistedSome(dam)
			oc.learn.Resists |= ResDark
		}
	case EffectDarkWeak:
		oc.skipped = true
		oc.dam = 0
	case EffectDisintegrate:
		if mons.Resist(HurtRock) {
			oc.note = "loses some skin!"
			oc.dieNote = "evaporates!"
			oc.dam = vulnerable(dam)
			oc.learn.Resists |= HurtRock
		}
	case EffectKillWall:
		if !mons.Resist(HurtRock) {
			oc.skipped = true
			oc.dam = 0
			break
		}
		oc.note = "loses some skin!"
		oc.dieNote = "dissolves!"
		oc.learn.Resists |= HurtRock
	case EffectLavaFlow:
		if mons.Resist(ImFire) || mons.Can(AbilityLevitation) {
			oc.unaffect("is immune.")
		}
	case EffectWaterFlow:
		if mons.Resist(ResWater) || mons.Can(AbilityLevitation) {
			oc.unaffect("is immune.")
		}
	case EffectKillDoor, EffectKillTrap, EffectMakeWall, EffectMakeDoor, EffectMakeTrap,
		EffectMakeTree, EffectMakeRune, EffectJamDoor, EffectStoneWall, EffectCurseEquip:
		oc.skipped = true
		oc.dam = 0
	case EffectPsi, EffectPsiDrain:
		e.mindOutcome(hc, &oc)
	case EffectTelekinesis:
		if e.OneIn(4) && !e.isMount(hc.h) {
			oc.dist = 7
		}
		oc.stun = e.Dice(hc.casterLevel/20+3, max(1, dam)) + 1
		if mons.Species.Unique() || mons.Level() > 5+e.Die(dam) {
			oc.stun = 0
			oc.obvious = false
		}
	case EffectDomination:
		e.dominationOutcome(hc, &oc)
	case EffectMindBlast, EffectBrainSmash:
		switch {
		case mons.Species.Unique() || mons.Race(RaceQuest) || mons.Resist(ResConf) ||
			e.saves(mons.Level(), hc.casterLevel):
			if mons.Resist(ResConf) {
				oc.learn.Resists |= ResConf
			}
			oc.unaffect("is unaffected.")
		case mons.Can(AbilityEmptyMind):
			oc.unaffect("is immune.")
			oc.learn.Abilities |= AbilityEmptyMind
		case mons.Can(AbilityWeirdMind):
			oc.note = "resists."
			oc.dam = dam / 3
			oc.learn.Abilities |= AbilityWeirdMind
		default:
			oc.note = "is blasted by psionic energy."
			oc.dieNote = "collapses, a mindless husk."
			base := 8
			if hc.caster != nil {
				base = 4
			}
			oc.conf = e.IntN(base) + base
			if hc.typ == EffectBrainSmash {
				oc.stun = e.IntN(base) + base
				oc.slow = 10
			}
		}
	case EffectCause1, EffectCause2, EffectCause3, EffectCause4, EffectWounds:
		if e.IntN(100+hc.casterLevel/2) < mons.Level()+35 {
			oc.unaffect("is unaffected.")
		}
	case EffectHandDoom:
		switch {
		case mons.Species.Unique():
			oc.unaffect("is unaffected.")
		case hc.caster != nil && hc.casterLevel+e.Die(dam) > mons.Level()+10,
			hc.caster == nil && hc.casterLevel/2+e.Die(dam) > mons.Level()+e.Die(200):
			oc.dam = (40 + e.Die(20)) * mons.HP / 100
			if oc.dam >= mons.HP {
				oc.dam = mons.HP - 1
			}
		default:
			oc.note = "resists!"
			oc.dam = 0
		}
	case EffectBlind:
		switch {
		case mons.Resist(ResBlind):
			oc.unaffect("is unaffected.")
			oc.learn.Resists |= ResBlind
		case e.statusSaves(mons, dam):
			oc.unaffect("is unaffected.")
		default:
			oc.blind = e.distStatus(10, 10, r)
			oc.dam = 0
		}
	case EffectScare:
		switch {
		case mons.Resist(ResFear):
			oc.unaffect("is unaffected.")
			oc.learn.Resists |= ResFear
		case e.statusSaves(mons, dam):
			oc.unaffect("is unaffected.")
		default:
			oc.fear = e.distStatus(dam, 10, r)
			oc.dam = 0
		}
	case EffectOldClone:
		if mons.Allegiance == Ally || mons.Species.Unique() || mons.Race(RaceQuest) {
			oc.unaffect("is unaffected.")
		} else {
			oc.clone = true
			oc.heal = mons.MaxHP
			oc.note = "spawns!"
			oc.dam = 0
		}
	case EffectOldPoly:
		oc.dam = 0
		if mons.Race(RaceQuest) || e.statusSaves(mons, dam) {
			oc.unaffect("is unaffected.")
			oc.obvious = false
		} else {
			oc.poly = true
		}
	case EffectStarHeal:
		oc.vitality = true
		fallthrough
	case EffectOldHeal:
		oc.cure = true
		oc.heal = dam
		oc.dam = 0
		oc.note = "looks healthier."
		if hc.byPlayer {
			e.Book.Virtue(VirtueVitality, 1)
			if sp.Unique() {
				e.Book.Virtue(VirtueIndividualism, 1)
			}
			switch {
			case mons.Allegiance == Ally:
				e.Book.Virtue(VirtueHonour, 1)
			case mons.Race(RaceGood):
				e.Book.Virtue(VirtueCompassion, 2)
			case !mons.Race(RaceEvil):
				e.Book.Virtue(VirtueCompassion, 1)
			}
			if mons.Race(RaceAnimal) {
				e.Book.Virtue(VirtueNature, 1)
			}
		}
	case EffectOldSpeed:
		oc.fast = 100
		oc.dam = 0
		if hc.byPlayer {
			if sp.Unique() {
				e.Book.Virtue(VirtueIndividualism, 1)
			}
			if mons.Allegiance == Ally {
				e.Book.Virtue(VirtueHonour, 1)
			}
		}
	case EffectOldSlow:
		oc.dam = 0
		if e.statusSaves(mons, dam) {
			oc.unaffect("is unaffected.")
			oc.obvious = false
		} else {
			oc.slow = 50
		}
	case EffectOldSleep:
		oc.dam = 0
		if mons.Resist(ResSleep) || e.statusSaves(mons, dam) {
			if mons.Resist(ResSleep) {
				oc.learn.Resists |= ResSleep
			}
			oc.unaffect("is unaffected.")
			oc.obvious = false
		} else {
			oc.sleep = 500
		}
	case EffectStasisEvil:
		oc.dam = 0
		if mons.Race(RaceQuest) || !mons.Race(RaceEvil) || e.statusSaves(mons, dam) {
			oc.unaffect("is unaffected.")
			oc.obvious = false
		} else {
			oc.note = "is suspended!"
			oc.sleep = 500
		}
	case EffectStasis:
		oc.dam = 0
		if e.statusSaves(mons, dam) {
			oc.unaffect("is unaffected.")
			oc.obvious = false
		} else {
			oc.note = "is suspended!"
			oc.sleep = 500
		}
	case EffectStun:
		oc.dam = 0
		if e.statusSaves(mons, dam) {
			oc.unaffect("is unaffected.")
			oc.obvious = false
		} else {
			oc.stun = e.Dice(hc.casterLevel/20+3, max(1, dam)) + 1
		}
	case EffectOldConf:
		oc.dam = 0
		if mons.Resist(ResConf) || e.statusSaves(mons, dam) {
			if mons.Resist(ResConf) {
				oc.learn.Resists |= ResConf
			}
			oc.unaffect("is unaffected.")
			oc.obvious = false
		} else {
			oc.conf = e.Dice(3, max(1, dam/2)) + 1
		}
	case EffectAwayUndead, EffectAwayEvil, EffectAwayAll:
		oc.dam = 0
		if !raceGate(hc.typ, mons) {
			oc.skipped = true
			break
		}
		if !e.resistsTeleport(mons, &oc) {
			oc.dist = dam
		}
	case EffectTurnUndead, EffectTurnEvil:
		oc.dam = 0
		if !raceGate(hc.typ, mons) {
			oc.skipped = true
			break
		}
		if e.saves(mons.Level(), dam) {
			oc.unaffect("is unaffected.")
			oc.obvious = false
		} else {
			oc.fear = e.Dice(3, max(1, dam/2)) + 1
		}
	case EffectTurnAll:
		oc.dam = 0
		if mons.Resist(ResFear) || e.statusSaves(mons, dam) {
			if mons.Resist(ResFear) {
				oc.learn.Resists |= ResFear
			}
			oc.unaffect("is unaffected.")
			oc.obvious = false
		} else {
			oc.fear = e.Dice(3, max(1, dam/2)) + 1
		}
	case EffectDispUndead, EffectDispEvil, EffectDispGood, EffectDispDemon, EffectDispLiving, EffectDispAll:
		if !raceGate(hc.typ, mons) {
			oc.skipped = true
			oc.dam = 0
			break
		}
		oc.note = "shudders."
		oc.dieNote = "dissolves!"
		oc.learn.Race |= raceGateFlags(hc.typ)
	case EffectDrainLife:
		if sp.Race.nonliving() {
			oc.unaffect("is unaffected.")
			oc.obvious = false
			oc.learn.Race |= sp.Race & (RaceUndead | RaceDemon | RaceNonliving)
		}
	case EffectDrainMana:
		oc.dam = 0
		if !mons.Can(AbilitySpellcaster) {
			oc.unaffect("is unaffected.")
			break
		}
		if hc.caster != nil {
			oc.casterHP = 6 * dam
		} else if hc.byPlayer {
			oc.casterHP = dam
		}
	case EffectDeathRay:
		switch {
		case sp.Race.nonliving():
			oc.unaffect("is immune.")
			oc.obvious = false
			oc.learn.Race |= sp.Race & (RaceUndead | RaceDemon | RaceNonliving)
		case sp.Unique() && e.Die(888) != 666,
			mons.Level()+e.Die(20) > e.Die(hc.casterLevel/2+e.Die(10)) && e.Die(100) != 66:
			oc.note = "resists!"
			oc.dam = 0
			oc.obvious = false
		}
	case EffectCharm:
		dam += e.charmBonus()
		oc.dam = 0
		switch {
		case e.charmSaves(mons, dam):
			oc.unaffect("is unaffected.")
			oc.obvious = false
			oc.noPet = e.OneIn(4)
		case !hc.byPlayer:
			oc.unaffect("is unaffected.")
		default:
			oc.note = "suddenly seems friendly!"
			oc.tame = true
			e.Book.Virtue(VirtueIndividualism, -1)
			if mons.Race(RaceAnimal) {
				e.Book.Virtue(VirtueNature, 1)
			}
		}
	case EffectControlUndead, EffectControlDemon, EffectControlAnimal, EffectControlLiving:
		dam += e.charmBonus()
		oc.dam = 0
		switch {
		case !raceGate(hc.typ, mons):
			oc.unaffect("is unaffected.")
			oc.obvious = false
		case e.controlSaves(mons, dam):
			oc.unaffect("is unaffected.")
			oc.obvious = false
			oc.noPet = e.OneIn(4)
		case !hc.byPlayer:
			oc.unaffect("is unaffected.")
		default:
			oc.note = "is tamed!"
			oc.tame = true
			oc.learn.Race |= raceGateFlags(hc.typ)
			if hc.typ == EffectControlAnimal {
				e.Book.Virtue(VirtueNature, 1)
			}
		}
	case EffectCrusade:
		e.crusadeOutcome(hc, &oc)
	case EffectGenocide:
		oc.dam = 0
		switch {
		case sp.Unique() || mons.Race(RaceQuest) || e.isMount(hc.h):
			oc.unaffect("is unaffected.")
		case hc.byPlayer && mons.Level() > e.IntN(dam):
			oc.unaffect("is unaffected.")
		default:
			oc.genocide = e.Die((mons.Level() + 1) / 2)
			oc.dieNote = "disappears!"
			if hc.byPlayer {
				e.Book.Virtue(VirtueVitality, -1)
			}
		}
	case EffectCapture:
		e.captureOutcome(hc, &oc)
	case EffectPhoto:
		oc.photo = true
		if mons.Resist(HurtLight) {
			oc.note = "cringes from the light!"
			oc.dieNote = "shrivels away in the light!"
			oc.learn.Resists |= HurtLight
		} else {
			oc.dam = 0
		}
	case EffectIdentify:
		oc.dam = 0
		oc.reveal = true
		oc.note = "is identified."
	case EffectEngetsu:
		e.engetsuOutcome(hc, &oc)
	default:
		oc.skipped = true
		oc.dam = 0
	}
	return oc
}

// raceGate reports whether a race-gated effect applies to the monster.
func raceGate(typ EffectType, mons *Monster) bool {
	switch typ {
	case EffectDispLiving, EffectControlLiving:
		return !mons.Species.Race.nonliving()
	case EffectAwayAll, EffectDispAll:
		return true
	}
	return mons.Race(raceGateFlags(typ))
}

func raceGateFlags(typ EffectType) RaceFlags {
	switch typ {
	case EffectAwayUndead, EffectTurnUndead, EffectDispUndead, EffectControlUndead:
		return RaceUndead
	case EffectAwayEvil, EffectTurnEvil, EffectDispEvil:
		return RaceEvil
	case EffectDispGood:
		return RaceGood
	case EffectDispDemon, EffectControlDemon:
		return RaceDemon
	case EffectControlAnimal:
		return RaceAnimal
	}
	return NoRace
}

// resistsTeleport decides whether a monster resists being teleported away.
func (e *Engine) resistsTeleport(mons *Monster, oc *outcome) bool {
	if !mons.Resist(ResTeleport) {
		return false
	}
	oc.learn.Resists |= ResTeleport
	switch {
	case mons.Species.Unique():
		oc.note = "is unaffected."
		return true
	case mons.Level() > e.Die(100):
		oc.note = "resists!"
		return true
	}
	return false
}

// isMount reports whether h is the player's mount.
func (e *Engine) isMount(h Handle) bool {
	return e.Player.IsRiding() && e.Player.Riding == h
}

// charmBonus returns the power bonus of the player's charisma for charm-like
// effects.
func (e *Engine) charmBonus() int {
	return (e.Player.Stats[StatChr] - 10) / 3
}

// charmSaves reports whether a monster resists being charmed.
func (e *Engine) charmSaves(mons *Monster, pow int) bool {
	if mons.Race(RaceQuest) || mons.NoPet || mons.Species.Unique() {
		return true
	}
	return mons.Level() > e.Die(max(1, pow-10))+5
}

// controlSaves reports whether a monster resists being controlled.
func (e *Engine) controlSaves(mons *Monster, pow int) bool {
	if mons.Race(RaceQuest) || mons.NoPet || mons.Species.Unique() {
		return true
	}
	return e.saves(mons.Level(), pow)
}

// mindOutcome handles psionic attacks, which stupid, weird or animal minds
// partially resist, and which powerful undead and demons may turn back on
// their caster.
func (e *Engine) mindOutcome(hc *hitContext, oc *outcome) {
	mons := hc.mons
	dam := hc.dam
	oc.dieNote = "collapses, a mindless husk."
	if from := e.sourcePos(hc.dl.Source); e.Map.InBounds(from) && !e.Map.InLOS(mons.P, from, e.Config.MaxRange) {
		oc.note = "can't see its attacker, and isn't affected!"
		oc.skipped = true
		oc.dam = 0
		return
	}
	switch {
	case mons.Can(AbilityEmptyMind):
		oc.unaffect("is immune.")
		oc.learn.Abilities |= AbilityEmptyMind
		return
	case mons.Can(AbilityStupid|AbilityWeirdMind) || mons.Race(RaceAnimal) || mons.Level() > e.Die(3*max(1, dam)):
		oc.note = "resists."
		oc.dam = dam / 3
		oc.learn.Abilities |= mons.Abilities & (AbilityStupid | AbilityWeirdMind)
		if mons.Race(RaceUndead|RaceDemon) && mons.Level() > hc.casterLevel/2 && e.OneIn(2) {
			oc.note = "has a corrupted mind that backlashes the attack!"
			oc.backlash = oc.dam / 3
			if hc.typ == EffectPsi {
				oc.backlashS = true
			}
			oc.dam = 0
			return
		}
	}
	if hc.typ == EffectPsiDrain {
		if oc.dam > 0 && hc.byPlayer {
			oc.casterSP = e.Dice(5, oc.dam) / 4
		}
		return
	}
	if oc.dam > 0 && e.OneIn(4) {
		n := 3 + e.Die(oc.dam)
		switch e.Die(4) {
		case 1:
			oc.conf = n
		case 2:
			oc.stun = n
		case 3:
			oc.fear = n
		default:
			oc.sleep = n
		}
	}
}

// dominationOutcome handles domination: monsters that fail their saving
// throw are tamed or stricken with a status. Powerful undead and demons
// may turn it back on their caster.
func (e *Engine) dominationOutcome(hc *hitContext, oc *outcome) {
	mons := hc.mons
	dam := hc.dam
	oc.dam = 0
	if mons.Allegiance == Ally && hc.byPlayer {
		oc.skipped = true
		return
	}
	if mons.Species.Unique() || mons.Race(RaceQuest) || mons.Resist(ResConf) || e.saves(mons.Level(), dam) {
		if mons.Resist(ResConf) {
			oc.learn.Resists |= ResConf
		}
		if mons.Race(RaceUndead|RaceDemon) && mons.Level() > hc.casterLevel/2 && e.OneIn(2) {
			oc.note = "has a corrupted mind that backlashes the attack!"
			oc.backlashS = true
			return
		}
		oc.unaffect("is unaffected.")
		oc.obvious = false
		return
	}
	if hc.byPlayer && dam > 29 && e.Die(100) < dam {
		oc.note = "is in your thrall!"
		oc.tame = true
		return
	}
	switch e.Die(5) {
	case 1:
		oc.stun = dam / 2
	case 2:
		oc.conf = dam / 2
	default:
		oc.fear = dam
	}
}

// crusadeOutcome handles crusade: good monsters may be tamed and hasted;
// others are frightened.
func (e *Engine) crusadeOutcome(hc *hitContext, oc *outcome) {
	mons := hc.mons
	dam := hc.dam
	oc.dam = 0
	success := false
	if mons.Race(RaceGood) && hc.byPlayer {
		if mons.Resist(ResConf) {
			dam = max(1, dam-50)
		}
		switch {
		case mons.Allegiance == Ally:
			oc.fast = 100
			success = true
		case mons.Race(RaceQuest) || mons.Species.Unique() || mons.NoPet || mons.Level()+10 > e.Die(dam):
			oc.noPet = e.OneIn(4)
		default:
			oc.note = "is tamed!"
			oc.tame = true
			oc.fast = 100
			oc.learn.Race |= RaceGood
			success = true
		}
	}
	if success {
		return
	}
	if mons.Resist(ResFear) {
		oc.learn.Resists |= ResFear
		oc.unaffect("is unaffected.")
		return
	}
	oc.fear = e.Die(90) + 10
}

// captureOutcome decides whether a monster is captured: it must be weakened
// below a threshold first, and then the capture succeeds with a
// probability increasing as its health decreases.
func (e *Engine) captureOutcome(hc *hitContext, oc *outcome) {
	mons := hc.mons
	oc.dam = 0
	if mons.Species.Unique() || mons.Race(RaceQuest) || mons.Clone || !hc.byPlayer {
		oc.unaffect("is unaffected.")
		oc.skipped = true
		return
	}
	threshold := mons.MaxHP * 3 / 20
	if mons.Allegiance == Ally {
		threshold = mons.MaxHP * 4
	}
	switch {
	case mons.HP >= threshold:
		oc.note = "is too healthy to be captured."
		oc.skipped = true
	case mons.HP < e.IntN(threshold):
		oc.capture = true
	default:
		oc.note = "escapes capture."
		oc.skipped = true
	}
}

// engetsuOutcome handles the moon gaze, which slows, stuns or sleeps awake
// monsters with decreasing odds.
func (e *Engine) engetsuOutcome(hc *hitContext, oc *outcome) {
	mons := hc.mons
	dam := hc.dam
	oc.dam = 0
	if mons.Can(AbilityEmptyMind) || mons.Has(StatusSleep) {
		if mons.Can(AbilityEmptyMind) {
			oc.learn.Abilities |= AbilityEmptyMind
		}
		oc.unaffect("is immune.")
		oc.skipped = true
		return
	}
	switch {
	case e.OneIn(5):
		if e.statusSaves(mons, dam) {
			oc.unaffect("is unaffected.")
			oc.obvious = false
		} else {
			oc.slow = 50
		}
	case e.OneIn(4):
		if e.statusSaves(mons, dam) {
			oc.unaffect("is unaffected.")
			oc.obvious = false
		} else {
			oc.stun = e.Dice(e.Player.Level/10+3, max(1, dam)) + 1
		}
	case e.OneIn(3):
		if mons.Resist(ResSleep) || e.statusSaves(mons, dam) {
			if mons.Resist(ResSleep) {
				oc.learn.Resists |= ResSleep
			}
			oc.unaffect("is unaffected.")
			oc.obvious = false
		} else {
			oc.sleep = 500
		}
	default:
		oc.unaffect("is immune.")
	}
}
