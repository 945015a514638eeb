package blast

// affectPlayer resolves a delivery on the player at the given effective
// distance. It reports whether something observable happened.
func (e *Engine) affectPlayer(dl *delivery, dist int, out *deliveryOutcome) bool {
	pl := e.Player
	dam := Falloff(dl.Damage, dist)
	caster := e.sourceMonster(dl.Source)

	// Evasion pre-checks: either cancels the whole resolution.
	if pl.Decoy && dam > 0 && caster != nil && !e.isMount(dl.Source.Monster) &&
		e.IntN(55) < pl.Level*3/5+20 {
		pl.Decoy = false
		e.LogfStyled("The attack hits a substitute decoy!", logNotable)
		e.teleportPlayer(10 + e.Die(90))
		return true
	}
	if e.tryReflect(dl, PlayerSource(), pl.P, pl.Can(AbilityReflect), out) {
		e.LogfStyled("The attack bounces!", logNotable)
		return true
	}

	casterLevel := max(1, dam)
	if caster != nil {
		casterLevel = caster.Level()
	}
	blind := pl.Has(StatusBlind)
	noun := dl.Type.Noun()
	if blind {
		noun = "something"
	}
	hit := func() {
		e.LogfStyled("You are hit by %s!", logHurtPlayer, noun)
	}
	saves := func() bool {
		if e.playerSaves(casterLevel) {
			e.Logf("You resist the effects!")
			return true
		}
		return false
	}
	killer := e.sourceName(dl.Source)
	obvious := true

	switch dl.Type {
	case EffectAcid:
		hit()
		dam = e.elementDamage(dam, dl.Type, ImAcid, ResAcid, 0)
		if dam > 0 && !pl.Resist(ResAcid) {
			e.damageArmour()
		}
	case EffectElec:
		hit()
		dam = e.elementDamage(dam, dl.Type, ImElec, ResElec, 0)
	case EffectFire:
		hit()
		dam = e.elementDamage(dam, dl.Type, ImFire, ResFire, HurtFire)
	case EffectCold:
		hit()
		dam = e.elementDamage(dam, dl.Type, ImCold, ResCold, HurtCold)
	case EffectPoison:
		hit()
		dam = e.elementDamage(dam, dl.Type, ImPoison, ResPoison, 0)
		if dam > 0 && !pl.Resist(ResPoison) {
			e.putStatus(&pl.Actor, StatusPoison, e.IntN(dam)+10)
		}
	case EffectNuke:
		hit()
		dam = e.elementDamage(dam, EffectPoison, ImPoison, ResPoison, 0)
		if dam > 0 && !pl.Resist(ResPoison) {
			e.putStatus(&pl.Actor, StatusPoison, e.IntN(dam)+10)
			if e.OneIn(5) {
				e.LogfStyled("You undergo a freakish metamorphosis!", logHurtPlayer)
				e.shuffleStats()
			}
			e.damageInventory(EffectAcid, 2)
		}
	case EffectMissile, EffectArrow, EffectAttack, EffectMana, EffectSeeker, EffectSuperRay,
		EffectPsySpear, EffectDisintegrate, EffectBloodCurse:
		hit()
	case EffectHolyFire:
		hit()
		switch {
		case pl.Race.Any(RaceEvil):
			dam = vulnerable(dam)
		case pl.Race.Any(RaceGood):
			dam /= 2
		}
	case EffectHellFire:
		hit()
		if pl.Race.Any(RaceGood) {
			dam = vulnerable(dam)
		}
	case EffectPlasma:
		hit()
		if !pl.Resist(ResSound) {
			bound := dam*3/4 + 5
			if dam > 40 {
				bound = 35
			}
			e.putStatus(&pl.Actor, StatusStun, e.Die(bound))
		}
		if !pl.Resist(ResFire | ImFire) {
			e.damageInventory(EffectFire, 3)
		}
	case EffectNether:
		hit()
		if pl.Race.Any(RaceUndead) {
			e.LogfStyled("You feel invigorated!", logNotable)
			e.healPlayer(dam / 4)
			dam = 0
			break
		}
		if pl.Resist(ResNether) {
			dam = dam * 6 / (e.Die(4) + 7)
		} else {
			e.drainExp(200+pl.Exp/100, 200+pl.Exp/1000, 75)
		}
	case EffectWater:
		hit()
		if pl.Resist(ResWater) {
			dam = dam * 5 / 9
			break
		}
		if !pl.Resist(ResSound) {
			e.putStatus(&pl.Actor, StatusStun, e.Die(40))
		}
		if !pl.Resist(ResConf) {
			e.putStatus(&pl.Actor, StatusConfusion, e.Die(5)+5)
		}
		if e.OneIn(5) {
			e.damageInventory(EffectCold, 3)
		}
	case EffectChaos:
		hit()
		if pl.Resist(ResChaos) {
			dam = dam * 6 / (e.Die(4) + 7)
		}
		if !pl.Resist(ResConf) {
			e.putStatus(&pl.Actor, StatusConfusion, e.IntN(20)+10)
		}
		if !pl.Resist(ResChaos) {
			e.putStatus(&pl.Actor, StatusHallucination, e.Die(10))
			if !pl.Resist(ResNether) {
				e.drainExp(5000+pl.Exp/100, 500+pl.Exp/1000, 75)
			}
		}
		if !pl.Resist(ResChaos) || e.OneIn(9) {
			e.damageInventory(EffectElec, 2)
			e.damageInventory(EffectFire, 2)
		}
	case EffectShards:
		hit()
		if pl.Resist(ResShards) {
			dam = dam * 6 / (e.Die(4) + 7)
		} else {
			e.putStatus(&pl.Actor, StatusCut, dam)
		}
		if !pl.Resist(ResShards) || e.OneIn(13) {
			e.damageInventory(EffectCold, 2)
		}
	case EffectSound:
		hit()
		if pl.Resist(ResSound) {
			dam = dam * 5 / (e.Die(4) + 7)
		} else {
			bound := dam/3 + 5
			if dam > 90 {
				bound = 35
			}
			e.putStatus(&pl.Actor, StatusStun, e.Die(bound))
		}
		if !pl.Resist(ResSound) || e.OneIn(13) {
			e.damageInventory(EffectCold, 2)
		}
	case EffectConfusion:
		hit()
		if pl.Resist(ResConf) {
			dam = dam * 5 / (e.Die(4) + 7)
		} else {
			e.putStatus(&pl.Actor, StatusConfusion, e.Die(20)+10)
		}
	case EffectDisenchant:
		hit()
		if pl.Resist(ResDisen) {
			dam = dam * 6 / (e.Die(4) + 7)
		} else {
			e.disenchant()
		}
	case EffectNexus:
		hit()
		if pl.Resist(ResNexus) {
			dam = dam * 6 / (e.Die(4) + 7)
		} else {
			e.nexus(caster, casterLevel)
		}
	case EffectForce:
		hit()
		if !pl.Resist(ResSound) {
			e.putStatus(&pl.Actor, StatusStun, e.Die(20))
		}
	case EffectRocket:
		hit()
		if !pl.Resist(ResSound) {
			e.putStatus(&pl.Actor, StatusStun, e.Die(20))
		}
		if pl.Resist(ResShards) {
			dam /= 2
		} else {
			e.putStatus(&pl.Actor, StatusCut, dam/2)
		}
		if !pl.Resist(ResShards) || e.OneIn(12) {
			e.damageInventory(EffectCold, 3)
		}
	case EffectInertia:
		hit()
		e.putStatus(&pl.Actor, StatusSlow, e.IntN(4)+4)
	case EffectLight, EffectLightWeak:
		if dl.Type == EffectLightWeak && !pl.Resist(HurtLight) {
			obvious = false
			dam = 0
			break
		}
		hit()
		switch {
		case pl.Resist(ResLight):
			dam = dam * 4 / (e.Die(4) + 7)
		case !blind && !pl.Resist(ResBlind):
			e.putStatus(&pl.Actor, StatusBlind, e.Die(5)+2)
		}
		if pl.Resist(HurtLight) {
			e.LogfStyled("The light scorches you!", logHurtPlayer)
			dam = dam * 4 / 3
		}
		if pl.Has(StatusWraithForm) {
			dam = vulnerable(dam)
			e.LogfStyled("The light forces you out of your incorporeal shadow form.", logHurtPlayer)
			e.clearStatus(&pl.Actor, StatusWraithForm)
		}
	case EffectDark:
		hit()
		if pl.Has(StatusWraithForm) {
			e.LogfStyled("The darkness heals you.", logNotable)
			e.healPlayer(dam)
			dam = 0
			break
		}
		switch {
		case pl.Resist(ResDark):
			dam = dam * 4 / (e.Die(4) + 7)
		case !blind && !pl.Resist(ResBlind):
			e.putStatus(&pl.Actor, StatusBlind, e.Die(5)+2)
		}
	case EffectTime:
		hit()
		if pl.Resist(ResTime) {
			dam = dam * 4 / (e.Die(4) + 7)
			e.Logf("You feel as if time is passing you by.")
			break
		}
		e.timeEffect()
	case EffectGravity:
		hit()
		e.Logf("Gravity warps around you.")
		lev := pl.Can(AbilityLevitation)
		e.teleportPlayer(5)
		if !lev {
			e.putStatus(&pl.Actor, StatusSlow, e.IntN(4)+4)
		}
		if !pl.Resist(ResSound) && !lev {
			bound := dam/3 + 5
			if dam > 90 {
				bound = 35
			}
			e.putStatus(&pl.Actor, StatusStun, e.Die(bound))
		}
		if lev {
			dam = dam * 2 / 3
		}
		if !lev || e.OneIn(13) {
			e.damageInventory(EffectCold, 2)
		}
	case EffectIce:
		hit()
		dam = e.elementDamage(dam, EffectCold, ImCold, ResCold, HurtCold)
		if !pl.Resist(ResShards) {
			e.putStatus(&pl.Actor, StatusCut, e.Dice(5, 8))
		}
		if !pl.Resist(ResSound) {
			e.putStatus(&pl.Actor, StatusStun, e.Die(15))
		}
	case EffectMeteor:
		hit()
		if !pl.Resist(ResShards) || e.OneIn(13) {
			if !pl.Resist(ImFire) {
				e.damageInventory(EffectFire, 2)
			}
			e.damageInventory(EffectCold, 2)
		}
	case EffectLavaFlow:
		if pl.Can(AbilityLevitation) {
			obvious = false
			dam = 0
			break
		}
		e.LogfStyled("The lava burns you!", logHurtPlayer)
		dam = e.elementDamage(dam, EffectFire, ImFire, ResFire, HurtFire)
	case EffectDrainMana:
		dam = e.drainPlayerMana(caster, dam)
	case EffectMindBlast:
		if saves() {
			dam = 0
			break
		}
		e.LogfStyled("Your mind is blasted by psionic energy.", logHurtPlayer)
		if !pl.Resist(ResConf) {
			e.putStatus(&pl.Actor, StatusConfusion, e.IntN(4)+4)
		}
		if !pl.Resist(ResChaos) && e.OneIn(3) {
			e.putStatus(&pl.Actor, StatusHallucination, e.IntN(250)+150)
		}
		pl.Mana = max(0, pl.Mana-50)
	case EffectBrainSmash:
		if saves() {
			dam = 0
			break
		}
		e.LogfStyled("Your mind is blasted by psionic energy.", logHurtPlayer)
		pl.Mana = max(0, pl.Mana-100)
		e.putStatus(&pl.Actor, StatusParalysis, e.IntN(4)+4)
		if !pl.Resist(ResBlind) {
			e.putStatus(&pl.Actor, StatusBlind, 8+e.IntN(8))
		}
		if !pl.Resist(ResConf) {
			e.putStatus(&pl.Actor, StatusConfusion, e.IntN(4)+4)
		}
		e.putStatus(&pl.Actor, StatusSlow, e.IntN(4)+4)
		for range 3 {
			if e.IntN(100+casterLevel/2) <= max(5, pl.Skill) {
				break
			}
			e.decStat(StatInt)
		}
		for range 3 {
			if e.IntN(100+casterLevel/2) <= max(5, pl.Skill) {
				break
			}
			e.decStat(StatWis)
		}
		if !pl.Resist(ResChaos) {
			e.putStatus(&pl.Actor, StatusHallucination, e.IntN(250)+150)
		}
	case EffectCause1, EffectCause2, EffectCause3, EffectWounds:
		if saves() {
			dam = 0
			break
		}
		e.LogfStyled("You are hit by %s!", logHurtPlayer, dl.Type.Noun())
		switch dl.Type {
		case EffectCause1:
			e.curseEquipment(15, 0)
		case EffectCause2, EffectWounds:
			e.curseEquipment(25, min(casterLevel/2-15, 5))
		case EffectCause3:
			e.curseEquipment(33, min(casterLevel/2-15, 15))
		}
	case EffectCause4:
		if saves() {
			dam = 0
			break
		}
		e.LogfStyled("You are hit by %s!", logHurtPlayer, dl.Type.Noun())
		e.putStatus(&pl.Actor, StatusCut, e.Dice(10, 10))
	case EffectHandDoom:
		if saves() {
			dam = 0
			break
		}
		e.LogfStyled("You feel your life fade away!", logHurtPlayer)
		e.curseEquipment(40, 20)
		dam = min((40+e.Die(20))*pl.HP/100, pl.HP-1)
	case EffectCurseEquip:
		dam = 0
		if !saves() {
			e.curseEquipment(100, min(casterLevel/2, 20))
		}
	case EffectDrainLife:
		if pl.Race.nonliving() {
			e.Logf("You are unaffected!")
			dam = 0
			break
		}
		hit()
		e.drainExp(dam*5, dam*5/10, 50)
	case EffectDeathRay:
		if pl.Race.nonliving() {
			e.Logf("You are unaffected!")
			dam = 0
			break
		}
		if saves() {
			dam = 0
			break
		}
		e.LogfStyled("You feel death flowing through your veins!", logHurtPlayer)
	case EffectBlind:
		dam = 0
		switch {
		case pl.Resist(ResBlind):
			e.Logf("You are unaffected!")
		case !saves():
			e.putStatus(&pl.Actor, StatusBlind, 12+e.IntN(4))
		}
	case EffectScare:
		dam = 0
		switch {
		case pl.Resist(ResFear):
			e.Logf("You refuse to be frightened.")
		case !saves():
			e.putStatus(&pl.Actor, StatusFear, e.IntN(4)+4)
		}
	case EffectOldConf:
		dam = 0
		switch {
		case pl.Resist(ResConf):
			e.Logf("You disbelieve the feeble spell.")
		case !saves():
			e.putStatus(&pl.Actor, StatusConfusion, e.IntN(4)+4)
		}
	case EffectOldSlow:
		dam = 0
		if !saves() {
			e.putStatus(&pl.Actor, StatusSlow, e.IntN(4)+4)
		}
	case EffectOldSleep, EffectStasis, EffectStasisEvil:
		dam = 0
		switch {
		case dl.Type == EffectStasisEvil && !pl.Race.Any(RaceEvil):
			obvious = false
		case pl.Can(AbilityFreeAction):
			e.Logf("You are unaffected!")
		case !saves():
			e.putStatus(&pl.Actor, StatusParalysis, e.IntN(4)+4)
		}
	case EffectStun:
		if !pl.Resist(ResStun) && !saves() {
			e.putStatus(&pl.Actor, StatusStun, e.Die(dam+10))
		}
		dam = 0
	case EffectOldHeal, EffectStarHeal:
		e.healPlayer(dam)
		dam = 0
		if dl.Type == EffectStarHeal {
			for _, st := range []Status{StatusStun, StatusCut, StatusPoison, StatusConfusion} {
				e.clearStatus(&pl.Actor, st)
			}
		}
	case EffectOldSpeed:
		e.putStatus(&pl.Actor, StatusFast, e.Die(dam)+10)
		dam = 0
	default:
		// Terrain shaping, monster control and other effects that do
		// not apply to the player.
		return false
	}
	if dam > 0 {
		if pl.IsRiding() {
			out.fallRider = max(out.fallRider, min(dam, e.Config.FallDamageCap))
		}
		e.hurtPlayer(dam, killer)
	}
	return obvious
}

// elementDamage applies the player's immunities, resistances and
// vulnerabilities to elemental damage, and destroys vulnerable carried
// items.
func (e *Engine) elementDamage(dam int, typ EffectType, im, res, hurt ResistFlags) int {
	pl := e.Player
	if pl.Resist(im) {
		return 0
	}
	if hurt != 0 && pl.Resist(hurt) {
		dam = dam * 4 / 3
	}
	if res != 0 && pl.Resist(res) {
		dam = (dam + 2) / 3
	}
	if typ == EffectPoison {
		return dam
	}
	if !pl.Resist(res) {
		e.damageInventory(typ, inventoryDamagePerc(dam))
	}
	return dam
}
