package blast

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// affectMonster resolves a delivery on the monster h at the given effective
// distance. It reports whether something observable happened.
func (e *Engine) affectMonster(dl *delivery, h Handle, dist int, out *deliveryOutcome) bool {
	mons := e.Monsters.Get(h)
	if mons == nil || mons.IsDead() {
		return false
	}
	seen := e.monsterSeen(mons)
	if e.tryReflect(dl, MonsterSource(h), mons.P, mons.Can(AbilityReflect), out) {
		if seen {
			e.Logf("The attack bounces off the %s!", mons.Name)
			e.learn(mons, Knowledge{Abilities: AbilityReflect})
		}
		return seen
	}
	hc := &hitContext{
		dl:       dl,
		h:        h,
		mons:     mons,
		typ:      dl.Type,
		dam:      Falloff(dl.Damage, dist),
		dist:     dist,
		caster:   e.sourceMonster(dl.Source),
		byPlayer: dl.Source.Kind == SourcePlayer,
		seen:     seen,
	}
	switch {
	case hc.caster != nil:
		hc.casterLevel = hc.caster.Level()
	case hc.byPlayer:
		hc.casterLevel = e.Player.Level
	default:
		hc.casterLevel = max(1, hc.dam)
	}
	oc := e.monsterOutcome(hc)
	if seen {
		if oc.reveal {
			oc.learn = oc.learn.Merge(Knowledge{Race: mons.Species.Race, Resists: mons.Species.Resists, Abilities: mons.Species.Abilities})
		}
		e.learn(mons, oc.learn)
	}
	if oc.skipped {
		if seen && oc.note != "" {
			e.Logf("The %s %s", mons.Name, oc.note)
		}
		return false
	}
	out.hit = append(out.hit, h)
	if oc.unaffected {
		if seen {
			e.Logf("The %s %s", mons.Name, oc.note)
		}
		return oc.obvious
	}
	if oc.backlash > 0 || oc.backlashS {
		if seen {
			e.Logf("The %s %s", mons.Name, oc.note)
		}
		e.mindBacklash(dl, oc.backlash, oc.backlashS)
		return seen
	}
	if oc.capture {
		return e.doCapture(h, mons, seen)
	}
	if oc.genocide > 0 {
		e.killMonster(h, mons, oc.dieNote, true)
		if hc.byPlayer {
			e.hurtPlayer(oc.genocide, "the strain of casting genocide")
		}
		return true
	}
	if oc.photo {
		out.photos = append(out.photos, mons.Name)
		if hc.byPlayer && seen {
			e.Logf("You take a photograph of the %s.", mons.Name)
		}
	}

	dam := e.finalizeDamage(dl, mons, oc.dam)
	if oc.dam > 0 && dam == 0 && seen {
		oc.note = "is unharmed."
	}
	if oc.casterHP > 0 || oc.casterSP > 0 {
		e.feedCaster(dl, mons, oc.casterHP, oc.casterSP)
	}
	if oc.clone {
		mons.HP = mons.MaxHP
		if !e.cloneMonster(mons) {
			oc.note = ""
		}
	}
	if oc.poly {
		if e.Die(90) > mons.Level() {
			if nh, nm := e.polymorph(h, mons); nm != nil {
				h, mons = nh, nm
				oc.note = "changes!"
				dam = 0
				seen = e.monsterSeen(mons)
				oc.obvious = oc.obvious || seen
			} else {
				oc.note = "is unaffected."
			}
		}
	}
	if oc.vitality && mons.MaxHP < mons.MaxMaxHP {
		mons.MaxHP = mons.MaxMaxHP
		if seen {
			e.Logf("The %s recovers its vitality.", mons.Name)
		}
	}
	if oc.cure || oc.heal > 0 {
		for _, st := range []Status{StatusSleep, StatusStun, StatusConfusion, StatusFear} {
			if oc.cure || st == StatusSleep {
				e.clearStatus(&mons.Actor, st)
			}
		}
		mons.HP = min(mons.MaxHP, mons.HP+oc.heal)
	}
	if oc.time > 0 {
		loss := min(oc.time, mons.MaxHP-1)
		if loss > 0 {
			oc.note = "seems weakened."
			mons.MaxHP -= loss
			if mons.HP-dam > mons.MaxHP {
				dam = mons.HP - mons.MaxHP
			}
		}
	}

	// Death handoff.
	if dam >= mons.HP {
		note := oc.dieNote
		if note == "" {
			note = deathNote(mons)
		}
		if hc.byPlayer && mons.Has(StatusSleep) {
			e.Book.Virtue(VirtueHonour, -1)
		}
		e.killMonster(h, mons, note, false)
		if mons.Species.Unique() && hc.byPlayer {
			e.Book.Diary(fmt.Sprintf("Killed %s", mons.Name))
		}
		return true
	}

	angry := false
	if dam > 0 {
		if hc.byPlayer && mons.Has(StatusSleep) {
			e.Book.Virtue(VirtueHonour, -1)
		}
		e.clearStatus(&mons.Actor, StatusSleep)
		e.hurtMonster(mons, dam)
		angry = true
		if e.isMount(h) {
			out.fallMount = max(out.fallMount, min(dam, e.Config.FallDamageCap))
		}
	}
	if seen {
		switch {
		case oc.note != "":
			e.LogfStyled("The %s %s", logHurtMons, mons.Name, oc.note)
		case dam > 0:
			e.LogfStyled("The %s %s", logHurtMons, mons.Name, painNote(mons, dam))
		}
	}
	proposals := []struct {
		st    Status
		turns int
	}{
		{StatusStun, oc.stun},
		{StatusConfusion, oc.conf},
		{StatusFear, oc.fear},
		{StatusBlind, oc.blind},
		{StatusSlow, oc.slow},
	}
	for _, prop := range proposals {
		if prop.turns > 0 && e.putStatus(&mons.Actor, prop.st, prop.turns) {
			angry = true
		} else if prop.turns > 0 && mons.immuneTo(prop.st) && seen {
			e.learn(mons, Knowledge{Resists: statusResist(prop.st)})
		}
	}
	if oc.fast > 0 {
		e.putStatus(&mons.Actor, StatusFast, oc.fast)
	}
	if oc.sleep > 0 && !e.putStatus(&mons.Actor, StatusSleep, oc.sleep) && mons.immuneTo(StatusSleep) && seen {
		e.learn(mons, Knowledge{Resists: ResSleep})
	}
	if dam > 0 && oc.fear == 0 {
		e.painFear(mons, dam)
	}
	if oc.dist > 0 {
		e.teleportMonster(h, mons, oc.dist, seen)
	}
	if oc.noPet {
		mons.NoPet = true
	}
	switch {
	case oc.tame:
		mons.Allegiance = Ally
		e.clearStatus(&mons.Actor, StatusFear)
	case angry && hc.byPlayer && mons.Allegiance != Hostile:
		mons.Allegiance = Hostile
		if seen {
			e.Logf("The %s gets angry!", mons.Name)
		}
	}
	return oc.obvious || seen
}

// finalizeDamage applies invulnerability and quest protection.
func (e *Engine) finalizeDamage(dl *delivery, mons *Monster, dam int) int {
	if dam <= 0 {
		return 0
	}
	if mons.Has(StatusInvulnerable) && dl.Type != EffectPsySpear && !e.OneIn(e.Config.InvulnPenetration) {
		return 0
	}
	if mons.Race(RaceQuest) && dl.Source.Kind != SourcePlayer && dam >= mons.HP {
		dam = mons.HP - 1
	}
	return max(dam, 0)
}

// hurtMonster removes hit points from a monster that survives the hit.
func (e *Engine) hurtMonster(mons *Monster, dam int) {
	mons.HP -= dam
	if mons.HP < 1 {
		mons.HP = 1
	}
}

// painFear may frighten a monster badly hurt by damage.
func (e *Engine) painFear(mons *Monster, dam int) {
	if mons.Has(StatusFear) || mons.Resist(ResFear) || mons.MaxHP <= 0 {
		return
	}
	percentage := 100 * mons.HP / mons.MaxHP
	if e.Die(10) >= percentage || dam >= mons.HP && e.IntN(100) < 80 {
		turns := e.Die(10)
		if percentage <= 10 {
			turns += (11 - percentage) * 5
		}
		e.putStatus(&mons.Actor, StatusFear, turns)
	}
}

func statusResist(st Status) ResistFlags {
	switch st {
	case StatusStun:
		return ResStun
	case StatusConfusion:
		return ResConf
	case StatusFear:
		return ResFear
	case StatusSleep:
		return ResSleep
	case StatusBlind:
		return ResBlind
	}
	return NoResist
}

// deathNote returns the default death notice for a monster.
func deathNote(mons *Monster) string {
	if mons.Species.Race.nonliving() {
		return "is destroyed."
	}
	return "dies."
}

// painNote returns a notice describing how much a monster was hurt.
func painNote(mons *Monster, dam int) string {
	percentage := 100 * dam / max(1, mons.HP+dam)
	switch {
	case percentage <= 5:
		return "shrugs off the attack."
	case percentage <= 20:
		return "grunts with pain."
	case percentage <= 50:
		return "cries out in pain."
	case percentage <= 80:
		return "screams in pain."
	default:
		return "writhes in agony."
	}
}

// learn records revealed flags about a monster's species.
func (e *Engine) learn(mons *Monster, k Knowledge) {
	if k.Empty() {
		return
	}
	e.Lore.Learn(mons.Species, k)
}

// killMonster hands a monster over to death processing and removes it
// from the level.
func (e *Engine) killMonster(h Handle, mons *Monster, note string, forced bool) {
	if e.monsterSeen(mons) {
		e.LogfStyled("The %s %s", logHurtMons, mons.Name, note)
	}
	wasMount := e.isMount(h)
	mons.HP = 0
	e.Death.MonsterDied(h, mons, forced)
	if e.Monsters.Get(h) == mons {
		e.removeMonster(h)
	}
	if wasMount {
		e.Player.Riding = NoHandle
		e.LogfStyled("You fall from your dying mount.", logHurtPlayer)
	}
}

// teleportMonster moves a monster away at about dist cells.
func (e *Engine) teleportMonster(h Handle, mons *Monster, dist int, seen bool) {
	if e.isMount(h) {
		return
	}
	to := e.teleportDest(mons.P, dist)
	if to == InvalidPos {
		e.log.WithFields(logrus.Fields{"monster": mons.Name, "from": mons.P}).Debug("no teleport destination")
		return
	}
	e.moveMonster(h, to)
	if seen {
		e.Logf("The %s disappears!", mons.Name)
	}
}

// cloneMonster spawns a copy of a monster on a free adjacent cell.
func (e *Engine) cloneMonster(mons *Monster) bool {
	p := e.freeNear(mons.P, 1)
	if p == InvalidPos {
		return false
	}
	clone := NewMonster(mons.Species, p)
	clone.Name = mons.Name
	clone.Allegiance = mons.Allegiance
	clone.Clone = true
	return e.AddMonster(clone).Valid()
}

// doCapture turns a monster into a capture ball.
func (e *Engine) doCapture(h Handle, mons *Monster, seen bool) bool {
	if e.isMount(h) {
		e.Player.Riding = NoHandle
	}
	mons.Allegiance = Ally
	name := mons.Name
	if _, err := e.captureMonster(h, mons, true); err != nil {
		e.log.WithError(err).Error("capture failed")
		return false
	}
	e.LogfStyled("You capture the %s!", logNotable, name)
	return true
}

// feedCaster gives drained life or mana to the caster of an effect.
func (e *Engine) feedCaster(dl *delivery, target *Monster, hp, sp int) {
	switch {
	case dl.Source.Kind == SourcePlayer:
		pl := e.Player
		if hp > 0 && pl.HP < pl.MaxHP {
			pl.HP = min(pl.MaxHP, pl.HP+hp)
			e.Logf("You draw psychic energy from the %s.", target.Name)
		}
		if sp > 0 {
			pl.Mana = min(pl.MaxMana, pl.Mana+sp)
			e.Logf("You convert the %s's pain into psychic energy!", target.Name)
		}
	case dl.Source.Kind == SourceMonster:
		caster := e.Monsters.Get(dl.Source.Monster)
		if caster == nil || hp <= 0 || caster.HP >= caster.MaxHP {
			return
		}
		caster.HP = min(caster.MaxHP, caster.HP+hp)
		if e.monsterSeen(caster) {
			e.Logf("The %s appears healthier.", caster.Name)
		}
	}
}

// mindBacklash turns a psionic attack back on its caster. The caster gets
// its own saving throw against the extra status.
func (e *Engine) mindBacklash(dl *delivery, dam int, status bool) {
	switch dl.Source.Kind {
	case SourcePlayer:
		pl := e.Player
		if e.IntN(100+dam) < pl.Skill {
			e.Logf("You resist the effects!")
			return
		}
		if dam > 0 {
			e.hurtPlayer(dam, "a psionic backlash")
		}
		if status && e.OneIn(4) {
			switch e.Die(4) {
			case 1:
				e.putStatus(&pl.Actor, StatusConfusion, 3+e.Die(max(1, dam)))
			case 2:
				e.putStatus(&pl.Actor, StatusStun, e.Die(max(1, dam)))
			case 3:
				e.putStatus(&pl.Actor, StatusFear, 3+e.Die(max(1, dam)))
			default:
				e.putStatus(&pl.Actor, StatusParalysis, e.Die(4))
			}
		}
	case SourceMonster:
		caster := e.Monsters.Get(dl.Source.Monster)
		if caster == nil || e.saves(caster.Level(), max(1, dam)+10) {
			return
		}
		if dam > 0 {
			if dam >= caster.HP {
				e.killMonster(dl.Source.Monster, caster, deathNote(caster), false)
				return
			}
			e.hurtMonster(caster, dam)
		}
		if status {
			e.putStatus(&caster.Actor, StatusConfusion, 3+e.Die(max(1, dam)))
		}
	}
}
