package blast

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"
)

// playerSaves reports whether the player resists an effect from a caster
// of the given level.
func (e *Engine) playerSaves(casterLevel int) bool {
	return e.IntN(100+casterLevel/2) < e.Player.Skill
}

// hurtPlayer inflicts damage on the player, reporting death to the death
// handler with the name of what killed them.
func (e *Engine) hurtPlayer(dam int, killer string) {
	pl := e.Player
	if dam <= 0 || pl.IsDead() {
		return
	}
	if pl.Has(StatusInvulnerable) && dam < 9000 {
		if !e.OneIn(e.Config.InvulnPenetration) {
			return
		}
		e.LogfStyled("The attack penetrates your shield of invulnerability!", logHurtPlayer)
	}
	if pl.Has(StatusWraithForm) {
		dam = (dam + 1) / 2
	}
	pl.HP -= dam
	if pl.HP > 0 {
		if pl.HP < pl.MaxHP/5 {
			e.LogfStyled("*** LOW HITPOINT WARNING! ***", logSpecial)
		}
		return
	}
	pl.Killer = killer
	e.LogfStyled("You die.", logSpecial)
	e.Book.Diary(fmt.Sprintf("Killed by %s", killer))
	e.log.WithFields(logrus.Fields{"killer": killer, "damage": dam}).Info("player died")
	e.Death.PlayerDied(killer)
}

// healPlayer restores hit points.
func (e *Engine) healPlayer(n int) {
	pl := e.Player
	if n <= 0 || pl.HP >= pl.MaxHP {
		return
	}
	pl.HP = min(pl.MaxHP, pl.HP+n)
	e.LogfStyled("You feel better.", logNotable)
}

// movePlayer places the player at a free cell, taking the mount along.
func (e *Engine) movePlayer(to gruid.Point) bool {
	if !e.free(to) {
		return false
	}
	pl := e.Player
	if pl.IsRiding() && !e.moveMonster(pl.Riding, to) {
		return false
	}
	pl.P = to
	e.invalidateView()
	return true
}

// teleportPlayer moves the player away at about dist cells.
func (e *Engine) teleportPlayer(dist int) {
	to := e.teleportDest(e.Player.P, dist)
	if to == InvalidPos || !e.movePlayer(to) {
		e.log.WithField("from", e.Player.P).Debug("no teleport destination for player")
		return
	}
	e.Logf("You are teleported.")
}

// teleportPlayerTo moves the player next to p.
func (e *Engine) teleportPlayerTo(p gruid.Point) {
	to := e.freeNear(p, 2)
	if to == InvalidPos || !e.movePlayer(to) {
		return
	}
	e.Logf("You are pulled elsewhere.")
}

// loseExp removes experience. Maximum experience is kept so that it can be
// restored.
func (e *Engine) loseExp(n int) {
	pl := e.Player
	pl.Exp = max(0, pl.Exp-n)
}

// drainExp drains experience. The hold life ability keeps the experience
// with probability holdChance percent and otherwise reduces the loss to
// slip.
func (e *Engine) drainExp(drain, slip, holdChance int) bool {
	pl := e.Player
	hold := pl.Can(AbilityHoldLife)
	switch {
	case hold && e.IntN(100) < holdChance:
		e.Logf("You keep hold of your life force!")
		return false
	case hold:
		e.LogfStyled("You feel your life slipping away!", logHurtPlayer)
		e.loseExp(slip)
	default:
		e.LogfStyled("You feel your life draining away!", logHurtPlayer)
		e.loseExp(drain)
	}
	return true
}

// minStat is the lowest value a stat can be drained to.
const minStat = 3

// decStat drains a stat by one point unless it is sustained.
func (e *Engine) decStat(st Stat) bool {
	pl := e.Player
	if pl.Sustains[st] {
		e.Logf("You feel your %s drain for a moment, but the feeling passes.", st)
		return false
	}
	if pl.Stats[st] <= minStat {
		return false
	}
	pl.Stats[st]--
	e.LogfStyled("You feel your %s drain away.", logHurtPlayer, st)
	return true
}

// shuffleStats swaps two random stats.
func (e *Engine) shuffleStats() {
	pl := e.Player
	i := Stat(e.IntN(int(NStats)))
	j := Stat(e.IntN(int(NStats) - 1))
	if j >= i {
		j++
	}
	pl.Stats[i], pl.Stats[j] = pl.Stats[j], pl.Stats[i]
	pl.Sustains[i], pl.Sustains[j] = pl.Sustains[j], pl.Sustains[i]
	e.LogfStyled("Your body starts to scramble...", logHurtPlayer)
	e.log.WithFields(logrus.Fields{"a": i.String(), "b": j.String()}).Debug("stats swapped")
}

// timeEffect applies a random non-damaging time effect: experience loss
// most of the time, otherwise stat loss. Sustains do not protect.
func (e *Engine) timeEffect() {
	pl := e.Player
	switch n := e.Die(10); {
	case n <= 5:
		e.LogfStyled("You feel like a chunk of the past has been ripped away.", logHurtPlayer)
		e.loseExp(100 + pl.Exp/100*5)
	case n <= 9:
		st := Stat(e.IntN(int(NStats)))
		e.LogfStyled("You feel less %s than before.", logHurtPlayer, statAdjective(st))
		pl.Stats[st] = max(minStat, pl.Stats[st]*3/4)
	default:
		e.LogfStyled("You feel like you're not yourself anymore.", logHurtPlayer)
		for st := range pl.Stats {
			pl.Stats[st] = max(minStat, pl.Stats[st]*7/8)
		}
	}
}

var statAdjectives = [NStats]string{"strong", "intelligent", "wise", "agile", "hale", "beautiful"}

func statAdjective(st Stat) string {
	return statAdjectives[st]
}

// damageArmour lowers the enchantment of a random worn armour.
func (e *Engine) damageArmour() {
	it := e.randomEquipment(func(it *Item) bool {
		switch it.Kind {
		case ItemArmour, ItemCloak:
			return !it.Flags.Any(ItemIgnoreAcid)
		}
		return false
	})
	if it == nil || it.Enchant <= -10 {
		return
	}
	if it.Flags.Any(ItemArtifact) && e.OneIn(2) {
		e.Logf("Your %s is unaffected!", it)
		return
	}
	it.Enchant--
	e.LogfStyled("Your %s is damaged!", logHurtPlayer, it)
}

// disenchant removes enchantment from a random worn item. Artifacts
// usually resist.
func (e *Engine) disenchant() bool {
	it := e.randomEquipment(func(it *Item) bool { return it.Enchant > 0 })
	if it == nil {
		return false
	}
	if it.Flags.Any(ItemArtifact) && e.IntN(100) < 71 {
		e.Logf("Your %s resists disenchantment!", it)
		return false
	}
	it.Enchant--
	if it.Enchant > 5 && e.IntN(100) < 20 {
		it.Enchant--
	}
	e.LogfStyled("Your %s was disenchanted!", logHurtPlayer, it)
	return true
}

// nexus scrambles the player's position or stats.
func (e *Engine) nexus(caster *Monster, casterLevel int) {
	switch e.Die(7) {
	case 1, 2, 3:
		e.teleportPlayer(200)
	case 4, 5:
		if caster != nil {
			e.teleportPlayerTo(caster.P)
		} else {
			e.teleportPlayer(200)
		}
	default:
		if e.playerSaves(casterLevel) {
			e.Logf("You resist the effects!")
			return
		}
		e.shuffleStats()
	}
}

// curseEquipment curses a random worn item with probability chance
// percent, and heavily with probability heavyChance percent. Artifacts
// usually resist.
func (e *Engine) curseEquipment(chance, heavyChance int) bool {
	if e.Die(100) > chance {
		return false
	}
	it := e.randomEquipment(func(*Item) bool { return true })
	if it == nil {
		return false
	}
	if it.Flags.Any(ItemArtifact) && e.Die(100) < 71 {
		e.Logf("Your %s resists the curse!", it)
		return false
	}
	changed := false
	if !it.Flags.Any(ItemCursed) {
		it.Flags |= ItemCursed
		changed = true
	}
	if heavyChance > 0 && e.Die(100) <= heavyChance && !it.Flags.Any(ItemHeavyCursed) {
		it.Flags |= ItemHeavyCursed
		changed = true
	}
	if changed {
		e.LogfStyled("There is a malignant black aura surrounding your %s...", logHurtPlayer, it)
		e.Book.Diary(fmt.Sprintf("%s was cursed", UpperFirst(it.String())))
	}
	return changed
}

// drainPlayerMana transfers the player's mana to the caster. It returns
// the remaining damage, which is always zero.
func (e *Engine) drainPlayerMana(caster *Monster, dam int) int {
	pl := e.Player
	if pl.Mana <= 0 {
		return 0
	}
	if caster != nil {
		e.LogfStyled("The %s draws psychic energy from you!", logHurtPlayer, caster.Name)
	}
	dam = min(dam, pl.Mana)
	pl.Mana -= dam
	if caster != nil && caster.HP < caster.MaxHP {
		caster.HP = min(caster.MaxHP, caster.HP+6*dam)
		if e.monsterSeen(caster) {
			e.Logf("The %s appears healthier.", caster.Name)
		}
	}
	return 0
}
