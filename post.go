package blast

import (
	"codeberg.org/anaseto/gruid/paths"
	"github.com/sirupsen/logrus"
)

// postResolve runs the follow-ups of a resolved delivery: dropping
// photographs and checking whether the player keeps their seat.
func (e *Engine) postResolve(dl *delivery, area *Area, out *deliveryOutcome) {
	if len(out.photos) > 0 {
		at := e.sourcePos(dl.Source)
		for _, name := range out.photos {
			e.Map.AddItem(at, &Item{Kind: ItemPhoto, Name: "photograph of " + name, Photo: name})
		}
	}
	if out.fallMount > 0 && e.Player.IsRiding() {
		if mons := e.mount(); mons != nil && e.dismount(out.fallMount) {
			e.LogfStyled("The %s has thrown you off!", logHurtPlayer, mons.Name)
		}
	}
	if out.fallRider > 0 && e.Player.IsRiding() {
		if mons := e.mount(); mons != nil && e.dismount(out.fallRider) {
			e.LogfStyled("You have fallen from the %s.", logHurtPlayer, mons.Name)
		}
	}
	if out.truncated {
		e.log.WithFields(logrus.Fields{
			"type":  dl.Type.String(),
			"cells": len(area.Points),
			"hits":  len(out.hit),
		}).Debug("resolved truncated area")
	}
}

// dismount checks whether a hit of the given damage throws the player off
// their mount. On a fall, the player lands on a random free adjacent cell
// and takes damage unless they levitate. It reports whether the player
// fell.
func (e *Engine) dismount(dam int) bool {
	pl := e.Player
	mons := e.mount()
	if mons == nil || pl.IsDead() {
		return false
	}
	lvl := mons.Level()
	dam = min(dam, e.Config.FallDamageCap)
	if e.IntN(dam/2+lvl*2) < pl.RidingSkill/30+10 && !e.OneIn(pl.Level*3+30) {
		return false
	}
	var nb paths.Neighbors
	cells := nb.All(pl.P, e.free)
	if len(cells) == 0 {
		e.LogfStyled("You are thrown into a wall!", logHurtPlayer)
		e.hurtPlayer(lvl+3, "falling off a mount")
		return false
	}
	to := cells[e.IntN(len(cells))]
	pl.Riding = NoHandle
	pl.P = to
	e.invalidateView()
	if !pl.Can(AbilityLevitation) {
		e.hurtPlayer(lvl+3, "falling off a mount")
	}
	return true
}
