package blast

import "codeberg.org/anaseto/gruid"

// Applier identifies one of the per-cell effect appliers.
type Applier int

// Appliers, in the order they are invoked on a cell.
const (
	ApplyTerrain Applier = iota
	ApplyItems
	ApplyMonster
	ApplyPlayer
)

func (ap Applier) String() string {
	switch ap {
	case ApplyTerrain:
		return "terrain"
	case ApplyItems:
		return "items"
	case ApplyMonster:
		return "monster"
	default:
		return "player"
	}
}

// Falloff returns the damage dealt at a given effective distance from the
// center of an area: (dam + dist) / (dist + 1).
func Falloff(dam, dist int) int {
	if dist < 0 {
		dist = 0
	}
	return (dam + dist) / (dist + 1)
}

func (e *Engine) trace(ap Applier, p gruid.Point) {
	if e.Trace != nil {
		e.Trace(ap, p)
	}
}

// resolveArea invokes the appliers on every cell of the area, in band order.
// On each cell, terrain comes first, then items, the monster and the player.
func (e *Engine) resolveArea(dl *delivery, area *Area, center gruid.Point, out *deliveryOutcome) {
	flg := dl.Flags
	for p, dist := range area.Cells() {
		if flg.Has(FlagGrid) {
			e.trace(ApplyTerrain, p)
			if e.affectTerrain(dl, p, dist) {
				out.obvious = true
			}
		}
		if flg.Has(FlagItem) {
			e.trace(ApplyItems, p)
			if e.affectItems(p, dl.Type) {
				out.obvious = true
			}
		}
		if !flg.Has(FlagKill) {
			continue
		}
		ms := e.mountSplit(dl, p, dist)
		if h := e.handleAt(p); h.Valid() && ms.hitMount && !e.protected(dl, h) {
			e.trace(ApplyMonster, p)
			if e.affectMonster(dl, h, ms.mountDist, out) {
				out.obvious = true
			}
		}
		if p == e.Player.P && ms.hitRider && !e.Player.IsDead() && !e.playerProtected(dl) {
			e.trace(ApplyPlayer, p)
			if e.affectPlayer(dl, ms.riderDist, out) {
				out.obvious = true
			}
		}
	}
}

// protected reports whether the monster h is exempt from the delivery: a
// monster is not affected by its own deliveries, and the player's mount is
// not affected by the player's ones, except for beneficial ones.
func (e *Engine) protected(dl *delivery, h Handle) bool {
	if dl.selfHit {
		return false
	}
	switch dl.Source.Kind {
	case SourceMonster:
		return dl.Source.Monster == h
	case SourcePlayer:
		if h != e.Player.Riding {
			return false
		}
		switch dl.Type {
		case EffectOldHeal, EffectOldSpeed, EffectStarHeal:
			return false
		}
		return true
	}
	return false
}

// playerProtected reports whether the player is exempt from the delivery.
func (e *Engine) playerProtected(dl *delivery) bool {
	return dl.Source.Kind == SourcePlayer && !dl.selfHit
}

// mountHit describes how a cell shared by the player and their mount is
// affected.
type mountHit struct {
	hitMount  bool
	hitRider  bool
	mountDist int
	riderDist int
}

// mountSplit decides which of the player and their mount are affected on a
// cell they share. A delivery aimed at the player designates the rider, one
// aimed at the cell designates the mount. Precise deliveries (beams,
// reflectable bolts, aimed ones) then spare the other party, while spilling
// areas affect it one distance step further. Undesignated precise
// deliveries hit one of them at random.
func (e *Engine) mountSplit(dl *delivery, p gruid.Point, dist int) mountHit {
	mh := mountHit{hitMount: true, hitRider: true, mountDist: dist, riderDist: dist}
	mons := e.mount()
	if mons == nil || mons.P != p || e.Player.P != p {
		return mh
	}
	precise := dl.Flags.Has(FlagBeam | FlagReflectable | FlagAimed)
	switch {
	case dl.Flags.Has(FlagPlayer):
		if precise {
			mh.hitMount = false
		} else {
			mh.mountDist++
		}
	case p == dl.Target || dl.Flags.Has(FlagAimed):
		if precise {
			mh.hitRider = false
		} else {
			mh.riderDist++
		}
	case dl.Flags.Has(FlagBeam | FlagReflectable):
		if e.OneIn(2) {
			mh.hitRider = false
		} else {
			mh.hitMount = false
		}
	default:
		mh.mountDist++
		mh.riderDist++
	}
	return mh
}
