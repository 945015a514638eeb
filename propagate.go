package blast

import (
	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"
)

// SourceKind describes what originated a delivery.
type SourceKind int

const (
	SourcePlayer SourceKind = iota
	SourceMonster
	SourceTrap
	SourceEnvironment
)

func (k SourceKind) String() string {
	switch k {
	case SourcePlayer:
		return "player"
	case SourceMonster:
		return "monster"
	case SourceTrap:
		return "trap"
	default:
		return "environment"
	}
}

// Source identifies the originator of a delivery. Monster is only
// meaningful for SourceMonster. P is the origin for traps and the
// environment, and the fallback origin when a source monster no longer
// exists.
type Source struct {
	Kind    SourceKind
	Monster Handle
	P       gruid.Point
}

// PlayerSource returns a source for effects originated by the player.
func PlayerSource() Source {
	return Source{Kind: SourcePlayer, Monster: NoHandle}
}

// MonsterSource returns a source for effects originated by a monster.
func MonsterSource(h Handle) Source {
	return Source{Kind: SourceMonster, Monster: h, P: InvalidPos}
}

// TrapSource returns a source for effects originated by a trap at p.
func TrapSource(p gruid.Point) Source {
	return Source{Kind: SourceTrap, Monster: NoHandle, P: p}
}

// EnvironmentSource returns a source for effects with no actor behind them.
func EnvironmentSource(p gruid.Point) Source {
	return Source{Kind: SourceEnvironment, Monster: NoHandle, P: p}
}

// Descriptor fully describes a delivery.
type Descriptor struct {
	Source Source      // originator
	Target gruid.Point // aimed cell
	Radius int         // 0: bolt or beam, > 0: ball, < 0: breath cone of radius -Radius
	Damage int         // base damage
	Type   EffectType  // what the delivery does
	Flags  Flags       // how it travels and what it affects
	Spell  int         // originating monster spell, 0 if none
}

// Result summarizes a propagation.
type Result struct {
	Obvious          bool   // whether something observable happened
	LastMonster      Handle // only monster hit, if exactly one and not a jump delivery
	Hit              int    // number of monster hits
	Reflections      int    // number of reflected deliveries
	CapacityExceeded bool   // whether an area was truncated
}

// delivery is a queued propagation step.
type delivery struct {
	Descriptor
	origin  gruid.Point // origin of the line of fire
	depth   int         // number of reflections leading to this delivery
	selfHit bool        // the source may be affected by its own delivery
}

// Project is the simple form of Propagate. It reports whether something
// observable happened.
func (e *Engine) Project(src Source, rad int, target gruid.Point, dam int, typ EffectType, flg Flags, spell int) bool {
	return e.Propagate(Descriptor{
		Source: src,
		Target: target,
		Radius: rad,
		Damage: dam,
		Type:   typ,
		Flags:  flg,
		Spell:  spell,
	}).Obvious
}

// Propagate runs a delivery to completion, including every reflected
// delivery it causes.
func (e *Engine) Propagate(d Descriptor) Result {
	res := Result{LastMonster: NoHandle}
	if !d.Type.Valid() {
		e.log.WithField("type", int(d.Type)).Debug("skipping unsupported effect type")
		return res
	}
	e.newTick()
	queue := []delivery{{Descriptor: d, origin: e.sourcePos(d.Source)}}
	for len(queue) > 0 {
		dl := queue[0]
		queue = queue[1:]
		out := e.deliver(dl)
		res.Obvious = res.Obvious || out.obvious
		res.CapacityExceeded = res.CapacityExceeded || out.truncated
		res.Hit += len(out.hit)
		res.Reflections += len(out.reflected)
		queue = append(queue, out.reflected...)
		if dl.depth == 0 && !dl.Flags.Has(FlagJump) && len(out.hit) == 1 {
			res.LastMonster = out.hit[0]
		}
	}
	return res
}

// sourcePos returns the current position of a source.
func (e *Engine) sourcePos(src Source) gruid.Point {
	switch src.Kind {
	case SourcePlayer:
		return e.Player.P
	case SourceMonster:
		if mons := e.Monsters.Get(src.Monster); mons != nil {
			return mons.P
		}
	}
	return src.P
}

// sourceMonster returns the source monster, if it still exists.
func (e *Engine) sourceMonster(src Source) *Monster {
	if src.Kind != SourceMonster {
		return nil
	}
	return e.Monsters.Get(src.Monster)
}

// sourceName returns a name suitable for death records.
func (e *Engine) sourceName(src Source) string {
	switch src.Kind {
	case SourcePlayer:
		return "yourself"
	case SourceMonster:
		if mons := e.Monsters.Get(src.Monster); mons != nil {
			return "a " + mons.Name
		}
		return "a monster"
	case SourceTrap:
		return "a trap"
	default:
		return "the environment"
	}
}

// deliveryOutcome gathers what a single delivery did.
type deliveryOutcome struct {
	obvious   bool
	truncated bool
	hit       []Handle   // monsters affected
	reflected []delivery // deliveries bounced off reflecting targets
	photos    []string   // photographed monsters
	fallMount int        // damage taken by the player's mount
	fallRider int        // damage taken by the mounted player
}

// deliver traces, shapes and resolves a single delivery.
func (e *Engine) deliver(dl delivery) deliveryOutcome {
	var out deliveryOutcome
	d := &dl.Descriptor
	rng := e.Config.MaxRange
	var path Path
	center := d.Target
	if !d.Flags.Has(FlagJump) {
		path = e.Map.TracePath(dl.origin, d.Target, rng, d.Flags, e.occupied)
		center = e.explosionCenter(dl.origin, path, d.Radius)
	}
	limit := e.Config.MaxAreaCells
	var area *Area
	switch {
	case d.Flags.Has(FlagBeam) && !d.Flags.Has(FlagJump):
		area = e.Map.Beam(path.Points, max(d.Radius, 0), d.Type, limit)
	case d.Radius < 0 && !d.Flags.Has(FlagJump):
		cone := path.Points
		if path.Blocked && len(cone) > 0 {
			cone = cone[:len(cone)-1]
		}
		area = e.Map.Breath(dl.origin, d.Target, cone, -d.Radius, d.Type, limit)
	default:
		area = e.Map.Ball(center, abs(d.Radius), d.Type, limit)
	}
	if area.Truncated {
		out.truncated = true
		if !e.capWarned {
			e.capWarned = true
			e.log.WithFields(logrus.Fields{
				"type":  d.Type.String(),
				"cells": len(area.Points),
				"limit": limit,
			}).Warn("area truncated at cell limit")
		}
	}
	e.resolveArea(&dl, area, center, &out)
	e.postResolve(&dl, area, &out)
	return out
}

// explosionCenter returns where a delivery explodes: the last cell of the
// path that does not obstruct the delivery, or the final cell for
// radius-zero deliveries.
func (e *Engine) explosionCenter(origin gruid.Point, path Path, rad int) gruid.Point {
	if rad == 0 || !path.Blocked {
		return path.Last(origin)
	}
	n := len(path.Points)
	if n <= 1 {
		return origin
	}
	return path.Points[n-2]
}
