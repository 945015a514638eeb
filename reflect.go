package blast

import (
	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"
)

// tryReflect decides whether a delivery bounces off a reflecting target at
// p. On success, a new delivery from the reflector is queued in out and
// the current resolution on the target must be abandoned.
func (e *Engine) tryReflect(dl *delivery, reflector Source, p gruid.Point, reflects bool, out *deliveryOutcome) bool {
	if !reflects || !dl.Flags.Has(FlagReflectable) {
		return false
	}
	if e.OneIn(e.Config.ReflectSuppress) {
		return false
	}
	if dl.depth >= e.Config.MaxReflectDepth {
		e.log.WithFields(logrus.Fields{
			"type":  dl.Type.String(),
			"depth": dl.depth,
			"at":    p,
		}).Debug("reflection depth cap reached")
		return false
	}
	out.reflected = append(out.reflected, e.reflectedDelivery(dl, reflector, p))
	return true
}

// reflectedDelivery returns the delivery bounced off a reflector at p. The
// new target is picked in the 3x3 box around the origin of the reflected
// delivery, among cells in the reflector's line of fire. If none is found,
// a player reflector fires back at the origin, and a monster reflector is
// hit by its own reflection.
func (e *Engine) reflectedDelivery(dl *delivery, reflector Source, p gruid.Point) delivery {
	target := InvalidPos
	for range e.Config.ReflectAttempts {
		q := dl.origin.Add(gruid.Point{e.IntN(3) - 1, e.IntN(3) - 1})
		if q != p && e.Map.InBounds(q) && e.Map.LineOfFire(p, q, e.Config.MaxRange) {
			target = q
			break
		}
	}
	selfHit := false
	if target == InvalidPos {
		if reflector.Kind == SourcePlayer {
			target = dl.origin
		} else {
			target = p
			selfHit = true
		}
		e.log.WithFields(logrus.Fields{
			"reflector": reflector.Kind.String(),
			"at":        p,
			"target":    target,
		}).Debug("no reflection target found, using fallback")
	}
	if reflector.Kind != SourcePlayer {
		reflector.P = p
	}
	nd := delivery{
		Descriptor: dl.Descriptor,
		origin:     p,
		depth:      dl.depth + 1,
		selfHit:    selfHit,
	}
	nd.Source = reflector
	nd.Target = target
	nd.Flags = nd.Flags&^(FlagBeam|FlagJump|FlagAimed|FlagPlayer|FlagThru) | FlagStop | FlagKill | FlagReflectable
	return nd
}
