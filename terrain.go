package blast

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

// affectTerrain applies an effect to the terrain at p. It reports whether
// something observable happened.
func (e *Engine) affectTerrain(dl *delivery, p gruid.Point, dist int) bool {
	if !e.Map.InBounds(p) {
		return false
	}
	dam := Falloff(dl.Damage, dist)
	t := e.Map.At(p)
	seen := e.seen(p)
	changed := false
	msg := ""
	alter := func(to rl.Cell, s string) {
		e.Map.Set(p, to)
		changed = true
		msg = s
	}
	reshapable := e.Map.Naked(p) && p != e.Player.P
	switch dl.Type {
	case EffectKillWall:
		if TerrainHas(t, TFHurtRock) && !TerrainHas(t, TFPermanent) {
			switch {
			case TerrainHas(t, TFDoor):
				alter(Floor, "The door turns into mud!")
			case t == Rubble:
				alter(Floor, "The rubble turns into mud!")
			default:
				alter(Floor, "The wall turns into mud!")
			}
		}
	case EffectKillDoor:
		switch {
		case TerrainHas(t, TFDoor), t == Trap:
			alter(Floor, "There is a bright flash of light!")
		}
	case EffectKillTrap:
		switch t {
		case Trap:
			alter(Floor, "There is a bright flash of light!")
		case DoorLocked:
			alter(DoorClosed, "Click!")
		}
	case EffectJamDoor:
		if t == DoorClosed {
			alter(DoorLocked, "The door seems stuck.")
		}
	case EffectMakeDoor:
		if reshapable {
			alter(DoorClosed, "A door appears.")
		}
	case EffectMakeTrap:
		if reshapable && t == Floor {
			alter(Trap, "")
		}
	case EffectMakeTree:
		if reshapable {
			alter(Tree, "A tree grows.")
		}
	case EffectMakeRune:
		if reshapable {
			alter(Rune, "A warding rune appears.")
		}
	case EffectMakeWall, EffectStoneWall:
		if reshapable {
			alter(Wall, "")
		}
	case EffectLavaFlow:
		if TerrainHas(t, TFFloor) && t != Lava {
			alter(Lava, "The floor is covered in lava.")
		}
	case EffectWaterFlow:
		if TerrainHas(t, TFFloor) {
			if dam > 1 {
				alter(DeepWater, "")
			} else {
				alter(ShallowWater, "")
			}
		}
	case EffectLight, EffectLightWeak:
		if !e.Map.Lit.At(p) {
			e.Map.Lit.Set(p, true)
			changed = true
		}
	case EffectDark, EffectDarkWeak:
		if e.Map.Lit.At(p) {
			e.Map.Lit.Set(p, false)
			changed = true
		}
	case EffectShards, EffectSound, EffectForce, EffectIce:
		if e.breakMirror(p) {
			changed = true
			msg = "The mirror is shattered!"
		}
		if dam >= 50 && TerrainHas(t, TFShatter) && !TerrainHas(t, TFPermanent) {
			if t == GlassWall {
				alter(Rubble, "The glass wall shatters!")
			} else {
				alter(Floor, "The rubble is blown away!")
			}
		}
	case EffectDisintegrate:
		if e.breakMirror(p) {
			changed = true
			msg = "The mirror is shattered!"
		}
		if TerrainHas(t, TFHurtDisi) && !TerrainHas(t, TFPermanent) {
			alter(Floor, "")
		}
	case EffectFire, EffectPlasma, EffectMeteor, EffectNuke, EffectHellFire:
		if dam >= 20 && TerrainHas(t, TFBurn) {
			alter(Floor, "The tree burns down!")
		}
	}
	if !changed {
		return false
	}
	e.invalidateView()
	if !seen {
		return false
	}
	if msg != "" {
		e.Logf("%s", msg)
	}
	return true
}

// breakMirror removes a mirror at p, if any.
func (e *Engine) breakMirror(p gruid.Point) bool {
	if !e.Map.Mirrors.At(p) {
		return false
	}
	e.Map.Mirrors.Set(p, false)
	return true
}
