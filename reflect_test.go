package blast

import (
	"testing"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

func TestReflectBolt(t *testing.T) {
	for seed := range uint64(20) {
		e := newTestEngine(t, seed, gruid.Point{1, 3}, openRows(12, 7)...)
		e.Config.ReflectSuppress = 1 << 30
		sp := &Species{Name: "mirror knight", Level: 20, HP: 100, Abilities: AbilityReflect}
		_, mons := addTestMonster(t, e, sp, gruid.Point{7, 3})
		res := e.Propagate(Descriptor{
			Source: PlayerSource(),
			Target: mons.P,
			Damage: 30,
			Type:   EffectMissile,
			Flags:  FlagsBolt,
		})
		if res.Reflections < 1 || res.Reflections > e.Config.MaxReflectDepth {
			t.Errorf("seed %d: got %d reflections", seed, res.Reflections)
		}
		if mons.HP != 100 {
			t.Errorf("seed %d: reflecting monster hurt: HP %d", seed, mons.HP)
		}
		if !sp.Known.Abilities.Any(AbilityReflect) {
			t.Errorf("seed %d: reflection not learned", seed)
		}
	}
}

func TestReflectNotReflectable(t *testing.T) {
	e := newTestEngine(t, 1, gruid.Point{1, 3}, openRows(12, 7)...)
	e.Config.ReflectSuppress = 1 << 30
	sp := &Species{Name: "mirror knight", Level: 20, HP: 100, Abilities: AbilityReflect}
	_, mons := addTestMonster(t, e, sp, gruid.Point{7, 3})
	res := e.Propagate(Descriptor{
		Source: PlayerSource(),
		Target: mons.P,
		Radius: 1,
		Damage: 30,
		Type:   EffectMissile,
		Flags:  FlagsBall,
	})
	if res.Reflections != 0 || mons.HP != 70 {
		t.Errorf("ball reflected: %d reflections, HP %d", res.Reflections, mons.HP)
	}
}

func TestReflectTerminates(t *testing.T) {
	for seed := range uint64(20) {
		e := newTestEngine(t, seed, gruid.Point{0, 1}, "#########", ".........", "#########")
		e.Config.ReflectSuppress = 1 << 30
		sp := &Species{Name: "mirror knight", Level: 20, HP: 100, Abilities: AbilityReflect}
		addTestMonster(t, e, sp, gruid.Point{3, 1})
		addTestMonster(t, e, sp, gruid.Point{7, 1})
		e.Player.Abilities = AbilityReflect
		res := e.Propagate(Descriptor{
			Source: PlayerSource(),
			Target: gruid.Point{3, 1},
			Damage: 30,
			Type:   EffectMissile,
			Flags:  FlagsBolt,
		})
		if res.Reflections > e.Config.MaxReflectDepth {
			t.Errorf("seed %d: %d reflections exceed the depth cap", seed, res.Reflections)
		}
	}
}

func TestReflectedDelivery(t *testing.T) {
	e := newTestEngine(t, 4, gruid.Point{1, 1}, openRows(12, 7)...)
	dl := &delivery{
		Descriptor: Descriptor{Source: PlayerSource(), Target: gruid.Point{5, 1}, Damage: 10, Type: EffectFire, Flags: FlagsBeam | FlagJump},
		origin:     gruid.Point{1, 1},
		depth:      2,
	}
	h := Handle{Index: 3}
	for range 20 {
		nd := e.reflectedDelivery(dl, MonsterSource(h), gruid.Point{5, 1})
		if nd.depth != 3 || nd.origin != (gruid.Point{5, 1}) {
			t.Fatalf("bad reflected delivery: depth %d, origin %v", nd.depth, nd.origin)
		}
		if nd.Flags.Has(FlagBeam) || nd.Flags.Has(FlagJump) || !nd.Flags.Has(FlagReflectable) || !nd.Flags.Has(FlagStop) || !nd.Flags.Has(FlagKill) {
			t.Errorf("bad reflected flags: %v", nd.Flags)
		}
		if nd.Source.Monster != h || nd.Source.P != (gruid.Point{5, 1}) {
			t.Errorf("bad reflected source: %+v", nd.Source)
		}
		if paths.DistanceChebyshev(nd.Target, dl.origin) > 1 || nd.Target == (gruid.Point{5, 1}) {
			t.Errorf("reflected target %v too far from %v", nd.Target, dl.origin)
		}
		if nd.selfHit {
			t.Errorf("self-hit with an open map")
		}
	}
}

func TestReflectFallback(t *testing.T) {
	e := newTestEngine(t, 4, gruid.Point{1, 1}, "XXXXX", "X...X", "XXXXX")
	e.Config.ReflectAttempts = 0
	dl := &delivery{
		Descriptor: Descriptor{Source: PlayerSource(), Target: gruid.Point{3, 1}, Damage: 10, Type: EffectFire, Flags: FlagsBolt},
		origin:     gruid.Point{1, 1},
	}
	nd := e.reflectedDelivery(dl, MonsterSource(Handle{Index: 0}), gruid.Point{3, 1})
	if nd.Target != (gruid.Point{3, 1}) || !nd.selfHit {
		t.Errorf("monster fallback: got target %v, self-hit %v", nd.Target, nd.selfHit)
	}
	nd = e.reflectedDelivery(dl, PlayerSource(), gruid.Point{3, 1})
	if nd.Target != dl.origin || nd.selfHit {
		t.Errorf("player fallback: got target %v, self-hit %v", nd.Target, nd.selfHit)
	}
}
