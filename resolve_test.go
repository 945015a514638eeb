package blast

import (
	"testing"

	"codeberg.org/anaseto/gruid"
)

func TestFalloff(t *testing.T) {
	tests := []struct {
		dam, dist, want int
	}{
		{30, 0, 30},
		{30, 1, 15},
		{30, 2, 10},
		{30, 3, 8},
		{1, 1, 1},
		{0, 4, 0},
		{50, -1, 50},
	}
	for _, tc := range tests {
		if got := Falloff(tc.dam, tc.dist); got != tc.want {
			t.Errorf("Falloff(%d, %d): got %d, want %d", tc.dam, tc.dist, got, tc.want)
		}
	}
	for dam := range 300 {
		prev := Falloff(dam, 0)
		for d := 1; d < 20; d++ {
			cur := Falloff(dam, d)
			if cur > prev {
				t.Fatalf("Falloff(%d, %d) = %d > Falloff(%d, %d) = %d", dam, d, cur, dam, d-1, prev)
			}
			prev = cur
		}
	}
}

type traceEntry struct {
	ap Applier
	p  gruid.Point
}

func TestResolveOrder(t *testing.T) {
	center := gruid.Point{3, 3}
	e := newTestEngine(t, 7, center, openRows(7, 7)...)
	horse := &Species{Name: "horse", Level: 1, HP: 100, Abilities: AbilityRidable}
	h, _ := addTestMonster(t, e, horse, center)
	e.Player.Riding = h
	e.Player.RidingSkill = 3000
	e.Map.AddItem(center, &Item{Kind: ItemPotion, Name: "potion"})
	var trace []traceEntry
	e.Trace = func(ap Applier, p gruid.Point) {
		trace = append(trace, traceEntry{ap, p})
	}
	e.Propagate(Descriptor{
		Source: TrapSource(gruid.Point{0, 0}),
		Target: center,
		Radius: 1,
		Damage: 2,
		Type:   EffectMissile,
		Flags:  FlagJump | FlagGrid | FlagItem | FlagKill,
	})
	want := []Applier{ApplyTerrain, ApplyItems, ApplyMonster, ApplyPlayer}
	if len(trace) < len(want) {
		t.Fatalf("trace too short: %v", trace)
	}
	for i, ap := range want {
		if trace[i].p != center || trace[i].ap != ap {
			t.Errorf("trace[%d]: got %v at %v, want %v at %v", i, trace[i].ap, trace[i].p, ap, center)
		}
	}
	for _, te := range trace[len(want):] {
		if te.p == center {
			t.Errorf("center visited again by %v", te.ap)
		}
		if te.ap != ApplyTerrain && te.ap != ApplyItems {
			t.Errorf("unexpected %v applier at %v", te.ap, te.p)
		}
	}
	if got := len(trace) - len(want); got != 8*2 {
		t.Errorf("got %d applier calls on the ring, want %d", got, 8*2)
	}
}

func TestMountSplit(t *testing.T) {
	center := gruid.Point{3, 3}
	e := newTestEngine(t, 3, center, openRows(7, 7)...)
	horse := &Species{Name: "horse", Level: 1, HP: 100}
	h, _ := addTestMonster(t, e, horse, center)
	e.Player.Riding = h
	tests := []struct {
		name      string
		target    gruid.Point
		flg       Flags
		hitMount  bool
		hitRider  bool
		mountDist int
		riderDist int
	}{
		{"player precise", center, FlagPlayer | FlagReflectable, false, true, 0, 0},
		{"player spill", center, FlagPlayer, true, true, 1, 0},
		{"cell precise", center, FlagAimed, true, false, 0, 0},
		{"cell spill", center, NoFlags, true, true, 0, 1},
		{"area spill", gruid.Point{0, 0}, NoFlags, true, true, 1, 1},
	}
	for _, tc := range tests {
		dl := &delivery{Descriptor: Descriptor{Target: tc.target, Flags: tc.flg}}
		mh := e.mountSplit(dl, center, 0)
		if mh.hitMount != tc.hitMount || mh.hitRider != tc.hitRider {
			t.Errorf("%s: got mount %v rider %v", tc.name, mh.hitMount, mh.hitRider)
		}
		if mh.mountDist != tc.mountDist || mh.riderDist != tc.riderDist {
			t.Errorf("%s: got distances %d/%d, want %d/%d", tc.name, mh.mountDist, mh.riderDist, tc.mountDist, tc.riderDist)
		}
	}
	dl := &delivery{Descriptor: Descriptor{Target: gruid.Point{0, 0}, Flags: FlagBeam}}
	for range 20 {
		mh := e.mountSplit(dl, center, 0)
		if mh.hitMount == mh.hitRider {
			t.Errorf("beam hit both or neither: %+v", mh)
		}
	}
}

func TestProtected(t *testing.T) {
	e := newTestEngine(t, 1, gruid.Point{1, 1}, openRows(5, 5)...)
	sp := &Species{Name: "orc", Level: 5, HP: 20}
	h, _ := addTestMonster(t, e, sp, gruid.Point{3, 3})
	own := &delivery{Descriptor: Descriptor{Source: MonsterSource(h), Type: EffectFire}}
	if !e.protected(own, h) {
		t.Errorf("monster affected by its own delivery")
	}
	own.selfHit = true
	if e.protected(own, h) {
		t.Errorf("self-hit reflection did not affect its source")
	}
	pd := &delivery{Descriptor: Descriptor{Source: PlayerSource(), Type: EffectFire}}
	if e.protected(pd, h) {
		t.Errorf("monster protected from the player")
	}
	if !e.playerProtected(pd) {
		t.Errorf("player affected by their own delivery")
	}
}
