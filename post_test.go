package blast

import (
	"testing"

	"codeberg.org/anaseto/gruid"
)

func TestPhotoDrop(t *testing.T) {
	e := newTestEngine(t, 1, gruid.Point{1, 2}, openRows(9, 5)...)
	sp := &Species{Name: "newt", Level: 1, HP: 10}
	_, mons := addTestMonster(t, e, sp, gruid.Point{5, 2})
	e.Project(PlayerSource(), 0, mons.P, 10, EffectPhoto, FlagsBolt, 0)
	pile := e.Map.Items[e.Player.P]
	if len(pile) != 1 || pile[0].Kind != ItemPhoto || pile[0].Photo != "newt" {
		t.Fatalf("bad items at the player's position: %v", pile)
	}
	if mons.HP != 10 {
		t.Errorf("photograph hurt a monster: HP %d", mons.HP)
	}
	if !containsMessage(e.Messages(0), "You take a photograph of the newt.") {
		t.Errorf("no photograph message in %v", e.Messages(0))
	}
}

func TestPhotoHurtLight(t *testing.T) {
	e := newTestEngine(t, 1, gruid.Point{1, 2}, openRows(9, 5)...)
	sp := &Species{Name: "ghoul", Level: 1, HP: 100, Resists: HurtLight}
	_, mons := addTestMonster(t, e, sp, gruid.Point{5, 2})
	e.Project(PlayerSource(), 0, mons.P, 10, EffectPhoto, FlagsBolt, 0)
	if mons.HP != 90 {
		t.Errorf("got HP %d, want 90", mons.HP)
	}
}

func newRidingEngine(t *testing.T, seed uint64, rows ...string) (*Engine, Handle) {
	t.Helper()
	e := newTestEngine(t, seed, gruid.Point{1, 1}, rows...)
	horse := &Species{Name: "horse", Level: 1, HP: 1000, Abilities: AbilityRidable}
	h, _ := addTestMonster(t, e, horse, gruid.Point{1, 1})
	e.Player.Riding = h
	e.Player.Level = 1
	return e, h
}

func TestDismountWalledIn(t *testing.T) {
	for seed := range uint64(20) {
		e, h := newRidingEngine(t, seed, "XXX", "X.X", "XXX")
		if e.dismount(200) {
			t.Errorf("seed %d: fell into a wall", seed)
		}
		if e.Player.Riding != h || e.Player.P != (gruid.Point{1, 1}) {
			t.Errorf("seed %d: player moved while walled in", seed)
		}
	}
}

func TestDismount(t *testing.T) {
	falls := 0
	for seed := range uint64(20) {
		e, h := newRidingEngine(t, seed, openRows(3, 3)...)
		if !e.dismount(200) {
			continue
		}
		falls++
		pl := e.Player
		if pl.IsRiding() {
			t.Errorf("seed %d: still riding after a fall", seed)
		}
		if pl.P == (gruid.Point{1, 1}) || e.Monsters.Get(h).P != (gruid.Point{1, 1}) {
			t.Errorf("seed %d: bad positions after a fall: player %v", seed, pl.P)
		}
		if pl.HP != pl.MaxHP-4 {
			t.Errorf("seed %d: got HP %d after a fall", seed, pl.HP)
		}
	}
	if falls == 0 {
		t.Errorf("no fall in 20 tries")
	}
}

func TestDismountSkilled(t *testing.T) {
	for seed := range uint64(20) {
		e, h := newRidingEngine(t, seed, openRows(3, 3)...)
		e.Player.RidingSkill = 1 << 20
		e.Player.Level = 1 << 20
		if e.dismount(10) || e.Player.Riding != h {
			t.Errorf("seed %d: skilled rider fell", seed)
		}
	}
}

func TestMountHitThrows(t *testing.T) {
	falls := 0
	for seed := range uint64(20) {
		e, h := newRidingEngine(t, seed, openRows(7, 3)...)
		e.Project(TrapSource(gruid.Point{5, 1}), 0, gruid.Point{1, 1}, 150, EffectMissile, FlagKill|FlagStop|FlagAimed, 0)
		mons := e.Monsters.Get(h)
		if mons == nil || mons.HP != 850 {
			t.Fatalf("seed %d: mount not hit", seed)
		}
		if e.Player.HP != e.Player.MaxHP && !e.Player.IsRiding() {
			falls++
		} else if e.Player.HP != e.Player.MaxHP {
			t.Errorf("seed %d: rider hurt by an aimed delivery", seed)
		}
	}
	if falls == 0 {
		t.Errorf("mount never threw its rider")
	}
}
