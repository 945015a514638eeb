package blast

import (
	"errors"
	"testing"

	"codeberg.org/anaseto/gruid"
)

func TestCaptureSnapshot(t *testing.T) {
	sp := &Species{Name: "warg", Level: 12, Speed: 120, HP: 40, Race: RaceAnimal | RaceEvil, Resists: ResFear}
	mons := NewMonster(sp, gruid.Point{2, 2})
	mons.HP = 7
	mons.Allegiance = Ally
	data, err := encodeCapture(mons)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	cm, err := decodeCapture(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cm.Species.Name != "warg" || cm.Species.Race != sp.Race || cm.HP != 7 || cm.MaxHP != 40 || cm.Allegiance != Ally {
		t.Errorf("bad snapshot: %+v", cm)
	}
	if _, err := decodeCapture([]byte("not a capture")); err == nil {
		t.Errorf("garbage decoded without error")
	}
}

func TestCaptureRelease(t *testing.T) {
	e := newTestEngine(t, 1, gruid.Point{1, 1}, openRows(8, 5)...)
	sp := &Species{Name: "warg", Level: 12, Speed: 120, HP: 40}
	e.Species = []*Species{sp}
	h, mons := addTestMonster(t, e, sp, gruid.Point{4, 2})
	mons.HP = 5
	it, err := e.captureMonster(h, mons, true)
	if err != nil {
		t.Fatal(err)
	}
	if e.Monsters.Get(h) != nil || e.MonsterAt(gruid.Point{4, 2}) != nil {
		t.Errorf("captured monster still on the level")
	}
	if len(e.Player.Inventory) != 1 || e.Player.Inventory[0] != it {
		t.Fatalf("capture ball not in inventory")
	}
	nh, err := e.Release(it, gruid.Point{4, 2})
	if err != nil {
		t.Fatal(err)
	}
	nm := e.Monsters.Get(nh)
	if nm == nil || nm.Species != sp || nm.HP != 5 || nm.Speed != 120 || nm.P != (gruid.Point{4, 2}) {
		t.Errorf("bad released monster: %+v", nm)
	}
	if _, err := e.Release(it, gruid.Point{4, 2}); !errors.Is(err, ErrEmptyCapture) {
		t.Errorf("released an empty ball: %v", err)
	}
}

func TestCaptureEffect(t *testing.T) {
	captured := false
	for seed := range uint64(30) {
		e := newTestEngine(t, seed, gruid.Point{1, 2}, openRows(9, 5)...)
		sp := &Species{Name: "warg", Level: 12, HP: 1000}
		h, mons := addTestMonster(t, e, sp, gruid.Point{5, 2})
		mons.HP = 10
		e.Project(PlayerSource(), 0, mons.P, 0, EffectCapture, FlagsBolt, 0)
		if e.Monsters.Get(h) == nil {
			captured = true
			if len(e.Player.Inventory) != 1 || e.Player.Inventory[0].Kind != ItemCaptureBall {
				t.Errorf("seed %d: no capture ball", seed)
			}
		} else if mons.HP != 10 {
			t.Errorf("seed %d: failed capture did damage", seed)
		}
	}
	if !captured {
		t.Errorf("no capture in 30 tries")
	}
	e := newTestEngine(t, 1, gruid.Point{1, 2}, openRows(9, 5)...)
	sp := &Species{Name: "Fang", Level: 5, HP: 100, Race: RaceUnique}
	h, mons := addTestMonster(t, e, sp, gruid.Point{5, 2})
	mons.HP = 1
	e.Project(PlayerSource(), 0, mons.P, 0, EffectCapture, FlagsBolt, 0)
	if e.Monsters.Get(h) == nil {
		t.Errorf("unique captured")
	}
}
