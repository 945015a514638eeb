package blast

import (
	"testing"

	"codeberg.org/anaseto/gruid"
)

func TestItemsBurn(t *testing.T) {
	e := newTestEngine(t, 1, gruid.Point{0, 0}, openRows(5, 5)...)
	p := gruid.Point{2, 2}
	scroll := &Item{Kind: ItemScroll, Name: "scroll of light"}
	potion := &Item{Kind: ItemPotion, Name: "potion of speed"}
	fireproof := &Item{Kind: ItemBook, Name: "magic book", Flags: ItemIgnoreFire}
	for _, it := range []*Item{scroll, potion, fireproof} {
		e.Map.AddItem(p, it)
	}
	if !e.Project(PlayerSource(), 0, p, 20, EffectFire, FlagJump|FlagItem, 0) {
		t.Errorf("visible burning not obvious")
	}
	pile := e.Map.Items[p]
	if len(pile) != 2 || pile[0] != potion || pile[1] != fireproof {
		t.Errorf("bad remaining items: %v", pile)
	}
	if !containsMessage(e.Messages(0), "The scroll of light burns up!") {
		t.Errorf("no message in %v", e.Messages(0))
	}
	e.Project(PlayerSource(), 0, p, 20, EffectCold, FlagJump|FlagItem, 0)
	if pile := e.Map.Items[p]; len(pile) != 1 || pile[0] != fireproof {
		t.Errorf("bad remaining items: %v", pile)
	}
}

func TestItemsHolyFire(t *testing.T) {
	e := newTestEngine(t, 1, gruid.Point{0, 0}, openRows(5, 5)...)
	p := gruid.Point{2, 2}
	cursed := &Item{Kind: ItemWeapon, Name: "dagger", Flags: ItemCursed}
	heavy := &Item{Kind: ItemArmour, Name: "mail", Flags: ItemCursed | ItemHeavyCursed}
	relic := &Item{Kind: ItemAmulet, Name: "relic", Flags: ItemArtifact | ItemHeavyCursed}
	for _, it := range []*Item{cursed, heavy, relic} {
		e.Map.AddItem(p, it)
	}
	e.Project(PlayerSource(), 0, p, 20, EffectHolyFire, FlagJump|FlagItem, 0)
	pile := e.Map.Items[p]
	if len(pile) != 2 || pile[0] != cursed || pile[1] != relic {
		t.Fatalf("bad remaining items: %v", pile)
	}
	if cursed.Flags.Any(ItemCursed) {
		t.Errorf("curse not removed")
	}
	if !relic.Flags.Any(ItemHeavyCursed) {
		t.Errorf("artifact changed")
	}
}

func TestItemsCaptureBallReleases(t *testing.T) {
	e := newTestEngine(t, 1, gruid.Point{0, 0}, openRows(5, 5)...)
	sp := &Species{Name: "imp", Level: 3, HP: 9}
	mons := NewMonster(sp, gruid.Point{4, 4})
	data, err := encodeCapture(mons)
	if err != nil {
		t.Fatal(err)
	}
	p := gruid.Point{2, 2}
	e.Map.AddItem(p, &Item{Kind: ItemCaptureBall, Name: "capture ball", Capture: data})
	e.Project(PlayerSource(), 0, p, 20, EffectElec, FlagJump|FlagItem, 0)
	if len(e.Map.Items[p]) != 0 {
		t.Errorf("capture ball not destroyed")
	}
	released := e.MonsterAt(p)
	if released == nil || released.Name != "imp" {
		t.Fatalf("monster not released")
	}
	if !containsMessage(e.Messages(0), "The imp is freed from the broken ball.") {
		t.Errorf("no message in %v", e.Messages(0))
	}
}

func TestItemKindNames(t *testing.T) {
	for k := ItemWeapon; k <= ItemPhoto; k++ {
		got, err := ParseItemKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseItemKind(%q): got %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseItemKind("spoon"); err == nil {
		t.Errorf("unknown kind parsed")
	}
}
