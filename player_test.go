package blast

import (
	"testing"

	"codeberg.org/anaseto/gruid"
)

// monsterBolt fires a bolt from a new caster monster at the player.
func monsterBolt(t *testing.T, e *Engine, typ EffectType, dam int) {
	t.Helper()
	caster := &Species{Name: "shaman", Level: 10, HP: 30}
	ch, _ := addTestMonster(t, e, caster, gruid.Point{7, 2})
	e.Project(MonsterSource(ch), 0, e.Player.P, dam, typ, FlagsBolt, 0)
}

func TestPlayerElements(t *testing.T) {
	tests := []struct {
		name    string
		resists ResistFlags
		typ     EffectType
		dam     int
		want    int
	}{
		{"plain", NoResist, EffectFire, 30, 470},
		{"resist", ResFire, EffectFire, 30, 490},
		{"immune", ImFire | ResFire, EffectFire, 30, 500},
		{"vulnerable", HurtCold, EffectCold, 30, 460},
		{"missile", ImFire, EffectMissile, 30, 470},
	}
	for _, tc := range tests {
		e := newTestEngine(t, 1, gruid.Point{2, 2}, openRows(10, 5)...)
		e.Player.Resists = tc.resists
		monsterBolt(t, e, tc.typ, tc.dam)
		if e.Player.HP != tc.want {
			t.Errorf("%s: got HP %d, want %d", tc.name, e.Player.HP, tc.want)
		}
	}
}

func TestPlayerPoison(t *testing.T) {
	e := newTestEngine(t, 1, gruid.Point{2, 2}, openRows(10, 5)...)
	monsterBolt(t, e, EffectPoison, 20)
	if !e.Player.Has(StatusPoison) {
		t.Errorf("player not poisoned")
	}
	e = newTestEngine(t, 1, gruid.Point{2, 2}, openRows(10, 5)...)
	e.Player.Resists = ImPoison
	monsterBolt(t, e, EffectPoison, 20)
	if e.Player.Has(StatusPoison) || e.Player.HP != e.Player.MaxHP {
		t.Errorf("poison immune player affected")
	}
}

func TestPlayerOwnDelivery(t *testing.T) {
	e := newTestEngine(t, 1, gruid.Point{4, 2}, openRows(10, 5)...)
	e.Project(PlayerSource(), 2, e.Player.P, 100, EffectFire, FlagJump|FlagKill, 0)
	if e.Player.HP != e.Player.MaxHP {
		t.Errorf("player hurt by their own ball: HP %d", e.Player.HP)
	}
}

func TestPlayerDeath(t *testing.T) {
	e := newTestEngine(t, 1, gruid.Point{2, 2}, openRows(10, 5)...)
	dr := &deathRecorder{}
	e.Death = dr
	monsterBolt(t, e, EffectMissile, 1000)
	if !e.Player.IsDead() {
		t.Fatalf("player survived: HP %d", e.Player.HP)
	}
	if dr.killer == "" || dr.killer != e.Player.Killer {
		t.Errorf("bad killer: %q vs %q", dr.killer, e.Player.Killer)
	}
}

func TestPlayerSavingThrow(t *testing.T) {
	for seed := range uint64(20) {
		e := newTestEngine(t, seed, gruid.Point{2, 2}, openRows(10, 5)...)
		e.Player.Skill = 1000
		monsterBolt(t, e, EffectBlind, 0)
		if e.Player.Has(StatusBlind) {
			t.Errorf("seed %d: skilled player blinded", seed)
		}
		e = newTestEngine(t, seed, gruid.Point{2, 2}, openRows(10, 5)...)
		e.Player.Skill = 0
		monsterBolt(t, e, EffectBlind, 0)
		if e.Player.Statuses[StatusBlind] < 12 {
			t.Errorf("seed %d: unskilled player not blinded", seed)
		}
	}
}

func TestPlayerFreeAction(t *testing.T) {
	e := newTestEngine(t, 1, gruid.Point{2, 2}, openRows(10, 5)...)
	e.Player.Skill = 0
	e.Player.Abilities = AbilityFreeAction
	monsterBolt(t, e, EffectOldSleep, 10)
	if e.Player.Has(StatusParalysis) {
		t.Errorf("free action did not prevent paralysis")
	}
}

func TestPlayerDecoy(t *testing.T) {
	e := newTestEngine(t, 1, gruid.Point{2, 2}, openRows(20, 9)...)
	e.Player.Level = 100
	e.Player.Decoy = true
	monsterBolt(t, e, EffectFire, 50)
	if e.Player.Decoy {
		t.Errorf("decoy not consumed")
	}
	if e.Player.HP != e.Player.MaxHP {
		t.Errorf("player hurt despite decoy")
	}
	if e.Player.P == (gruid.Point{2, 2}) {
		t.Errorf("player not relocated")
	}
}

func TestWraithForm(t *testing.T) {
	e := newTestEngine(t, 1, gruid.Point{2, 2}, openRows(10, 5)...)
	pl := e.Player
	pl.HP = 300
	pl.Statuses[StatusWraithForm] = 20
	monsterBolt(t, e, EffectDark, 40)
	if pl.HP != 340 {
		t.Errorf("darkness did not heal the wraith: HP %d", pl.HP)
	}
	monsterBolt2 := func() {
		caster := &Species{Name: "priest", Level: 10, HP: 30}
		ch, _ := addTestMonster(t, e, caster, gruid.Point{6, 4})
		e.Project(MonsterSource(ch), 0, pl.P, 10, EffectLight, FlagsBolt, 0)
	}
	pl.Resists = ResBlind
	monsterBolt2()
	if pl.Has(StatusWraithForm) {
		t.Errorf("light did not end wraith form")
	}
	if !containsMessage(e.Messages(0), "You are no longer incorporeal.") {
		t.Errorf("no end notice in %v", e.Messages(0))
	}
}

func TestDrains(t *testing.T) {
	e := newTestEngine(t, 1, gruid.Point{2, 2}, openRows(10, 5)...)
	pl := e.Player
	pl.Sustains[StatStr] = true
	if e.decStat(StatStr) || pl.Stats[StatStr] != 15 {
		t.Errorf("sustained stat drained")
	}
	if !e.decStat(StatDex) || pl.Stats[StatDex] != 14 {
		t.Errorf("stat not drained")
	}
	pl.Exp, pl.MaxExp = 1000, 1000
	e.drainExp(300, 30, 0)
	if pl.Exp != 700 || pl.MaxExp != 1000 {
		t.Errorf("bad experience drain: %d/%d", pl.Exp, pl.MaxExp)
	}
	pl.Abilities = AbilityHoldLife
	e.drainExp(300, 30, 0)
	if pl.Exp != 670 {
		t.Errorf("hold life did not reduce the drain: %d", pl.Exp)
	}
}

func TestDrainMana(t *testing.T) {
	e := newTestEngine(t, 1, gruid.Point{2, 2}, openRows(10, 5)...)
	pl := e.Player
	pl.Mana, pl.MaxMana = 30, 30
	caster := &Species{Name: "leech", Level: 10, HP: 300}
	ch, cm := addTestMonster(t, e, caster, gruid.Point{7, 2})
	cm.HP = 100
	e.Project(MonsterSource(ch), 0, pl.P, 20, EffectDrainMana, FlagsBolt, 0)
	if pl.Mana != 10 {
		t.Errorf("got mana %d, want 10", pl.Mana)
	}
	if cm.HP != 220 {
		t.Errorf("caster got HP %d, want 220", cm.HP)
	}
	if pl.HP != pl.MaxHP {
		t.Errorf("mana drain did damage")
	}
}

func TestCurseAndDisenchant(t *testing.T) {
	e := newTestEngine(t, 1, gruid.Point{2, 2}, openRows(10, 5)...)
	sword := &Item{Kind: ItemWeapon, Name: "sword", Enchant: 3}
	e.Player.Equipment = []*Item{sword}
	if !e.curseEquipment(100, 0) || !sword.Flags.Any(ItemCursed) {
		t.Errorf("sword not cursed")
	}
	if sword.Flags.Any(ItemHeavyCursed) {
		t.Errorf("sword heavily cursed")
	}
	if !e.disenchant() || sword.Enchant != 2 {
		t.Errorf("sword not disenchanted: %d", sword.Enchant)
	}
	sword.Enchant = 0
	if e.disenchant() {
		t.Errorf("disenchanted an unenchanted item")
	}
}

func TestPlayerInventoryDamage(t *testing.T) {
	e := newTestEngine(t, 1, gruid.Point{2, 2}, openRows(10, 5)...)
	for range 50 {
		e.Player.Inventory = append(e.Player.Inventory, &Item{Kind: ItemScroll, Name: "scroll"})
	}
	e.Player.Inventory = append(e.Player.Inventory, &Item{Kind: ItemScroll, Name: "relic", Flags: ItemArtifact})
	n := e.damageInventory(EffectFire, 100)
	if n != 50 {
		t.Errorf("got %d destroyed items, want 50", n)
	}
	if len(e.Player.Inventory) != 1 || e.Player.Inventory[0].Name != "relic" {
		t.Errorf("bad remaining inventory: %v", e.Player.Inventory)
	}
}
