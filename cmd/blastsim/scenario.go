package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"codeberg.org/anaseto/gruid"

	"codeberg.org/anaseto/blast"
)

// Scenario describes a level, its inhabitants and a list of casts to run.
type Scenario struct {
	Seed     uint64        `json:"seed,omitempty" jsonschema:"description=random seed (0 means random)"`
	Map      []string      `json:"map" jsonschema:"required,description=map rows: . floor # wall X permanent wall : rubble + ' L doors T tree = glass v lava ~ W water ^ trap ; rune * mirror"`
	Lit      bool          `json:"lit,omitempty" jsonschema:"description=light the whole map"`
	Config   *blast.Config `json:"config,omitempty"`
	Species  []SpeciesDef  `json:"species,omitempty"`
	Monsters []MonsterDef  `json:"monsters,omitempty"`
	Player   PlayerDef     `json:"player" jsonschema:"required"`
	Casts    []CastDef     `json:"casts" jsonschema:"required"`
}

// SpeciesDef describes a monster species.
type SpeciesDef struct {
	Name      string   `json:"name" jsonschema:"required"`
	Level     int      `json:"level"`
	Speed     int      `json:"speed,omitempty"`
	HP        int      `json:"hp"`
	Race      []string `json:"race,omitempty"`
	Resists   []string `json:"resists,omitempty"`
	Abilities []string `json:"abilities,omitempty"`
}

// MonsterDef places a monster of a known species.
type MonsterDef struct {
	Species string `json:"species" jsonschema:"required"`
	At      [2]int `json:"at" jsonschema:"required"`
	Ally    bool   `json:"ally,omitempty"`
	Ridden  bool   `json:"ridden,omitempty" jsonschema:"description=the player rides this monster (it must share the player's cell)"`
}

// PlayerDef describes the player.
type PlayerDef struct {
	Name        string   `json:"name,omitempty"`
	At          [2]int   `json:"at" jsonschema:"required"`
	Level       int      `json:"level"`
	HP          int      `json:"hp"`
	Mana        int      `json:"mana,omitempty"`
	RidingSkill int      `json:"riding_skill,omitempty"`
	Race        []string `json:"race,omitempty"`
	Resists     []string `json:"resists,omitempty"`
	Abilities   []string `json:"abilities,omitempty"`
	Decoy       bool     `json:"decoy,omitempty"`
}

// CastDef describes a single delivery.
type CastDef struct {
	Source  string   `json:"source" jsonschema:"required,enum=player,enum=monster,enum=trap,enum=environment"`
	Monster int      `json:"monster,omitempty" jsonschema:"description=index of the casting monster in the monsters list"`
	From    [2]int   `json:"from,omitempty" jsonschema:"description=position of a trap or environment source"`
	Target  [2]int   `json:"target" jsonschema:"required"`
	Radius  int      `json:"radius,omitempty"`
	Damage  int      `json:"damage"`
	Type    string   `json:"type" jsonschema:"required"`
	Flags   []string `json:"flags,omitempty"`
}

var raceNames = map[string]blast.RaceFlags{
	"undead":    blast.RaceUndead,
	"demon":     blast.RaceDemon,
	"evil":      blast.RaceEvil,
	"good":      blast.RaceGood,
	"animal":    blast.RaceAnimal,
	"nonliving": blast.RaceNonliving,
	"dragon":    blast.RaceDragon,
	"giant":     blast.RaceGiant,
	"orc":       blast.RaceOrc,
	"troll":     blast.RaceTroll,
	"human":     blast.RaceHuman,
	"unique":    blast.RaceUnique,
	"quest":     blast.RaceQuest,
}

var resistNames = map[string]blast.ResistFlags{
	"im_acid":    blast.ImAcid,
	"im_elec":    blast.ImElec,
	"im_fire":    blast.ImFire,
	"im_cold":    blast.ImCold,
	"im_poison":  blast.ImPoison,
	"acid":       blast.ResAcid,
	"elec":       blast.ResElec,
	"fire":       blast.ResFire,
	"cold":       blast.ResCold,
	"poison":     blast.ResPoison,
	"light":      blast.ResLight,
	"dark":       blast.ResDark,
	"nether":     blast.ResNether,
	"water":      blast.ResWater,
	"plasma":     blast.ResPlasma,
	"shards":     blast.ResShards,
	"sound":      blast.ResSound,
	"chaos":      blast.ResChaos,
	"nexus":      blast.ResNexus,
	"disenchant": blast.ResDisen,
	"force":      blast.ResForce,
	"inertia":    blast.ResInertia,
	"time":       blast.ResTime,
	"gravity":    blast.ResGravity,
	"teleport":   blast.ResTeleport,
	"all":        blast.ResAll,
	"fear":       blast.ResFear,
	"confusion":  blast.ResConf,
	"sleep":      blast.ResSleep,
	"stun":       blast.ResStun,
	"blind":      blast.ResBlind,
	"hurt_light": blast.HurtLight,
	"hurt_rock":  blast.HurtRock,
	"hurt_fire":  blast.HurtFire,
	"hurt_cold":  blast.HurtCold,
}

var abilityNames = map[string]blast.AbilityFlags{
	"reflect":       blast.AbilityReflect,
	"empty_mind":    blast.AbilityEmptyMind,
	"weird_mind":    blast.AbilityWeirdMind,
	"stupid":        blast.AbilityStupid,
	"powerful":      blast.AbilityPowerful,
	"spellcaster":   blast.AbilitySpellcaster,
	"invisible":     blast.AbilityInvisible,
	"ridable":       blast.AbilityRidable,
	"free_action":   blast.AbilityFreeAction,
	"hold_life":     blast.AbilityHoldLife,
	"see_invisible": blast.AbilitySeeInvisible,
	"levitation":    blast.AbilityLevitation,
}

// parseNames combines the named flags of a table.
func parseNames[F ~uint64](table map[string]F, names []string, what string) (F, error) {
	var f F
	for _, s := range names {
		v, ok := table[strings.ToLower(strings.TrimSpace(s))]
		if !ok {
			return f, fmt.Errorf("unknown %s flag: %q", what, s)
		}
		f |= v
	}
	return f, nil
}

func point(p [2]int) gruid.Point {
	return gruid.Point{p[0], p[1]}
}

// LoadScenario reads a scenario from a JSON file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc := &Scenario{}
	if err := json.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("decode scenario %s: %w", path, err)
	}
	return sc, nil
}

// Build returns an engine set up as described by the scenario, as well as
// the handles of the scenario monsters, in order.
func (sc *Scenario) Build() (*blast.Engine, []blast.Handle, error) {
	m, err := blast.ParseMap(strings.Join(sc.Map, "\n"))
	if err != nil {
		return nil, nil, err
	}
	if sc.Lit {
		m.Lit.Fill(true)
	}
	pd := sc.Player
	name := pd.Name
	if name == "" {
		name = "you"
	}
	pl := blast.NewPlayer(name, max(1, pd.Level), max(1, pd.HP))
	pl.P = point(pd.At)
	pl.Mana, pl.MaxMana = pd.Mana, pd.Mana
	pl.RidingSkill = pd.RidingSkill
	pl.Decoy = pd.Decoy
	if pl.Race, err = parseNames(raceNames, pd.Race, "race"); err != nil {
		return nil, nil, err
	}
	if pl.Resists, err = parseNames(resistNames, pd.Resists, "resist"); err != nil {
		return nil, nil, err
	}
	if pl.Abilities, err = parseNames(abilityNames, pd.Abilities, "ability"); err != nil {
		return nil, nil, err
	}
	if !m.InBounds(pl.P) {
		return nil, nil, fmt.Errorf("player out of map at %v", pl.P)
	}
	var cfg blast.Config
	if sc.Config != nil {
		cfg = *sc.Config
	}
	e := blast.New(m, pl, cfg)
	if sc.Seed != 0 {
		e.Seed(sc.Seed)
	}
	species := map[string]*blast.Species{}
	for _, sd := range sc.Species {
		sp := &blast.Species{Name: sd.Name, Level: sd.Level, Speed: sd.Speed, HP: sd.HP}
		if sp.Race, err = parseNames(raceNames, sd.Race, "race"); err != nil {
			return nil, nil, err
		}
		if sp.Resists, err = parseNames(resistNames, sd.Resists, "resist"); err != nil {
			return nil, nil, err
		}
		if sp.Abilities, err = parseNames(abilityNames, sd.Abilities, "ability"); err != nil {
			return nil, nil, err
		}
		species[sd.Name] = sp
		e.Species = append(e.Species, sp)
	}
	handles := make([]blast.Handle, 0, len(sc.Monsters))
	for i, md := range sc.Monsters {
		sp, ok := species[md.Species]
		if !ok {
			return nil, nil, fmt.Errorf("monster %d: unknown species %q", i, md.Species)
		}
		mons := blast.NewMonster(sp, point(md.At))
		if md.Ally || md.Ridden {
			mons.Allegiance = blast.Ally
		}
		h := e.AddMonster(mons)
		if !h.Valid() {
			return nil, nil, fmt.Errorf("monster %d: cannot place at %v", i, mons.P)
		}
		if md.Ridden {
			if mons.P != pl.P {
				return nil, nil, fmt.Errorf("monster %d: ridden monster must share the player's cell", i)
			}
			pl.Riding = h
		}
		handles = append(handles, h)
	}
	return e, handles, nil
}

// Descriptor converts a cast into a delivery descriptor.
func (c CastDef) Descriptor(handles []blast.Handle) (blast.Descriptor, error) {
	var d blast.Descriptor
	switch strings.ToLower(c.Source) {
	case "player", "":
		d.Source = blast.PlayerSource()
	case "monster":
		if c.Monster < 0 || c.Monster >= len(handles) {
			return d, fmt.Errorf("no monster with index %d", c.Monster)
		}
		d.Source = blast.MonsterSource(handles[c.Monster])
	case "trap":
		d.Source = blast.TrapSource(point(c.From))
	case "environment":
		d.Source = blast.EnvironmentSource(point(c.From))
	default:
		return d, fmt.Errorf("unknown source: %q", c.Source)
	}
	typ, err := blast.ParseEffectType(c.Type)
	if err != nil {
		return d, err
	}
	flg, unknown := blast.ParseFlags(c.Flags)
	if len(unknown) > 0 {
		return d, fmt.Errorf("unknown flags: %s", strings.Join(unknown, ", "))
	}
	if flg == 0 {
		switch {
		case c.Radius < 0:
			flg = blast.FlagsBreath
		case c.Radius == 0:
			flg = blast.FlagsBolt
		default:
			flg = blast.FlagsBall
		}
	}
	d.Target = point(c.Target)
	d.Radius = c.Radius
	d.Damage = c.Damage
	d.Type = typ
	d.Flags = flg
	return d, nil
}
