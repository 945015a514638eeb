// Package blast implements the propagation and resolution of area effects:
// bolts, beams, balls and breaths, from line of fire tracing to the effects
// on terrain, items, monsters and the player.
package blast

import (
	"math/rand/v2"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"codeberg.org/anaseto/gruid/rl"
	"github.com/sirupsen/logrus"

	"codeberg.org/anaseto/blast/internal/logger"
)

// InvalidPos is a special variable containing an invalid position.
var InvalidPos = gruid.Point{-1, -1}

// Engine holds the state mutated by effects: the map, the monsters and the
// player. An Engine is not safe for concurrent use.
type Engine struct {
	Map      *Map       // current level's map
	Monsters *Arena     // monsters on the level
	Player   *Player    // the player
	Species  []*Species // species pool for polymorph
	Config   Config     // limits
	Logs     Logs       // narrative log

	Death DeathHandler // death processing
	Book  Bookkeeper   // virtues and diary
	Lore  LoreKeeper   // observed species flags

	// Trace, if not nil, is called each time an applier is invoked on a
	// cell.
	Trace func(ap Applier, p gruid.Point)

	rand      *rand.Rand       // random number generator
	log       *logrus.Entry    // diagnostics
	view      *rl.FOV          // player's field of view
	viewValid bool             // whether view is up to date
	pr        *paths.PathRange // breadth first searches
	capWarned bool             // whether an area truncation was already logged
}

// New returns a new engine for the given map and player, seeded from the
// global random source.
func New(m *Map, pl *Player, cfg Config) *Engine {
	rg := m.Terrain.Range()
	e := &Engine{
		Map:      m,
		Monsters: &Arena{},
		Player:   pl,
		Config:   cfg.withDefaults(),
		Death:    DefaultDeath{},
		Book:     NopBookkeeper{},
		Lore:     SpeciesLore{},
		rand:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		log:      logger.Component("blast"),
		view:     rl.NewFOV(rg),
		pr:       paths.NewPathRange(rg),
	}
	return e
}

// Seed resets the engine's random number generator with a fixed seed.
func (e *Engine) Seed(seed uint64) {
	e.rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SetLogger replaces the diagnostics logger.
func (e *Engine) SetLogger(l *logrus.Entry) {
	e.log = l
}

// AddMonster puts a monster on the map and returns its handle. It returns
// NoHandle if the position is out of the map or already occupied.
func (e *Engine) AddMonster(mons *Monster) Handle {
	if !e.Map.InBounds(mons.P) || e.MonsterAt(mons.P) != nil {
		return NoHandle
	}
	h := e.Monsters.Add(mons)
	e.Map.Occupants.Set(mons.P, h)
	return h
}

// MonsterAt returns the monster at p, if any.
func (e *Engine) MonsterAt(p gruid.Point) *Monster {
	if !e.Map.InBounds(p) {
		return nil
	}
	return e.Monsters.Get(e.Map.Occupants.At(p))
}

// handleAt returns the handle of the monster at p, or NoHandle.
func (e *Engine) handleAt(p gruid.Point) Handle {
	if !e.Map.InBounds(p) {
		return NoHandle
	}
	h := e.Map.Occupants.At(p)
	if e.Monsters.Get(h) == nil {
		return NoHandle
	}
	return h
}

// moveMonster relocates a monster, keeping the occupant index consistent.
func (e *Engine) moveMonster(h Handle, to gruid.Point) bool {
	mons := e.Monsters.Get(h)
	if mons == nil || !e.Map.InBounds(to) || e.handleAt(to).Valid() {
		return false
	}
	if e.Map.Occupants.At(mons.P) == h {
		e.Map.Occupants.Set(mons.P, NoHandle)
	}
	mons.P = to
	e.Map.Occupants.Set(to, h)
	e.viewValid = false
	return true
}

// removeMonster removes a monster from the map and the arena.
func (e *Engine) removeMonster(h Handle) {
	mons := e.Monsters.Get(h)
	if mons == nil {
		return
	}
	if e.Map.InBounds(mons.P) && e.Map.Occupants.At(mons.P) == h {
		e.Map.Occupants.Set(mons.P, NoHandle)
	}
	e.Monsters.Remove(h)
	if e.Player.Riding == h {
		e.Player.Riding = NoHandle
	}
}

// free reports whether p is a passable cell with neither a monster nor the
// player.
func (e *Engine) free(p gruid.Point) bool {
	return e.Map.Passable(p) && !e.handleAt(p).Valid() && p != e.Player.P
}

// occupied reports whether an actor stands at p.
func (e *Engine) occupied(p gruid.Point) bool {
	return e.handleAt(p).Valid() || p == e.Player.P && !e.Player.IsDead()
}

// isPlayer reports whether the actor is the player.
func (e *Engine) isPlayer(a *Actor) bool {
	return a == &e.Player.Actor
}

// mount returns the monster ridden by the player, if any.
func (e *Engine) mount() *Monster {
	if !e.Player.IsRiding() {
		return nil
	}
	mons := e.Monsters.Get(e.Player.Riding)
	if mons == nil {
		e.Player.Riding = NoHandle
	}
	return mons
}

// updateView computes the player's field of view, if needed.
func (e *Engine) updateView() {
	if e.viewValid {
		return
	}
	pp := e.Player.P
	e.viewValid = true
	if !e.Map.InBounds(pp) {
		return
	}
	rad := e.Config.MaxSight
	rg := gruid.NewRange(-rad, -rad, rad+1, rad+1)
	e.view.SetRange(rg.Add(pp).Intersect(e.Map.Terrain.Range()))
	e.view.SSCVisionMap(pp, rad, e.Map.LOSClear, false)
}

// seen reports whether the player can see position p.
func (e *Engine) seen(p gruid.Point) bool {
	if e.Player.IsDead() || e.Player.Has(StatusBlind) || !e.Map.InBounds(p) {
		return false
	}
	if p == e.Player.P {
		return true
	}
	if paths.DistanceChebyshev(e.Player.P, p) > e.Config.MaxSight {
		return false
	}
	e.updateView()
	return e.view.Visible(p)
}

// monsterSeen reports whether the player can see a monster.
func (e *Engine) monsterSeen(mons *Monster) bool {
	if mons.Has(StatusSleep) && mons.Can(AbilityInvisible) {
		return false
	}
	if mons.Can(AbilityInvisible) && !e.Player.Can(AbilitySeeInvisible) {
		return false
	}
	return e.seen(mons.P)
}

// invalidateView must be called after terrain changes affecting sight.
func (e *Engine) invalidateView() {
	e.viewValid = false
}

// Virtue identifies a virtue tracked by the bookkeeping collaborator.
type Virtue int

const (
	VirtueCompassion Virtue = iota
	VirtueMercy
	VirtueJustice
	VirtueHonour
	VirtueIndividualism
	VirtueNature
	VirtueHarmony
	VirtueUnlife
	VirtueVitality
	VirtueKnowledge
	VirtueEnlightenment
	VirtueFaith
	VirtueValour
)

var virtueNames = []string{
	VirtueCompassion:    "compassion",
	VirtueMercy:         "mercy",
	VirtueJustice:       "justice",
	VirtueHonour:        "honour",
	VirtueIndividualism: "individualism",
	VirtueNature:        "nature",
	VirtueHarmony:       "harmony",
	VirtueUnlife:        "unlife",
	VirtueVitality:      "vitality",
	VirtueKnowledge:     "knowledge",
	VirtueEnlightenment: "enlightenment",
	VirtueFaith:         "faith",
	VirtueValour:        "valour",
}

func (v Virtue) String() string {
	return virtueNames[v]
}

// DeathHandler processes deaths decided by the engine. After MonsterDied
// returns, the engine removes the monster from the map and arena if the
// handler did not already do so.
type DeathHandler interface {
	MonsterDied(h Handle, mons *Monster, forced bool)
	PlayerDied(killer string)
}

// DefaultDeath is a DeathHandler with no side effects beyond removal.
type DefaultDeath struct{}

func (DefaultDeath) MonsterDied(Handle, *Monster, bool) {}
func (DefaultDeath) PlayerDied(string)                  {}

// Bookkeeper records reputation changes and narrative diary entries.
type Bookkeeper interface {
	Virtue(v Virtue, amount int)
	Diary(s string)
}

// NopBookkeeper ignores everything.
type NopBookkeeper struct{}

func (NopBookkeeper) Virtue(Virtue, int) {}
func (NopBookkeeper) Diary(string)       {}

// LoreKeeper records flags revealed about a species.
type LoreKeeper interface {
	Learn(sp *Species, k Knowledge)
}

// SpeciesLore records knowledge directly into Species.Known.
type SpeciesLore struct{}

func (SpeciesLore) Learn(sp *Species, k Knowledge) {
	sp.Known = sp.Known.Merge(k)
}
