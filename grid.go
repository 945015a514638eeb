// This file contains map-related code and the grid predicates used by
// propagation.

package blast

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

// These constants represent the different kind of map tiles.
const (
	Floor         rl.Cell = iota // passable ground
	Wall                         // granite, dissolvable
	PermanentWall                // indestructible wall
	Rubble                       // passable with effort, blocks vision
	DoorClosed                   // closed door
	DoorOpen                     // open door
	DoorLocked                   // locked or jammed door
	Tree                         // passable, blocks vision, burnable
	GlassWall                    // obstructing, but does not block vision
	Lava                         // passable, burning
	ShallowWater                 // passable water
	DeepWater                    // passable with swimming
	Trap                         // floor with a trap
	Rune                         // floor with a warding rune
)

// TerrainFlags describes static properties of a terrain kind.
type TerrainFlags uint16

// Terrain flags.
const (
	TFPassable  TerrainFlags = 1 << iota // actors can walk there
	TFProject                            // projectiles pass through
	TFLOS                                // sight passes through
	TFPermanent                          // cannot be destroyed
	TFHurtRock                           // dissolved by stone to mud
	TFHurtDisi                           // destroyed by disintegration
	TFDoor                               // some kind of door
	TFFloor                              // floor-like, may be reshaped
	TFBurn                               // burns away with fire
	TFShatter                            // shattered by shards and sound
)

var terrainFlags = []TerrainFlags{
	Floor:         TFPassable | TFProject | TFLOS | TFFloor,
	Wall:          TFHurtRock | TFHurtDisi,
	PermanentWall: TFPermanent,
	Rubble:        TFPassable | TFHurtRock | TFHurtDisi | TFShatter,
	DoorClosed:    TFDoor | TFHurtRock | TFHurtDisi,
	DoorOpen:      TFPassable | TFProject | TFLOS | TFDoor | TFHurtDisi,
	DoorLocked:    TFDoor | TFHurtRock | TFHurtDisi,
	Tree:          TFPassable | TFProject | TFHurtDisi | TFBurn,
	GlassWall:     TFLOS | TFHurtDisi | TFShatter,
	Lava:          TFPassable | TFProject | TFLOS,
	ShallowWater:  TFPassable | TFProject | TFLOS,
	DeepWater:     TFPassable | TFProject | TFLOS,
	Trap:          TFPassable | TFProject | TFLOS | TFFloor,
	Rune:          TFPassable | TFProject | TFLOS | TFFloor,
}

// TerrainHas reports whether terrain t has any of the given flags. Unknown
// terrain kinds behave as permanent walls.
func TerrainHas(t rl.Cell, f TerrainFlags) bool {
	if t < 0 || int(t) >= len(terrainFlags) {
		return TFPermanent&f != 0
	}
	return terrainFlags[t]&f != 0
}

func TerrainName(t rl.Cell) string {
	switch t {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	case PermanentWall:
		return "permanent wall"
	case Rubble:
		return "rubble"
	case DoorClosed:
		return "closed door"
	case DoorOpen:
		return "open door"
	case DoorLocked:
		return "locked door"
	case Tree:
		return "tree"
	case GlassWall:
		return "glass wall"
	case Lava:
		return "lava"
	case ShallowWater:
		return "shallow water"
	case DeepWater:
		return "deep water"
	case Trap:
		return "trap"
	case Rune:
		return "rune"
	default:
		return "unknown terrain"
	}
}

// CacheGrid is a map-sized grid of values, used for fast position lookups.
type CacheGrid[T any] struct {
	width int
	cells []T
}

// NewCacheGrid returns a cache grid of the given size.
func NewCacheGrid[T any](size gruid.Point) CacheGrid[T] {
	return CacheGrid[T]{width: size.X, cells: make([]T, size.X*size.Y)}
}

// At returns the value at p, which should be in range.
func (cg CacheGrid[T]) At(p gruid.Point) T {
	return cg.cells[p.Y*cg.width+p.X]
}

// Set sets the value at p, which should be in range.
func (cg CacheGrid[T]) Set(p gruid.Point, v T) {
	cg.cells[p.Y*cg.width+p.X] = v
}

// Fill sets every value of the grid to v.
func (cg CacheGrid[T]) Fill(v T) {
	for i := range cg.cells {
		cg.cells[i] = v
	}
}

// Map represents the rectangular map of a dungeon level, as far as effects
// are concerned.
type Map struct {
	Terrain   rl.Grid                 // terrain
	Lit       CacheGrid[bool]         // lit cells
	Mirrors   CacheGrid[bool]         // cells containing a mirror
	Occupants CacheGrid[Handle]       // monster occupying each cell
	Items     map[gruid.Point][]*Item // item piles

	fov *rl.FOV // visibility computations for area shapes
}

// NewMap returns a new map of the given size, filled with floor.
func NewMap(w, h int) *Map {
	size := gruid.Point{w, h}
	m := &Map{
		Terrain:   rl.NewGrid(w, h),
		Lit:       NewCacheGrid[bool](size),
		Mirrors:   NewCacheGrid[bool](size),
		Occupants: NewCacheGrid[Handle](size),
		Items:     map[gruid.Point][]*Item{},
	}
	m.Terrain.Fill(Floor)
	m.Occupants.Fill(NoHandle)
	m.fov = rl.NewFOV(m.Terrain.Range())
	return m
}

// Size returns the map dimensions.
func (m *Map) Size() gruid.Point {
	return m.Terrain.Size()
}

// InBounds reports whether p is a position on the map.
func (m *Map) InBounds(p gruid.Point) bool {
	return p.In(m.Terrain.Range())
}

// At returns the terrain at p. Out of bounds positions are permanent walls.
func (m *Map) At(p gruid.Point) rl.Cell {
	if !m.InBounds(p) {
		return PermanentWall
	}
	return m.Terrain.At(p)
}

// Has reports whether the terrain at p has any of the given flags.
func (m *Map) Has(p gruid.Point, f TerrainFlags) bool {
	return TerrainHas(m.At(p), f)
}

// Passable reports whether actors can stand at p.
func (m *Map) Passable(p gruid.Point) bool {
	return m.Has(p, TFPassable)
}

// Projectable reports whether ordinary projectiles pass through p.
func (m *Map) Projectable(p gruid.Point) bool {
	return m.Has(p, TFProject)
}

// LOSClear reports whether sight passes through p.
func (m *Map) LOSClear(p gruid.Point) bool {
	return m.Has(p, TFLOS)
}

// StopsDisintegration reports whether p stops disintegration-class effects:
// only non-projectable terrain that is permanent or cannot be disintegrated.
func (m *Map) StopsDisintegration(p gruid.Point) bool {
	t := m.At(p)
	return !TerrainHas(t, TFProject) && (TerrainHas(t, TFPermanent) || !TerrainHas(t, TFHurtDisi))
}

// obstructs reports whether p stops a delivery with the given flags.
func (m *Map) obstructs(p gruid.Point, flg Flags) bool {
	switch {
	case flg.Has(FlagDisintegrate):
		return m.StopsDisintegration(p)
	case flg.Has(FlagLOS):
		return !m.LOSClear(p)
	default:
		return !m.Projectable(p)
	}
}

// Naked reports whether p is floor-like terrain with no monster and no items,
// so that it may be reshaped into something else.
func (m *Map) Naked(p gruid.Point) bool {
	return m.Has(p, TFFloor) && !m.Occupants.At(p).Valid() && len(m.Items[p]) == 0
}

// Set changes the terrain at p.
func (m *Map) Set(p gruid.Point, t rl.Cell) {
	if m.InBounds(p) {
		m.Terrain.Set(p, t)
	}
}

// InLOS reports whether there is an unobstructed line of sight from one
// position to another.
func (m *Map) InLOS(from, to gruid.Point, rng int) bool {
	return m.reaches(from, to, rng, FlagLOS)
}

// LineOfFire reports whether an ordinary projectile fired from one position
// reaches another.
func (m *Map) LineOfFire(from, to gruid.Point, rng int) bool {
	return m.reaches(from, to, rng, NoFlags)
}

func (m *Map) reaches(from, to gruid.Point, rng int, flg Flags) bool {
	if from == to {
		return true
	}
	pt := m.TracePath(from, to, rng, flg, nil)
	if len(pt.Points) == 0 {
		return false
	}
	return pt.Points[len(pt.Points)-1] == to
}

// AddItem drops an item on the pile at p.
func (m *Map) AddItem(p gruid.Point, it *Item) {
	m.Items[p] = append(m.Items[p], it)
}
