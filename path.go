package blast

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// Path is a traced line of fire. The origin is not part of it.
type Path struct {
	Points  []gruid.Point // traversed cells, in order
	Blocked bool          // whether the trace ended on an obstructing cell
}

// Last returns the final cell of the path, or from if the path is empty.
func (pt Path) Last(from gruid.Point) gruid.Point {
	if len(pt.Points) == 0 {
		return from
	}
	return pt.Points[len(pt.Points)-1]
}

// TracePath computes the line of fire from one position toward another. The
// trace steps along the major axis, moving along the minor one whenever the
// accumulated offset crosses a half cell. It stops:
//
//   - after rng steps (diagonal steps count as one and a half),
//   - at the target, unless FlagThru is set,
//   - on the first cell obstructing the delivery (the cell is included),
//   - on the first occupied cell if FlagStop is set.
//
// The occupied function may be nil.
func (m *Map) TracePath(from, to gruid.Point, rng int, flg Flags, occupied func(gruid.Point) bool) Path {
	var pt Path
	if from == to {
		return pt
	}
	d := to.Sub(from)
	ax, ay := abs(d.X), abs(d.Y)
	major, minor := ax, ay
	majorStep, minorStep := gruid.Point{sign(d.X), 0}, gruid.Point{0, sign(d.Y)}
	if ay > ax {
		major, minor = ay, ax
		majorStep, minorStep = minorStep, majorStep
	}
	frac := minor
	diagonals := 0
	cur := from
	for {
		cur = cur.Add(majorStep)
		if minor > 0 && frac >= major {
			cur = cur.Add(minorStep)
			frac -= 2 * major
			diagonals++
		}
		frac += 2 * minor
		if !m.InBounds(cur) {
			pt.Blocked = true
			break
		}
		pt.Points = append(pt.Points, cur)
		if len(pt.Points)+diagonals/2 >= rng {
			break
		}
		if !flg.Has(FlagThru) && cur == to {
			break
		}
		if m.obstructs(cur, flg) {
			pt.Blocked = true
			break
		}
		if flg.Has(FlagStop) && occupied != nil && occupied(cur) {
			break
		}
	}
	return pt
}

// mapPath implements the paths.Pather interface and is used for breadth
// first searches of free cells.
type mapPath struct {
	passable func(gruid.Point) bool
	nbs      paths.Neighbors
}

func (mp *mapPath) Neighbors(p gruid.Point) []gruid.Point {
	return mp.nbs.All(p, mp.passable)
}

// freeNear returns the closest free cell from p (p included) within maxdist
// walking steps, or InvalidPos.
func (e *Engine) freeNear(p gruid.Point, maxdist int) gruid.Point {
	if e.free(p) {
		return p
	}
	mp := &mapPath{passable: e.Map.Passable}
	nodes := e.pr.BreadthFirstMap(mp, []gruid.Point{p}, maxdist)
	for _, n := range nodes {
		if e.free(n.P) {
			return n.P
		}
	}
	return InvalidPos
}

// teleportDest returns a random free cell at about dis walking steps from
// p: between dis/2 and dis if possible, otherwise the farthest reachable
// free cell. It returns InvalidPos if there is none.
func (e *Engine) teleportDest(p gruid.Point, dis int) gruid.Point {
	mp := &mapPath{passable: e.Map.Passable}
	nodes := e.pr.BreadthFirstMap(mp, []gruid.Point{p}, dis)
	var candidates []gruid.Point
	far, farCost := InvalidPos, 0
	for _, n := range nodes {
		if n.P == p || !e.free(n.P) {
			continue
		}
		if n.Cost >= dis/2 {
			candidates = append(candidates, n.P)
		}
		if n.Cost > farCost {
			far, farCost = n.P, n.Cost
		}
	}
	if len(candidates) > 0 {
		return candidates[e.IntN(len(candidates))]
	}
	return far
}
