package blast

import (
	"iter"
	"math"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// Area is the set of cells affected by a delivery, partitioned into distance
// bands. Cells of band b are Points[Bands[b]:Bands[b+1]].
type Area struct {
	Points    []gruid.Point // affected cells, in band order
	Bands     []int         // band boundaries (len = number of bands + 1)
	Dists     []int         // effective distance per cell (cones only)
	Truncated bool          // whether the cell limit was reached

	limit int
	seen  map[gruid.Point]bool
}

func newArea(limit int) *Area {
	return &Area{Bands: []int{0}, limit: limit}
}

// add appends a cell to the current band. It returns false once the cell
// limit is reached.
func (a *Area) add(p gruid.Point, dist int, cone bool) bool {
	if a.seen != nil {
		if a.seen[p] {
			return true
		}
		a.seen[p] = true
	}
	if a.limit > 0 && len(a.Points) >= a.limit {
		a.Truncated = true
		return false
	}
	a.Points = append(a.Points, p)
	if cone {
		a.Dists = append(a.Dists, dist)
	}
	return true
}

// closeBand ends the current band.
func (a *Area) closeBand() {
	a.Bands = append(a.Bands, len(a.Points))
}

// NBands returns the number of bands.
func (a *Area) NBands() int {
	return len(a.Bands) - 1
}

// Band returns the cells of band b.
func (a *Area) Band(b int) []gruid.Point {
	return a.Points[a.Bands[b]:a.Bands[b+1]]
}

// Cells returns an iterator over the affected cells in band order, along with
// their effective distance for damage fall-off: the band index for balls and
// beams, the distance to the cone axis for breaths.
func (a *Area) Cells() iter.Seq2[gruid.Point, int] {
	return func(yield func(gruid.Point, int) bool) {
		for b := range a.NBands() {
			for i := a.Bands[b]; i < a.Bands[b+1]; i++ {
				d := b
				if a.Dists != nil {
					d = a.Dists[i]
				}
				if !yield(a.Points[i], d) {
					return
				}
			}
		}
	}
}

// visibility returns the predicate used to decide whether the effect spreads
// from center to a given cell, computed with symmetric shadow casting up to
// the given radius.
func (m *Map) visibility(center gruid.Point, rad int, typ EffectType) func(gruid.Point) bool {
	var passable func(gruid.Point) bool
	switch {
	case typ.lightLike():
		passable = m.LOSClear
	case typ == EffectDisintegrate:
		passable = func(p gruid.Point) bool { return !m.StopsDisintegration(p) }
	default:
		passable = m.Projectable
	}
	if rad <= 0 {
		return func(p gruid.Point) bool { return p == center }
	}
	rg := gruid.NewRange(-rad, -rad, rad+1, rad+1)
	m.fov.SetRange(rg.Add(center).Intersect(m.Terrain.Range()))
	m.fov.SSCVisionMap(center, rad, passable, false)
	return func(p gruid.Point) bool {
		return p == center || m.fov.Visible(p)
	}
}

// ring returns an iterator over the in-map cells at Chebyshev distance d
// from center, in row-major order.
func (m *Map) ring(center gruid.Point, d int) iter.Seq[gruid.Point] {
	return func(yield func(gruid.Point) bool) {
		for y := center.Y - d; y <= center.Y+d; y++ {
			for x := center.X - d; x <= center.X+d; x++ {
				p := gruid.Point{x, y}
				if !m.InBounds(p) || paths.DistanceChebyshev(center, p) != d {
					continue
				}
				if !yield(p) {
					return
				}
			}
		}
	}
}

// Ball returns the area of a ball of the given radius exploding at center.
// Rings are appended by increasing distance.
func (m *Map) Ball(center gruid.Point, rad int, typ EffectType, limit int) *Area {
	a := newArea(limit)
	m.ballInto(a, center, rad, typ)
	return a
}

func (m *Map) ballInto(a *Area, center gruid.Point, rad int, typ EffectType) {
	visible := m.visibility(center, rad, typ)
	for d := 0; d <= rad; d++ {
		for p := range m.ring(center, d) {
			if visible(p) && !a.add(p, d, false) {
				break
			}
		}
		a.closeBand()
	}
}

// Beam returns the area made of every traversed cell of a line of fire, all
// in band zero. A positive radius adds an explosion at the last cell, whose
// rings follow the beam band.
func (m *Map) Beam(path []gruid.Point, rad int, typ EffectType, limit int) *Area {
	a := newArea(limit)
	for _, p := range path {
		if !a.add(p, 0, false) {
			break
		}
	}
	if rad <= 0 || len(path) == 0 {
		a.closeBand()
		return a
	}
	a.seen = make(map[gruid.Point]bool, len(a.Points))
	for _, p := range a.Points {
		a.seen[p] = true
	}
	// The beam cells form band zero: the explosion center is already in it.
	visible := m.visibility(path[len(path)-1], rad, typ)
	a.closeBand()
	center := path[len(path)-1]
	for d := 1; d <= rad; d++ {
		for p := range m.ring(center, d) {
			if visible(p) && !a.add(p, d, false) {
				break
			}
		}
		a.closeBand()
	}
	return a
}

// Breath returns the cone-shaped area of a breath from source toward target,
// following the given traversed path (not including the source). The cone
// radius at distance t from the source is rad*(t+k)/(len(path)+k), with
// roughness k = rad*rad/len(path). Bands follow the distance from the source
// and the effective distance of each cell is its distance to the
// source-target segment.
func (m *Map) Breath(source, target gruid.Point, path []gruid.Point, rad int, typ EffectType, limit int) *Area {
	dist := len(path)
	if dist == 0 {
		return m.Ball(source, rad, typ, limit)
	}
	a := newArea(limit)
	a.Dists = []int{}
	k := rad * rad / dist
	maxDist := paths.DistanceChebyshev(source, target) + rad
	center := source
	brad := 0
	n := 0
	vcenter, vrad := gruid.Point{-1, -1}, -1
	var visible func(gruid.Point) bool
	for bdist := 0; bdist <= maxDist; bdist++ {
		if n < dist && bdist >= paths.DistanceChebyshev(path[n], source) {
			center = path[n]
			n++
		}
		if center != vcenter || brad != vrad {
			visible = m.visibility(center, brad, typ)
			vcenter, vrad = center, brad
		}
	fill:
		for cdist := 0; cdist <= brad; cdist++ {
			for p := range m.ring(center, cdist) {
				if paths.DistanceChebyshev(source, p) != bdist || !visible(p) {
					continue
				}
				if !a.add(p, distToSegment(p, source, target), true) {
					break fill
				}
			}
		}
		a.closeBand()
		brad = rad * (n + k) / (dist + k)
	}
	return a
}

// distToSegment returns the distance from p to the segment [a, b], rounded to
// the nearest integer. Points projecting outside the segment use the distance
// to the nearest endpoint.
func distToSegment(p, a, b gruid.Point) int {
	ab := b.Sub(a)
	ap := p.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	if l2 == 0 {
		return paths.DistanceChebyshev(p, a)
	}
	dot := ap.X*ab.X + ap.Y*ab.Y
	switch {
	case dot <= 0:
		return paths.DistanceChebyshev(p, a)
	case dot >= l2:
		return paths.DistanceChebyshev(p, b)
	}
	cross := ap.X*ab.Y - ap.Y*ab.X
	return int(math.Round(math.Abs(float64(cross)) / math.Sqrt(float64(l2))))
}
