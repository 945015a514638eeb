package blast

import (
	"slices"
	"testing"

	"codeberg.org/anaseto/gruid"
)

func pts(xy ...int) []gruid.Point {
	var ps []gruid.Point
	for i := 0; i+1 < len(xy); i += 2 {
		ps = append(ps, gruid.Point{xy[i], xy[i+1]})
	}
	return ps
}

func TestTracePath(t *testing.T) {
	m, err := ParseMap("...#......\n..........\n..........\n..........")
	if err != nil {
		t.Fatal(err)
	}
	occupied := func(p gruid.Point) bool { return p == gruid.Point{2, 1} }
	tests := []struct {
		name    string
		from    gruid.Point
		to      gruid.Point
		rng     int
		flg     Flags
		want    []gruid.Point
		blocked bool
	}{
		{"straight", gruid.Point{0, 1}, gruid.Point{4, 1}, 18, NoFlags, pts(1, 1, 2, 1, 3, 1, 4, 1), false},
		{"wall", gruid.Point{0, 0}, gruid.Point{6, 0}, 18, NoFlags, pts(1, 0, 2, 0, 3, 0), true},
		{"disintegrate", gruid.Point{0, 0}, gruid.Point{5, 0}, 18, FlagDisintegrate, pts(1, 0, 2, 0, 3, 0, 4, 0, 5, 0), false},
		{"los", gruid.Point{0, 0}, gruid.Point{5, 0}, 18, FlagLOS, pts(1, 0, 2, 0, 3, 0), true},
		{"thru", gruid.Point{5, 2}, gruid.Point{7, 2}, 18, FlagThru, pts(6, 2, 7, 2, 8, 2, 9, 2), true},
		{"range", gruid.Point{0, 3}, gruid.Point{9, 3}, 4, NoFlags, pts(1, 3, 2, 3, 3, 3, 4, 3), false},
		{"stop", gruid.Point{0, 1}, gruid.Point{5, 1}, 18, FlagStop, pts(1, 1, 2, 1), false},
		{"diagonal", gruid.Point{0, 1}, gruid.Point{2, 3}, 18, NoFlags, pts(1, 2, 2, 3), false},
		{"knight", gruid.Point{0, 1}, gruid.Point{4, 3}, 18, NoFlags, pts(1, 1, 2, 2, 3, 2, 4, 3), false},
		{"same", gruid.Point{4, 2}, gruid.Point{4, 2}, 18, NoFlags, nil, false},
	}
	for _, tc := range tests {
		pt := m.TracePath(tc.from, tc.to, tc.rng, tc.flg, occupied)
		if !slices.Equal(pt.Points, tc.want) {
			t.Errorf("%s: got path %v, want %v", tc.name, pt.Points, tc.want)
		}
		if pt.Blocked != tc.blocked {
			t.Errorf("%s: got blocked %v, want %v", tc.name, pt.Blocked, tc.blocked)
		}
	}
}

func TestLineOfFire(t *testing.T) {
	m, err := ParseMap(".....\n..#..\n.....")
	if err != nil {
		t.Fatal(err)
	}
	if m.LineOfFire(gruid.Point{0, 1}, gruid.Point{4, 1}, 18) {
		t.Errorf("line of fire through a wall")
	}
	if !m.LineOfFire(gruid.Point{0, 0}, gruid.Point{4, 0}, 18) {
		t.Errorf("no line of fire in open ground")
	}
	if !m.InLOS(gruid.Point{0, 2}, gruid.Point{4, 2}, 18) {
		t.Errorf("no line of sight in open ground")
	}
}

func TestTeleportDest(t *testing.T) {
	e := newTestEngine(t, 1, gruid.Point{0, 0}, openRows(20, 5)...)
	from := gruid.Point{2, 2}
	for range 50 {
		to := e.teleportDest(from, 10)
		if to == InvalidPos {
			t.Fatalf("no teleport destination")
		}
		if !e.free(to) {
			t.Errorf("destination %v not free", to)
		}
		if d := abs(to.X - from.X); d < 5 && abs(to.Y-from.Y) < 5 {
			t.Errorf("destination %v too close", to)
		}
	}
	if p := e.freeNear(gruid.Point{0, 0}, 2); p == (gruid.Point{0, 0}) || p == InvalidPos {
		t.Errorf("freeNear returned %v for the player's cell", p)
	}
}
