package blast

import (
	"strings"
	"testing"

	"codeberg.org/anaseto/gruid"
)

// newTestEngine returns an engine with a fixed seed on a map given by rows,
// with the player at p.
func newTestEngine(t *testing.T, seed uint64, p gruid.Point, rows ...string) *Engine {
	t.Helper()
	m, err := ParseMap(strings.Join(rows, "\n"))
	if err != nil {
		t.Fatalf("ParseMap: %v", err)
	}
	pl := NewPlayer("you", 20, 500)
	pl.P = p
	e := New(m, pl, Config{})
	e.Seed(seed)
	return e
}

func openRows(w, h int) []string {
	rows := make([]string, h)
	for i := range rows {
		rows[i] = strings.Repeat(".", w)
	}
	return rows
}

func addTestMonster(t *testing.T, e *Engine, sp *Species, p gruid.Point) (Handle, *Monster) {
	t.Helper()
	mons := NewMonster(sp, p)
	h := e.AddMonster(mons)
	if !h.Valid() {
		t.Fatalf("cannot place %s at %v", sp.Name, p)
	}
	return h, mons
}

func containsMessage(msgs []string, sub string) bool {
	for _, msg := range msgs {
		if strings.Contains(msg, sub) {
			return true
		}
	}
	return false
}

// deathRecorder records deaths reported by the engine.
type deathRecorder struct {
	monsters []string
	forced   []bool
	killer   string
}

func (dr *deathRecorder) MonsterDied(h Handle, mons *Monster, forced bool) {
	dr.monsters = append(dr.monsters, mons.Name)
	dr.forced = append(dr.forced, forced)
}

func (dr *deathRecorder) PlayerDied(killer string) {
	dr.killer = killer
}

// virtueRecorder sums the virtue changes reported by the engine.
type virtueRecorder struct {
	virtues map[Virtue]int
}

func (vr *virtueRecorder) Virtue(v Virtue, amount int) {
	if vr.virtues == nil {
		vr.virtues = map[Virtue]int{}
	}
	vr.virtues[v] += amount
}

func (vr *virtueRecorder) Diary(string) {}
