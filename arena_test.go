package blast

import (
	"testing"

	"codeberg.org/anaseto/gruid"
)

func TestArena(t *testing.T) {
	var ar Arena
	sp := &Species{Name: "rat", HP: 3}
	a := NewMonster(sp, gruid.Point{0, 0})
	b := NewMonster(sp, gruid.Point{1, 0})
	ha, hb := ar.Add(a), ar.Add(b)
	if ar.Get(ha) != a || ar.Get(hb) != b || ar.Len() != 2 {
		t.Fatalf("bad arena after adds")
	}
	if !ar.Remove(ha) || ar.Remove(ha) {
		t.Errorf("bad removal results")
	}
	if ar.Get(ha) != nil {
		t.Errorf("stale handle still valid")
	}
	c := NewMonster(sp, gruid.Point{2, 0})
	hc := ar.Add(c)
	if hc.Index != ha.Index || hc == ha {
		t.Errorf("slot not reused with a new generation: %v %v", ha, hc)
	}
	if ar.Get(ha) != nil || ar.Get(hc) != c {
		t.Errorf("bad lookup after reuse")
	}
	d := NewMonster(sp, gruid.Point{3, 0})
	hd := ar.Replace(hb, d)
	if ar.Get(hb) != nil || ar.Get(hd) != d {
		t.Errorf("bad lookup after replace")
	}
	if ar.Replace(hb, d) != NoHandle {
		t.Errorf("replaced through a stale handle")
	}
	n := 0
	for h, m := range ar.All() {
		if ar.Get(h) != m {
			t.Errorf("iterated handle %v does not match", h)
		}
		n++
	}
	if n != 2 || ar.Len() != 2 {
		t.Errorf("got %d monsters (Len %d), want 2", n, ar.Len())
	}
	if ar.Get(NoHandle) != nil || NoHandle.Valid() {
		t.Errorf("NoHandle is usable")
	}
}
