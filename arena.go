package blast

import "iter"

// Handle identifies a monster slot in an Arena. A handle captured before an
// operation that can remove or replace the monster (death, capture,
// polymorph) must be validated again with Arena.Get afterwards.
type Handle struct {
	Index int32
	Gen   uint32
}

// NoHandle is the invalid handle.
var NoHandle = Handle{Index: -1}

// Valid reports whether the handle may refer to a slot. It does not check
// the generation: use Arena.Get for that.
func (h Handle) Valid() bool {
	return h.Index >= 0
}

type arenaSlot struct {
	m   *Monster
	gen uint32
}

// Arena stores monsters with stable indices and generation counters.
type Arena struct {
	slots []arenaSlot
	free  []int32
	n     int
}

// Add stores a monster and returns its handle.
func (ar *Arena) Add(m *Monster) Handle {
	if k := len(ar.free); k > 0 {
		i := ar.free[k-1]
		ar.free = ar.free[:k-1]
		ar.slots[i].m = m
		ar.n++
		return Handle{Index: i, Gen: ar.slots[i].gen}
	}
	ar.slots = append(ar.slots, arenaSlot{m: m})
	ar.n++
	return Handle{Index: int32(len(ar.slots) - 1)}
}

// Get returns the monster for a handle, or nil if the handle is stale.
func (ar *Arena) Get(h Handle) *Monster {
	if h.Index < 0 || int(h.Index) >= len(ar.slots) {
		return nil
	}
	s := ar.slots[h.Index]
	if s.gen != h.Gen {
		return nil
	}
	return s.m
}

// Remove frees the slot of a handle. It reports whether the handle was
// valid.
func (ar *Arena) Remove(h Handle) bool {
	if ar.Get(h) == nil {
		return false
	}
	s := &ar.slots[h.Index]
	s.m = nil
	s.gen++
	ar.free = append(ar.free, h.Index)
	ar.n--
	return true
}

// Replace puts a new monster in the slot of a valid handle, invalidating
// the old handle. It returns the new handle.
func (ar *Arena) Replace(h Handle, m *Monster) Handle {
	if ar.Get(h) == nil {
		return NoHandle
	}
	s := &ar.slots[h.Index]
	s.m = m
	s.gen++
	return Handle{Index: h.Index, Gen: s.gen}
}

// Len returns the number of stored monsters.
func (ar *Arena) Len() int {
	return ar.n
}

// All returns an iterator over the stored monsters.
func (ar *Arena) All() iter.Seq2[Handle, *Monster] {
	return func(yield func(Handle, *Monster) bool) {
		for i, s := range ar.slots {
			if s.m == nil {
				continue
			}
			if !yield(Handle{Index: int32(i), Gen: s.gen}, s.m) {
				return
			}
		}
	}
}
