package blast

// polymorphSpecies draws a new species for a monster of the given level
// from the engine pool. The accepted level window is random and narrow
// most of the time. It returns nil if no suitable species was drawn.
func (e *Engine) polymorphSpecies(old *Species) *Species {
	if len(e.Species) == 0 {
		return nil
	}
	lv1 := old.Level - (e.Die(20)/e.Die(9) + 1)
	lv2 := old.Level + (e.Die(20)/e.Die(9) + 1)
	for range e.Config.PolyAttempts {
		sp := e.Species[e.IntN(len(e.Species))]
		if sp == old || sp.Unique() || sp.Race.Any(RaceQuest) {
			continue
		}
		if sp.Level < lv1 || sp.Level > lv2 {
			continue
		}
		return sp
	}
	return nil
}

// polymorph replaces a monster in place by a monster of a new species. The
// old handle becomes stale: the returned handle and monster must be used
// instead. It returns a nil monster if the polymorph failed, in which case
// the old handle is still valid.
func (e *Engine) polymorph(h Handle, mons *Monster) (Handle, *Monster) {
	if mons.Species.Unique() || mons.Race(RaceQuest) || e.isMount(h) {
		return h, nil
	}
	sp := e.polymorphSpecies(mons.Species)
	if sp == nil {
		return h, nil
	}
	nm := NewMonster(sp, mons.P)
	nm.Allegiance = mons.Allegiance
	nm.NoPet = mons.NoPet
	nh := e.Monsters.Replace(h, nm)
	if !nh.Valid() {
		return h, nil
	}
	e.Map.Occupants.Set(nm.P, nh)
	return nh, nm
}
