package blast

// Config describes the tunable limits of the engine. Zero fields are replaced
// by their default value.
type Config struct {
	MaxRange          int `json:"max_range,omitempty"`          // maximum length of a line of fire
	MaxSight          int `json:"max_sight,omitempty"`          // player's view radius
	MaxAreaCells      int `json:"max_area_cells,omitempty"`     // hard cap on cells affected by one delivery
	ReflectAttempts   int `json:"reflect_attempts,omitempty"`   // jitter attempts when picking a reflection target
	ReflectSuppress   int `json:"reflect_suppress,omitempty"`   // reflection fails one time in ReflectSuppress
	MaxReflectDepth   int `json:"max_reflect_depth,omitempty"`  // maximum number of chained reflections
	InvulnPenetration int `json:"invuln_penetration,omitempty"` // damage goes through invulnerability one time in InvulnPenetration
	FallDamageCap     int `json:"fall_damage_cap,omitempty"`    // cap on damage used for dismount checks
	PolyAttempts      int `json:"poly_attempts,omitempty"`      // species draws when polymorphing
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxRange:          18,
		MaxSight:          20,
		MaxAreaCells:      1024,
		ReflectAttempts:   10,
		ReflectSuppress:   10,
		MaxReflectDepth:   8,
		InvulnPenetration: 13,
		FallDamageCap:     200,
		PolyAttempts:      100,
	}
}

// withDefaults returns a copy of the configuration with zero fields replaced
// by defaults.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	set := func(v *int, def int) {
		if *v <= 0 {
			*v = def
		}
	}
	set(&c.MaxRange, d.MaxRange)
	set(&c.MaxSight, d.MaxSight)
	set(&c.MaxAreaCells, d.MaxAreaCells)
	set(&c.ReflectAttempts, d.ReflectAttempts)
	set(&c.ReflectSuppress, d.ReflectSuppress)
	set(&c.MaxReflectDepth, d.MaxReflectDepth)
	set(&c.InvulnPenetration, d.InvulnPenetration)
	set(&c.FallDamageCap, d.FallDamageCap)
	set(&c.PolyAttempts, d.PolyAttempts)
	return c
}
