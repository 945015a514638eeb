package blast

import "strings"

// Flags describes how a delivery travels and what it may affect, as a bitset.
type Flags uint32

// Has reports whether any of the flags is in the set.
func (f Flags) Has(of Flags) bool {
	return f&of != 0
}

// Delivery flags.
const (
	FlagJump         Flags = 1 << iota // start at the target directly (no line of fire)
	FlagBeam                           // affect every cell of the line of fire
	FlagBolt                           // rendered as a bolt (no effect on resolution)
	FlagThru                           // continue past the target up to maximum range
	FlagStop                           // stop at the first occupied cell
	FlagGrid                           // affect terrain
	FlagItem                           // affect item piles
	FlagKill                           // affect monsters and the player
	FlagHide                           // suppress animation
	FlagDisintegrate                   // only permanent terrain obstructs
	FlagLOS                            // obstructed by sight blockers instead of projectile blockers
	FlagReflectable                    // may bounce off reflecting targets
	FlagPlayer                         // aimed specifically at the player, even when mounted
	FlagAimed                          // aimed at the explicit target cell
	FlagFast                           // no per-step animation delay

	NoFlags Flags = 0
)

// Common flag combinations.
const (
	FlagsBolt   = FlagStop | FlagKill | FlagReflectable | FlagBolt
	FlagsBeam   = FlagBeam | FlagKill | FlagGrid | FlagItem
	FlagsBall   = FlagStop | FlagKill | FlagGrid | FlagItem
	FlagsBreath = FlagKill | FlagGrid | FlagItem
)

var flagNames = []struct {
	f    Flags
	name string
}{
	{FlagJump, "jump"},
	{FlagBeam, "beam"},
	{FlagBolt, "bolt"},
	{FlagThru, "thru"},
	{FlagStop, "stop"},
	{FlagGrid, "grid"},
	{FlagItem, "item"},
	{FlagKill, "kill"},
	{FlagHide, "hide"},
	{FlagDisintegrate, "disintegrate"},
	{FlagLOS, "los"},
	{FlagReflectable, "reflectable"},
	{FlagPlayer, "player"},
	{FlagAimed, "aimed"},
	{FlagFast, "fast"},
}

func (f Flags) String() string {
	var names []string
	for _, fn := range flagNames {
		if f.Has(fn.f) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}

// ParseFlags returns the flags named in the list. Unknown names are reported
// in the second return value.
func ParseFlags(names []string) (Flags, []string) {
	var f Flags
	var unknown []string
loop:
	for _, s := range names {
		s = strings.ToLower(strings.TrimSpace(s))
		for _, fn := range flagNames {
			if fn.name == s {
				f |= fn.f
				continue loop
			}
		}
		unknown = append(unknown, s)
	}
	return f, unknown
}
