package blast

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

var terrainRunes = []rune{
	Floor:         '.',
	Wall:          '#',
	PermanentWall: 'X',
	Rubble:        ':',
	DoorClosed:    '+',
	DoorOpen:      '\'',
	DoorLocked:    'L',
	Tree:          'T',
	GlassWall:     '=',
	Lava:          'v',
	ShallowWater:  '~',
	DeepWater:     'W',
	Trap:          '^',
	Rune:          ';',
}

// mirrorRune is a floor cell with a mirror.
const mirrorRune = '*'

// ParseMap parses a textual map, one line per row. Lines must have the same
// length. A '*' is a floor cell with a mirror; other runes are terrain, as
// written by Map.String.
func ParseMap(s string) (*Map, error) {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	width := utf8.RuneCountInString(lines[0])
	for i, line := range lines[1:] {
		if n := utf8.RuneCountInString(line); n != width {
			return nil, fmt.Errorf("parse map: line %d has %d runes, want %d", i+2, n, width)
		}
	}
	v := &rl.Vault{}
	v.SetRunes(string(terrainRunes) + string(mirrorRune))
	if err := v.Parse(s); err != nil {
		return nil, fmt.Errorf("parse map: %w", err)
	}
	size := v.Size()
	m := NewMap(size.X, size.Y)
	v.Iter(func(p gruid.Point, r rune) {
		if r == mirrorRune {
			m.Mirrors.Set(p, true)
			return
		}
		for t, tr := range terrainRunes {
			if tr == r {
				m.Terrain.Set(p, rl.Cell(t))
				break
			}
		}
	})
	return m, nil
}

// String returns the textual representation of the map terrain.
func (m *Map) String() string {
	var sb strings.Builder
	size := m.Size()
	for y := range size.Y {
		for x := range size.X {
			p := gruid.Point{x, y}
			t := m.Terrain.At(p)
			switch {
			case m.Mirrors.At(p) && t == Floor:
				sb.WriteRune(mirrorRune)
			case int(t) < len(terrainRunes):
				sb.WriteRune(terrainRunes[t])
			default:
				sb.WriteRune('?')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
