package blast

import (
	"strings"
	"testing"

	"codeberg.org/anaseto/gruid"
)

func TestParseMap(t *testing.T) {
	rows := []string{
		"#X:+'L",
		"T=v~W^",
		";*....",
	}
	m, err := ParseMap(strings.Join(rows, "\n"))
	if err != nil {
		t.Fatalf("ParseMap: %v", err)
	}
	if size := m.Size(); size != (gruid.Point{6, 3}) {
		t.Errorf("bad size: %v", size)
	}
	tests := []struct {
		p    gruid.Point
		want string
	}{
		{gruid.Point{0, 0}, "wall"},
		{gruid.Point{1, 0}, "permanent wall"},
		{gruid.Point{5, 0}, "locked door"},
		{gruid.Point{1, 1}, "glass wall"},
		{gruid.Point{4, 1}, "deep water"},
		{gruid.Point{0, 2}, "rune"},
		{gruid.Point{1, 2}, "floor"},
	}
	for _, tc := range tests {
		if got := TerrainName(m.At(tc.p)); got != tc.want {
			t.Errorf("terrain at %v: got %q, want %q", tc.p, got, tc.want)
		}
	}
	if !m.Mirrors.At(gruid.Point{1, 2}) {
		t.Errorf("no mirror at (1,2)")
	}
	if got, want := m.String(), strings.Join(rows, "\n")+"\n"; got != want {
		t.Errorf("bad round trip:\n%s\nwant:\n%s", got, want)
	}
}

func TestParseMapErrors(t *testing.T) {
	if _, err := ParseMap("..\n.?"); err == nil {
		t.Errorf("no error for unknown rune")
	}
	if _, err := ParseMap("...\n."); err == nil {
		t.Errorf("no error for ragged lines")
	}
	if _, err := ParseMap("..\n..\n..."); err == nil {
		t.Errorf("no error for a longer last line")
	}
}
