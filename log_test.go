package blast

import (
	"slices"
	"testing"

	"codeberg.org/anaseto/gruid"
)

func TestLogFolding(t *testing.T) {
	e := newTestEngine(t, 1, gruid.Point{0, 0}, openRows(3, 3)...)
	e.newTick()
	e.Logf("The orc is hit.")
	e.Logf("The orc is hit.")
	e.Logf("The orc is hit.")
	e.Logf("the orc dies.")
	e.newTick()
	e.Logf("The orc dies.")
	want := []string{"• The orc is hit. (3×)", "The orc dies.", "• The orc dies."}
	if got := e.Messages(0); !slices.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := e.Messages(2); len(got) != 1 {
		t.Errorf("got %q from index 2", got)
	}
}

func TestUpperFirst(t *testing.T) {
	for s, want := range map[string]string{
		"":         "",
		"orc":      "Orc",
		"Orc":      "Orc",
		"écu":      "Écu",
		"1 corpse": "1 corpse",
	} {
		if got := UpperFirst(s); got != want {
			t.Errorf("UpperFirst(%q): got %q, want %q", s, got, want)
		}
	}
}
