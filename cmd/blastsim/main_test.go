package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testScenario = `{
	"seed": 3,
	"map": [
		"#########",
		"#.......#",
		"#.......#",
		"#########"
	],
	"species": [
		{"name": "kobold", "level": 2, "hp": 8},
		{"name": "shaman", "level": 8, "hp": 30, "resists": ["fire"]}
	],
	"monsters": [
		{"species": "kobold", "at": [5, 1]},
		{"species": "shaman", "at": [7, 2]}
	],
	"player": {"at": [1, 1], "level": 10, "hp": 100, "resists": ["im_cold"]},
	"casts": [
		{"source": "player", "target": [5, 1], "damage": 50, "type": "fire"},
		{"source": "monster", "monster": 1, "target": [1, 1], "damage": 40, "type": "cold"}
	]
}`

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, testScenario))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := run(&buf, sc, true); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"== cast 0: fire", "The kobold dies.", "== cast 1: cold", "@"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "You were killed") {
		t.Errorf("player died:\n%s", out)
	}
}

func TestBuildErrors(t *testing.T) {
	for name, content := range map[string]string{
		"species": `{"map": ["..."], "player": {"at": [0, 0]}, "monsters": [{"species": "ghost", "at": [1, 0]}], "casts": []}`,
		"flag":    `{"map": ["..."], "player": {"at": [0, 0], "resists": ["wood"]}, "casts": []}`,
		"place":   `{"map": ["..."], "player": {"at": [5, 0]}, "casts": []}`,
		"ridden":  `{"map": ["..."], "species": [{"name": "horse", "hp": 9}], "monsters": [{"species": "horse", "at": [2, 0], "ridden": true}], "player": {"at": [0, 0]}, "casts": []}`,
	} {
		sc, err := LoadScenario(writeScenario(t, content))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if _, _, err := sc.Build(); err == nil {
			t.Errorf("%s: no error", name)
		}
	}
	if _, err := LoadScenario(writeScenario(t, "{")); err == nil {
		t.Errorf("invalid JSON loaded")
	}
}

func TestCastDescriptor(t *testing.T) {
	if _, err := (CastDef{Source: "player", Type: "nothing"}).Descriptor(nil); err == nil {
		t.Errorf("unknown type accepted")
	}
	if _, err := (CastDef{Source: "monster", Monster: 2, Type: "fire"}).Descriptor(nil); err == nil {
		t.Errorf("missing monster accepted")
	}
	if _, err := (CastDef{Source: "player", Type: "fire", Flags: []string{"sideways"}}).Descriptor(nil); err == nil {
		t.Errorf("unknown flag accepted")
	}
	d, err := (CastDef{Source: "trap", From: [2]int{1, 2}, Radius: 2, Type: "fire"}).Descriptor(nil)
	if err != nil {
		t.Fatal(err)
	}
	if d.Source.P.X != 1 || d.Source.P.Y != 2 || d.Radius != 2 || d.Flags == 0 {
		t.Errorf("bad descriptor: %+v", d)
	}
}

func TestWriteSchema(t *testing.T) {
	var buf bytes.Buffer
	if err := writeSchema(&buf); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"casts"`, `"player"`, `"required"`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("schema does not contain %s", want)
		}
	}
}
