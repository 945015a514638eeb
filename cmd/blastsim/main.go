// Command blastsim runs the casts of a JSON scenario through the effect
// engine, and prints the narrative log and a map snapshot after each one.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"codeberg.org/anaseto/gruid"
	"github.com/invopop/jsonschema"

	"codeberg.org/anaseto/blast"
	"codeberg.org/anaseto/blast/internal/logger"
)

func main() {
	optSchema := flag.Bool("schema", false, "print the scenario JSON schema and exit")
	optNoMap := flag.Bool("n", false, "do not print map snapshots")
	optVersion := flag.Bool("version", false, "print build info")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: blastsim [options] scenario.json\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *optVersion {
		if bi, ok := debug.ReadBuildInfo(); ok {
			fmt.Print(bi)
		}
		os.Exit(0)
	}
	logger.Init(os.Stderr)
	log := logger.Component("blastsim")
	if *optSchema {
		if err := writeSchema(os.Stdout); err != nil {
			log.WithError(err).Fatal("schema generation failed")
		}
		return
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	sc, err := LoadScenario(flag.Arg(0))
	if err != nil {
		log.WithError(err).Fatal("cannot load scenario")
	}
	if err := run(os.Stdout, sc, !*optNoMap); err != nil {
		log.WithError(err).Fatal("scenario failed")
	}
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
	}
	return reflector.Reflect(new(Scenario))
}

func writeSchema(w io.Writer) error {
	data, err := json.MarshalIndent(buildSchema(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// run builds the scenario and runs each cast in order.
func run(w io.Writer, sc *Scenario, showMap bool) error {
	e, handles, err := sc.Build()
	if err != nil {
		return fmt.Errorf("build scenario: %w", err)
	}
	e.SetLogger(logger.Component("blast"))
	for i, c := range sc.Casts {
		d, err := c.Descriptor(handles)
		if err != nil {
			return fmt.Errorf("cast %d: %w", i, err)
		}
		from := e.Logs.Index
		res := e.Propagate(d)
		fmt.Fprintf(w, "== cast %d: %s (%s) from %s ==\n", i, d.Type, d.Flags, d.Source.Kind)
		for _, msg := range e.Messages(from) {
			fmt.Fprintln(w, msg)
		}
		fmt.Fprintf(w, "obvious: %v, hits: %d, reflections: %d", res.Obvious, res.Hit, res.Reflections)
		if res.CapacityExceeded {
			fmt.Fprint(w, ", area truncated")
		}
		fmt.Fprintln(w)
		if showMap {
			fmt.Fprint(w, snapshot(e))
		}
		if e.Player.IsDead() {
			fmt.Fprintf(w, "You were killed by %s.\n", e.Player.Killer)
			break
		}
	}
	return nil
}

// snapshot returns the map with actors drawn over the terrain: '@' for the
// player and the first letter of the name for monsters.
func snapshot(e *blast.Engine) string {
	rows := strings.Split(strings.TrimSuffix(e.Map.String(), "\n"), "\n")
	grid := make([][]rune, len(rows))
	for y, row := range rows {
		grid[y] = []rune(row)
	}
	draw := func(p gruid.Point, r rune) {
		if p.Y >= 0 && p.Y < len(grid) && p.X >= 0 && p.X < len(grid[p.Y]) {
			grid[p.Y][p.X] = r
		}
	}
	for _, mons := range e.Monsters.All() {
		r := 'm'
		if name := mons.Name; name != "" {
			r = []rune(name)[0]
		}
		draw(mons.P, r)
	}
	if !e.Player.IsDead() {
		draw(e.Player.P, '@')
	}
	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}
