package blast

import (
	"bytes"
	"compress/zlib"
	"encoding/gob"
	"errors"
	"fmt"

	"codeberg.org/anaseto/gruid"
)

// capturedMonster is the snapshot of a monster stored in a capture ball.
type capturedMonster struct {
	Species    Species
	Name       string
	HP         int
	MaxHP      int
	MaxMaxHP   int
	Speed      int
	Allegiance Allegiance
	Clone      bool
}

// encodeCapture returns compressed snapshot data for a monster.
func encodeCapture(mons *Monster) ([]byte, error) {
	cm := capturedMonster{
		Species:    *mons.Species,
		Name:       mons.Name,
		HP:         mons.HP,
		MaxHP:      mons.MaxHP,
		MaxMaxHP:   mons.MaxMaxHP,
		Speed:      mons.Speed,
		Allegiance: mons.Allegiance,
		Clone:      mons.Clone,
	}
	data := bytes.Buffer{}
	enc := gob.NewEncoder(&data)
	if err := enc.Encode(&cm); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	w.Write(data.Bytes())
	err := w.Close()
	return buf.Bytes(), err
}

// decodeCapture retrieves a snapshot encoded with encodeCapture.
func decodeCapture(data []byte) (*capturedMonster, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	dec := gob.NewDecoder(r)
	cm := &capturedMonster{}
	if err := dec.Decode(cm); err != nil {
		return nil, err
	}
	err = r.Close()
	return cm, err
}

// captureMonster converts a monster into a capture ball and removes it from
// the level. The ball goes to the player's inventory when the player cast
// the effect, and drops on the floor otherwise.
func (e *Engine) captureMonster(h Handle, mons *Monster, byPlayer bool) (*Item, error) {
	data, err := encodeCapture(mons)
	if err != nil {
		return nil, fmt.Errorf("capturing %s: %w", mons.Name, err)
	}
	it := &Item{Kind: ItemCaptureBall, Name: "capture ball", Capture: data}
	p := mons.P
	e.removeMonster(h)
	if byPlayer {
		e.Player.Inventory = append(e.Player.Inventory, it)
	} else {
		e.Map.AddItem(p, it)
	}
	return it, nil
}

// ErrEmptyCapture is returned when releasing a capture ball without content.
var ErrEmptyCapture = errors.New("capture ball is empty")

// Release frees the monster stored in a capture ball on the closest free
// cell from at. The ball is emptied. It returns the handle of the released
// monster.
func (e *Engine) Release(it *Item, at gruid.Point) (Handle, error) {
	if it.Kind != ItemCaptureBall || len(it.Capture) == 0 {
		return NoHandle, ErrEmptyCapture
	}
	cm, err := decodeCapture(it.Capture)
	if err != nil {
		return NoHandle, fmt.Errorf("releasing capture ball: %w", err)
	}
	p := e.freeNear(at, 3)
	if p == InvalidPos {
		return NoHandle, fmt.Errorf("releasing %s: no free cell near %v", cm.Name, at)
	}
	sp := e.findSpecies(cm.Species.Name)
	if sp == nil {
		sp = &cm.Species
		sp.Known = Knowledge{}
	}
	mons := NewMonster(sp, p)
	mons.Name = cm.Name
	mons.HP = cm.HP
	mons.MaxHP = cm.MaxHP
	mons.MaxMaxHP = cm.MaxMaxHP
	mons.Speed = cm.Speed
	mons.Allegiance = cm.Allegiance
	mons.Clone = cm.Clone
	h := e.AddMonster(mons)
	it.Capture = nil
	return h, nil
}

// findSpecies returns the pool species with the given name, if any.
func (e *Engine) findSpecies(name string) *Species {
	for _, sp := range e.Species {
		if sp.Name == name {
			return sp
		}
	}
	return nil
}
