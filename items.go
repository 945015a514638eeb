package blast

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
)

// ItemKind describes the broad category of an item.
type ItemKind int

const (
	ItemWeapon ItemKind = iota
	ItemBow
	ItemAmmo
	ItemArmour
	ItemCloak
	ItemRing
	ItemAmulet
	ItemPotion
	ItemScroll
	ItemBook
	ItemWand
	ItemRod
	ItemStaff
	ItemFood
	ItemCaptureBall
	ItemPhoto
)

var itemKindNames = []string{
	ItemWeapon:      "weapon",
	ItemBow:         "bow",
	ItemAmmo:        "ammo",
	ItemArmour:      "armour",
	ItemCloak:       "cloak",
	ItemRing:        "ring",
	ItemAmulet:      "amulet",
	ItemPotion:      "potion",
	ItemScroll:      "scroll",
	ItemBook:        "book",
	ItemWand:        "wand",
	ItemRod:         "rod",
	ItemStaff:       "staff",
	ItemFood:        "food",
	ItemCaptureBall: "capture_ball",
	ItemPhoto:       "photo",
}

func (k ItemKind) String() string {
	if k < 0 || int(k) >= len(itemKindNames) {
		return fmt.Sprintf("item(%d)", int(k))
	}
	return itemKindNames[k]
}

// ParseItemKind returns the item kind with the given name.
func ParseItemKind(s string) (ItemKind, error) {
	for i, name := range itemKindNames {
		if name == s {
			return ItemKind(i), nil
		}
	}
	return ItemWeapon, fmt.Errorf("unknown item kind: %q", s)
}

// ItemFlags describes item properties as a bitset.
type ItemFlags uint16

// Any reports whether any of the flags is in the set.
func (f ItemFlags) Any(of ItemFlags) bool {
	return f&of != 0
}

const (
	ItemArtifact ItemFlags = 1 << iota
	ItemCursed
	ItemHeavyCursed
	ItemIdentified
	ItemIgnoreAcid
	ItemIgnoreElec
	ItemIgnoreFire
	ItemIgnoreCold
)

// Item is an item lying on the floor or carried by the player.
type Item struct {
	Kind    ItemKind
	Name    string
	Flags   ItemFlags
	Enchant int    // to-hit/to-dam or armour bonus
	Capture []byte // captured monster snapshot (capture balls)
	Photo   string // photographed monster (photos)
}

// hate describes the elements that can destroy an item.
type hate uint8

const (
	hateAcid hate = 1 << iota
	hateElec
	hateFire
	hateCold
)

func (kind ItemKind) hates() hate {
	switch kind {
	case ItemWeapon, ItemArmour:
		return hateAcid
	case ItemBow, ItemAmmo, ItemStaff:
		return hateAcid | hateFire
	case ItemCloak, ItemScroll, ItemBook:
		return hateAcid | hateFire
	case ItemRing, ItemAmulet, ItemWand, ItemRod:
		return hateElec
	case ItemPotion:
		return hateCold
	case ItemFood, ItemPhoto:
		return hateFire
	case ItemCaptureBall:
		return hateAcid | hateElec
	}
	return 0
}

// ignores returns the elements the item was made resistant to.
func (it *Item) ignores() hate {
	var h hate
	if it.Flags.Any(ItemIgnoreAcid) {
		h |= hateAcid
	}
	if it.Flags.Any(ItemIgnoreElec) {
		h |= hateElec
	}
	if it.Flags.Any(ItemIgnoreFire) {
		h |= hateFire
	}
	if it.Flags.Any(ItemIgnoreCold) {
		h |= hateCold
	}
	return h
}

// elementHate returns the elements carried by an effect type, as far as
// item destruction is concerned.
func elementHate(typ EffectType) hate {
	switch typ {
	case EffectAcid:
		return hateAcid
	case EffectElec:
		return hateElec
	case EffectFire, EffectLavaFlow:
		return hateFire
	case EffectCold, EffectIce, EffectShards, EffectSound, EffectForce:
		return hateCold
	case EffectPlasma:
		return hateFire | hateElec
	case EffectMeteor:
		return hateFire | hateCold
	case EffectMana, EffectSeeker, EffectSuperRay, EffectNuke, EffectDisintegrate, EffectRocket:
		return hateAcid | hateElec | hateFire | hateCold
	}
	return 0
}

// vulnerable reports whether the item may be destroyed by the effect.
func (it *Item) vulnerable(typ EffectType) bool {
	if it.Flags.Any(ItemArtifact) {
		return false
	}
	return elementHate(typ)&it.Kind.hates()&^it.ignores() != 0
}

func (it *Item) String() string {
	if it.Name != "" {
		return it.Name
	}
	return it.Kind.String()
}

// affectItems applies an effect to the item pile at p. It reports whether
// something observable happened.
func (e *Engine) affectItems(p gruid.Point, typ EffectType) bool {
	pile := e.Map.Items[p]
	if len(pile) == 0 {
		return false
	}
	seen := e.seen(p)
	obvious := false
	kept := pile[:0]
	var released []*Item
	for _, it := range pile {
		destroyed := false
		switch typ {
		case EffectHolyFire:
			switch {
			case it.Flags.Any(ItemArtifact):
			case it.Flags.Any(ItemHeavyCursed):
				destroyed = true
			case it.Flags.Any(ItemCursed):
				it.Flags &^= ItemCursed
				if seen {
					e.Logf("The %s glows softly.", it)
					obvious = true
				}
			}
		case EffectHellFire:
			if !it.Flags.Any(ItemArtifact|ItemCursed) && it.Kind.hates()&hateFire != 0 {
				destroyed = true
			}
		case EffectIdentify:
			if !it.Flags.Any(ItemIdentified) {
				it.Flags |= ItemIdentified
				if seen {
					e.Logf("You identify the %s.", it)
					obvious = true
				}
			}
		default:
			destroyed = it.vulnerable(typ)
		}
		if !destroyed {
			kept = append(kept, it)
			continue
		}
		if seen {
			e.Logf("The %s %s!", it, destroyVerb(typ))
			obvious = true
		}
		if it.Kind == ItemCaptureBall && len(it.Capture) > 0 {
			released = append(released, it)
		}
	}
	clear(pile[len(kept):])
	if len(kept) == 0 {
		delete(e.Map.Items, p)
	} else {
		e.Map.Items[p] = kept
	}
	for _, it := range released {
		h, err := e.Release(it, p)
		if err != nil {
			e.log.WithError(err).Warn("capture ball destroyed with unreadable content")
			continue
		}
		if mons := e.Monsters.Get(h); mons != nil && e.monsterSeen(mons) {
			e.Logf("The %s is freed from the broken ball.", mons.Name)
			obvious = true
		}
	}
	return obvious
}

func destroyVerb(typ EffectType) string {
	switch typ {
	case EffectAcid:
		return "melts"
	case EffectElec:
		return "is destroyed"
	case EffectFire, EffectLavaFlow, EffectPlasma, EffectHellFire, EffectHolyFire:
		return "burns up"
	case EffectCold, EffectIce, EffectShards, EffectSound, EffectForce:
		return "shatters"
	case EffectDisintegrate:
		return "evaporates"
	default:
		return "is destroyed"
	}
}

// damageInventory destroys carried items vulnerable to an element. Each
// vulnerable item is destroyed with probability perc percent. It returns the
// number of destroyed items.
func (e *Engine) damageInventory(typ EffectType, perc int) int {
	pl := e.Player
	n := 0
	kept := pl.Inventory[:0]
	for _, it := range pl.Inventory {
		if it.vulnerable(typ) && e.IntN(100) < perc {
			e.LogfStyled("Your %s %s!", logHurtPlayer, it, destroyVerb(typ))
			n++
			if it.Kind == ItemCaptureBall && len(it.Capture) > 0 {
				if _, err := e.Release(it, pl.P); err != nil {
					e.log.WithError(err).Warn("capture ball destroyed with unreadable content")
				}
			}
			continue
		}
		kept = append(kept, it)
	}
	clear(pl.Inventory[len(kept):])
	pl.Inventory = kept
	return n
}

// inventoryDamagePerc returns the per-item destruction chance for an
// elemental hit of the given damage.
func inventoryDamagePerc(dam int) int {
	switch {
	case dam < 30:
		return 1
	case dam < 60:
		return 2
	default:
		return 3
	}
}

// randomEquipment returns a random equipped item satisfying keep, or nil.
func (e *Engine) randomEquipment(keep func(*Item) bool) *Item {
	var candidates []*Item
	for _, it := range e.Player.Equipment {
		if keep(it) {
			candidates = append(candidates, it)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	return candidates[e.IntN(len(candidates))]
}
