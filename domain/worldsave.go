package domain

import (
	"strings"

	"github.com/vertyco/arkparser"
)

// WorldSave wraps a decoded arkparser.WorldSave, exposing the typed
// Creature/Structure views instead of raw GameObjects, grounded on
// models/creature.py and models/structure.py's intended call sites
// (save.tamed_creatures, save.wild_creatures, save.structures).
type WorldSave struct {
	save *arkparser.WorldSave
}

// NewWorldSave wraps save. save must be non-nil.
func NewWorldSave(save *arkparser.WorldSave) WorldSave { return WorldSave{save: save} }

func statusComponentOf(obj *arkparser.GameObject) *arkparser.GameObject {
	for _, comp := range obj.Components {
		if strings.Contains(comp.ClassName, "CharacterStatusComponent") || strings.Contains(comp.ClassName, "DinoCharacterStatus") {
			return comp
		}
	}
	return nil
}

// TamedCreatures returns every tamed creature, paired with its status
// component when one was decoded.
func (w WorldSave) TamedCreatures() []Creature {
	objs := w.save.GetTamedCreatures()
	out := make([]Creature, 0, len(objs))
	for _, obj := range objs {
		out = append(out, NewCreature(obj, statusComponentOf(obj)))
	}
	return out
}

// WildCreatures returns every untamed creature, paired with its status
// component when one was decoded.
func (w WorldSave) WildCreatures() []Creature {
	objs := w.save.GetWildCreatures()
	out := make([]Creature, 0, len(objs))
	for _, obj := range objs {
		out = append(out, NewCreature(obj, statusComponentOf(obj)))
	}
	return out
}

// Structures returns every tribe-owned placed structure.
func (w WorldSave) Structures() []Structure {
	objs := w.save.GetStructures()
	out := make([]Structure, 0, len(objs))
	for _, obj := range objs {
		out = append(out, NewStructure(obj))
	}
	return out
}

// ParseErrors exposes the underlying world save's per-object decode
// failures.
func (w WorldSave) ParseErrors() []arkparser.ObjectDecodeError { return w.save.ParseErrors }
