package domain

import (
	"github.com/vertyco/arkparser"
)

// Creature wraps a world-save creature GameObject and (optionally) its
// status component, grounded on models/creature.py's Creature base.
// WildCreature and TamedCreature are both represented by this one type:
// the tamed-only fields simply read zero/empty when the underlying
// object carries no taming data.
type Creature struct {
	obj    *arkparser.GameObject
	status *arkparser.GameObject
}

// NewCreature wraps obj and its status component (nil if the creature
// has none decoded, e.g. a dead body with no attached status actor).
func NewCreature(obj, status *arkparser.GameObject) Creature {
	return Creature{obj: obj, status: status}
}

func (c Creature) prop(name string) arkparser.PropertyValue {
	if c.obj == nil {
		return nil
	}
	p, ok := c.obj.GetProperty(name)
	if !ok {
		return nil
	}
	return p.Value
}

func (c Creature) statusProp(name string) arkparser.PropertyValue {
	if c.status == nil {
		return nil
	}
	p, ok := c.status.GetProperty(name)
	if !ok {
		return nil
	}
	return p.Value
}

func (c Creature) indexedPoints(name string) map[string]int64 {
	out := make(map[string]int64, len(statNames))
	if c.status == nil {
		return out
	}
	for i, stat := range statNames {
		if p, ok := c.status.GetPropertyIndexed(name, int32(i)); ok {
			if v, ok := arkparser.AsInt64(p.Value); ok {
				out[stat] = v
			}
		}
	}
	return out
}

// ClassName is the creature's blueprint class.
func (c Creature) ClassName() string {
	if c.obj == nil {
		return ""
	}
	return c.obj.ClassName
}

// GUID is the creature's unique identifier (ASA only; empty on ASE).
func (c Creature) GUID() string {
	if c.obj == nil || c.obj.GUID == nil {
		return ""
	}
	return c.obj.GUID.String()
}

// DinoID combines DinoID1/DinoID2 into ARK's canonical 64-bit dino ID.
func (c Creature) DinoID() int64 {
	id1, _ := arkparser.AsInt64(c.prop("DinoID1"))
	id2, _ := arkparser.AsInt64(c.prop("DinoID2"))
	if id1 == 0 || id2 == 0 {
		return 0
	}
	return (id1 << 32) | (id2 & 0xFFFFFFFF)
}

// IsFemale reports the creature's recorded sex.
func (c Creature) IsFemale() bool {
	b, _ := arkparser.AsBool(c.prop("bIsFemale"))
	return b
}

// Gender renders IsFemale as ARK's two-value gender string.
func (c Creature) Gender() string {
	if c.IsFemale() {
		return "Female"
	}
	return "Male"
}

// IsBaby reports whether the creature has not finished maturing.
func (c Creature) IsBaby() bool {
	b, _ := arkparser.AsBool(c.prop("bIsBaby"))
	return b
}

// IsNeutered reports whether the creature has been spayed/neutered.
func (c Creature) IsNeutered() bool {
	b, _ := arkparser.AsBool(c.prop("bNeutered"))
	return b
}

// Colors returns the 6 color-region indices, zero-filled for any region
// absent from the decoded properties.
func (c Creature) Colors() [6]int64 {
	var out [6]int64
	for i := range out {
		if c.obj != nil {
			if p, ok := c.obj.GetPropertyIndexed("ColorSetIndices", int32(i)); ok {
				out[i], _ = arkparser.AsInt64(p.Value)
			}
		}
	}
	return out
}

// BaseLevel is the wild/base level before any tamed levels.
func (c Creature) BaseLevel() int64 {
	v, ok := arkparser.AsInt64(c.statusProp("BaseCharacterLevel"))
	if !ok {
		return 1
	}
	return v
}

// BaseStats are the wild stat points applied at spawn.
func (c Creature) BaseStats() map[string]int64 { return c.indexedPoints("NumberOfLevelUpPointsApplied") }

// Location is the creature's last recorded world position.
func (c Creature) Location() *arkparser.Location {
	if c.obj == nil {
		return nil
	}
	return c.obj.Location
}

// WildScale is the random size-variation multiplier.
func (c Creature) WildScale() float64 {
	v, ok := arkparser.AsFloat64(c.prop("WildRandomScale"))
	if !ok {
		return 1.0
	}
	return v
}

// Maturation is baby growth progress, 1.0 for adults.
func (c Creature) Maturation() float64 {
	if !c.IsBaby() {
		return 1.0
	}
	v, ok := arkparser.AsFloat64(c.prop("BabyAge"))
	if !ok {
		return 1.0
	}
	return v
}

// --- Tamed-only fields; read as zero value on wild creatures. ---

// Name is the tamed name given by the player.
func (c Creature) Name() string {
	s, _ := arkparser.AsString(c.prop("TamedName"))
	return s
}

// TribeName is the name of the owning tribe.
func (c Creature) TribeName() string {
	s, _ := arkparser.AsString(c.prop("TribeName"))
	return s
}

// TamerName is the player who tamed this creature.
func (c Creature) TamerName() string {
	s, _ := arkparser.AsString(c.prop("TamerString"))
	return s
}

// ExtraLevel is levels gained after taming.
func (c Creature) ExtraLevel() int64 {
	v, _ := arkparser.AsInt64(c.statusProp("ExtraCharacterLevel"))
	return v
}

// Level is total level (base + extra).
func (c Creature) Level() int64 { return c.BaseLevel() + c.ExtraLevel() }

// ImprintQuality is the imprint percentage, 0.0-1.0.
func (c Creature) ImprintQuality() float64 {
	v, _ := arkparser.AsFloat64(c.statusProp("DinoImprintingQuality"))
	return v
}

// ImprinterName is the player who imprinted this creature.
func (c Creature) ImprinterName() string {
	s, _ := arkparser.AsString(c.prop("ImprinterName"))
	return s
}

// TamedStats are stat points added after taming.
func (c Creature) TamedStats() map[string]int64 {
	return c.indexedPoints("NumberOfLevelUpPointsAppliedTamed")
}

// MutatedStats are stat points gained through mutation.
func (c Creature) MutatedStats() map[string]int64 {
	return c.indexedPoints("NumberOfMutationsAppliedTamed")
}

// Experience is current experience points.
func (c Creature) Experience() float64 {
	v, _ := arkparser.AsFloat64(c.statusProp("ExperiencePoints"))
	return v
}

// IsClone reports whether the creature was cloned.
func (c Creature) IsClone() bool {
	if b, _ := arkparser.AsBool(c.prop("bIsClone")); b {
		return true
	}
	b, _ := arkparser.AsBool(c.prop("bIsCloneDino"))
	return b
}

// IsCryo reports whether the creature is currently stored in a cryopod.
func (c Creature) IsCryo() bool {
	b, _ := arkparser.AsBool(c.prop("IsInCryo"))
	return b
}

// MutationsFemale is the mutation count from the female line.
func (c Creature) MutationsFemale() int64 {
	v, _ := arkparser.AsInt64(c.prop("RandomMutationsFemale"))
	return v
}

// MutationsMale is the mutation count from the male line.
func (c Creature) MutationsMale() int64 {
	v, _ := arkparser.AsInt64(c.prop("RandomMutationsMale"))
	return v
}

// TotalMutations is the combined mutation count across both lines.
func (c Creature) TotalMutations() int64 { return c.MutationsFemale() + c.MutationsMale() }

// IsTamed reports whether the creature carries a taming-team ID,
// distinguishing a TamedCreature view from a wild one.
func (c Creature) IsTamed() bool {
	if c.obj == nil {
		return false
	}
	_, ok := c.obj.GetProperty("TamingTeamID")
	return ok
}
