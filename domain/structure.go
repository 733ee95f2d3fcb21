package domain

import "github.com/vertyco/arkparser"

// Structure wraps a placed-structure GameObject, grounded on
// models/structure.py's Structure.
type Structure struct {
	obj *arkparser.GameObject
}

// NewStructure wraps obj.
func NewStructure(obj *arkparser.GameObject) Structure { return Structure{obj: obj} }

func (s Structure) prop(name string) arkparser.PropertyValue {
	if s.obj == nil {
		return nil
	}
	p, ok := s.obj.GetProperty(name)
	if !ok {
		return nil
	}
	return p.Value
}

// ClassName is the structure's blueprint class.
func (s Structure) ClassName() string {
	if s.obj == nil {
		return ""
	}
	return s.obj.ClassName
}

// GUID is the structure's unique identifier (ASA only).
func (s Structure) GUID() string {
	if s.obj == nil || s.obj.GUID == nil {
		return ""
	}
	return s.obj.GUID.String()
}

// OwnerTribeID is the ID of the owning tribe.
func (s Structure) OwnerTribeID() int64 {
	v, _ := arkparser.AsInt64(s.prop("TargetingTeam"))
	return v
}

// OwnerName is the name recorded for the structure's owner (player or
// tribe, depending on how the structure was placed).
func (s Structure) OwnerName() string {
	v, _ := arkparser.AsString(s.prop("OwnerName"))
	return v
}

// Health is the structure's current health.
func (s Structure) Health() float64 {
	v, _ := arkparser.AsFloat64(s.prop("Health"))
	return v
}

// MaxHealth is the structure's maximum health.
func (s Structure) MaxHealth() float64 {
	v, _ := arkparser.AsFloat64(s.prop("MaxHealth"))
	return v
}

// Location is the structure's world position.
func (s Structure) Location() *arkparser.Location {
	if s.obj == nil {
		return nil
	}
	return s.obj.Location
}

// IsPowered reports whether an electrical structure currently has power.
func (s Structure) IsPowered() bool {
	v, _ := arkparser.AsBool(s.prop("bIsPowered"))
	return v
}

// IsLocked reports whether a door/container structure is locked.
func (s Structure) IsLocked() bool {
	v, _ := arkparser.AsBool(s.prop("bIsLocked"))
	return v
}

// DecayTime is the recorded time until structure decay, in seconds.
func (s Structure) DecayTime() float64 {
	v, _ := arkparser.AsFloat64(s.prop("LastInAllyRangeTime"))
	return v
}

// CustomName is the player-assigned name, if the structure was renamed.
func (s Structure) CustomName() string {
	v, _ := arkparser.AsString(s.prop("StructureName"))
	return v
}
