package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vertyco/arkparser"
)

// UploadedCreature is a tamed dino held in cloud/obelisk storage, grounded
// on data_models.py's UploadedCreature.from_ark_data.
type UploadedCreature struct {
	ClassName string
	Blueprint string
	Name      string
	Species   string

	DinoID1 int64
	DinoID2 int64

	Level      int
	Experience float64
	Stats      Stats

	UploadTime int64
	Version    float64

	Raw []arkparser.Property
}

// UniqueID combines the two dino IDs into one string key of the form
// "<DinoID1>_<DinoID2>".
func (c UploadedCreature) UniqueID() string {
	return fmt.Sprintf("%d_%d", c.DinoID1, c.DinoID2)
}

// NewUploadedCreature builds an UploadedCreature from one element of the
// ArkTamedDinosData array (a StructProperty whose inner properties are a
// PropertyListStruct).
func NewUploadedCreature(props []arkparser.Property) UploadedCreature {
	c := UploadedCreature{Raw: props, Level: 1}

	dinoName, _ := arkparser.AsString(propValue(props, "DinoName"))
	c.Species, c.Name, c.Level = parseDinoDisplayName(dinoName)

	c.ClassName, _ = arkparser.AsString(propValue(props, "DinoClass"))
	c.Blueprint, _ = arkparser.AsString(propValue(props, "DinoClassName"))
	c.DinoID1, _ = arkparser.AsInt64(propValue(props, "DinoID1"))
	c.DinoID2, _ = arkparser.AsInt64(propValue(props, "DinoID2"))
	c.Experience, _ = arkparser.AsFloat64(propValue(props, "DinoExperiencePoints"))
	c.UploadTime, _ = arkparser.AsInt64(propValue(props, "UploadTime"))
	c.Version, _ = arkparser.AsFloat64(propValue(props, "Version"))

	statLines := arkparser.AsStringSlice(propValue(props, "DinoStats"))
	c.Stats = StatsFromStrings(statLines)

	return c
}

// parseDinoDisplayName splits "TameName - Lvl N (Species)" into its parts,
// per data_models.py's inline parsing in UploadedCreature.from_ark_data.
// It returns ("", name, 1) when the level/species suffix is absent.
func parseDinoDisplayName(dinoName string) (species, name string, level int) {
	level = 1
	if dinoName == "" {
		return "", "", level
	}
	before, after, ok := strings.Cut(dinoName, " - Lvl ")
	if !ok {
		return "", dinoName, level
	}
	name = before
	lvlStr, speciesPart, ok := strings.Cut(after, " (")
	if !ok {
		return "", name, level
	}
	if n, err := strconv.Atoi(lvlStr); err == nil {
		level = n
	}
	species = strings.TrimSuffix(speciesPart, ")")
	return species, name, level
}

func propValue(props []arkparser.Property, name string) arkparser.PropertyValue {
	p, ok := arkparser.FindProperty(props, name)
	if !ok {
		return nil
	}
	return p.Value
}
