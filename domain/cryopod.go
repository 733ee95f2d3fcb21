package domain

import (
	"fmt"
	"strings"

	"github.com/vertyco/arkparser"
)

// CryopodCreature is a creature frozen inside a cryopod/soul trap, parsed
// from the item's CustomItemDatas byte blob or string/float fields,
// grounded on data_models.py's CryopodCreature.
type CryopodCreature struct {
	ClassName string
	Name      string
	Species   string

	DinoID1 int64
	DinoID2 int64

	Level      int
	Experience float64

	TamerName         string
	OwnerName         string
	TamingTeamID      int64
	OwningPlayerID    int64
	TamedOnServer     string
	UploadedFromServer string

	Colors     []int64
	ColorNames []string

	CurrentStats  map[string]float64
	MaxStats      map[string]float64
	BaseStats     map[string]float64
	LevelUpsWild  map[string]int64
	LevelUpsTamed map[string]int64

	CreatureProps []arkparser.Property
	StatusProps   []arkparser.Property
}

// Stats renders the cryopod's current/max status values in the same
// shape as an uploaded creature's Stats, for callers that want one
// uniform view regardless of storage location.
func (c CryopodCreature) Stats() Stats {
	return Stats{
		Health: c.CurrentStats["Health"], MaxHealth: c.MaxStats["Health"],
		Stamina: c.CurrentStats["Stamina"], MaxStamina: c.MaxStats["Stamina"],
		Torpidity: c.CurrentStats["Torpidity"], MaxTorpidity: c.MaxStats["Torpidity"],
		Oxygen: c.CurrentStats["Oxygen"], MaxOxygen: c.MaxStats["Oxygen"],
		Food: c.CurrentStats["Food"], MaxFood: c.MaxStats["Food"],
		Water: c.CurrentStats["Water"], MaxWater: c.MaxStats["Water"],
		Weight: c.CurrentStats["Weight"], MaxWeight: c.MaxStats["Weight"],
	}
}

// UniqueID combines the two dino IDs into one string key.
func (c CryopodCreature) UniqueID() string {
	return fmt.Sprintf("%d_%d", c.DinoID1, c.DinoID2)
}

func indexedString(props []arkparser.Property, name string, i int) (string, bool) {
	p, ok := arkparser.FindPropertyIndexed(props, name, int32(i))
	if !ok {
		return "", false
	}
	return arkparser.AsString(p.Value)
}

func indexedInt(props []arkparser.Property, name string, i int) (int64, bool) {
	p, ok := arkparser.FindPropertyIndexed(props, name, int32(i))
	if !ok {
		return 0, false
	}
	return arkparser.AsInt64(p.Value)
}

func indexedFloat(props []arkparser.Property, name string, i int) (float64, bool) {
	p, ok := arkparser.FindPropertyIndexed(props, name, int32(i))
	if !ok {
		return 0, false
	}
	return arkparser.AsFloat64(p.Value)
}

// FromCryopodBytes decodes a cryopod creature from its raw CustomDataBytes
// payload: an inline Legacy-framed mini save (object count, Legacy object
// headers, then each object's property list), per data_models.py's
// from_cryopod_bytes. The creature object is assumed first; a
// "DinoCharacterStatus" object supplies the stat block if present.
func FromCryopodBytes(data []byte) (*CryopodCreature, error) {
	r := arkparser.NewReader(data)
	count, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	if count < 1 {
		return nil, fmt.Errorf("arkparser/domain: cryopod blob has no objects")
	}

	objects := make([]*arkparser.GameObject, 0, count)
	for i := int32(0); i < count; i++ {
		obj, err := arkparser.ReadLegacyObjectHeader(r, nil, i)
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}

	for i, obj := range objects {
		var next *arkparser.GameObject
		if i+1 < len(objects) {
			next = objects[i+1]
		}
		// A malformed per-object property list is tolerated: the
		// creature is still usable with whatever objects did decode.
		_ = obj.LoadProperties(r, nil, 0, false, arkparser.FramingLegacy, next)
	}

	creatureObj := objects[0]
	var statusObj *arkparser.GameObject
	for _, obj := range objects {
		if strings.Contains(obj.ClassName, "DinoCharacterStatus") {
			statusObj = obj
			break
		}
	}

	cp := creatureObj.Properties
	var sp []arkparser.Property
	if statusObj != nil {
		sp = statusObj.Properties
	}

	cryo := &CryopodCreature{ClassName: creatureObj.ClassName, CreatureProps: cp, StatusProps: sp, Level: 1}
	if cryo.ClassName != "" {
		species := strings.ReplaceAll(strings.ReplaceAll(cryo.ClassName, "_Character_BP_C", ""), "_C", "")
		cryo.Species = strings.ReplaceAll(species, "_", " ")
	}

	cryo.Name, _ = arkparser.AsString(propValue(cp, "TamedName"))
	cryo.TamerName, _ = arkparser.AsString(propValue(cp, "TamerString"))
	cryo.OwnerName, _ = arkparser.AsString(propValue(cp, "OwningPlayerName"))
	cryo.TamingTeamID, _ = arkparser.AsInt64(propValue(cp, "TamingTeamID"))
	cryo.OwningPlayerID, _ = arkparser.AsInt64(propValue(cp, "OwningPlayerID"))
	cryo.DinoID1, _ = arkparser.AsInt64(propValue(cp, "DinoID1"))
	cryo.DinoID2, _ = arkparser.AsInt64(propValue(cp, "DinoID2"))
	cryo.TamedOnServer, _ = arkparser.AsString(propValue(cp, "TamedOnServerName"))
	cryo.UploadedFromServer, _ = arkparser.AsString(propValue(cp, "UploadedFromServerName"))

	for i := 0; i < 6; i++ {
		if v, ok := indexedInt(cp, "ColorSetIndices", i); ok {
			cryo.Colors = append(cryo.Colors, v)
		}
		if s, ok := indexedString(cp, "ColorSetNames", i); ok && s != "" {
			cryo.ColorNames = append(cryo.ColorNames, s)
		}
	}

	cryo.CurrentStats = make(map[string]float64)
	cryo.MaxStats = make(map[string]float64)
	cryo.BaseStats = make(map[string]float64)
	cryo.LevelUpsWild = make(map[string]int64)
	cryo.LevelUpsTamed = make(map[string]int64)
	for i, stat := range statNames {
		if v, ok := indexedFloat(sp, "CurrentStatusValues", i); ok {
			cryo.CurrentStats[stat] = v
		}
		if v, ok := indexedFloat(sp, "MaxStatusValues", i); ok {
			cryo.MaxStats[stat] = v
		}
		if v, ok := indexedFloat(sp, "BaseLevelMaxStatusValues", i); ok {
			cryo.BaseStats[stat] = v
		}
		if v, ok := indexedInt(sp, "NumberOfLevelUpPointsApplied", i); ok {
			cryo.LevelUpsWild[stat] = v
		}
		if v, ok := indexedInt(sp, "NumberOfLevelUpPointsAppliedTamed", i); ok {
			cryo.LevelUpsTamed[stat] = v
		}
	}

	baseLevel, _ := arkparser.AsInt64(propValue(sp, "BaseCharacterLevel"))
	if baseLevel == 0 {
		baseLevel = 1
	}
	extraLevel, _ := arkparser.AsInt64(propValue(sp, "ExtraCharacterLevel"))
	cryo.Level = int(baseLevel + extraLevel)
	cryo.Experience, _ = arkparser.AsFloat64(propValue(sp, "ExperiencePoints"))

	return cryo, nil
}

// FromASACryopodData decodes a cryopod creature from the fallback
// CustomDataStrings/CustomDataFloats/CustomDataNames representation used
// when the richer byte blob isn't present, per data_models.py's
// from_asa_cryopod_data. strings[1] is expected to hold the
// "Name - Lvl N (Species)" display string ARK itself renders in the UI.
func FromASACryopodData(strs []string, floats []float64, colorNames []string) *CryopodCreature {
	cryo := &CryopodCreature{Level: 1}
	if len(strs) < 3 {
		return cryo
	}

	cryo.ClassName = strs[0]
	displayName := strs[1]
	colorsStr := strs[2]

	if before, after, ok := strings.Cut(displayName, " - Lvl "); ok {
		cryo.Name = before
		if lvlPart, speciesPart, ok := strings.Cut(after, " ("); ok {
			if n, err := fmt.Sscanf(lvlPart, "%d", &cryo.Level); err != nil || n != 1 {
				cryo.Level = 1
			}
			cryo.Species = strings.TrimSuffix(speciesPart, ")")
		}
	}

	if len(strs) > 9 && strs[9] != "" {
		cryo.Species = strs[9]
	} else if cryo.Species == "" && cryo.ClassName != "" {
		species, _, _ := strings.Cut(cryo.ClassName, "_Character_BP")
		cryo.Species = strings.ReplaceAll(species, "_", " ")
	}

	if colorsStr != "" {
		for _, part := range strings.Split(strings.Trim(colorsStr, ","), ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			var v int64
			if _, err := fmt.Sscanf(part, "%d", &v); err == nil {
				cryo.Colors = append(cryo.Colors, v)
			}
		}
	}

	cryo.ColorNames = append(cryo.ColorNames, colorNames...)

	cryo.CurrentStats = make(map[string]float64)
	cryo.MaxStats = make(map[string]float64)
	if len(floats) >= 22 {
		maxOffset := 12
		if len(floats) >= 36 {
			maxOffset = 11
		}
		for i, stat := range statNames {
			if i < len(floats) {
				cryo.CurrentStats[stat] = floats[i]
			}
			if i+maxOffset < len(floats) {
				cryo.MaxStats[stat] = floats[i+maxOffset]
			}
		}
	}

	return cryo
}
