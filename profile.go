package arkparser

// Profile is a decoded .arkprofile player-profile file, per spec.md §4.7
// and original_source's files/profile.py.
type Profile struct {
	baseFile
}

var profileValidVersions = []int32{1, 5, 6, 7}

func parseProfile(lf *loadedFile, opts *LoadOptions) (*Profile, error) {
	base, err := parseBaseFile(lf, profileValidVersions)
	if err != nil {
		return nil, err
	}
	return &Profile{baseFile: *base}, nil
}

// MainObject returns the PrimalPlayerData object, which carries every
// player-facing property nested under "MyData".
func (p *Profile) MainObject() *GameObject {
	return p.mainObject("PrimalPlayerData")
}

func (p *Profile) playerData() []Property {
	main := p.MainObject()
	if main == nil {
		return nil
	}
	return main.Nested("MyData")
}

func (p *Profile) persistentStats() []Property {
	main := p.MainObject()
	if main == nil {
		return nil
	}
	return main.Nested("MyData", "MyPersistentCharacterStats")
}

// PlayerName returns the character's display name.
func (p *Profile) PlayerName() string {
	prop, ok := FindProperty(p.playerData(), "PlayerName")
	if !ok {
		return ""
	}
	s, _ := AsString(prop.Value)
	return s
}

// PlayerID returns the player's unique data ID.
func (p *Profile) PlayerID() int64 {
	prop, ok := FindProperty(p.playerData(), "PlayerDataID")
	if !ok {
		return 0
	}
	v, _ := AsInt64(prop.Value)
	return v
}

// TribeID returns the player's tribe ID (0 if unaffiliated). ASE stores
// this as "TribeId", ASA as "TribeID".
func (p *Profile) TribeID() int64 {
	prop, ok := firstProperty(p.playerData(), "TribeID", "TribeId")
	if !ok {
		return 0
	}
	v, _ := AsInt64(prop.Value)
	return v
}

// Level returns the character's current level: the persisted extra
// level stat plus one, per profile.py's level property.
func (p *Profile) Level() int64 {
	prop, ok := FindProperty(p.persistentStats(), "CharacterStatusComponent_ExtraCharacterLevel")
	if !ok {
		return 1
	}
	v, _ := AsInt64(prop.Value)
	return v + 1
}

// Experience returns total accumulated experience points.
func (p *Profile) Experience() float64 {
	prop, ok := FindProperty(p.persistentStats(), "CharacterStatusComponent_ExperiencePoints")
	if !ok {
		return 0
	}
	v, _ := AsFloat64(prop.Value)
	return v
}

// TotalEngramPoints returns total engram points spent.
func (p *Profile) TotalEngramPoints() int64 {
	prop, ok := FindProperty(p.persistentStats(), "PlayerState_TotalEngramPoints")
	if !ok {
		return 0
	}
	v, _ := AsInt64(prop.Value)
	return v
}

// EngramBlueprints returns the learned engram blueprint paths.
func (p *Profile) EngramBlueprints() []string {
	prop, ok := firstProperty(p.persistentStats(), "EngramBlueprints", "PlayerState_EngramBlueprints")
	if !ok {
		return nil
	}
	return AsStringSlice(prop.Value)
}

// Stat returns the added-points value for one of the twelve indexed
// character stats (0=Health ... 11=Crafting Skill). Depending on
// generation, "NumberOfLevelUpPointsApplied" is stored either as a
// single ArrayProperty or as one scalar property per stat disambiguated
// by ArrayIndex; both forms are checked.
func (p *Profile) Stat(statIndex int) (added int64) {
	stats := p.persistentStats()
	const pointsKey = "CharacterStatusComponent_NumberOfLevelUpPointsApplied"

	if prop, ok := FindProperty(stats, pointsKey); ok {
		if arr, ok := prop.Value.(ArrayValue); ok {
			if statIndex >= 0 && statIndex < len(arr.Elements) {
				if v, ok := AsInt64(arr.Elements[statIndex]); ok {
					return v
				}
			}
			return 0
		}
	}
	if prop, ok := FindPropertyIndexed(stats, pointsKey, int32(statIndex)); ok {
		v, _ := AsInt64(prop.Value)
		return v
	}
	return 0
}
