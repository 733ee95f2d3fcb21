package arkparser

// Tribe is a decoded .arktribe file, per spec.md §4.7 and
// original_source's files/tribe.py.
type Tribe struct {
	baseFile
}

var tribeValidVersions = []int32{1, 5, 6, 7}

func parseTribe(lf *loadedFile, opts *LoadOptions) (*Tribe, error) {
	base, err := parseBaseFile(lf, tribeValidVersions)
	if err != nil {
		return nil, err
	}
	return &Tribe{baseFile: *base}, nil
}

// MainObject returns the PrimalTribeData object.
func (t *Tribe) MainObject() *GameObject {
	return t.mainObject("PrimalTribeData")
}

func (t *Tribe) tribeData() []Property {
	main := t.MainObject()
	if main == nil {
		return nil
	}
	return main.Nested("TribeData")
}

// TribeID returns the tribe's unique ID. ASE stores this as "TribeId",
// ASA as "TribeID".
func (t *Tribe) TribeID() int64 {
	prop, ok := firstProperty(t.tribeData(), "TribeID", "TribeId")
	if !ok {
		return 0
	}
	v, _ := AsInt64(prop.Value)
	return v
}

// Name returns the tribe's display name.
func (t *Tribe) Name() string {
	prop, ok := FindProperty(t.tribeData(), "TribeName")
	if !ok {
		return ""
	}
	s, _ := AsString(prop.Value)
	return s
}

// OwnerPlayerID returns the player ID of the tribe's owner. ASE stores
// this as "OwnerPlayerDataID", ASA as "OwnerPlayerDataId".
func (t *Tribe) OwnerPlayerID() int64 {
	prop, ok := firstProperty(t.tribeData(), "OwnerPlayerDataID", "OwnerPlayerDataId")
	if !ok {
		return 0
	}
	v, _ := AsInt64(prop.Value)
	return v
}

// MemberIDs returns the player IDs of every tribe member.
func (t *Tribe) MemberIDs() []int64 {
	prop, ok := FindProperty(t.tribeData(), "MembersPlayerDataID")
	if !ok {
		return nil
	}
	return AsInt64Slice(prop.Value)
}

// MemberNames returns the display name of every tribe member, in the
// same order as MemberIDs.
func (t *Tribe) MemberNames() []string {
	prop, ok := FindProperty(t.tribeData(), "MembersPlayerName")
	if !ok {
		return nil
	}
	return AsStringSlice(prop.Value)
}

// MemberRanks returns the rank-group index of every tribe member, in
// the same order as MemberIDs.
func (t *Tribe) MemberRanks() []int64 {
	prop, ok := FindProperty(t.tribeData(), "MembersRankGroups")
	if !ok {
		return nil
	}
	return AsInt64Slice(prop.Value)
}

// Member is one entry of Members(): a player ID, name, and rank group
// index zipped from the tribe's parallel member arrays.
type Member struct {
	PlayerID int64
	Name     string
	Rank     int64
}

// Members zips MemberIDs/MemberNames/MemberRanks into one struct per
// tribe member, per tribe.py's get_members.
func (t *Tribe) Members() []Member {
	ids := t.MemberIDs()
	names := t.MemberNames()
	ranks := t.MemberRanks()

	members := make([]Member, len(ids))
	for i, id := range ids {
		m := Member{PlayerID: id}
		if i < len(names) {
			m.Name = names[i]
		}
		if i < len(ranks) {
			m.Rank = ranks[i]
		}
		members[i] = m
	}
	return members
}

// LogEntries returns the tribe log's text entries.
func (t *Tribe) LogEntries() []string {
	prop, ok := FindProperty(t.tribeData(), "TribeLog")
	if !ok {
		return nil
	}
	return AsStringSlice(prop.Value)
}

// RankGroups returns the names of the tribe's configured rank groups.
func (t *Tribe) RankGroups() []string {
	prop, ok := FindProperty(t.tribeData(), "TribeRankGroupNames")
	if !ok {
		return nil
	}
	return AsStringSlice(prop.Value)
}

// AllianceIDs returns the tribe IDs of allied tribes.
func (t *Tribe) AllianceIDs() []int64 {
	prop, ok := FindProperty(t.tribeData(), "TribeAlliances")
	if !ok {
		return nil
	}
	return AsInt64Slice(prop.Value)
}

// GovernmentType returns the tribe's governance mode: 0=player owned,
// 1=tribe owned, 2=personal owned.
func (t *Tribe) GovernmentType() int64 {
	prop, ok := FindProperty(t.tribeData(), "TribeGovernment")
	if !ok {
		return 0
	}
	v, _ := AsInt64(prop.Value)
	return v
}
