package domain

import (
	"fmt"

	"github.com/vertyco/arkparser"
)

// Player wraps a decoded Profile with the intuitive attribute access
// original_source's models/player.py exposes over raw property lookups.
type Player struct {
	profile *arkparser.Profile
}

// NewPlayer wraps p. p must be non-nil.
func NewPlayer(p *arkparser.Profile) Player { return Player{profile: p} }

func (p Player) playerData() []arkparser.Property {
	main := p.profile.MainObject()
	if main == nil {
		return nil
	}
	return main.Nested("MyData")
}

// Name is the character's display name.
func (p Player) Name() string { return p.profile.PlayerName() }

// PlayerID is the player's unique data ID.
func (p Player) PlayerID() int64 { return p.profile.PlayerID() }

// TribeID is the tribe the player belongs to, 0 if unaffiliated.
func (p Player) TribeID() int64 { return p.profile.TribeID() }

// TribeName is the name of the player's tribe as cached in the profile
// itself (may be stale relative to the live tribe file).
func (p Player) TribeName() string {
	s, _ := arkparser.AsString(propValue(p.playerData(), "TribeName"))
	return s
}

// Level is total character level (base + extra).
func (p Player) Level() int64 { return p.profile.Level() }

// Experience is current accumulated experience.
func (p Player) Experience() float64 { return p.profile.Experience() }

// EngramPoints is total engram points available.
func (p Player) EngramPoints() int64 { return p.profile.TotalEngramPoints() }

// IsFemale reports the character's recorded sex.
func (p Player) IsFemale() bool {
	b, _ := arkparser.AsBool(propValue(p.playerData(), "bIsFemale"))
	return b
}

// Gender renders IsFemale as ARK's two-value gender string.
func (p Player) Gender() string {
	if p.IsFemale() {
		return "Female"
	}
	return "Male"
}

// SteamName is the platform (Steam/Epic) display name recorded on the
// character, distinct from the in-game character Name.
func (p Player) SteamName() string {
	s, _ := arkparser.AsString(propValue(p.playerData(), "PlatformProfileName"))
	return s
}

// SteamID is the platform unique ID recorded on the character.
func (p Player) SteamID() string {
	s, _ := arkparser.AsString(propValue(p.playerData(), "UniqueID"))
	return s
}

// LastServer is the last server name the character was saved on.
func (p Player) LastServer() string {
	s, _ := arkparser.AsString(propValue(p.playerData(), "LastServerSavedOn"))
	return s
}

// DataFile is the conventional .arkprofile file name for this player,
// preferring the platform ID over the internal player ID.
func (p Player) DataFile() string {
	if sid := p.SteamID(); sid != "" {
		return sid + ".arkprofile"
	}
	if pid := p.PlayerID(); pid != 0 {
		return fmt.Sprintf("%d.arkprofile", pid)
	}
	return ""
}

// Location is the character's last recorded world position, nil if the
// profile carries none.
func (p Player) Location() *arkparser.Location {
	main := p.profile.MainObject()
	if main == nil {
		return nil
	}
	return main.Location
}

// NamedStats returns the character's 12 level-up-point stats, indexed by
// the same fixed name order creature status components use.
func (p Player) NamedStats() map[string]int64 {
	out := make(map[string]int64, len(statNames))
	for i, name := range statNames {
		out[name] = p.profile.Stat(i)
	}
	return out
}

// EngramBlueprints returns the learned engram blueprint paths.
func (p Player) EngramBlueprints() []string { return p.profile.EngramBlueprints() }
