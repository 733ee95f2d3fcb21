// Package export renders domain views into the fixed-key JSON documents
// a dashboard/stats-viewer consumer expects, grounded on original_source's
// export.py and the teacher's cmd dumper's json.Marshal/json.Indent
// idiom for pretty-printing.
package export

import (
	"bytes"
	"encoding/json"

	"github.com/vertyco/arkparser"
	"github.com/vertyco/arkparser/domain"
)

// LocationDoc is the location block embedded in most export documents.
type LocationDoc struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
	Roll  float64 `json:"roll"`
}

func locationDoc(loc *arkparser.Location, mapCfg *arkparser.MapConfig) (*LocationDoc, *float64, *float64) {
	if loc == nil {
		return nil, nil, nil
	}
	d := &LocationDoc{X: loc.X, Y: loc.Y, Z: loc.Z, Pitch: loc.Pitch, Yaw: loc.Yaw, Roll: loc.Roll}
	if mapCfg == nil {
		return d, nil, nil
	}
	lat, lon := mapCfg.ToGPS(loc.X, loc.Y)
	return d, &lat, &lon
}

// CreatureDoc is the ASV_Tamed / ASV_Wild row shape, following
// export.py's to_dict field names. Per-stat values are carried only in
// the base_stats and tamed_stats maps; there are no flat per-stat fields.
type CreatureDoc struct {
	ID        int64              `json:"id"`
	Creature  string              `json:"creature"`
	Sex       string              `json:"sex"`
	Base      int64               `json:"base"`
	Colors    [6]int64            `json:"colors"`
	Name      string              `json:"name,omitempty"`
	Tribe     string              `json:"tribe,omitempty"`
	Tamer     string              `json:"tamer,omitempty"`
	Level     int64               `json:"lvl,omitempty"`
	Imprint   float64             `json:"imprint,omitempty"`
	BaseStats map[string]int64    `json:"base_stats"`
	TamedStats map[string]int64   `json:"tamed_stats,omitempty"`
	Location  *LocationDoc        `json:"location,omitempty"`
	Lat       *float64            `json:"lat,omitempty"`
	Lon       *float64            `json:"lon,omitempty"`
}

// TamedCreatures renders the ASV_Tamed export document for a world save.
func TamedCreatures(ws domain.WorldSave, mapCfg *arkparser.MapConfig) []CreatureDoc {
	creatures := ws.TamedCreatures()
	out := make([]CreatureDoc, 0, len(creatures))
	for _, c := range creatures {
		loc, lat, lon := locationDoc(c.Location(), mapCfg)
		out = append(out, CreatureDoc{
			ID: c.DinoID(), Creature: c.ClassName(), Sex: c.Gender(), Base: c.BaseLevel(),
			Colors: c.Colors(), Name: c.Name(), Tribe: c.TribeName(), Tamer: c.TamerName(),
			Level: c.Level(), Imprint: c.ImprintQuality(), BaseStats: c.BaseStats(),
			TamedStats: c.TamedStats(), Location: loc, Lat: lat, Lon: lon,
		})
	}
	return out
}

// WildCreatures renders the ASV_Wild export document for a world save.
func WildCreatures(ws domain.WorldSave, mapCfg *arkparser.MapConfig) []CreatureDoc {
	creatures := ws.WildCreatures()
	out := make([]CreatureDoc, 0, len(creatures))
	for _, c := range creatures {
		loc, lat, lon := locationDoc(c.Location(), mapCfg)
		out = append(out, CreatureDoc{
			ID: c.DinoID(), Creature: c.ClassName(), Sex: c.Gender(), Base: c.BaseLevel(),
			Colors: c.Colors(), BaseStats: c.BaseStats(), Location: loc, Lat: lat, Lon: lon,
		})
	}
	return out
}

// PlayerDoc is the ASV_Players row shape.
type PlayerDoc struct {
	PlayerID     int64              `json:"playerid"`
	Steam        string             `json:"steam"`
	SteamID      string             `json:"steamid,omitempty"`
	Name         string             `json:"name"`
	TribeID      int64              `json:"tribeid"`
	Tribe        string             `json:"tribe"`
	Sex          string             `json:"sex"`
	Level        int64              `json:"lvl"`
	EngramPoints int64              `json:"engram_points"`
	Stats        map[string]int64   `json:"stats"`
	DataFile     string             `json:"dataFile,omitempty"`
	Location     *LocationDoc       `json:"location,omitempty"`
	Lat          *float64           `json:"lat,omitempty"`
	Lon          *float64           `json:"lon,omitempty"`
}

// Players renders the ASV_Players export document for a list of decoded
// profiles.
func Players(players []domain.Player, mapCfg *arkparser.MapConfig) []PlayerDoc {
	out := make([]PlayerDoc, 0, len(players))
	for _, p := range players {
		loc, lat, lon := locationDoc(p.Location(), mapCfg)
		out = append(out, PlayerDoc{
			PlayerID: p.PlayerID(), Steam: p.SteamName(), SteamID: p.SteamID(), Name: p.Name(),
			TribeID: p.TribeID(), Tribe: p.TribeName(), Sex: p.Gender(), Level: p.Level(),
			EngramPoints: p.EngramPoints(), Stats: p.NamedStats(), DataFile: p.DataFile(),
			Location: loc, Lat: lat, Lon: lon,
		})
	}
	return out
}

// StructureDoc is the ASV_Structures / ASV_MapStructures row shape.
type StructureDoc struct {
	TribeID  int64        `json:"tribeid"`
	Tribe    string       `json:"tribe"`
	Struct   string       `json:"struct"`
	Name     string       `json:"name,omitempty"`
	Location *LocationDoc `json:"location,omitempty"`
	Lat      *float64     `json:"lat,omitempty"`
	Lon      *float64     `json:"lon,omitempty"`
}

// Structures renders the ASV_Structures export document for a world save.
func Structures(ws domain.WorldSave, mapCfg *arkparser.MapConfig) []StructureDoc {
	structures := ws.Structures()
	out := make([]StructureDoc, 0, len(structures))
	for _, s := range structures {
		loc, lat, lon := locationDoc(s.Location(), mapCfg)
		out = append(out, StructureDoc{
			TribeID: s.OwnerTribeID(), Struct: s.ClassName(), Name: s.CustomName(),
			Location: loc, Lat: lat, Lon: lon,
		})
	}
	return out
}

// TribeMemberDoc is one entry of a TribeDoc's Members list.
type TribeMemberDoc struct {
	PlayerID int64  `json:"player_id"`
	Name     string `json:"name"`
	Rank     int64  `json:"rank"`
}

// TribeLogDoc is one parsed tribe-log line.
type TribeLogDoc struct {
	Day          int    `json:"day"`
	Time         string `json:"time"`
	Message      string `json:"message"`
	CleanMessage string `json:"clean_message"`
}

// TribeDoc is the ASV_Tribes row shape.
type TribeDoc struct {
	TribeID        int64            `json:"tribeid"`
	Name           string           `json:"name"`
	OwnerPlayerID  int64            `json:"owner_player_id"`
	GovernmentType int64            `json:"government_type"`
	Members        []TribeMemberDoc `json:"members"`
	AllianceIDs    []int64          `json:"alliance_ids,omitempty"`
}

// Tribe renders the ASV_Tribes export document for one decoded tribe.
func Tribe(t domain.Tribe) TribeDoc {
	members := t.Members()
	memberDocs := make([]TribeMemberDoc, 0, len(members))
	for _, m := range members {
		memberDocs = append(memberDocs, TribeMemberDoc{PlayerID: m.PlayerID, Name: m.Name, Rank: m.Rank})
	}
	return TribeDoc{
		TribeID: t.TribeID(), Name: t.Name(), OwnerPlayerID: t.OwnerPlayerID(),
		GovernmentType: t.GovernmentType(), Members: memberDocs, AllianceIDs: t.AllianceIDs(),
	}
}

// TribeLogs renders the ASV_TribeLogs export document for one tribe.
func TribeLogs(t domain.Tribe) []TribeLogDoc {
	entries := t.Log()
	out := make([]TribeLogDoc, 0, len(entries))
	for _, e := range entries {
		out = append(out, TribeLogDoc{Day: e.Day, Time: e.Time, Message: e.Message, CleanMessage: e.CleanMessage()})
	}
	return out
}

// MarshalIndent renders any export document with the teacher's
// indent-after-marshal idiom (tab-indented, matching cmd's pretty JSON
// output) rather than json.MarshalIndent directly.
func MarshalIndent(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "\t"); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
