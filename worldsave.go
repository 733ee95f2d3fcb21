package arkparser

import "github.com/google/uuid"

// WorldSave is the decoded complete-map snapshot: every creature,
// structure, dropped item, and (in later versions) player/tribe data on
// one server instance, per spec.md §4.7. It unifies the two physically
// distinct on-disk formats behind one type: ASE binary (Legacy) and ASA
// SQLite (Modern), grounded on original_source's files/world_save.py.
type WorldSave struct {
	Version   int32
	IsModern  bool
	GameTime  float64
	SaveCount int32
	DataFiles []string

	Objects   []*GameObject
	Container *Container

	// Legacy (ASE) only.
	EmbeddedData        []EmbeddedData
	DataFilesObjectMap  map[int32][][]string

	// Modern (ASA) only: GUID string -> transform, read from the
	// ActorTransforms custom-table blob and attached to matching objects
	// by GUID during decode.
	ActorLocations map[string]Location

	// ParseErrors accumulates per-object decode failures in bulk
	// world-save decode; a failure is not fatal. A failing Modern object
	// is left out of Objects; a failing Legacy object stays in Objects
	// with no properties.
	ParseErrors []ObjectDecodeError
}

// EmbeddedData is single-player-save map data: a path identifier plus a
// 3D array of byte blobs (parts -> blobs -> bytes), per spec.md §4.7 and
// original_source's EmbeddedData.read. Server saves carry none of these.
type EmbeddedData struct {
	Path string
	Data [][][]byte
}

func readEmbeddedData(r *Reader) (EmbeddedData, error) {
	path, err := r.ReadString()
	if err != nil {
		return EmbeddedData{}, err
	}
	partCount, err := r.ReadI32()
	if err != nil {
		return EmbeddedData{}, err
	}
	data := make([][][]byte, 0, partCount)
	for p := int32(0); p < partCount; p++ {
		blobCount, err := r.ReadI32()
		if err != nil {
			return EmbeddedData{}, err
		}
		blobs := make([][]byte, 0, blobCount)
		for b := int32(0); b < blobCount; b++ {
			units, err := r.ReadI32()
			if err != nil {
				return EmbeddedData{}, err
			}
			blob, err := r.take(int(units) * 4)
			if err != nil {
				return EmbeddedData{}, err
			}
			blobs = append(blobs, append([]byte(nil), blob...))
		}
		data = append(data, blobs)
	}
	return EmbeddedData{Path: path, Data: data}, nil
}

// parseWorldSave dispatches to the Legacy binary or Modern SQLite
// sub-parser based on the format the detector already settled on.
func parseWorldSave(lf *loadedFile, opts *LoadOptions) (*WorldSave, error) {
	if lf.format == FormatModern {
		return parseWorldSaveASA(lf, opts)
	}
	return parseWorldSaveASE(lf, opts)
}

// ObjectCount returns the number of decoded game objects.
func (w *WorldSave) ObjectCount() int { return len(w.Objects) }

// GetObjectByGUID looks up a decoded object by its GUID string.
func (w *WorldSave) GetObjectByGUID(guid string) (*GameObject, bool) {
	if w.Container == nil {
		return nil, false
	}
	return w.Container.ByGUID(guid)
}

// GetActorLocation returns the transform recorded for guid in the
// ActorTransforms table (Modern world saves only).
func (w *WorldSave) GetActorLocation(guid string) (Location, bool) {
	loc, ok := w.ActorLocations[guid]
	return loc, ok
}

// GetCreatures returns every creature object, tamed and wild.
func (w *WorldSave) GetCreatures() []*GameObject {
	var out []*GameObject
	for _, obj := range w.Objects {
		if containsSubstr(obj.ClassName, "_Character_BP") || containsSubstr(obj.ClassName, "DinoCharacter") {
			out = append(out, obj)
		}
	}
	return out
}

// GetTamedCreatures returns creatures carrying a TamingTeamID property.
func (w *WorldSave) GetTamedCreatures() []*GameObject {
	var out []*GameObject
	for _, obj := range w.GetCreatures() {
		if hasProperty(obj, "TamingTeamID") {
			out = append(out, obj)
		}
	}
	return out
}

// GetWildCreatures returns creatures with no TamingTeamID property.
func (w *WorldSave) GetWildCreatures() []*GameObject {
	var out []*GameObject
	for _, obj := range w.GetCreatures() {
		if !hasProperty(obj, "TamingTeamID") {
			out = append(out, obj)
		}
	}
	return out
}

// worldSaveNonStructurePatterns excludes non-structure actors from
// GetStructures, per original_source's world_save.py _NON_STRUCTURE_PATTERNS
// (a separate list from container.go's nonStructurePatterns: it adds
// buffs, status components, and inventories, which world saves carry as
// TargetingTeam-bearing actors, and lacks some of that list's entries,
// e.g. Projectile and SupplyCrate_).
var worldSaveNonStructurePatterns = []string{
	"_Character_BP",
	"DinoCharacter",
	"PlayerPawn",
	"Buff_",
	"PrimalBuff",
	"Weap",
	"StatusComponent",
	"Inventory",
	"DroppedItem",
	"DeathItemCache",
	"NPCZone",
	"DinoDropInventory",
}

// GetStructures returns tribe-owned placed structures: objects with a
// TargetingTeam property, no DinoID1, and a class name matching no
// known non-structure pattern.
func (w *WorldSave) GetStructures() []*GameObject {
	var out []*GameObject
	for _, obj := range w.Objects {
		if !hasProperty(obj, "TargetingTeam") {
			continue
		}
		if hasProperty(obj, "DinoID1") {
			continue
		}
		if matchesAny(obj.ClassName, worldSaveNonStructurePatterns) {
			continue
		}
		out = append(out, obj)
	}
	return out
}

// GetPlayerPawns returns in-world player avatar objects.
func (w *WorldSave) GetPlayerPawns() []*GameObject {
	var out []*GameObject
	for _, obj := range w.Objects {
		if containsSubstr(obj.ClassName, "PlayerPawn") {
			out = append(out, obj)
		}
	}
	return out
}

// GetItems returns objects flagged as items.
func (w *WorldSave) GetItems() []*GameObject {
	var out []*GameObject
	for _, obj := range w.Objects {
		if obj.IsItem {
			out = append(out, obj)
		}
	}
	return out
}

func guidAllZero(g uuid.UUID) bool {
	return g == uuid.UUID{}
}
