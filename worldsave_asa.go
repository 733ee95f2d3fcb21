package arkparser

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Modern (ASA) SQLite world-save decoding, per spec.md §4.7's "World save
// — Modern SQLite" framing and original_source's world_save.py
// _parse_asa family of methods. Two tables matter: `game` (one row per
// object, key=16-byte GUID, value=blob) and `custom` (system blobs keyed
// by name, notably SaveHeader and ActorTransforms).
func parseWorldSaveASA(lf *loadedFile, opts *LoadOptions) (*WorldSave, error) {
	if lf.path == "" {
		return nil, fmt.Errorf("arkparser: %w: Modern world saves must be loaded from a file path, not in-memory bytes", ErrSQLite)
	}

	db, err := sql.Open("sqlite", lf.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSQLite, err)
	}
	defer db.Close()

	save := &WorldSave{IsModern: true}

	nt, err := readSaveHeader(db, save)
	if err != nil {
		return nil, err
	}

	if err := readActorTransforms(db, save); err != nil {
		return nil, err
	}

	if err := readGameObjects(db, save, nt, opts); err != nil {
		return nil, err
	}

	save.Container = NewContainer(save.Objects)
	save.Container.BuildRelationships()

	return save, nil
}

// readSaveHeader parses the `custom` table's SaveHeader blob: a Legacy-
// width int16 version tag (retained from the ASE format this table grew
// out of), three stored offsets (unused by the sparse-table decode path),
// a float64 game time, a reserved int32, the data-files list (each
// followed by a terminator int32), two padding int32s, then the sparse
// name table: count, then count (key int32, raw string) pairs, each
// right-trimmed to its final dotted-path segment.
func readSaveHeader(db *sql.DB, save *WorldSave) (*SparseNameTable, error) {
	var blob []byte
	row := db.QueryRow("SELECT value FROM custom WHERE key = 'SaveHeader'")
	if err := row.Scan(&blob); err != nil {
		return nil, fmt.Errorf("%w: SaveHeader: %v", ErrSQLite, err)
	}

	r := NewReader(blob)
	version, err := r.ReadI16()
	if err != nil {
		return nil, err
	}
	save.Version = int32(version)

	if _, err := r.ReadI32(); err != nil { // legacy offset, unused
		return nil, err
	}
	if _, err := r.ReadI32(); err != nil { // unknown
		return nil, err
	}
	if _, err := r.ReadI32(); err != nil { // actual offset, unused
		return nil, err
	}
	gameTime, err := r.ReadF64()
	if err != nil {
		return nil, err
	}
	save.GameTime = gameTime
	if _, err := r.ReadI32(); err != nil { // unknown
		return nil, err
	}

	dataFileCount, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	dataFiles := make([]string, 0, dataFileCount)
	for i := int32(0); i < dataFileCount; i++ {
		s, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		if _, err := r.ReadI32(); err != nil { // per-entry terminator
			return nil, err
		}
		dataFiles = append(dataFiles, s)
	}
	save.DataFiles = dataFiles

	if _, err := r.ReadI32(); err != nil { // padding
		return nil, err
	}
	if _, err := r.ReadI32(); err != nil { // padding
		return nil, err
	}

	nameCount, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	entries := make(map[int32]string, nameCount)
	for i := int32(0); i < nameCount; i++ {
		idx, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		raw, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		entries[idx] = lastDottedSegment(raw)
	}

	return NewSparseNameTable(entries), nil
}

func lastDottedSegment(s string) string {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			return s[i+1:]
		}
	}
	return s
}

// readActorTransforms parses the `custom` table's ActorTransforms blob:
// a sequence of (16-byte GUID, 6x float64, 8 bytes padding) records
// terminated by an all-zero GUID. Missing entirely is not an error; ASA
// saves without a populated transform cache simply have no locations to
// attach.
func readActorTransforms(db *sql.DB, save *WorldSave) error {
	var blob []byte
	row := db.QueryRow("SELECT value FROM custom WHERE key = 'ActorTransforms'")
	if err := row.Scan(&blob); err != nil {
		save.ActorLocations = map[string]Location{}
		return nil
	}

	r := NewReader(blob)
	locations := make(map[string]Location)
	for r.Remaining() >= 16 {
		guid, err := r.ReadGUID()
		if err != nil {
			return err
		}
		if guidAllZero(guid) {
			break
		}
		var loc Location
		vals := make([]float64, 6)
		for i := range vals {
			v, err := r.ReadF64()
			if err != nil {
				return err
			}
			vals[i] = v
		}
		loc.X, loc.Y, loc.Z = vals[0], vals[1], vals[2]
		loc.Pitch, loc.Yaw, loc.Roll = vals[3], vals[4], vals[5]
		if err := r.Skip(8); err != nil {
			return err
		}
		locations[guid.String()] = loc
	}
	save.ActorLocations = locations
	return nil
}

// readGameObjects iterates the `game` table, parsing each row's blob as
// a Modern-worldsave object and attaching any matching ActorTransforms
// entry by GUID. A per-object decode failure is isolated: recorded in
// save.ParseErrors and the object skipped, per spec.md §5.
func readGameObjects(db *sql.DB, save *WorldSave, nt *SparseNameTable, opts *LoadOptions) error {
	rows, err := db.Query("SELECT key, value FROM game")
	if err != nil {
		return fmt.Errorf("%w: game table: %v", ErrSQLite, err)
	}
	defer rows.Close()

	var objects []*GameObject
	var id int32
	for rows.Next() {
		var keyBlob, valueBlob []byte
		if err := rows.Scan(&keyBlob, &valueBlob); err != nil {
			return fmt.Errorf("%w: %v", ErrSQLite, err)
		}
		guid, err := guidFromBytesLE(keyBlob)
		if err != nil {
			save.ParseErrors = append(save.ParseErrors, ObjectDecodeError{GUID: "", Err: err})
			continue
		}
		obj, err := parseASAGameObjectBlob(valueBlob, nt, guid, id)
		if err != nil {
			save.ParseErrors = append(save.ParseErrors, ObjectDecodeError{GUID: guid.String(), Err: err})
			continue
		}
		if loc, ok := save.ActorLocations[guid.String()]; ok {
			l := loc
			obj.Location = &l
		}
		objects = append(objects, obj)
		id++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSQLite, err)
	}

	save.Objects = objects
	return nil
}

func parseASAGameObjectBlob(blob []byte, nt *SparseNameTable, guid uuid.UUID, id int32) (*GameObject, error) {
	r := NewReader(blob)
	obj, err := ReadModernWorldSaveObjectHeader(r, nt, guid, id)
	if err != nil {
		return nil, err
	}
	props, err := readPropertiesWithTable(r, nt, true, FramingModernWorldSave)
	if err != nil {
		return nil, err
	}
	obj.Properties = props
	return obj, nil
}

// guidFromBytesLE interprets a 16-byte SQLite key blob the same
// mixed-endian way Reader.ReadGUID does.
func guidFromBytesLE(b []byte) (uuid.UUID, error) {
	if len(b) != 16 {
		return uuid.UUID{}, fmt.Errorf("arkparser: malformed game-table key: expected 16 bytes, got %d", len(b))
	}
	var u uuid.UUID
	for word := 0; word < 4; word++ {
		off := word * 4
		u[off], u[off+1], u[off+2], u[off+3] = b[off+3], b[off+2], b[off+1], b[off]
	}
	return u, nil
}
