package arkparser

import (
	"bytes"
	"path/filepath"
	"strings"
)

// FileKind identifies which of the four top-level framings a file uses.
type FileKind int

const (
	// KindUnknown means neither extension nor header bytes identified
	// the input; callers must abort before doing any heap work.
	KindUnknown FileKind = iota
	KindProfile
	KindTribe
	KindCloudInventory
	KindWorldSave
)

func (k FileKind) String() string {
	switch k {
	case KindProfile:
		return "profile"
	case KindTribe:
		return "tribe"
	case KindCloudInventory:
		return "cloud_inventory"
	case KindWorldSave:
		return "world_save"
	default:
		return "unknown"
	}
}

// Format identifies the format generation.
type Format int

const (
	FormatUnknown Format = iota
	FormatLegacy
	FormatModern
)

func (f Format) String() string {
	switch f {
	case FormatLegacy:
		return "legacy"
	case FormatModern:
		return "modern"
	default:
		return "unknown"
	}
}

var sqliteMagic = []byte("SQLite format 3\x00")

// DetectFileKind classifies a path by its extension, per spec.md §4.3
// rule 4: .arkprofile -> profile, .arktribe -> tribe, .ark -> world save,
// no extension -> cloud inventory.
func DetectFileKind(path string) FileKind {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".arkprofile":
		return KindProfile
	case ".arktribe":
		return KindTribe
	case ".ark":
		return KindWorldSave
	case "":
		return KindCloudInventory
	default:
		return KindUnknown
	}
}

// DetectFormat classifies the format generation of data given its file
// kind, applying the rules of spec.md §4.3 in order:
//  1. SQLite magic header -> Modern world save.
//  2. World save, not SQLite: int16 at offset 0 in [5,12] -> Legacy.
//  3. Other kinds: int32 at offset 0; >=7 -> Modern; in [1,6] inspect the
//     16 bytes at offset 8 for a non-zero GUID -> Modern, else Legacy.
func DetectFormat(data []byte, kind FileKind) (Format, error) {
	if len(data) >= 16 && bytes.Equal(data[:16], sqliteMagic) {
		if kind != KindWorldSave && kind != KindUnknown {
			return FormatUnknown, ErrCorruptHeader
		}
		return FormatModern, nil
	}

	if kind == KindWorldSave {
		if len(data) < 2 {
			return FormatUnknown, ErrEndOfData
		}
		v := int16(uint16(data[0]) | uint16(data[1])<<8)
		if v >= 5 && v <= 12 {
			return FormatLegacy, nil
		}
		return FormatUnknown, ErrCorruptHeader
	}

	if len(data) < 24 {
		return FormatUnknown, ErrEndOfData
	}
	version := int32(uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16 | uint32(data[3])<<24)
	if version >= 7 {
		return FormatModern, nil
	}
	if version >= 1 && version <= 6 {
		guidBytes := data[8:24]
		for _, b := range guidBytes {
			if b != 0 {
				return FormatModern, nil
			}
		}
		return FormatLegacy, nil
	}
	return FormatUnknown, ErrCorruptHeader
}
