package arkparser

import "testing"

func TestDetectFileKindByExtension(t *testing.T) {
	cases := map[string]FileKind{
		"save/player.arkprofile": KindProfile,
		"save/tribe.arktribe":    KindTribe,
		"save/TheIsland.ark":     KindWorldSave,
		"save/cloud":             KindCloudInventory,
		"save/data.bin":          KindUnknown,
	}
	for path, want := range cases {
		if got := DetectFileKind(path); got != want {
			t.Errorf("DetectFileKind(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestDetectFormatLegacyWorldSave(t *testing.T) {
	data := make([]byte, 16)
	data[0], data[1] = 9, 0 // version 9 fits [5,12]
	got, err := DetectFormat(data, KindWorldSave)
	if err != nil {
		t.Fatalf("DetectFormat: %v", err)
	}
	if got != FormatLegacy {
		t.Fatalf("DetectFormat = %v, want Legacy", got)
	}
}

func TestDetectFormatModernProfileByGUID(t *testing.T) {
	data := make([]byte, 24)
	data[0] = 1 // version 1, in [1,6]
	data[8] = 0xAB // non-zero GUID byte
	got, err := DetectFormat(data, KindProfile)
	if err != nil {
		t.Fatalf("DetectFormat: %v", err)
	}
	if got != FormatModern {
		t.Fatalf("DetectFormat = %v, want Modern", got)
	}
}

func TestDetectFormatLegacyProfileByZeroGUID(t *testing.T) {
	data := make([]byte, 24)
	data[0] = 1 // version 1, GUID bytes all zero
	got, err := DetectFormat(data, KindProfile)
	if err != nil {
		t.Fatalf("DetectFormat: %v", err)
	}
	if got != FormatLegacy {
		t.Fatalf("DetectFormat = %v, want Legacy", got)
	}
}

func TestDetectFormatModernBySQLiteMagic(t *testing.T) {
	data := append([]byte("SQLite format 3\x00"), make([]byte, 8)...)
	got, err := DetectFormat(data, KindWorldSave)
	if err != nil {
		t.Fatalf("DetectFormat: %v", err)
	}
	if got != FormatModern {
		t.Fatalf("DetectFormat = %v, want Modern", got)
	}
}
