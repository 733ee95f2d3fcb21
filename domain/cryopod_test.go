package domain

import "testing"

func TestFromASACryopodDataParsesDisplayName(t *testing.T) {
	strs := []string{
		"Rex_Character_BP_C",
		"Rexy - Lvl 150 (Tyrannosaurus)",
		"1,2,3,4,5,6",
	}
	cryo := FromASACryopodData(strs, nil, []string{"Red", "Blue"})
	if cryo.ClassName != "Rex_Character_BP_C" {
		t.Fatalf("ClassName = %q", cryo.ClassName)
	}
	if cryo.Name != "Rexy" {
		t.Fatalf("Name = %q, want Rexy", cryo.Name)
	}
	if cryo.Level != 150 {
		t.Fatalf("Level = %d, want 150", cryo.Level)
	}
	if cryo.Species != "Tyrannosaurus" {
		t.Fatalf("Species = %q, want Tyrannosaurus", cryo.Species)
	}
	if len(cryo.Colors) != 6 || cryo.Colors[0] != 1 || cryo.Colors[5] != 6 {
		t.Fatalf("Colors = %v", cryo.Colors)
	}
	if len(cryo.ColorNames) != 2 || cryo.ColorNames[0] != "Red" {
		t.Fatalf("ColorNames = %v", cryo.ColorNames)
	}
	if cryo.UniqueID() != "0_0" {
		t.Fatalf("UniqueID() = %q, want 0_0 (no dino IDs in ASA string/float form)", cryo.UniqueID())
	}
}

func TestFromASACryopodDataTooShortStrings(t *testing.T) {
	cryo := FromASACryopodData([]string{"only", "two"}, nil, nil)
	if cryo.Level != 1 {
		t.Fatalf("Level = %d, want 1 default", cryo.Level)
	}
	if cryo.ClassName != "" {
		t.Fatalf("ClassName = %q, want empty for under-length input", cryo.ClassName)
	}
}

func TestFromASACryopodDataFallbackSpeciesFromClassName(t *testing.T) {
	strs := []string{"Rex_Character_BP_C", "UnnamedDino", ""}
	cryo := FromASACryopodData(strs, nil, nil)
	if cryo.Species != "Rex" {
		t.Fatalf("Species = %q, want Rex (derived from class name)", cryo.Species)
	}
}
