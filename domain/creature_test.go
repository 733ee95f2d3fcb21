package domain

import (
	"testing"

	"github.com/vertyco/arkparser"
)

func TestParseDinoDisplayName(t *testing.T) {
	species, name, level := parseDinoDisplayName("Rexy - Lvl 150 (Tyrannosaurus)")
	if name != "Rexy" || level != 150 || species != "Tyrannosaurus" {
		t.Fatalf("got (%q,%q,%d), want (Tyrannosaurus,Rexy,150)", species, name, level)
	}
}

func TestParseDinoDisplayNameEmpty(t *testing.T) {
	species, name, level := parseDinoDisplayName("")
	if species != "" || name != "" || level != 1 {
		t.Fatalf("got (%q,%q,%d), want (\"\",\"\",1)", species, name, level)
	}
}

func TestParseDinoDisplayNameNoSuffix(t *testing.T) {
	species, name, level := parseDinoDisplayName("UnnamedDino")
	if species != "" || name != "UnnamedDino" || level != 1 {
		t.Fatalf("got (%q,%q,%d), want (\"\",UnnamedDino,1)", species, name, level)
	}
}

func TestNewUploadedCreatureUniqueID(t *testing.T) {
	props := []arkparser.Property{
		{Name: arkparser.Name{Text: "DinoID1"}, Value: arkparser.IntValue{Bits: 32, Signed: true, Value: 111}},
		{Name: arkparser.Name{Text: "DinoID2"}, Value: arkparser.IntValue{Bits: 32, Signed: true, Value: 222}},
		{Name: arkparser.Name{Text: "DinoName"}, Value: arkparser.StringValue{Value: "Rexy - Lvl 150 (Tyrannosaurus)"}},
	}
	c := NewUploadedCreature(props)
	if c.UniqueID() != "111_222" {
		t.Fatalf("UniqueID() = %q, want 111_222", c.UniqueID())
	}
	if c.Name != "Rexy" || c.Level != 150 || c.Species != "Tyrannosaurus" {
		t.Fatalf("got name=%q level=%d species=%q", c.Name, c.Level, c.Species)
	}
}
