package domain

import (
	"testing"

	"github.com/vertyco/arkparser"
)

func TestCreatureLevelAndDinoID(t *testing.T) {
	obj := &arkparser.GameObject{
		ClassName: "Rex_Character_BP_C",
		Properties: []arkparser.Property{
			{Name: arkparser.Name{Text: "DinoID1"}, Value: arkparser.IntValue{Bits: 32, Signed: true, Value: 100}},
			{Name: arkparser.Name{Text: "DinoID2"}, Value: arkparser.IntValue{Bits: 32, Signed: true, Value: 200}},
			{Name: arkparser.Name{Text: "TamingTeamID"}, Value: arkparser.IntValue{Bits: 32, Signed: true, Value: 9}},
			{Name: arkparser.Name{Text: "TamedName"}, Value: arkparser.StringValue{Value: "Rexy"}},
		},
	}
	status := &arkparser.GameObject{
		Properties: []arkparser.Property{
			{Name: arkparser.Name{Text: "BaseCharacterLevel"}, Value: arkparser.IntValue{Bits: 32, Signed: true, Value: 120}},
			{Name: arkparser.Name{Text: "ExtraCharacterLevel"}, Value: arkparser.IntValue{Bits: 32, Signed: true, Value: 30}},
		},
	}
	c := NewCreature(obj, status)

	if c.DinoID() != (int64(100)<<32)|200 {
		t.Fatalf("DinoID() = %d, want %d", c.DinoID(), (int64(100)<<32)|200)
	}
	if c.BaseLevel() != 120 {
		t.Fatalf("BaseLevel() = %d, want 120", c.BaseLevel())
	}
	if c.Level() != 150 {
		t.Fatalf("Level() = %d, want 150", c.Level())
	}
	if !c.IsTamed() {
		t.Fatal("expected IsTamed() == true for an object with TamingTeamID")
	}
	if c.Name() != "Rexy" {
		t.Fatalf("Name() = %q, want Rexy", c.Name())
	}
}

func TestCreatureDefaultsWithNoStatusComponent(t *testing.T) {
	obj := &arkparser.GameObject{ClassName: "Dodo_Character_BP_C"}
	c := NewCreature(obj, nil)

	if c.BaseLevel() != 1 {
		t.Fatalf("BaseLevel() = %d, want default 1", c.BaseLevel())
	}
	if c.WildScale() != 1.0 {
		t.Fatalf("WildScale() = %v, want default 1.0", c.WildScale())
	}
	if c.IsTamed() {
		t.Fatal("expected IsTamed() == false with no TamingTeamID property")
	}
}
