package domain

import (
	"testing"

	"github.com/vertyco/arkparser"
)

func TestStructureAccessors(t *testing.T) {
	obj := &arkparser.GameObject{
		ClassName: "StoneWall_C",
		Properties: []arkparser.Property{
			{Name: arkparser.Name{Text: "TargetingTeam"}, Value: arkparser.IntValue{Bits: 32, Signed: true, Value: 42}},
			{Name: arkparser.Name{Text: "StructureName"}, Value: arkparser.StringValue{Value: "North Wall"}},
			{Name: arkparser.Name{Text: "Health"}, Value: arkparser.FloatValue{Bits: 32, Value: 500}},
			{Name: arkparser.Name{Text: "bIsLocked"}, Value: arkparser.BoolValue{Value: true}},
		},
	}
	s := NewStructure(obj)

	if s.ClassName() != "StoneWall_C" {
		t.Fatalf("ClassName() = %q", s.ClassName())
	}
	if s.OwnerTribeID() != 42 {
		t.Fatalf("OwnerTribeID() = %d, want 42", s.OwnerTribeID())
	}
	if s.CustomName() != "North Wall" {
		t.Fatalf("CustomName() = %q, want North Wall", s.CustomName())
	}
	if s.Health() != 500 {
		t.Fatalf("Health() = %v, want 500", s.Health())
	}
	if !s.IsLocked() {
		t.Fatal("expected IsLocked() == true")
	}
}

func TestStructureZeroValueIsSafe(t *testing.T) {
	var s Structure
	if s.ClassName() != "" || s.GUID() != "" {
		t.Fatal("zero-value Structure should read as empty, not panic")
	}
}
