package domain

import (
	"testing"

	"github.com/vertyco/arkparser"
)

func tamedCreatureObject() *arkparser.GameObject {
	return &arkparser.GameObject{
		ID:        1,
		ClassName: "Rex_Character_BP_C",
		Names:     []arkparser.Name{{Text: "Rex_Character_BP_C", Instance: 1}},
		Properties: []arkparser.Property{
			{Name: arkparser.Name{Text: "TamingTeamID"}, Value: arkparser.IntValue{Bits: 32, Signed: true, Value: 7}},
		},
	}
}

func wildCreatureObject() *arkparser.GameObject {
	return &arkparser.GameObject{
		ID:        2,
		ClassName: "Dodo_Character_BP_C",
		Names:     []arkparser.Name{{Text: "Dodo_Character_BP_C", Instance: 1}},
	}
}

func structureObject() *arkparser.GameObject {
	return &arkparser.GameObject{
		ID:        3,
		ClassName: "StoneWall_C",
		Names:     []arkparser.Name{{Text: "StoneWall_C", Instance: 1}},
		Properties: []arkparser.Property{
			{Name: arkparser.Name{Text: "TargetingTeam"}, Value: arkparser.IntValue{Bits: 32, Signed: true, Value: 7}},
		},
	}
}

func TestWorldSaveTamedVsWildCreatures(t *testing.T) {
	save := &arkparser.WorldSave{Objects: []*arkparser.GameObject{tamedCreatureObject(), wildCreatureObject()}}
	ws := NewWorldSave(save)

	tamed := ws.TamedCreatures()
	if len(tamed) != 1 {
		t.Fatalf("TamedCreatures() returned %d, want 1", len(tamed))
	}
	if tamed[0].ClassName() != "Rex_Character_BP_C" {
		t.Fatalf("tamed[0].ClassName() = %q", tamed[0].ClassName())
	}

	wild := ws.WildCreatures()
	if len(wild) != 1 {
		t.Fatalf("WildCreatures() returned %d, want 1", len(wild))
	}
	if wild[0].ClassName() != "Dodo_Character_BP_C" {
		t.Fatalf("wild[0].ClassName() = %q", wild[0].ClassName())
	}
}

func TestWorldSaveStructures(t *testing.T) {
	save := &arkparser.WorldSave{Objects: []*arkparser.GameObject{structureObject(), tamedCreatureObject()}}
	ws := NewWorldSave(save)

	structures := ws.Structures()
	if len(structures) != 1 {
		t.Fatalf("Structures() returned %d, want 1", len(structures))
	}
	if structures[0].ClassName() != "StoneWall_C" {
		t.Fatalf("structures[0].ClassName() = %q", structures[0].ClassName())
	}
}
