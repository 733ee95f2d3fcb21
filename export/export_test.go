package export

import (
	"strings"
	"testing"

	"github.com/vertyco/arkparser"
	"github.com/vertyco/arkparser/domain"
)

func TestStructuresDocFields(t *testing.T) {
	save := &arkparser.WorldSave{Objects: []*arkparser.GameObject{
		{
			ID:        1,
			ClassName: "StoneWall_C",
			Names:     []arkparser.Name{{Text: "StoneWall_C", Instance: 1}},
			Properties: []arkparser.Property{
				{Name: arkparser.Name{Text: "TargetingTeam"}, Value: arkparser.IntValue{Bits: 32, Signed: true, Value: 7}},
				{Name: arkparser.Name{Text: "StructureName"}, Value: arkparser.StringValue{Value: "Front Gate"}},
			},
		},
	}}
	ws := domain.NewWorldSave(save)
	docs := Structures(ws, nil)
	if len(docs) != 1 {
		t.Fatalf("Structures() returned %d docs, want 1", len(docs))
	}
	if docs[0].Struct != "StoneWall_C" || docs[0].Name != "Front Gate" || docs[0].TribeID != 7 {
		t.Fatalf("got %+v", docs[0])
	}
	if docs[0].Location != nil {
		t.Fatal("expected nil Location for an object with no Location set")
	}
}

func TestMarshalIndentProducesIndentedJSON(t *testing.T) {
	raw, err := MarshalIndent(map[string]int{"a": 1})
	if err != nil {
		t.Fatalf("MarshalIndent: %v", err)
	}
	if !strings.Contains(string(raw), "\n\t") {
		t.Fatalf("expected tab-indented JSON, got %s", raw)
	}
}

func TestTribeDoc(t *testing.T) {
	tr := &arkparser.Tribe{}
	doc := Tribe(domain.NewTribe(tr))
	if doc.Name != "" {
		t.Fatalf("expected empty name for a tribe with no backing objects, got %q", doc.Name)
	}
	if doc.Members == nil {
		t.Fatal("Members should be an empty slice, not nil")
	}
}
