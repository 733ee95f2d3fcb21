package arkparser

import "testing"

func newTestTribeObject() *GameObject {
	return &GameObject{
		ID:        0,
		ClassName: "PrimalTribeData",
		Names:     []Name{{Text: "PrimalTribeData", Instance: 1}},
		Properties: []Property{
			{Name: Name{Text: "TribeData"}, TypeName: "StructProperty", Value: StructValue{Value: &PropertyListStruct{Properties: []Property{
				{Name: Name{Text: "TribeID"}, Value: IntValue{Bits: 64, Signed: true, Value: 1446520645}},
				{Name: Name{Text: "TribeName"}, Value: StringValue{Value: "The Survivors"}},
				{Name: Name{Text: "OwnerPlayerDataID"}, Value: IntValue{Bits: 64, Signed: true, Value: 7}},
				{Name: Name{Text: "MembersPlayerDataID"}, Value: ArrayValue{ElementType: "Int64Property", Elements: []PropertyValue{
					IntValue{Bits: 64, Signed: true, Value: 7},
				}}},
				{Name: Name{Text: "MembersPlayerName"}, Value: ArrayValue{ElementType: "StrProperty", Elements: []PropertyValue{
					StringValue{Value: "Rexy"},
				}}},
				{Name: Name{Text: "MembersRankGroups"}, Value: ArrayValue{ElementType: "IntProperty", Elements: []PropertyValue{
					IntValue{Bits: 32, Signed: true, Value: 0},
				}}},
				{Name: Name{Text: "TribeLog"}, Value: ArrayValue{ElementType: "StrProperty", Elements: []PropertyValue{
					StringValue{Value: "Day 1, 00:00:00: Your Tribe has been founded!"},
				}}},
			}}}},
		},
	}
}

func TestTribeAccessors(t *testing.T) {
	tr := &Tribe{baseFile: baseFile{Version: 1, Objects: []*GameObject{newTestTribeObject()}}}

	if tr.TribeID() != 1446520645 {
		t.Fatalf("TribeID() = %d, want 1446520645", tr.TribeID())
	}
	if tr.Name() != "The Survivors" {
		t.Fatalf("Name() = %q", tr.Name())
	}
	members := tr.Members()
	if len(members) != 1 || members[0].Name != "Rexy" || members[0].PlayerID != 7 {
		t.Fatalf("Members() = %+v", members)
	}
	logs := tr.LogEntries()
	if len(logs) != 1 || logs[0][:3] != "Day" {
		t.Fatalf("LogEntries() = %+v", logs)
	}
}
