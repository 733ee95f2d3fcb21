package domain

import (
	"testing"

	"github.com/vertyco/arkparser"
)

func buildTributeItemElement(archetype, customName string, itemID1, itemID2 int64) arkparser.Property {
	itemIDProps := &arkparser.PropertyListStruct{Properties: []arkparser.Property{
		{Name: arkparser.Name{Text: "ItemID1"}, Value: arkparser.IntValue{Bits: 32, Signed: true, Value: itemID1}},
		{Name: arkparser.Name{Text: "ItemID2"}, Value: arkparser.IntValue{Bits: 32, Signed: true, Value: itemID2}},
	}}
	tributeProps := &arkparser.PropertyListStruct{Properties: []arkparser.Property{
		{Name: arkparser.Name{Text: "ItemArchetype"}, Value: arkparser.StringValue{Value: archetype}},
		{Name: arkparser.Name{Text: "CustomItemName"}, Value: arkparser.StringValue{Value: customName}},
		{Name: arkparser.Name{Text: "ItemId"}, Value: arkparser.StructValue{Value: itemIDProps}},
		{Name: arkparser.Name{Text: "ItemQuantity"}, Value: arkparser.IntValue{Bits: 32, Signed: true, Value: 3}},
	}}
	return arkparser.Property{Name: arkparser.Name{Text: "ArkTributeItem"}, Value: arkparser.StructValue{Value: tributeProps}}
}

func TestNewUploadedItemBasics(t *testing.T) {
	elementProps := []arkparser.Property{
		buildTributeItemElement("/Game/PrimalEarth/CoreBlueprints/Items/Weapons/PrimalItem_WeaponSimpleRifle.PrimalItem_WeaponSimpleRifle_C", "Ol' Reliable", 10, 20),
	}
	it := NewUploadedItem(elementProps)

	if it.Blueprint == "" {
		t.Fatal("Blueprint should not be empty")
	}
	if it.Name != "PrimalItem_WeaponSimpleRifle" {
		t.Fatalf("Name = %q, want PrimalItem_WeaponSimpleRifle", it.Name)
	}
	if it.CustomName != "Ol' Reliable" {
		t.Fatalf("CustomName = %q", it.CustomName)
	}
	if it.DisplayName() != "Ol' Reliable" {
		t.Fatalf("DisplayName() = %q, want custom name", it.DisplayName())
	}
	if it.UniqueID() != "10_20" {
		t.Fatalf("UniqueID() = %q, want 10_20", it.UniqueID())
	}
	if it.Quantity != 3 {
		t.Fatalf("Quantity = %d, want 3", it.Quantity)
	}
}

func TestUploadedItemQualityName(t *testing.T) {
	it := UploadedItem{QualityIndex: 4}
	if it.QualityName() != "Mastercraft" {
		t.Fatalf("QualityName() = %q, want Mastercraft", it.QualityName())
	}
	it.QualityIndex = 99
	if it.QualityName() != "Unknown" {
		t.Fatalf("QualityName() = %q, want Unknown for out-of-range index", it.QualityName())
	}
}

func TestUploadedItemIsCryopod(t *testing.T) {
	it := UploadedItem{Blueprint: "PrimalItem_WeaponEmptyCryopod_C"}
	if !it.IsCryopod() {
		t.Fatal("expected cryopod blueprint to be detected")
	}
	it2 := UploadedItem{Blueprint: "PrimalItem_WeaponSimpleRifle_C"}
	if it2.IsCryopod() {
		t.Fatal("rifle blueprint should not be detected as cryopod")
	}
}
