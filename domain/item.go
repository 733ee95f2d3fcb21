package domain

import (
	"fmt"
	"strings"

	"github.com/vertyco/arkparser"
)

var qualityNames = []string{
	"Primitive", "Ramshackle", "Apprentice", "Journeyman", "Mastercraft", "Ascendant",
}

// UploadedItem is an item held in cloud/obelisk storage, grounded on
// data_models.py's UploadedItem.from_ark_data.
type UploadedItem struct {
	Blueprint  string
	Name       string
	CustomName string

	ItemID1 int64
	ItemID2 int64

	Quantity     int64
	QualityIndex int64
	Durability   float64
	Rating       float64
	SlotIndex    int64

	IsBlueprint bool
	IsEngram    bool

	UploadTime float64

	Raw []arkparser.Property

	cryopodParsed   bool
	cryopodCreature *CryopodCreature
}

// UniqueID combines the two item IDs into one string key.
func (it UploadedItem) UniqueID() string {
	return fmt.Sprintf("%d_%d", it.ItemID1, it.ItemID2)
}

// QualityName renders QualityIndex as ARK's named quality tier.
func (it UploadedItem) QualityName() string {
	if it.QualityIndex >= 0 && int(it.QualityIndex) < len(qualityNames) {
		return qualityNames[it.QualityIndex]
	}
	return "Unknown"
}

// DisplayName is the custom name if set, otherwise the archetype-derived
// name.
func (it UploadedItem) DisplayName() string {
	if it.CustomName != "" {
		return it.CustomName
	}
	return it.Name
}

// IsCryopod reports whether the blueprint matches any of ARK's known
// creature-storage item families.
func (it UploadedItem) IsCryopod() bool {
	bp := strings.ToLower(it.Blueprint)
	for _, marker := range []string{"cryopod", "soultrap", "vivarium", "dinoball"} {
		if strings.Contains(bp, marker) {
			return true
		}
	}
	return false
}

// NewUploadedItem builds an UploadedItem from one element of the ArkItems
// array (a StructProperty whose inner properties contain an
// ArkTributeItem StructProperty).
func NewUploadedItem(elementProps []arkparser.Property) UploadedItem {
	tribute, ok := arkparser.FindProperty(elementProps, "ArkTributeItem")
	var props []arkparser.Property
	if ok {
		if nested, ok := arkparser.NestedProperties(tribute.Value); ok {
			props = nested
		}
	}

	it := UploadedItem{Raw: elementProps, Quantity: 1}

	it.Blueprint, _ = arkparser.AsString(propValue(props, "ItemArchetype"))
	if dot := strings.LastIndex(it.Blueprint, "."); dot >= 0 {
		it.Name = strings.TrimSuffix(it.Blueprint[dot+1:], "_C")
	}

	it.CustomName, _ = arkparser.AsString(propValue(props, "CustomItemName"))

	if idProp, ok := arkparser.FindProperty(props, "ItemId"); ok {
		if idProps, ok := arkparser.NestedProperties(idProp.Value); ok {
			it.ItemID1, _ = arkparser.AsInt64(propValue(idProps, "ItemID1"))
			it.ItemID2, _ = arkparser.AsInt64(propValue(idProps, "ItemID2"))
		}
	}

	if q, ok := arkparser.AsInt64(propValue(props, "ItemQuantity")); ok && q != 0 {
		it.Quantity = q
	}
	it.QualityIndex, _ = arkparser.AsInt64(propValue(props, "ItemQualityIndex"))
	it.Durability, _ = arkparser.AsFloat64(propValue(props, "ItemDurability"))
	it.Rating, _ = arkparser.AsFloat64(propValue(props, "ItemRating"))
	it.SlotIndex, _ = arkparser.AsInt64(propValue(props, "SlotIndex"))
	it.IsBlueprint, _ = arkparser.AsBool(propValue(props, "bIsBlueprint"))
	it.IsEngram, _ = arkparser.AsBool(propValue(props, "bIsEngram"))
	it.UploadTime, _ = arkparser.AsFloat64(propValue(elementProps, "UploadTime"))

	it.Raw = props
	return it
}

// CryopodCreature returns the creature stored in this item if it is a
// cryopod/soul-trap and a CustomItemDatas "Dino" entry can be found and
// parsed, nil otherwise. The result is cached after the first call.
func (it *UploadedItem) CryopodCreature() *CryopodCreature {
	if !it.IsCryopod() {
		return nil
	}
	if it.cryopodParsed {
		return it.cryopodCreature
	}
	it.cryopodParsed = true

	entries := findCustomItemDatas(it.Raw)
	for _, entry := range entries {
		name, _ := arkparser.AsString(propValue(entry, "CustomDataName"))
		if name != "Dino" {
			continue
		}

		if bytesProp, ok := arkparser.FindProperty(entry, "CustomDataBytes"); ok {
			if b, ok := extractFirstByteArray(bytesProp.Value); ok {
				if cryo, err := FromCryopodBytes(b); err == nil {
					supplementCryopod(cryo, entry)
					it.cryopodCreature = cryo
					return cryo
				}
			}
		}

		if strs := arkparser.AsStringSlice(propValue(entry, "CustomDataStrings")); len(strs) > 0 {
			floats := floatSlice(propValue(entry, "CustomDataFloats"))
			names := arkparser.AsStringSlice(propValue(entry, "CustomDataNames"))
			cryo := FromASACryopodData(strs, floats, names)
			it.cryopodCreature = cryo
			return cryo
		}
	}
	return nil
}

// findCustomItemDatas returns the per-entry property lists of a
// CustomItemDatas array (each entry a StructProperty).
func findCustomItemDatas(props []arkparser.Property) [][]arkparser.Property {
	prop, ok := arkparser.FindProperty(props, "CustomItemDatas")
	if !ok {
		return nil
	}
	arr, ok := prop.Value.(arkparser.ArrayValue)
	if !ok {
		return nil
	}
	var out [][]arkparser.Property
	for _, el := range arr.Elements {
		if entryProps, ok := arkparser.NestedProperties(el); ok {
			out = append(out, entryProps)
		}
	}
	return out
}

// extractFirstByteArray drills into a CustomDataBytes StructProperty to
// find ByteArrays[0].Bytes as a raw []byte, per data_models.py's
// cryo_bytes.get("ByteArrays", [])[0]["Bytes"] access chain.
func extractFirstByteArray(v arkparser.PropertyValue) ([]byte, bool) {
	props, ok := arkparser.NestedProperties(v)
	if !ok {
		return nil, false
	}
	arraysProp, ok := arkparser.FindProperty(props, "ByteArrays")
	if !ok {
		return nil, false
	}
	arr, ok := arraysProp.Value.(arkparser.ArrayValue)
	if !ok || len(arr.Elements) == 0 {
		return nil, false
	}
	entryProps, ok := arkparser.NestedProperties(arr.Elements[0])
	if !ok {
		return nil, false
	}
	bytesProp, ok := arkparser.FindProperty(entryProps, "Bytes")
	if !ok {
		return nil, false
	}
	byteArr, ok := bytesProp.Value.(arkparser.ArrayValue)
	if !ok {
		return nil, false
	}
	out := make([]byte, 0, len(byteArr.Elements))
	for _, el := range byteArr.Elements {
		if bv, ok := el.(arkparser.ByteValue); ok {
			out = append(out, bv.Raw)
		} else if iv, ok := el.(arkparser.IntValue); ok && iv.Bits == 8 {
			// ByteProperty array elements decode as 8-bit IntValue.
			out = append(out, byte(iv.Value))
		}
	}
	return out, true
}

func floatSlice(v arkparser.PropertyValue) []float64 {
	arr, ok := v.(arkparser.ArrayValue)
	if !ok {
		return nil
	}
	out := make([]float64, 0, len(arr.Elements))
	for _, el := range arr.Elements {
		if f, ok := arkparser.AsFloat64(el); ok {
			out = append(out, f)
		}
	}
	return out
}

// supplementCryopod fills in species/color-names from the entry's
// strings/names fields when the byte-blob parse left them empty, per
// data_models.py's post-parse supplementation in UploadedItem.cryopod_creature.
func supplementCryopod(cryo *CryopodCreature, entry []arkparser.Property) {
	strs := arkparser.AsStringSlice(propValue(entry, "CustomDataStrings"))
	if len(strs) > 9 && strs[9] != "" {
		cryo.Species = strs[9]
	}
	if names := arkparser.AsStringSlice(propValue(entry, "CustomDataNames")); len(names) > 0 {
		cryo.ColorNames = names
	}
}
