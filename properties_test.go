package arkparser

import "testing"

func buildInlineString(s string) []byte {
	b := make([]byte, 4)
	length := int32(len(s) + 1)
	b[0] = byte(length)
	b[1] = byte(length >> 8)
	b[2] = byte(length >> 16)
	b[3] = byte(length >> 24)
	b = append(b, []byte(s)...)
	return append(b, 0x00)
}

func le32(v int32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

// TestSentinelProperty pins spec's sentinel-property invariant: a property
// list terminated by "None" never emits a property named "None", and the
// reader position after the call is the offset of the byte after the
// sentinel.
func TestSentinelProperty(t *testing.T) {
	var buf []byte
	buf = append(buf, buildInlineString("Foo")...)
	buf = append(buf, buildInlineString("IntProperty")...)
	buf = append(buf, le32(4)...)
	buf = append(buf, le32(0)...)
	buf = append(buf, le32(7)...)
	buf = append(buf, buildInlineString(NoneName)...)

	r := NewReader(buf)
	props, err := ReadProperties(r, false, FramingLegacy)
	if err != nil {
		t.Fatalf("ReadProperties: %v", err)
	}
	if len(props) != 1 {
		t.Fatalf("got %d properties, want 1", len(props))
	}
	for _, p := range props {
		if p.Name.Text == NoneName {
			t.Fatalf("sentinel leaked into property list: %+v", p)
		}
	}
	if props[0].Name.Text != "Foo" {
		t.Fatalf("props[0].Name = %q, want Foo", props[0].Name.Text)
	}
	if r.Position() != int64(len(buf)) {
		t.Fatalf("reader position = %d, want %d (end of buffer)", r.Position(), len(buf))
	}
}

// TestByteFlagDecoding pins the inferred Modern-worldsave BoolProperty flag
// semantics: bit 0 signals a trailing array-index override, bit 4 carries
// the boolean value itself.
func TestByteFlagDecoding(t *testing.T) {
	cases := []struct {
		flag      uint8
		wantValue bool
		wantIndex bool
	}{
		{0x00, false, false},
		{0x10, true, false},
		{0x01, false, true},
		{0x11, true, true},
	}
	for _, c := range cases {
		var buf []byte
		buf = append(buf, le32(0)...) // 4 zero bytes
		buf = append(buf, le32(0)...) // data size
		buf = append(buf, c.flag)
		if c.wantIndex {
			buf = append(buf, le32(3)...)
		}
		r := NewReader(buf)
		h := &propertyHeader{}
		val, err := readBoolProperty(r, nil, true, FramingModernWorldSave, h)
		if err != nil {
			t.Fatalf("flag %#x: readBoolProperty: %v", c.flag, err)
		}
		bv, ok := val.(BoolValue)
		if !ok {
			t.Fatalf("flag %#x: value is %T, want BoolValue", c.flag, val)
		}
		if bv.Value != c.wantValue {
			t.Fatalf("flag %#x: value = %v, want %v", c.flag, bv.Value, c.wantValue)
		}
		if c.wantIndex && h.ArrayIndex != 3 {
			t.Fatalf("flag %#x: ArrayIndex = %d, want 3", c.flag, h.ArrayIndex)
		}
	}
}

// TestByteFlagDecodingByteProperty pins the Modern-worldsave ByteProperty
// wire budget against the Python ground truth (byte_property.py): the
// raw-byte branch (marker/discriminator == 0) reads discriminator(4) +
// data-size(4) + flag(1) + value(1) = 10 bytes with no array-index
// override, or 14 bytes when the flag's bit 0 requests one; the enum
// branch (discriminator != 0) reads straight from the flag byte to the
// enum-value reference with no array-index read in between.
func TestByteFlagDecodingByteProperty(t *testing.T) {
	t.Run("raw, no index", func(t *testing.T) {
		var buf []byte
		buf = append(buf, le32(0)...) // discriminator: raw-byte branch
		buf = append(buf, le32(0)...) // data-size, unused
		buf = append(buf, 0x00)       // flag: no array-index override
		buf = append(buf, 0x2a)       // the byte value, 42

		r := NewReader(buf)
		h := &propertyHeader{}
		val, err := readByteProperty(r, nil, true, FramingModernWorldSave, h)
		if err != nil {
			t.Fatalf("readByteProperty: %v", err)
		}
		bv, ok := val.(ByteValue)
		if !ok {
			t.Fatalf("value is %T, want ByteValue", val)
		}
		if bv.IsEnum || bv.Raw != 0x2a {
			t.Fatalf("got %+v, want raw byte 0x2a", bv)
		}
		if r.Remaining() != 0 {
			t.Fatalf("reader has %d bytes left over, want exactly the 10-byte raw budget consumed", r.Remaining())
		}
	})

	t.Run("raw, with index override", func(t *testing.T) {
		var buf []byte
		buf = append(buf, le32(0)...) // discriminator: raw-byte branch
		buf = append(buf, le32(0)...) // data-size, unused
		buf = append(buf, 0x01)       // flag: bit 0 set, array-index follows
		buf = append(buf, le32(3)...) // array-index override
		buf = append(buf, 0x7f)       // the byte value

		r := NewReader(buf)
		h := &propertyHeader{}
		val, err := readByteProperty(r, nil, true, FramingModernWorldSave, h)
		if err != nil {
			t.Fatalf("readByteProperty: %v", err)
		}
		bv, ok := val.(ByteValue)
		if !ok {
			t.Fatalf("value is %T, want ByteValue", val)
		}
		if bv.IsEnum || bv.Raw != 0x7f {
			t.Fatalf("got %+v, want raw byte 0x7f", bv)
		}
		if h.ArrayIndex != 3 {
			t.Fatalf("ArrayIndex = %d, want 3", h.ArrayIndex)
		}
		if r.Remaining() != 0 {
			t.Fatalf("reader has %d bytes left over, want exactly the 14-byte raw-with-index budget consumed", r.Remaining())
		}
	})

	t.Run("enum", func(t *testing.T) {
		nt := NewSparseNameTable(map[int32]string{
			100: "EPrimalDinoStatus",
			200: "Unconscious",
			300: "SomeBlueprint",
		})
		var buf []byte
		buf = append(buf, le32(1)...)   // discriminator: enum branch
		buf = append(buf, le32(100)...) // enum-type key
		buf = append(buf, le32(0)...)   // enum-type instance
		buf = append(buf, le32(0)...)   // marker, unused
		buf = append(buf, le32(300)...) // blueprint-name key
		buf = append(buf, le32(0)...)   // blueprint-name instance
		buf = append(buf, le32(0)...)   // zero padding
		buf = append(buf, le32(0)...)   // data-size, unused
		// Flag byte has bit 0 set; the enum branch must NOT read a
		// trailing array-index override for it, unlike the raw branch.
		buf = append(buf, 0x01)
		buf = append(buf, le32(200)...) // enum-value key
		buf = append(buf, le32(0)...)   // enum-value instance

		r := NewReader(buf)
		h := &propertyHeader{}
		val, err := readByteProperty(r, nt, true, FramingModernWorldSave, h)
		if err != nil {
			t.Fatalf("readByteProperty: %v", err)
		}
		bv, ok := val.(ByteValue)
		if !ok {
			t.Fatalf("value is %T, want ByteValue", val)
		}
		if !bv.IsEnum || bv.EnumType != "EPrimalDinoStatus" || bv.EnumValue != "Unconscious" {
			t.Fatalf("got %+v, want enum EPrimalDinoStatus=Unconscious", bv)
		}
		if h.ArrayIndex != 0 {
			t.Fatalf("ArrayIndex = %d, want 0 (enum branch never reads an override)", h.ArrayIndex)
		}
		if r.Remaining() != 0 {
			t.Fatalf("reader has %d bytes left over after the enum layout", r.Remaining())
		}
	})
}

// TestArrayStructTypeOverrideWiring pins that a struct-array whose wire
// struct-type tag is blank (the CustomColors wire layout never names an
// element struct type) resolves its elements via the array-name override
// table instead of degrading to a generic property-list struct.
func TestArrayStructTypeOverrideWiring(t *testing.T) {
	var buf []byte
	buf = append(buf, buildInlineString("StructProperty")...) // array element type
	buf = append(buf, le32(1)...)                             // struct-header discriminator
	buf = append(buf, buildInlineString("")...)               // struct type, blank on the wire
	buf = append(buf, buildInlineString("")...)               // script path, unused
	buf = append(buf, 0x00)                                   // byte length, unused
	buf = append(buf, 0x00)                                   // flag: no inter-element padding
	buf = append(buf, le32(2)...)                             // element count
	buf = append(buf, 0x01, 0x02, 0x03, 0xff)                 // element 0: Color (B,G,R,A)
	buf = append(buf, 0x04, 0x05, 0x06, 0xff)                 // element 1: Color (B,G,R,A)

	r := NewReader(buf)
	h := &propertyHeader{Name: Name{Text: "CustomColors"}}
	val, err := readArrayProperty(r, nil, false, FramingLegacy, h)
	if err != nil {
		t.Fatalf("readArrayProperty: %v", err)
	}
	av, ok := val.(ArrayValue)
	if !ok {
		t.Fatalf("value is %T, want ArrayValue", val)
	}
	if av.StructType != "Color" {
		t.Fatalf("StructType = %q, want Color (from the array-name override, not the blank wire tag)", av.StructType)
	}
	if len(av.Elements) != 2 {
		t.Fatalf("got %d elements, want 2", len(av.Elements))
	}
	for i, el := range av.Elements {
		sv, ok := el.(StructValue)
		if !ok {
			t.Fatalf("element %d is %T, want StructValue", i, el)
		}
		c, ok := sv.Value.(*ColorStruct)
		if !ok {
			t.Fatalf("element %d struct is %T, want *ColorStruct (native decode, not a property-list fallback)", i, sv.Value)
		}
		if !c.IsNative() || c.StructType() != "Color" {
			t.Fatalf("element %d = %+v, want a native Color struct", i, c)
		}
	}
	if av.Elements[0].(StructValue).Value.(*ColorStruct).R != 0x03 {
		t.Fatalf("element 0 R channel = %#x, want 0x03", av.Elements[0].(StructValue).Value.(*ColorStruct).R)
	}
	if r.Remaining() != 0 {
		t.Fatalf("reader has %d bytes left over", r.Remaining())
	}
}
