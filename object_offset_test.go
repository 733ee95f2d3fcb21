package arkparser

import (
	"encoding/binary"
	"testing"
)

// encodeLegacyString encodes s per spec.md §4.1's L>0 Latin-1 rule: a
// signed int32 length (payload length including the trailing null) plus
// the bytes themselves.
func encodeLegacyString(s string) []byte {
	payload := append([]byte(s), 0)
	buf := make([]byte, 4+len(payload))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(len(payload)))
	copy(buf[4:], payload)
	return buf
}

func encodeI32(v int32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(v))
	return buf
}

// encodeLegacyIntProperty builds one Legacy-framing IntProperty record:
// name, type-name, data-size, array-index, then the raw int32 value.
func encodeLegacyIntProperty(name string, value int32) []byte {
	var out []byte
	out = append(out, encodeLegacyString(name)...)
	out = append(out, encodeLegacyString("IntProperty")...)
	out = append(out, encodeI32(4)...) // data size
	out = append(out, encodeI32(0)...) // array index
	out = append(out, encodeI32(value)...)
	return out
}

// encodeLegacySentinel builds the "None" name that terminates a property
// list, per spec.md §3.
func encodeLegacySentinel() []byte {
	return encodeLegacyString(NoneName)
}

// TestObjectOffsetInvariant pins spec.md §8 property 4: seeking to a game
// object's computed properties offset and decoding yields exactly the
// properties emitted for that object, and consecutive objects' property
// regions do not overlap.
func TestObjectOffsetInvariant(t *testing.T) {
	obj1Props := append(encodeLegacyIntProperty("Health", 100), encodeLegacySentinel()...)
	obj2Props := append(encodeLegacyIntProperty("Stamina", 50), encodeLegacySentinel()...)

	// Lay both property blocks out in one buffer with a gap between them
	// representing header bytes a real file would carry for the second
	// object; LoadProperties must not read past its own region into that
	// gap when decoding obj1, and must land exactly on obj2's region when
	// seeking to PropertiesOffset.
	const gap = 8
	buf := make([]byte, 0, len(obj1Props)+gap+len(obj2Props))
	buf = append(buf, obj1Props...)
	buf = append(buf, make([]byte, gap)...)
	buf = append(buf, obj2Props...)

	obj1 := &GameObject{ID: 1, PropertiesOffset: 0}
	obj2 := &GameObject{ID: 2, PropertiesOffset: int32(len(obj1Props) + gap)}

	r := NewReader(buf)
	if err := obj1.LoadProperties(r, nil, 0, false, FramingLegacy, obj2); err != nil {
		t.Fatalf("obj1.LoadProperties: %v", err)
	}

	if len(obj1.Properties) != 1 {
		t.Fatalf("obj1 got %d properties, want 1", len(obj1.Properties))
	}
	p := obj1.Properties[0]
	if p.Name.Text != "Health" || p.Value.(IntValue).Value != 100 {
		t.Fatalf("obj1 property = %+v, want Health=100", p)
	}
	for _, p := range obj1.Properties {
		if p.Name.Text == NoneName {
			t.Fatal("sentinel must not be emitted as a visible property")
		}
	}

	// The reader must now sit exactly at obj2's properties offset: no
	// overlap, no short read into the gap.
	if r.Position() != int64(obj2.PropertiesOffset) {
		t.Fatalf("reader position after obj1 decode = %d, want %d (obj2's offset)", r.Position(), obj2.PropertiesOffset)
	}

	if err := obj2.LoadProperties(r, nil, 0, false, FramingLegacy, nil); err != nil {
		t.Fatalf("obj2.LoadProperties: %v", err)
	}
	if len(obj2.Properties) != 1 {
		t.Fatalf("obj2 got %d properties, want 1", len(obj2.Properties))
	}
	p2 := obj2.Properties[0]
	if p2.Name.Text != "Stamina" || p2.Value.(IntValue).Value != 50 {
		t.Fatalf("obj2 property = %+v, want Stamina=50", p2)
	}

	// Regions must not overlap: obj1's region ends at len(obj1Props),
	// obj2's region starts strictly at-or-after that point.
	if int64(obj2.PropertiesOffset) < int64(len(obj1Props)) {
		t.Fatalf("obj2 offset %d overlaps obj1's region of length %d", obj2.PropertiesOffset, len(obj1Props))
	}
}
