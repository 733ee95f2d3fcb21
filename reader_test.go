package arkparser

import "testing"

// TestStringDecoderLaw pins spec's string-decoder law: for every supported
// length sentinel, ReadString returns the expected text, with length 1 and
// -1 both decoding to "".
func TestStringDecoderLaw(t *testing.T) {
	cases := []struct {
		name string
		buf  []byte
		want string
	}{
		{"zero length", []byte{0, 0, 0, 0}, ""},
		{"length one (single null)", []byte{1, 0, 0, 0, 0x00}, ""},
		{"negative one (utf16 null)", []byte{0xff, 0xff, 0xff, 0xff, 0x00, 0x00}, ""},
		{"positive latin1", append([]byte{6, 0, 0, 0}, []byte("Hello\x00")...), "Hello"},
		{"negative utf16", append([]byte{0xfd, 0xff, 0xff, 0xff}, encodeUTF16LE("Hi")...), "Hi"},
		{"length thirty-three", append([]byte{33, 0, 0, 0}, append([]byte(exactly32()), 0x00)...), exactly32()},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := NewReader(c.buf)
			got, err := r.ReadString()
			if err != nil {
				t.Fatalf("ReadString: %v", err)
			}
			if got != c.want {
				t.Fatalf("ReadString = %q, want %q", got, c.want)
			}
		})
	}
}

func exactly32() string {
	b := make([]byte, 32)
	for i := range b {
		b[i] = byte('a' + i%26)
	}
	return string(b)
}

func encodeUTF16LE(s string) []byte {
	out := make([]byte, 0, len(s)*2+2)
	for _, r := range s {
		out = append(out, byte(r), 0)
	}
	return append(out, 0, 0)
}

func TestReaderPrimitiveRoundTrip(t *testing.T) {
	buf := []byte{0x01, 0xfe, 0xef, 0xbe, 0xad, 0xde}
	r := NewReader(buf)
	u8, err := r.ReadU8()
	if err != nil || u8 != 0x01 {
		t.Fatalf("ReadU8 = %v, %v", u8, err)
	}
	i8, err := r.ReadI8()
	if err != nil || i8 != -2 {
		t.Fatalf("ReadI8 = %v, %v", i8, err)
	}
	u32, err := r.ReadU32()
	if err != nil || u32 != 0xdeadbeef {
		t.Fatalf("ReadU32 = %x, %v", u32, err)
	}
	if r.Remaining() != 0 {
		t.Fatalf("Remaining = %d, want 0", r.Remaining())
	}
}

func TestReaderEndOfData(t *testing.T) {
	r := NewReader([]byte{0x01})
	if _, err := r.ReadU32(); err == nil {
		t.Fatal("expected ErrEndOfData reading past buffer end")
	}
}
