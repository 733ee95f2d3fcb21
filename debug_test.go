package arkparser

import (
	"strings"
	"testing"
)

func TestDebugContextMarksCurrentByte(t *testing.T) {
	buf := make([]byte, 64)
	for i := range buf {
		buf[i] = byte(i)
	}
	r := NewReader(buf)
	r.SetPosition(40)

	out := r.DebugContext(8)

	if !strings.Contains(out, ">28") {
		t.Fatalf("expected marker byte '>28' (offset 40 = 0x28) in output, got:\n%s", out)
	}
	if strings.Count(out, ">") != 1 {
		t.Fatalf("expected exactly one marked byte, got output:\n%s", out)
	}
}

func TestDebugContextClampsToBufferBounds(t *testing.T) {
	buf := []byte{0xAA, 0xBB, 0xCC}
	r := NewReader(buf)
	r.SetPosition(0)

	out := r.DebugContext(16)

	if !strings.Contains(out, ">aa") {
		t.Fatalf("expected marked first byte, got:\n%s", out)
	}
	if !strings.Contains(out, "cc") {
		t.Fatalf("expected last byte present despite window exceeding buffer, got:\n%s", out)
	}
}
