package arkparser

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/unicode"
)

var utf16LEDecoder = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()

// Reader is a positional byte-level cursor over an owned buffer. It knows
// nothing about property or struct grammar; it is a pure primitive-decode
// facility, generalized from the teacher's offset-addressed ReadUintN
// helpers into a stateful cursor since the ARK formats require backward
// seeks (name-table lookups, properties-offset jumps) interleaved with
// sequential reads.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps buf for positional reading starting at offset 0. The
// reader does not copy buf; callers must not mutate it concurrently.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Len returns the total buffer length.
func (r *Reader) Len() int { return len(r.buf) }

// Position returns the current cursor offset.
func (r *Reader) Position() int64 { return int64(r.pos) }

// SetPosition moves the cursor to an absolute offset. It does not validate
// against buffer length; an out-of-range position surfaces as ErrEndOfData
// on the next read.
func (r *Reader) SetPosition(pos int64) { r.pos = int(pos) }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int64 { return int64(len(r.buf) - r.pos) }

// Bytes returns the underlying buffer. Callers must treat it as read-only.
func (r *Reader) Bytes() []byte { return r.buf }

func (r *Reader) need(n int) error {
	if n < 0 || r.pos+n > len(r.buf) {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrEndOfData, n, r.pos, len(r.buf)-r.pos)
	}
	return nil
}

// Skip advances the cursor by n bytes without reading them.
func (r *Reader) Skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

// Peek returns the next n bytes without advancing the cursor.
func (r *Reader) Peek(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	return r.buf[r.pos : r.pos+n], nil
}

// Slice reads the next n bytes as a sub-reader and advances the parent
// cursor past them.
func (r *Reader) Slice(n int) (*Reader, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	sub := NewReader(r.buf[r.pos : r.pos+n])
	r.pos += n
	return sub, nil
}

func (r *Reader) take(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadU8 reads an unsigned byte.
func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadI8 reads a signed byte.
func (r *Reader) ReadI8() (int8, error) {
	v, err := r.ReadU8()
	return int8(v), err
}

// ReadU16 reads a little-endian uint16.
func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadI16 reads a little-endian int16.
func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU16()
	return int16(v), err
}

// ReadU32 reads a little-endian uint32.
func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadI32 reads a little-endian int32.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

// ReadU64 reads a little-endian uint64.
func (r *Reader) ReadU64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadI64 reads a little-endian int64.
func (r *Reader) ReadI64() (int64, error) {
	v, err := r.ReadU64()
	return int64(v), err
}

// ReadF32 reads an IEEE 754 little-endian float32.
func (r *Reader) ReadF32() (float32, error) {
	v, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadF64 reads an IEEE 754 little-endian float64.
func (r *Reader) ReadF64() (float64, error) {
	v, err := r.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadBoolU8 treats a non-zero byte as true.
func (r *Reader) ReadBoolU8() (bool, error) {
	v, err := r.ReadU8()
	return v != 0, err
}

// ReadBoolU16 treats a non-zero uint16 as true.
func (r *Reader) ReadBoolU16() (bool, error) {
	v, err := r.ReadU16()
	return v != 0, err
}

// ReadBoolU32 treats a non-zero uint32 as true.
func (r *Reader) ReadBoolU32() (bool, error) {
	v, err := r.ReadU32()
	return v != 0, err
}

// ReadGUID reads a 16-byte little-endian GUID.
func (r *Reader) ReadGUID() (uuid.UUID, error) {
	b, err := r.take(16)
	if err != nil {
		return uuid.UUID{}, err
	}
	var u uuid.UUID
	// ARK GUIDs are stored as four little-endian uint32 words rather than
	// the RFC 4122 big-endian byte order uuid.UUID expects.
	for word := 0; word < 4; word++ {
		off := word * 4
		u[off], u[off+1], u[off+2], u[off+3] = b[off+3], b[off+2], b[off+1], b[off]
	}
	return u, nil
}

// ReadString decodes a length-prefixed string per the sign-based
// Latin-1/UTF-16 rule: L==0 empty; L==1 consumes one null byte and
// returns empty; L==-1 consumes a UTF-16 null and returns empty; L>0 reads
// L Latin-1 bytes and strips a trailing null; L<0 reads 2*|L| UTF-16LE
// bytes and strips a trailing UTF-16 null.
func (r *Reader) ReadString() (string, error) {
	length, err := r.ReadI32()
	if err != nil {
		return "", err
	}
	switch {
	case length == 0:
		return "", nil
	case length == 1:
		if _, err := r.take(1); err != nil {
			return "", err
		}
		return "", nil
	case length == -1:
		if _, err := r.take(2); err != nil {
			return "", err
		}
		return "", nil
	case length > 0:
		b, err := r.take(int(length))
		if err != nil {
			return "", err
		}
		b = trimTrailingNull(b)
		return latin1ToString(b), nil
	default:
		n := int(-length) * 2
		b, err := r.take(n)
		if err != nil {
			return "", err
		}
		return utf16LEToString(trimTrailingUTF16Null(b))
	}
}

func trimTrailingNull(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == 0 {
		return b[:len(b)-1]
	}
	return b
}

func trimTrailingUTF16Null(b []byte) []byte {
	if len(b) >= 2 && b[len(b)-2] == 0 && b[len(b)-1] == 0 {
		return b[:len(b)-2]
	}
	return b
}

func latin1ToString(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes)
}

// utf16LEToString decodes raw UTF-16LE bytes via x/text rather than
// hand-rolling surrogate-pair handling.
func utf16LEToString(b []byte) (string, error) {
	out, err := utf16LEDecoder.Bytes(b)
	if err != nil {
		return "", fmt.Errorf("arkparser: decode utf16le string: %w", err)
	}
	return string(out), nil
}
