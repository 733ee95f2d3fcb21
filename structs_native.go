package arkparser

import "github.com/google/uuid"

// Native struct types with fixed binary layouts, per spec.md §4.4. Each
// carries its own generation-dependent byte width; field values are
// widened to float64/int64 where relevant so callers don't branch on
// generation again downstream.

type nativeBase struct {
	typeName string
}

func (n nativeBase) StructType() string { return n.typeName }
func (nativeBase) IsNative() bool       { return true }

// VectorStruct is a 3-component vector: 12 bytes (f32 x3) Legacy, 24 bytes
// (f64 x3) Modern.
type VectorStruct struct {
	nativeBase
	X, Y, Z float64
}

func readVectorStruct(r *Reader, isModern bool) (Struct, error) {
	vals, err := readFloatTuple(r, isModern, 3)
	if err != nil {
		return nil, err
	}
	return &VectorStruct{nativeBase{"Vector"}, vals[0], vals[1], vals[2]}, nil
}

// Vector2DStruct is a 2-component vector: 8 bytes Legacy, 16 bytes Modern.
type Vector2DStruct struct {
	nativeBase
	X, Y float64
}

func readVector2DStruct(r *Reader, isModern bool) (Struct, error) {
	vals, err := readFloatTuple(r, isModern, 2)
	if err != nil {
		return nil, err
	}
	return &Vector2DStruct{nativeBase{"Vector2D"}, vals[0], vals[1]}, nil
}

// RotatorStruct is pitch/yaw/roll: 12 bytes Legacy, 24 bytes Modern.
type RotatorStruct struct {
	nativeBase
	Pitch, Yaw, Roll float64
}

func readRotatorStruct(r *Reader, isModern bool) (Struct, error) {
	vals, err := readFloatTuple(r, isModern, 3)
	if err != nil {
		return nil, err
	}
	return &RotatorStruct{nativeBase{"Rotator"}, vals[0], vals[1], vals[2]}, nil
}

// QuatStruct is x,y,z,w: 16 bytes Legacy and Modern non-worldsave; 32
// bytes in world-save Modern (f64 components). ReadStruct special-cases
// the framing check and passes isModern=true only for worldsave framing,
// matching spec.md's "(32 in world-save Modern)" note.
type QuatStruct struct {
	nativeBase
	X, Y, Z, W float64
}

func readQuatStruct(r *Reader, isModern bool) (Struct, error) {
	vals, err := readFloatTuple(r, isModern, 4)
	if err != nil {
		return nil, err
	}
	return &QuatStruct{nativeBase{"Quat"}, vals[0], vals[1], vals[2], vals[3]}, nil
}

// IntPointStruct is x,y as int32: 8 bytes in both generations.
type IntPointStruct struct {
	nativeBase
	X, Y int32
}

func readIntPointStruct(r *Reader, _ bool) (Struct, error) {
	x, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	y, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	return &IntPointStruct{nativeBase{"IntPoint"}, x, y}, nil
}

// IntVectorStruct is x,y,z as int32: 12 bytes in both generations.
type IntVectorStruct struct {
	nativeBase
	X, Y, Z int32
}

func readIntVectorStruct(r *Reader, _ bool) (Struct, error) {
	vals := make([]int32, 3)
	for i := range vals {
		v, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return &IntVectorStruct{nativeBase{"IntVector"}, vals[0], vals[1], vals[2]}, nil
}

// ColorStruct stores channels in BGRA byte order on disk; fields are
// named by their semantic channel, not their disk position.
type ColorStruct struct {
	nativeBase
	B, G, R, A uint8
}

func readColorStruct(r *Reader, _ bool) (Struct, error) {
	b, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	g, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	rd, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	a, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	return &ColorStruct{nativeBase{"Color"}, b, g, rd, a}, nil
}

// LinearColorStruct is r,g,b,a as float32, 16 bytes in both generations.
type LinearColorStruct struct {
	nativeBase
	R, G, B, A float32
}

func readLinearColorStruct(r *Reader, _ bool) (Struct, error) {
	vals := make([]float32, 4)
	for i := range vals {
		v, err := r.ReadF32()
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return &LinearColorStruct{nativeBase{"LinearColor"}, vals[0], vals[1], vals[2], vals[3]}, nil
}

// GuidStruct is a 128-bit identifier, 16 bytes in both generations.
type GuidStruct struct {
	nativeBase
	ID uuid.UUID
}

func readGuidStruct(r *Reader, _ bool) (Struct, error) {
	id, err := r.ReadGUID()
	if err != nil {
		return nil, err
	}
	return &GuidStruct{nativeBase{"Guid"}, id}, nil
}

// UniqueNetIdReplStruct identifies a player's platform net ID. Legacy
// layout is (u32 unknown, string). Modern layout is (u8 type tag,
// platform-name string, u8 id length, id-length raw bytes).
type UniqueNetIdReplStruct struct {
	nativeBase
	Unknown  uint32 // Legacy only
	Type     uint8  // Modern only
	Platform string
	ID       []byte // Modern only
}

func readUniqueNetIdReplStruct(r *Reader, isModern bool) (Struct, error) {
	s := UniqueNetIdReplStruct{nativeBase: nativeBase{"UniqueNetIdRepl"}}
	if !isModern {
		unk, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		str, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		s.Unknown = unk
		s.Platform = str
		return &s, nil
	}
	typ, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	platform, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	idLen, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	id, err := r.take(int(idLen))
	if err != nil {
		return nil, err
	}
	s.Type = typ
	s.Platform = platform
	s.ID = append([]byte(nil), id...)
	return &s, nil
}

// CustomItemDataRefStruct is four int32 fields, 16 bytes in both
// generations.
type CustomItemDataRefStruct struct {
	nativeBase
	A, B, C, D int32
}

func readCustomItemDataRefStruct(r *Reader, _ bool) (Struct, error) {
	vals := make([]int32, 4)
	for i := range vals {
		v, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return &CustomItemDataRefStruct{nativeBase{"CustomItemDataRef"}, vals[0], vals[1], vals[2], vals[3]}, nil
}

func readFloatTuple(r *Reader, isModern bool, n int) ([]float64, error) {
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		if isModern {
			v, err := r.ReadF64()
			if err != nil {
				return nil, err
			}
			vals[i] = v
		} else {
			v, err := r.ReadF32()
			if err != nil {
				return nil, err
			}
			vals[i] = float64(v)
		}
	}
	return vals, nil
}
