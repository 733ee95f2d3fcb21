package arkparser

// Location is a game object's position and orientation. Legacy stores
// these as float32; Modern stores float64. Both are widened to float64
// on read so the rest of the decoder is generation-agnostic.
type Location struct {
	X, Y, Z          float64
	Pitch, Yaw, Roll float64
}

// Size returns the on-disk byte size of a Location for the given
// generation: 24 bytes Legacy (6 x float32), 48 bytes Modern (6 x float64).
func (Location) Size(isModern bool) int {
	if isModern {
		return 48
	}
	return 24
}

// ReadLocation reads a Location using float32 fields in Legacy files and
// float64 fields in Modern files.
func ReadLocation(r *Reader, isModern bool) (Location, error) {
	var loc Location
	read := func() (float64, error) {
		if isModern {
			return r.ReadF64()
		}
		v, err := r.ReadF32()
		return float64(v), err
	}
	vals := make([]float64, 6)
	for i := range vals {
		v, err := read()
		if err != nil {
			return Location{}, err
		}
		vals[i] = v
	}
	loc.X, loc.Y, loc.Z = vals[0], vals[1], vals[2]
	loc.Pitch, loc.Yaw, loc.Roll = vals[3], vals[4], vals[5]
	return loc, nil
}
