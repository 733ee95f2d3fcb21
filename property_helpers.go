package arkparser

// modernStringFlagPrefix reads the one-byte flag that precedes every
// value in Modern-string framing. Bit 0 set means an int32 array-index
// override follows; when present, h.ArrayIndex is updated in place.
func modernStringFlagPrefix(r *Reader, h *propertyHeader) (flag uint8, err error) {
	flag, err = r.ReadU8()
	if err != nil {
		return 0, err
	}
	if flag&0x01 != 0 {
		idx, err := r.ReadI32()
		if err != nil {
			return 0, err
		}
		h.ArrayIndex = idx
	}
	return flag, nil
}

// modernWorldSaveSimplePrefix reads the common Modern-worldsave payload
// prologue: 4 zero bytes, an int32 data-size, then a flag byte (bit 0 =
// has array-index override, bit 4 = bool value for BoolProperty). When an
// override is present h.ArrayIndex is updated in place.
func modernWorldSaveSimplePrefix(r *Reader, h *propertyHeader) (flag uint8, dataSize int32, err error) {
	if err = r.Skip(4); err != nil {
		return 0, 0, err
	}
	dataSize, err = r.ReadI32()
	if err != nil {
		return 0, 0, err
	}
	flag, err = r.ReadU8()
	if err != nil {
		return 0, 0, err
	}
	if flag&0x01 != 0 {
		idx, err := r.ReadI32()
		if err != nil {
			return 0, 0, err
		}
		h.ArrayIndex = idx
	}
	return flag, dataSize, nil
}
