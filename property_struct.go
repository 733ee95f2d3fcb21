package arkparser

// readStructProperty implements StructProperty per spec.md §4.5: a
// struct-type tag plus either a native fixed layout or a nested property
// list, with framing-specific header/padding conventions.
func readStructProperty(r *Reader, nt NameTable, isModern bool, framing PropertyFraming, h *propertyHeader) (PropertyValue, error) {
	switch framing {
	case FramingModernWorldSave:
		return readModernWorldSaveStruct(r, nt, isModern, framing, h)
	default:
		return readStringFramedStruct(r, nt, isModern, framing)
	}
}

func readStringFramedStruct(r *Reader, nt NameTable, isModern bool, framing PropertyFraming) (PropertyValue, error) {
	typeName, err := readFramedTypeName(r, nt, framing)
	if err != nil {
		return nil, err
	}
	// Modern v6 profile/tribe precedes property-list struct bodies with a
	// 17-byte zero padding block; native structs skip it. Detected by
	// peeking rather than threading a file-version flag through every
	// property reader.
	if framing == FramingModernString && !IsNativeStructType(typeName) {
		if peek, err := r.Peek(17); err == nil && allZero(peek) {
			if err := r.Skip(17); err != nil {
				return nil, err
			}
		}
	}
	s, err := ReadStruct(r, nt, typeName, isModern, framing)
	if err != nil {
		return nil, err
	}
	return StructValue{Value: s}, nil
}

func readModernWorldSaveStruct(r *Reader, nt NameTable, isModern bool, framing PropertyFraming, h *propertyHeader) (PropertyValue, error) {
	typeName, err := readWorldSaveName(r, nt)
	if err != nil {
		return nil, err
	}
	if _, err := readWorldSaveName(r, nt); err != nil { // script path, unused
		return nil, err
	}
	extraGroups, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	if extraGroups > 0 {
		if err := r.Skip(int(extraGroups) * 12); err != nil {
			return nil, err
		}
	}
	if _, err := r.ReadI32(); err != nil { // data-size, unused
		return nil, err
	}
	flag, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	if flag&0x01 != 0 {
		idx, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		h.ArrayIndex = idx
	}
	s, err := ReadStruct(r, nt, typeName.Text, isModern, framing)
	if err != nil {
		return nil, err
	}
	return StructValue{Value: s}, nil
}
