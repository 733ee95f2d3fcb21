package arkparser

// readMapProperty implements MapProperty per spec.md §4.5. The
// Legacy/Modern-string variants are under-exercised in the reference
// corpus and are emitted as a placeholder rather than guessed, per the
// open-question decision recorded in DESIGN.md; the Modern-worldsave
// variant, observed throughout real world saves, is fully decoded,
// including its embedded-struct value variant.
func readMapProperty(r *Reader, nt NameTable, isModern bool, framing PropertyFraming, h *propertyHeader) (PropertyValue, error) {
	if framing != FramingModernWorldSave {
		// Still must consume the bytes so the reader stays synchronized
		// for legacy/modern-string files, using the generic shape spec.md
		// describes: key-type, value-type, flag byte, count, count pairs
		// of raw values.
		keyType, err := readFramedTypeName(r, nt, framing)
		if err != nil {
			return nil, err
		}
		valType, err := readFramedTypeName(r, nt, framing)
		if err != nil {
			return nil, err
		}
		if _, err := r.ReadU8(); err != nil { // flag byte, skipped
			return nil, err
		}
		count, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		for i := int32(0); i < count; i++ {
			if _, err := readArrayElementRaw(r, nt, keyType, isModern); err != nil {
				return nil, err
			}
			if _, err := readArrayElementRaw(r, nt, valType, isModern); err != nil {
				return nil, err
			}
		}
		return MapValue{KeyType: keyType, ValType: valType, Placeholder: true}, nil
	}

	if _, err := r.ReadI32(); err != nil { // marker, expected 2
		return nil, err
	}
	keyType, err := readFramedTypeName(r, nt, framing)
	if err != nil {
		return nil, err
	}
	valType, err := readFramedTypeName(r, nt, framing)
	if err != nil {
		return nil, err
	}
	if _, err := r.ReadU8(); err != nil { // flag byte, skipped
		return nil, err
	}

	var embeddedStructType string
	if valType == "StructProperty" {
		discriminator, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		st, err := readFramedTypeName(r, nt, framing)
		if err != nil {
			return nil, err
		}
		embeddedStructType = st
		if _, err := readFramedTypeName(r, nt, framing); err != nil { // script path, unused
			return nil, err
		}
		if discriminator > 1 {
			if err := r.Skip(int(discriminator-1) * 12); err != nil {
				return nil, err
			}
		}
		if _, err := r.ReadU8(); err != nil { // byte length, unused
			return nil, err
		}
		if _, err := r.ReadU8(); err != nil { // flag byte, unused
			return nil, err
		}
	}

	if _, err := r.ReadI32(); err != nil { // data-size, unused
		return nil, err
	}
	count, err := r.ReadI32()
	if err != nil {
		return nil, err
	}

	entries := make([]MapEntry, 0, count)
	for i := int32(0); i < count; i++ {
		keyVal, err := readArrayElementRaw(r, nt, keyType, isModern)
		if err != nil {
			return nil, err
		}
		var valVal PropertyValue
		if valType == "StructProperty" {
			s, err := readPropertyListStruct(r, nt, embeddedStructType, isModern, framing)
			if err != nil {
				return nil, err
			}
			valVal = StructValue{Value: s}
		} else {
			valVal, err = readArrayElementRaw(r, nt, valType, isModern)
			if err != nil {
				return nil, err
			}
		}
		entries = append(entries, MapEntry{Key: keyVal, Value: valVal})
	}
	return MapValue{KeyType: keyType, ValType: valType, Entries: entries}, nil
}
