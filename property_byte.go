package arkparser

// readByteProperty implements the three ByteProperty sub-variants of
// spec.md §4.5. A ByteProperty value is either a raw 0-255 value (tagged
// by sentinel enum-type "None") or an enum literal (enum-type name plus
// enum-value name).
func readByteProperty(r *Reader, nt NameTable, isModern bool, framing PropertyFraming, h *propertyHeader) (PropertyValue, error) {
	switch framing {
	case FramingLegacy:
		return readLegacyByteProperty(r, nt)
	case FramingModernString:
		return readModernStringByteProperty(r, h)
	default:
		return readModernWorldSaveByteProperty(r, nt, h)
	}
}

func readLegacyByteProperty(r *Reader, nt NameTable) (PropertyValue, error) {
	enumType, err := readLegacyName(r, nt)
	if err != nil {
		return nil, err
	}
	if enumType.Text == NoneName {
		b, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		return ByteValue{Raw: b}, nil
	}
	enumVal, err := readLegacyName(r, nt)
	if err != nil {
		return nil, err
	}
	return ByteValue{IsEnum: true, EnumType: enumType.String(), EnumValue: enumVal.String()}, nil
}

// readModernStringByteProperty uses the header's array-index field
// (already parsed by readPropertyHeader into h.ArrayIndex) as the
// enum-type-name length discriminator, per spec.md §4.5.
func readModernStringByteProperty(r *Reader, h *propertyHeader) (PropertyValue, error) {
	enumNameLen := h.ArrayIndex
	if enumNameLen == 1 {
		if _, err := modernStringFlagPrefix(r, h); err != nil {
			return nil, err
		}
		b, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		return ByteValue{Raw: b}, nil
	}
	enumType, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	if _, err := r.ReadString(); err != nil { // script path, unused
		return nil, err
	}
	if err := r.Skip(4); err != nil { // zero padding
		return nil, err
	}
	if _, err := r.ReadI32(); err != nil { // data-size, unused
		return nil, err
	}
	if _, err := modernStringFlagPrefix(r, h); err != nil {
		return nil, err
	}
	enumVal, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	return ByteValue{IsEnum: true, EnumType: enumType, EnumValue: enumVal}, nil
}

func readModernWorldSaveByteProperty(r *Reader, nt NameTable, h *propertyHeader) (PropertyValue, error) {
	discriminator, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	if discriminator == 0 {
		// The discriminator int32 just read stands in for the common
		// prologue's leading 4 zero bytes, so only data-size, flag, and
		// the optional array-index override follow before the value
		// (spec.md §4.5's ByteProperty Modern-worldsave raw-byte branch),
		// not the full modernWorldSaveSimplePrefix (which would re-skip
		// an extra 4 bytes with no counterpart here).
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
		b, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		return ByteValue{Raw: b}, nil
	}

	enumType, err := readWorldSaveName(r, nt)
	if err != nil {
		return nil, err
	}
	if _, err := r.ReadI32(); err != nil { // marker, unused
		return nil, err
	}
	if _, err := readWorldSaveName(r, nt); err != nil { // blueprint name, unused
		return nil, err
	}
	if err := r.Skip(4); err != nil { // zero padding
		return nil, err
	}
	if _, err := r.ReadI32(); err != nil { // data-size, unused
		return nil, err
	}
	// Unlike the raw-byte branch, the enum branch reads straight from
	// the flag byte to the enum-value reference: no array-index override
	// is read here (ground truth byte_property.py's enum path has none).
	if _, err := r.ReadU8(); err != nil { // flag, unused
		return nil, err
	}
	enumVal, err := readWorldSaveName(r, nt)
	if err != nil {
		return nil, err
	}
	return ByteValue{IsEnum: true, EnumType: enumType.String(), EnumValue: enumVal.String()}, nil
}

// readWorldSaveName reads a (key, instance) pair and resolves it against
// nt, the common name-reference shape used throughout Modern-worldsave
// framing wherever a raw string would appear in the other framings.
func readWorldSaveName(r *Reader, nt NameTable) (Name, error) {
	key, err := r.ReadI32()
	if err != nil {
		return Name{}, err
	}
	inst, err := r.ReadI32()
	if err != nil {
		return Name{}, err
	}
	return nt.Resolve(key, inst), nil
}
