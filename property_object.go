package arkparser

// readObjectProperty implements the three ObjectProperty sub-variants of
// spec.md §4.5.
func readObjectProperty(r *Reader, nt NameTable, isModern bool, framing PropertyFraming, h *propertyHeader) (PropertyValue, error) {
	switch framing {
	case FramingLegacy:
		return readLegacyObjectRef(r, nt, h.DataSize)
	case FramingModernString:
		return readModernStringObjectRef(r, h)
	default:
		return readModernWorldSaveObjectRef(r, nt, h)
	}
}

func readLegacyObjectRef(r *Reader, nt NameTable, dataSize int32) (PropertyValue, error) {
	if dataSize == 4 {
		id, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		return ObjectRefValue{Value: ObjectRef{Kind: ObjectRefByID, ID: id}}, nil
	}
	if dataSize >= 8 {
		tag, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		switch tag {
		case 0:
			id, err := r.ReadI32()
			if err != nil {
				return nil, err
			}
			return ObjectRefValue{Value: ObjectRef{Kind: ObjectRefByID, ID: id}}, nil
		case 1:
			n, err := readLegacyName(r, nt)
			if err != nil {
				return nil, err
			}
			return ObjectRefValue{Value: ObjectRef{Kind: ObjectRefByName, Name: n}}, nil
		default:
			// Unknown tag: rewind the 4 bytes we consumed and reinterpret
			// them as the start of a by-name reference.
			r.SetPosition(r.Position() - 4)
			n, err := readLegacyName(r, nt)
			if err != nil {
				return nil, err
			}
			return ObjectRefValue{Value: ObjectRef{Kind: ObjectRefByName, Name: n}}, nil
		}
	}
	return ObjectRefValue{Value: ObjectRef{Kind: ObjectRefNull}}, nil
}

func readModernStringObjectRef(r *Reader, h *propertyHeader) (PropertyValue, error) {
	if _, err := modernStringFlagPrefix(r, h); err != nil {
		return nil, err
	}
	existsFlag, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	switch {
	case existsFlag == 1 && h.DataSize > 5:
		path, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		return ObjectRefValue{Value: ObjectRef{Kind: ObjectRefByName, Name: Name{Text: path}}}, nil
	case existsFlag == 1:
		return ObjectRefValue{Value: ObjectRef{Kind: ObjectRefNull}}, nil
	case existsFlag == -1:
		return ObjectRefValue{Value: ObjectRef{Kind: ObjectRefNull}}, nil
	default: // existsFlag == 0
		if _, err := r.ReadI32(); err != nil {
			return nil, err
		}
		return ObjectRefValue{Value: ObjectRef{Kind: ObjectRefNull}}, nil
	}
}

func readModernWorldSaveObjectRef(r *Reader, nt NameTable, h *propertyHeader) (PropertyValue, error) {
	if _, _, err := modernWorldSaveSimplePrefix(r, h); err != nil {
		return nil, err
	}
	marker, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	if marker == 1 {
		key, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		inst, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		return ObjectRefValue{Value: ObjectRef{Kind: ObjectRefByName, Name: nt.Resolve(key, inst)}}, nil
	}
	guid, err := r.ReadGUID()
	if err != nil {
		return nil, err
	}
	if guid.String() == "00000000-0000-0000-0000-000000000000" {
		return ObjectRefValue{Value: ObjectRef{Kind: ObjectRefNull}}, nil
	}
	return ObjectRefValue{Value: ObjectRef{Kind: ObjectRefByGUID, GUID: guid}}, nil
}

// readSoftObjectProperty reads a SoftObjectProperty: a soft reference
// carrying an asset path plus a sub-path string. Payload framing prefixes
// mirror ObjectProperty's (flag byte / worldsave prologue); the value body
// itself is a path-string pair in every framing, per spec.md §3's "pair
// of strings / a NameRef + padding" description.
func readSoftObjectProperty(r *Reader, nt NameTable, isModern bool, framing PropertyFraming, h *propertyHeader) (PropertyValue, error) {
	switch framing {
	case FramingLegacy:
	case FramingModernString:
		if _, err := modernStringFlagPrefix(r, h); err != nil {
			return nil, err
		}
	default:
		if _, _, err := modernWorldSaveSimplePrefix(r, h); err != nil {
			return nil, err
		}
	}
	path, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	subPath, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	return SoftObjectRefValue{Path: path, Name: Name{Text: subPath}}, nil
}
