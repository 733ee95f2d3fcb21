package arkparser

// readArrayProperty implements ArrayProperty per spec.md §4.5: an
// element-type tag plus a sequence of values. When the element type is
// StructProperty a nested struct-array header precedes the element count
// and carries the shared struct-type tag for every element.
func readArrayProperty(r *Reader, nt NameTable, isModern bool, framing PropertyFraming, h *propertyHeader) (PropertyValue, error) {
	switch framing {
	case FramingModernString:
		if _, err := modernStringFlagPrefix(r, h); err != nil {
			return nil, err
		}
	case FramingModernWorldSave:
		if _, _, err := modernWorldSaveSimplePrefix(r, h); err != nil {
			return nil, err
		}
	}

	elementType, err := readFramedTypeName(r, nt, framing)
	if err != nil {
		return nil, err
	}

	if elementType == "StructProperty" {
		return readStructArray(r, nt, isModern, framing, h.Name.Text)
	}

	count, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	elements := make([]PropertyValue, 0, count)
	for i := int32(0); i < count; i++ {
		v, err := readArrayElementRaw(r, nt, elementType, isModern)
		if err != nil {
			return nil, err
		}
		elements = append(elements, v)
	}
	return ArrayValue{ElementType: elementType, Elements: elements}, nil
}

func readStructArray(r *Reader, nt NameTable, isModern bool, framing PropertyFraming, arrayName string) (PropertyValue, error) {
	discriminator, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	structType, err := readFramedTypeName(r, nt, framing)
	if err != nil {
		return nil, err
	}
	if _, err := readFramedTypeName(r, nt, framing); err != nil { // script path, unused
		return nil, err
	}
	// Some arrays (e.g. CustomColors) never name their element struct
	// type on the wire; when the wire-provided type isn't a registered
	// native struct, fall back to the array-name override table before
	// degrading to a generic property list, per original_source's
	// read_struct_for_array/ARRAY_NAME_TO_STRUCT_TYPE.
	if !IsNativeStructType(structType) {
		if override, ok := ArrayStructTypeFor(arrayName); ok {
			structType = override
		}
	}
	// Extra name-reference groups when the discriminator exceeds 1. The
	// purpose of these groups is unknown; preserved as observed.
	if discriminator > 1 {
		if err := r.Skip(int(discriminator-1) * 12); err != nil {
			return nil, err
		}
	}
	if _, err := r.ReadU8(); err != nil { // byte length, unused
		return nil, err
	}
	flag, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	count, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	// Bit 3 of the outer extra byte signals 4-byte padding between
	// elements (except after the last) in one Modern cloud variant.
	hasPadding := flag&0x08 != 0

	elements := make([]PropertyValue, 0, count)
	for i := int32(0); i < count; i++ {
		s, err := ReadStruct(r, nt, structType, isModern, framing)
		if err != nil {
			return nil, err
		}
		elements = append(elements, StructValue{Value: s})
		if hasPadding && i != count-1 {
			if err := r.Skip(4); err != nil {
				return nil, err
			}
		}
	}
	return ArrayValue{ElementType: "StructProperty", StructType: structType, Elements: elements}, nil
}

// readArrayElementRaw reads one bare element value with no per-element
// header, per spec.md §4.5's "the inner reader is the per-type raw
// reader (no per-element headers)".
func readArrayElementRaw(r *Reader, nt NameTable, elementType string, isModern bool) (PropertyValue, error) {
	switch elementType {
	case "Int8Property":
		v, err := r.ReadI8()
		return IntValue{Bits: 8, Signed: true, Value: int64(v)}, err
	case "UInt8Property", "ByteProperty":
		v, err := r.ReadU8()
		return IntValue{Bits: 8, Signed: false, Value: int64(v)}, err
	case "Int16Property":
		v, err := r.ReadI16()
		return IntValue{Bits: 16, Signed: true, Value: int64(v)}, err
	case "UInt16Property":
		v, err := r.ReadU16()
		return IntValue{Bits: 16, Signed: false, Value: int64(v)}, err
	case "IntProperty":
		v, err := r.ReadI32()
		return IntValue{Bits: 32, Signed: true, Value: int64(v)}, err
	case "UInt32Property":
		v, err := r.ReadU32()
		return IntValue{Bits: 32, Signed: false, Value: int64(v)}, err
	case "Int64Property":
		v, err := r.ReadI64()
		return IntValue{Bits: 64, Signed: true, Value: v}, err
	case "UInt64Property":
		v, err := r.ReadU64()
		return IntValue{Bits: 64, Signed: false, Value: int64(v)}, err
	case "FloatProperty":
		v, err := r.ReadF32()
		return FloatValue{Bits: 32, Value: float64(v)}, err
	case "DoubleProperty":
		v, err := r.ReadF64()
		return FloatValue{Bits: 64, Value: v}, err
	case "BoolProperty":
		v, err := r.ReadBoolU8()
		return BoolValue{Value: v}, err
	case "StrProperty", "StringProperty":
		v, err := r.ReadString()
		return StringValue{Value: v}, err
	case "NameProperty":
		if nt != nil {
			n, err := readWorldSaveName(r, nt)
			return NameValue{Value: n}, err
		}
		s, err := r.ReadString()
		return NameValue{Value: ParseInlineName(s)}, err
	case "ObjectProperty":
		if nt != nil {
			guid, err := r.ReadGUID()
			if err != nil {
				return nil, err
			}
			if guid.String() == "00000000-0000-0000-0000-000000000000" {
				return ObjectRefValue{Value: ObjectRef{Kind: ObjectRefNull}}, nil
			}
			return ObjectRefValue{Value: ObjectRef{Kind: ObjectRefByGUID, GUID: guid}}, nil
		}
		id, err := r.ReadI32()
		return ObjectRefValue{Value: ObjectRef{Kind: ObjectRefByID, ID: id}}, err
	default:
		return nil, &UnknownPropertyError{TypeName: elementType, Offset: r.Position()}
	}
}
