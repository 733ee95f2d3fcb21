package arkparser

// Convenience accessors over the decoded Property/PropertyValue tree,
// used by the domain package to mirror original_source's dict-style
// get_property_value/_player_data/_tribe_data helpers without forcing a
// map[string]any representation on the core decoder.

// NestedProperties returns the property list of a StructProperty value
// whose underlying Struct is a PropertyListStruct (the "nested struct
// acts like a dict" pattern base.py relies on for MyData/TribeData).
func NestedProperties(v PropertyValue) ([]Property, bool) {
	sv, ok := v.(StructValue)
	if !ok {
		return nil, false
	}
	pl, ok := sv.Value.(*PropertyListStruct)
	if !ok {
		return nil, false
	}
	return pl.Properties, true
}

// FindProperty returns the first property named name in props.
func FindProperty(props []Property, name string) (Property, bool) {
	for _, p := range props {
		if p.Name.Text == name {
			return p, true
		}
	}
	return Property{}, false
}

// FindPropertyIndexed returns the property named name whose ArrayIndex
// equals index, the scalar repeated-name-per-index convention Legacy
// files use in place of a single array-valued property.
func FindPropertyIndexed(props []Property, name string, index int32) (Property, bool) {
	for _, p := range props {
		if p.Name.Text == name && p.ArrayIndex == index {
			return p, true
		}
	}
	return Property{}, false
}

// Nested walks a chain of struct property names starting from o's own
// properties, e.g. Nested(o, "MyData", "MyPersistentCharacterStats")
// descends two StructProperty levels and returns the innermost list.
func (o *GameObject) Nested(path ...string) []Property {
	props := o.Properties
	for _, seg := range path {
		p, ok := FindProperty(props, seg)
		if !ok {
			return nil
		}
		next, ok := NestedProperties(p.Value)
		if !ok {
			return nil
		}
		props = next
	}
	return props
}

// AsString extracts a string from a StringValue, a NameValue (its String
// form) or a SoftObjectRefValue (its Path); ("", false) otherwise.
func AsString(v PropertyValue) (string, bool) {
	switch t := v.(type) {
	case StringValue:
		return t.Value, true
	case NameValue:
		return t.Value.String(), true
	case SoftObjectRefValue:
		return t.Path, true
	default:
		return "", false
	}
}

// AsInt64 extracts an integer from an IntValue.
func AsInt64(v PropertyValue) (int64, bool) {
	if t, ok := v.(IntValue); ok {
		return t.Value, true
	}
	return 0, false
}

// AsFloat64 extracts a float from a FloatValue, widening an IntValue if
// given one (some stat properties are stored as ints in one generation
// and floats in the other).
func AsFloat64(v PropertyValue) (float64, bool) {
	switch t := v.(type) {
	case FloatValue:
		return t.Value, true
	case IntValue:
		return float64(t.Value), true
	default:
		return 0, false
	}
}

// AsBool extracts a bool from a BoolValue.
func AsBool(v PropertyValue) (bool, bool) {
	if t, ok := v.(BoolValue); ok {
		return t.Value, true
	}
	return false, false
}

// AsStringSlice collects every element of an ArrayValue that decodes as
// a string, in order. Non-string elements are skipped rather than
// failing the whole extraction.
func AsStringSlice(v PropertyValue) []string {
	arr, ok := v.(ArrayValue)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr.Elements))
	for _, el := range arr.Elements {
		if s, ok := AsString(el); ok {
			out = append(out, s)
		}
	}
	return out
}

// AsInt64Slice collects every element of an ArrayValue that decodes as
// an integer, in order.
func AsInt64Slice(v PropertyValue) []int64 {
	arr, ok := v.(ArrayValue)
	if !ok {
		return nil
	}
	out := make([]int64, 0, len(arr.Elements))
	for _, el := range arr.Elements {
		if n, ok := AsInt64(el); ok {
			out = append(out, n)
		}
	}
	return out
}

// firstProperty finds name in props, preferring the first of fallback
// names that is actually present (ASE/ASA capitalization variants like
// TribeId vs TribeID, or OwnerPlayerDataID vs OwnerPlayerDataId).
func firstProperty(props []Property, names ...string) (Property, bool) {
	for _, n := range names {
		if p, ok := FindProperty(props, n); ok {
			return p, ok
		}
	}
	return Property{}, false
}
