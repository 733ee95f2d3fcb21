package arkparser

// Struct is the common interface for values carried by a StructProperty.
// A struct is either native (fixed binary layout, IsNative reports true)
// or a property-list (terminated by the sentinel name).
type Struct interface {
	StructType() string
	IsNative() bool
}

// StructReaderFunc decodes one struct instance of a known type from r.
type StructReaderFunc func(r *Reader, isModern bool) (Struct, error)

// StructRegistry dispatches a struct-type name to its reader. It is a
// closed table at compile time, mirroring the property registry; new
// struct types are added by registering a reader here.
var StructRegistry = map[string]StructReaderFunc{
	"Vector":             readVectorStruct,
	"Vector2D":           readVector2DStruct,
	"Rotator":            readRotatorStruct,
	"Quat":               readQuatStruct,
	"IntPoint":           readIntPointStruct,
	"IntVector":          readIntVectorStruct,
	"Color":              readColorStruct,
	"LinearColor":        readLinearColorStruct,
	"Guid":               readGuidStruct,
	"UniqueNetIdRepl":    readUniqueNetIdReplStruct,
	"CustomItemDataRef":  readCustomItemDataRefStruct,
}

// IsNativeStructType reports whether name has a registered native reader.
func IsNativeStructType(name string) bool {
	_, ok := StructRegistry[name]
	return ok
}

// ReadStruct dispatches to the registered reader for structType, or falls
// back to PropertyListStruct (reading properties to the sentinel) for an
// unknown type, per spec.md §4.4.
func ReadStruct(r *Reader, nt NameTable, structType string, isModern bool, framing PropertyFraming) (Struct, error) {
	if structType == "Quat" {
		// Quat is 16 bytes (f32 x4) in Legacy and Modern-string framing,
		// but widens to 32 bytes (f64 x4) only in Modern-worldsave framing,
		// per spec.md §4.4's "16 (32 in world-save Modern)" note.
		return readQuatStruct(r, framing == FramingModernWorldSave)
	}
	if fn, ok := StructRegistry[structType]; ok {
		return fn(r, isModern)
	}
	return readPropertyListStruct(r, nt, structType, isModern, framing)
}

// PropertyListStruct is the fallback for struct types absent from the
// registry: a property list terminated by the "None" sentinel, kept in
// wire order (ToDict groups it by name).
type PropertyListStruct struct {
	TypeName   string
	Properties []Property
}

// StructType implements Struct.
func (s *PropertyListStruct) StructType() string { return s.TypeName }

// IsNative implements Struct.
func (s *PropertyListStruct) IsNative() bool { return false }

// ToDict groups properties by name. Every name maps to a slice in wire
// order: one element for a single property, several when the same name
// repeats (array-index variants).
func (s *PropertyListStruct) ToDict() map[string][]Property {
	out := make(map[string][]Property)
	for _, p := range s.Properties {
		key := p.Name.String()
		out[key] = append(out[key], p)
	}
	return out
}

func readPropertyListStruct(r *Reader, nt NameTable, structType string, isModern bool, framing PropertyFraming) (Struct, error) {
	props, err := readPropertiesWithTable(r, nt, isModern, framing)
	if err != nil {
		return nil, err
	}
	return &PropertyListStruct{TypeName: structType, Properties: props}, nil
}

// arrayStructTypeOverride maps special array property names to the native
// struct type their elements actually use, per original_source's
// ARRAY_NAME_TO_STRUCT_TYPE table (e.g. a "CustomColors" array's elements
// are Color structs even though no StructProperty header names it).
var arrayStructTypeOverride = map[string]string{
	"CustomColors":       "Color",
	"CustomColours_60_7D3267C846B277953C0C41AEBD54FBCB": "LinearColor",
}

// ArrayStructTypeFor returns the overridden native struct type for a
// well-known array property name, if any.
func ArrayStructTypeFor(propertyName string) (string, bool) {
	t, ok := arrayStructTypeOverride[propertyName]
	return t, ok
}
