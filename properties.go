package arkparser

import "github.com/google/uuid"

// PropertyFraming selects which of the three wire framings governs header
// and payload layout for a property read, per spec.md §4.5.
type PropertyFraming int

const (
	// FramingLegacy is used by Legacy-format files (all four kinds).
	FramingLegacy PropertyFraming = iota
	// FramingModernString is used by Modern profile/tribe/cloud files,
	// where names are inline strings rather than table lookups.
	FramingModernString
	// FramingModernWorldSave is used by Modern world-save object blobs,
	// where names are (key, instance) pairs resolved via a name table.
	FramingModernWorldSave
)

// ObjectRefKind tags which variant of object reference a value carries.
type ObjectRefKind int

const (
	ObjectRefNull ObjectRefKind = iota
	ObjectRefByID
	ObjectRefByGUID
	ObjectRefByName
)

// ObjectRef is the tagged union of spec.md §3: null, by-id (Legacy),
// by-guid (Modern world-save), or by-name.
type ObjectRef struct {
	Kind ObjectRefKind
	ID   int32
	GUID uuid.UUID
	Name Name
}

// PropertyValue is the closed sum type for decoded property values. Each
// concrete type implements the unexported marker method so only this
// package's types satisfy the interface, matching the design note that a
// single Property sum type replaces duck-typed isinstance checks.
type PropertyValue interface {
	isPropertyValue()
}

type IntValue struct {
	Bits   int // 8, 16, 32, 64
	Signed bool
	Value  int64
}

func (IntValue) isPropertyValue() {}

type FloatValue struct {
	Bits  int // 32 or 64
	Value float64
}

func (FloatValue) isPropertyValue() {}

type BoolValue struct{ Value bool }

func (BoolValue) isPropertyValue() {}

type StringValue struct{ Value string }

func (StringValue) isPropertyValue() {}

type NameValue struct{ Value Name }

func (NameValue) isPropertyValue() {}

type ObjectRefValue struct{ Value ObjectRef }

func (ObjectRefValue) isPropertyValue() {}

type SoftObjectRefValue struct {
	Path string
	Name Name
}

func (SoftObjectRefValue) isPropertyValue() {}

// ByteValue represents a raw byte (EnumType == "None") or an enum literal
// (EnumType/EnumValue both set).
type ByteValue struct {
	Raw       uint8
	IsEnum    bool
	EnumType  string
	EnumValue string
}

func (ByteValue) isPropertyValue() {}

type ArrayValue struct {
	ElementType string
	StructType  string // only meaningful when ElementType == "StructProperty"
	Elements    []PropertyValue
}

func (ArrayValue) isPropertyValue() {}

type StructValue struct{ Value Struct }

func (StructValue) isPropertyValue() {}

type MapEntry struct {
	Key   PropertyValue
	Value PropertyValue
}

type MapValue struct {
	KeyType     string
	ValType     string
	Entries     []MapEntry
	Placeholder bool // true for the under-specified Legacy-string variant
}

func (MapValue) isPropertyValue() {}

// Property is a named, typed value attached to a game object.
type Property struct {
	Name       Name
	TypeName   string
	ArrayIndex int32
	Value      PropertyValue
}

// propertyHeader is the framing-independent result of reading a property's
// name/type/array-index prologue.
type propertyHeader struct {
	Name       Name
	TypeName   string
	ArrayIndex int32
	DataSize   int32 // Legacy / Modern-string only; Modern-worldsave carries
	// its own data-size inside each variant's payload.
	IsNone bool
}

// readPropertyHeader reads the name/type/array-index/(data-size) prologue
// common to every property, per spec.md §4.5 step 1.
func readPropertyHeader(r *Reader, nt NameTable, framing PropertyFraming) (propertyHeader, error) {
	var h propertyHeader
	switch framing {
	case FramingModernWorldSave:
		nameKey, err := r.ReadI32()
		if err != nil {
			return h, err
		}
		nameInst, err := r.ReadI32()
		if err != nil {
			return h, err
		}
		name := nt.Resolve(nameKey, nameInst)
		if name.IsNone() {
			h.IsNone = true
			return h, nil
		}
		typeKey, err := r.ReadI32()
		if err != nil {
			return h, err
		}
		typeInst, err := r.ReadI32()
		if err != nil {
			return h, err
		}
		typeName := nt.Resolve(typeKey, typeInst)
		h.Name = name
		h.TypeName = typeName.Text
		return h, nil
	default: // FramingLegacy, FramingModernString
		var name Name
		if framing == FramingLegacy {
			n, err := readLegacyName(r, nt)
			if err != nil {
				return h, err
			}
			name = n
		} else {
			s, err := r.ReadString()
			if err != nil {
				return h, err
			}
			name = ParseInlineName(s)
		}
		if name.IsNone() {
			h.IsNone = true
			return h, nil
		}
		typeName, err := r.ReadString()
		if err != nil {
			return h, err
		}
		dataSize, err := r.ReadI32()
		if err != nil {
			return h, err
		}
		arrayIndex, err := r.ReadI32()
		if err != nil {
			return h, err
		}
		h.Name = name
		h.TypeName = typeName
		h.DataSize = dataSize
		h.ArrayIndex = arrayIndex
		return h, nil
	}
}

// readLegacyName reads a (key, instance) pair against nt when nt is a
// table-backed (dense) name table, or an inline string otherwise. Legacy
// world saves v>=6 use a dense table; other Legacy files read inline.
func readLegacyName(r *Reader, nt NameTable) (Name, error) {
	if nt == nil {
		s, err := r.ReadString()
		if err != nil {
			return Name{}, err
		}
		return ParseInlineName(s), nil
	}
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

// PropertyReaderFunc decodes one property's payload given its header. It
// may update h.ArrayIndex in place when the payload carries an
// array-index override (Modern-string and Modern-worldsave framings).
type PropertyReaderFunc func(r *Reader, nt NameTable, isModern bool, framing PropertyFraming, h *propertyHeader) (PropertyValue, error)

// PropertyRegistry dispatches a property type name to its reader. Closed
// table at compile time, per the design note on registry dispatch.
var PropertyRegistry = map[string]PropertyReaderFunc{
	"Int8Property":    readIntProperty(8, true),
	"UInt8Property":   readIntProperty(8, false),
	"Int16Property":   readIntProperty(16, true),
	"UInt16Property":  readIntProperty(16, false),
	"IntProperty":     readIntProperty(32, true),
	"UInt32Property":  readIntProperty(32, false),
	"Int64Property":   readIntProperty(64, true),
	"UInt64Property":  readIntProperty(64, false),
	"FloatProperty":   readFloatProperty(32),
	"DoubleProperty":  readFloatProperty(64),
	"BoolProperty":    readBoolProperty,
	"StrProperty":     readStringProperty,
	"StringProperty":  readStringProperty,
	"NameProperty":    readNameProperty,
	"ObjectProperty":  readObjectProperty,
	"SoftObjectProperty": readSoftObjectProperty,
	"ByteProperty":    readByteProperty,
	"ArrayProperty":   readArrayProperty,
	"StructProperty":  readStructProperty,
	"MapProperty":     readMapProperty,
}

// ReadProperties reads a sequence of properties terminated by the "None"
// sentinel. The sentinel is consumed but never emitted, per spec.md §3's
// invariant.
func ReadProperties(r *Reader, isModern bool, framing PropertyFraming) ([]Property, error) {
	return readPropertiesWithTable(r, nil, isModern, framing)
}

func readPropertiesWithTable(r *Reader, nt NameTable, isModern bool, framing PropertyFraming) ([]Property, error) {
	var props []Property
	for {
		h, err := readPropertyHeader(r, nt, framing)
		if err != nil {
			return props, err
		}
		if h.IsNone {
			return props, nil
		}
		fn, ok := PropertyRegistry[h.TypeName]
		if !ok {
			return props, &UnknownPropertyError{TypeName: h.TypeName, Offset: r.Position()}
		}
		val, err := fn(r, nt, isModern, framing, &h)
		if err != nil {
			return props, err
		}
		props = append(props, Property{Name: h.Name, TypeName: h.TypeName, ArrayIndex: h.ArrayIndex, Value: val})
	}
}
