package arkparser

import "github.com/google/uuid"

// GameObject is a decoded actor or item: a class-typed, GUID-addressed
// entity carrying location, properties, and post-decode component links,
// per spec.md §3.
type GameObject struct {
	ID               int32
	GUID             *uuid.UUID
	ClassName        string
	IsItem           bool
	Names            []Name
	FromDataFile     bool
	DataFileIndex    int32
	Location         *Location
	PropertiesOffset int32
	Properties       []Property
	ExtraData        []byte

	Parent     *GameObject
	Components map[string]*GameObject
}

// PrimaryName returns the first entry of Names, or the empty Name if the
// object has none.
func (o *GameObject) PrimaryName() Name {
	if len(o.Names) == 0 {
		return Name{}
	}
	return o.Names[0]
}

// IsComponent reports whether this object is a component per spec.md §3:
// an object with len(names) > 1. Its last name references its parent's
// primary name.
func (o *GameObject) IsComponent() bool { return len(o.Names) > 1 }

// GetProperty returns the first property with the given name, and true if
// found.
func (o *GameObject) GetProperty(name string) (Property, bool) {
	for _, p := range o.Properties {
		if p.Name.Text == name {
			return p, true
		}
	}
	return Property{}, false
}

// GetPropertyIndexed returns the property with the given name and
// array-index, per spec's invariant that array_index disambiguates
// repeated property names within one object.
func (o *GameObject) GetPropertyIndexed(name string, index int32) (Property, bool) {
	for _, p := range o.Properties {
		if p.Name.Text == name && p.ArrayIndex == index {
			return p, true
		}
	}
	return Property{}, false
}

// ReadLegacyObjectHeader reads a Legacy-framing game-object header
// (shared by profile/tribe/cloud and Legacy world saves), per spec.md
// §4.6. nt is non-nil only for world saves version >= 6 which use a dense
// name table; other Legacy files read names inline.
func ReadLegacyObjectHeader(r *Reader, nt NameTable, id int32) (*GameObject, error) {
	obj := &GameObject{ID: id}

	guid, err := r.ReadGUID()
	if err != nil {
		return nil, err
	}
	if guid != (uuid.UUID{}) {
		g := guid
		obj.GUID = &g
	}

	className, err := readLegacyName(r, nt)
	if err != nil {
		return nil, err
	}
	obj.ClassName = className.String()

	isItem, err := r.ReadBoolU32()
	if err != nil {
		return nil, err
	}
	obj.IsItem = isItem

	nameCount, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	names := make([]Name, 0, nameCount)
	for i := int32(0); i < nameCount; i++ {
		n, err := readLegacyName(r, nt)
		if err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	obj.Names = names

	fromDataFile, err := r.ReadBoolU32()
	if err != nil {
		return nil, err
	}
	obj.FromDataFile = fromDataFile

	dataFileIndex, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	obj.DataFileIndex = dataFileIndex

	hasLocation, err := r.ReadBoolU32()
	if err != nil {
		return nil, err
	}
	if hasLocation {
		loc, err := ReadLocation(r, false)
		if err != nil {
			return nil, err
		}
		obj.Location = &loc
	}

	propOffset, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	obj.PropertiesOffset = propOffset

	if _, err := r.ReadI32(); err != nil { // reserved, always zero
		return nil, err
	}

	return obj, nil
}

// ReadModernStringObjectHeader reads a Modern profile/tribe/cloud (non
// world-save) object header, per spec.md §4.6. version selects the
// terminator-byte and offset-adjustment quirks (v6 vs v7+); adjustOffset
// controls whether the +1 correction is applied to a v7+ stored offset.
// Its only caller is the profile/tribe framer (basefile.go), which always
// passes true; cloud-inventory files use ReadASAObeliskObjectHeader.
func ReadModernStringObjectHeader(r *Reader, id int32, version int32, adjustOffset bool) (*GameObject, error) {
	obj := &GameObject{ID: id}

	guid, err := r.ReadGUID()
	if err != nil {
		return nil, err
	}
	if guid != (uuid.UUID{}) {
		g := guid
		obj.GUID = &g
	}

	className, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	obj.ClassName = className

	if _, err := r.ReadI32(); err != nil { // unknown
		return nil, err
	}

	nameCount, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	names := make([]Name, 0, nameCount)
	for i := int32(0); i < nameCount; i++ {
		s, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		names = append(names, Name{Text: s})
	}
	obj.Names = names

	if err := r.Skip(12); err != nil { // zero block
		return nil, err
	}

	storedOffset, err := r.ReadI32()
	if err != nil {
		return nil, err
	}

	if err := r.Skip(4); err != nil { // zero block
		return nil, err
	}

	if version >= 7 {
		if peek, err := r.Peek(1); err == nil && peek[0] == 0 {
			if err := r.Skip(1); err != nil {
				return nil, err
			}
		}
	}

	actualOffset := storedOffset
	if version >= 7 && adjustOffset {
		actualOffset++
	}
	obj.PropertiesOffset = actualOffset

	return obj, nil
}

// ReadModernWorldSaveObjectHeader parses the per-object payload stored as
// a value in the Modern world-save `game` table (key = 16-byte GUID),
// per spec.md §4.6. The class name is resolved via the name table; the
// object's names are inline strings stored literally (no per-name
// instance suffix). Properties begin immediately after the header;
// callers read them directly from r without a further seek.
func ReadModernWorldSaveObjectHeader(r *Reader, nt NameTable, guid uuid.UUID, id int32) (*GameObject, error) {
	obj := &GameObject{ID: id}
	g := guid
	obj.GUID = &g

	classKey, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	classInst, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	obj.ClassName = nt.Resolve(classKey, classInst).Text

	if err := r.Skip(4); err != nil { // zero block
		return nil, err
	}

	nameCount, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	names := make([]Name, 0, nameCount)
	for i := int32(0); i < nameCount; i++ {
		s, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		names = append(names, Name{Text: s})
	}
	obj.Names = names

	if _, err := r.ReadI32(); err != nil { // end marker
		return nil, err
	}

	if r.Remaining() < 2 {
		obj.PropertiesOffset = int32(r.Position())
		return obj, nil
	}

	typeFlag, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	obj.IsItem = typeFlag == 1
	obj.PropertiesOffset = int32(r.Position())

	return obj, nil
}

// ReadASAObeliskObjectHeader reads the ASA cloud/obelisk object header
// variant of spec.md §4.6: GUID, class-name, two unknown int32s, an
// instance name string, then 21 bytes of padding (20 for v6). Properties
// follow immediately, so PropertiesOffset is simply the reader's position
// once the header is consumed.
func ReadASAObeliskObjectHeader(r *Reader, id int32, version int32) (*GameObject, error) {
	obj := &GameObject{ID: id}

	guid, err := r.ReadGUID()
	if err != nil {
		return nil, err
	}
	g := guid
	obj.GUID = &g

	className, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	obj.ClassName = className

	if _, err := r.ReadI32(); err != nil { // field1, unused
		return nil, err
	}
	if _, err := r.ReadI32(); err != nil { // field2, unused
		return nil, err
	}

	instanceName, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	if instanceName != "" {
		obj.Names = []Name{{Text: instanceName}}
	}

	paddingSize := 20
	if version >= 7 {
		paddingSize = 21
	}
	if err := r.Skip(paddingSize); err != nil {
		return nil, err
	}

	obj.PropertiesOffset = int32(r.Position())
	return obj, nil
}

// LoadProperties seeks to the object's computed absolute properties
// offset and decodes its property list, storing any trailing bytes before
// the next object's properties as ExtraData. When nextObject is nil no
// ExtraData is collected.
func (o *GameObject) LoadProperties(r *Reader, nt NameTable, propertiesBlockOffset int64, isModern bool, framing PropertyFraming, nextObject *GameObject) error {
	absOffset := propertiesBlockOffset + int64(o.PropertiesOffset)
	r.SetPosition(absOffset)

	props, err := readPropertiesWithTable(r, nt, isModern, framing)
	if err != nil {
		return err
	}
	o.Properties = props

	if nextObject != nil {
		nextAbs := propertiesBlockOffset + int64(nextObject.PropertiesOffset)
		cur := r.Position()
		if nextAbs > cur {
			extra, err := r.Peek(int(nextAbs - cur))
			if err == nil {
				o.ExtraData = append([]byte(nil), extra...)
			}
			r.SetPosition(nextAbs)
		}
	}
	return nil
}

// AddComponent registers child as a component of o under its primary
// name.
func (o *GameObject) AddComponent(child *GameObject) {
	if o.Components == nil {
		o.Components = make(map[string]*GameObject)
	}
	o.Components[child.PrimaryName().String()] = child
	child.Parent = o
}
