package arkparser

// baseFile holds the parse result shared by Profile, Tribe, and
// CloudInventory: a version number, the decoded object list, and the
// container built over it. Grounded on original_source's files/base.py
// ArkFile, which factors exactly this structure out of its three
// subclasses.
type baseFile struct {
	Version  int32
	IsModern bool
	Objects  []*GameObject
	Container *Container
}

// mainObject returns the first object whose class name contains
// marker, per base.py's main_object property (handles both the bare
// ASE class name and the full ASA blueprint path containing it).
func (b *baseFile) mainObject(marker string) *GameObject {
	for _, obj := range b.Objects {
		if containsSubstr(obj.ClassName, marker) {
			return obj
		}
	}
	return nil
}

func containsSubstr(s, substr string) bool {
	return len(substr) == 0 || indexOf(s, substr) >= 0
}

func indexOf(s, substr string) int {
	n, m := len(s), len(substr)
	if m == 0 {
		return 0
	}
	for i := 0; i+m <= n; i++ {
		if s[i:i+m] == substr {
			return i
		}
	}
	return -1
}

// parseBaseFile implements the shared profile/tribe parse algorithm of
// base.py's ArkFile._parse: version, optional ASA detection, object
// headers, then a properties pass over each object in turn. validVersions
// is checked when non-empty.
func parseBaseFile(lf *loadedFile, validVersions []int32) (*baseFile, error) {
	r := NewReader(lf.data)

	version, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	if len(validVersions) > 0 && !int32In(version, validVersions) {
		return nil, ErrCorruptHeader
	}

	isModern := lf.format == FormatModern

	// Modern v>=7 profile/tribe/cloud files carry two extra int32 fields
	// (purpose unrecorded upstream) between the version and the object
	// count, per spec.md §4.7.
	if isModern && version >= 7 {
		if _, err := r.ReadI32(); err != nil {
			return nil, err
		}
		if _, err := r.ReadI32(); err != nil {
			return nil, err
		}
	}

	count, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	if count < 0 || count > 1_000_000 {
		return nil, ErrCorruptHeader
	}

	objects := make([]*GameObject, 0, count)
	for i := int32(0); i < count; i++ {
		var obj *GameObject
		var err error
		if isModern {
			obj, err = ReadModernStringObjectHeader(r, i, version, true)
		} else {
			obj, err = ReadLegacyObjectHeader(r, nil, i)
		}
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}

	framing := FramingLegacy
	if isModern {
		framing = FramingModernString
	}
	for i, obj := range objects {
		var next *GameObject
		if i+1 < len(objects) {
			next = objects[i+1]
		}
		if err := obj.LoadProperties(r, nil, 0, isModern, framing, next); err != nil {
			return nil, err
		}
	}

	container := NewContainer(objects)
	container.BuildRelationships()

	return &baseFile{Version: version, IsModern: isModern, Objects: objects, Container: container}, nil
}

func int32In(v int32, set []int32) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}
