package arkparser

// Legacy (ASE) binary world-save decoding, per spec.md §4.7's "World save
// — Legacy binary" framing and original_source's world_save.py
// _parse_ase family of methods.

var worldSaveLegacyVersions = []int32{5, 6, 7, 8, 9, 10, 11, 12}

func parseWorldSaveASE(lf *loadedFile, opts *LoadOptions) (*WorldSave, error) {
	r := NewReader(lf.data)
	save := &WorldSave{IsModern: false}

	version, err := r.ReadI16()
	if err != nil {
		return nil, err
	}
	if !int32In(int32(version), worldSaveLegacyVersions) {
		return nil, ErrCorruptHeader
	}
	save.Version = int32(version)

	var hibernationOffset int32
	var nameTableOffset, propertiesBlockOffset int32

	if version > 10 {
		for i := 0; i < 4; i++ {
			if _, err := r.ReadI64(); err != nil { // stored-section offset
				return nil, err
			}
			if _, err := r.ReadI64(); err != nil { // stored-section size
				return nil, err
			}
		}
	}
	if version > 6 {
		hibernationOffset, err = r.ReadI32()
		if err != nil {
			return nil, err
		}
		if _, err := r.ReadI32(); err != nil { // reserved, always zero
			return nil, err
		}
	}
	_ = hibernationOffset
	if version > 5 {
		nameTableOffset, err = r.ReadI32()
		if err != nil {
			return nil, err
		}
		propertiesBlockOffset, err = r.ReadI32()
		if err != nil {
			return nil, err
		}
	}

	gameTime, err := r.ReadF32()
	if err != nil {
		return nil, err
	}
	save.GameTime = float64(gameTime)

	if version > 8 {
		saveCount, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		save.SaveCount = saveCount
	}

	var nt *DenseNameTable
	if version > 5 && nameTableOffset > 0 {
		saved := r.Position()
		r.SetPosition(int64(nameTableOffset))
		count, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		entries := make([]string, 0, count)
		for i := int32(0); i < count; i++ {
			s, err := r.ReadString()
			if err != nil {
				return nil, err
			}
			entries = append(entries, s)
		}
		nt = NewDenseNameTable(entries)
		r.SetPosition(saved)
	}

	dataFileCount, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	dataFiles := make([]string, 0, dataFileCount)
	for i := int32(0); i < dataFileCount; i++ {
		s, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		dataFiles = append(dataFiles, s)
	}
	save.DataFiles = dataFiles

	embeddedCount, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	embedded := make([]EmbeddedData, 0, embeddedCount)
	for i := int32(0); i < embeddedCount; i++ {
		e, err := readEmbeddedData(r)
		if err != nil {
			return nil, err
		}
		embedded = append(embedded, e)
	}
	save.EmbeddedData = embedded

	mapCount, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	save.DataFilesObjectMap = make(map[int32][][]string, mapCount)
	for i := int32(0); i < mapCount; i++ {
		level, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		nameCount, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, nameCount)
		for j := int32(0); j < nameCount; j++ {
			s, err := r.ReadString()
			if err != nil {
				return nil, err
			}
			names = append(names, s)
		}
		save.DataFilesObjectMap[level] = append(save.DataFilesObjectMap[level], names)
	}

	objCount, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	if objCount < 0 || objCount > 1_000_000 {
		return nil, ErrCorruptHeader
	}
	objects := make([]*GameObject, 0, objCount)
	var tableForHeaders NameTable
	if nt != nil {
		tableForHeaders = nt
	}
	for i := int32(0); i < objCount; i++ {
		obj, err := ReadLegacyObjectHeader(r, tableForHeaders, i)
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}
	save.Objects = objects

	// Property loading is failure-isolated per object: a decode error is
	// recorded in ParseErrors, that object stays in Objects with no
	// properties, and decoding goes on with the next object.
	for i, obj := range objects {
		var next *GameObject
		if i+1 < len(objects) {
			next = objects[i+1]
		}
		if err := obj.LoadProperties(r, tableForHeaders, int64(propertiesBlockOffset), false, FramingLegacy, next); err != nil {
			guid := ""
			if obj.GUID != nil {
				guid = obj.GUID.String()
			}
			save.ParseErrors = append(save.ParseErrors, ObjectDecodeError{GUID: guid, Err: err})
		}
	}

	save.Container = NewContainer(objects)
	save.Container.BuildRelationships()

	return save, nil
}
