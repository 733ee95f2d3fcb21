package arkparser

// CloudInventory is a decoded obelisk/cloud-inventory upload file: tamed
// dinos, items, and characters a player has sent to the cross-server
// transfer system. Its main object carries class name
// "ArkCloudInventoryData", per spec.md §4.7 and original_source's
// files/cloud_inventory.py.
type CloudInventory struct {
	baseFile
}

var cloudInventoryValidVersions = []int32{1, 2, 3, 4, 5, 6, 7}

// parseCloudInventory implements the cloud-inventory framing of spec.md
// §4.7: version; optional two-int32 extra header (Modern v7+ only);
// object count; object headers (ASA uses the obelisk header variant of
// §4.6, ASE uses the shared Legacy header); properties. Modern v6 is the
// "solo-cluster" quirk: ASA-shaped object headers but Legacy-shaped
// property bodies (properties_is_asa only turns on at v7+), grounded on
// cloud_inventory.py's `properties_is_asa = version >= 7`.
func parseCloudInventory(lf *loadedFile, opts *LoadOptions) (*CloudInventory, error) {
	r := NewReader(lf.data)

	version, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	if !int32In(version, cloudInventoryValidVersions) {
		return nil, ErrCorruptHeader
	}

	isModern := lf.format == FormatModern

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
			obj, err = ReadASAObeliskObjectHeader(r, i, version)
		} else {
			obj, err = ReadLegacyObjectHeader(r, nil, i)
		}
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}

	// Only version 7+ uses Modern-string property framing; Modern v6
	// cloud files (cross-ARK/solo-cluster transfers) pair ASA-shaped
	// object headers with Legacy-shaped property bodies.
	propertiesAreModern := isModern && version >= 7
	framing := FramingLegacy
	if propertiesAreModern {
		framing = FramingModernString
	}

	if opts.AdjustCloudV7Offset && propertiesAreModern {
		lf.log.Debug().Msg("Modern cloud-inventory v7+: properties offsets come from the header end position; no +1 correction applied")
	}

	for i, obj := range objects {
		var next *GameObject
		if i+1 < len(objects) {
			next = objects[i+1]
		}
		if err := obj.LoadProperties(r, nil, 0, propertiesAreModern, framing, next); err != nil {
			return nil, err
		}
	}

	container := NewContainer(objects)
	container.BuildRelationships()

	return &CloudInventory{baseFile: baseFile{
		Version:   version,
		IsModern:  isModern,
		Objects:   objects,
		Container: container,
	}}, nil
}

// MainObject returns the ArkCloudInventoryData object.
func (c *CloudInventory) MainObject() *GameObject {
	return c.mainObject("ArkCloudInventoryData")
}

func (c *CloudInventory) arkData() []Property {
	main := c.MainObject()
	if main == nil {
		return nil
	}
	return main.Nested("MyArkData")
}

// UploadedDinos returns the raw ArkTamedDinosData struct list backing
// UploadedCreatures, for callers that want the generic property view
// instead of the domain-typed one.
func (c *CloudInventory) UploadedDinos() []PropertyValue {
	prop, ok := FindProperty(c.arkData(), "ArkTamedDinosData")
	if !ok {
		return nil
	}
	arr, ok := prop.Value.(ArrayValue)
	if !ok {
		return nil
	}
	return arr.Elements
}

// UploadedItemEntries returns the raw ArkItems struct list backing
// UploadedItems, for callers that want the generic property view.
func (c *CloudInventory) UploadedItemEntries() []PropertyValue {
	prop, ok := FindProperty(c.arkData(), "ArkItems")
	if !ok {
		return nil
	}
	arr, ok := prop.Value.(ArrayValue)
	if !ok {
		return nil
	}
	return arr.Elements
}

// Characters returns uploaded player-pawn objects.
func (c *CloudInventory) Characters() []*GameObject {
	return c.Container.classContains("PlayerPawnTest")
}

// Items returns objects whose class name indicates an item.
func (c *CloudInventory) Items() []*GameObject {
	var out []*GameObject
	for _, obj := range c.Objects {
		if containsSubstr(obj.ClassName, "PrimalItem") || containsSubstr(obj.ClassName, "Item") {
			out = append(out, obj)
		}
	}
	return out
}
