package arkparser

import "strings"

// Container holds a decoded file's game objects plus the secondary
// indices and parent/component graph built after decode, per spec.md §3
// and §4.8.
type Container struct {
	Objects []*GameObject

	byGUID  map[string]*GameObject
	byClass map[string][]*GameObject
	byName  map[string]*GameObject
}

// NewContainer builds indices over objects. BuildRelationships must be
// called separately once all objects are known (world-save parallel
// decode defers it until every worker completes).
func NewContainer(objects []*GameObject) *Container {
	c := &Container{
		Objects: objects,
		byGUID:  make(map[string]*GameObject, len(objects)),
		byClass: make(map[string][]*GameObject, len(objects)),
		byName:  make(map[string]*GameObject, len(objects)),
	}
	for _, obj := range objects {
		if obj.GUID != nil {
			c.byGUID[obj.GUID.String()] = obj
		}
		c.byClass[obj.ClassName] = append(c.byClass[obj.ClassName], obj)
		if len(obj.Names) > 0 {
			key := obj.PrimaryName().String()
			if _, exists := c.byName[key]; !exists {
				c.byName[key] = obj
			}
		}
	}
	return c
}

// ByGUID looks up an object by its GUID string.
func (c *Container) ByGUID(guid string) (*GameObject, bool) {
	o, ok := c.byGUID[guid]
	return o, ok
}

// ByClass returns all objects whose class name equals className.
func (c *Container) ByClass(className string) []*GameObject {
	return c.byClass[className]
}

// ByName looks up an object by its primary name's textual form.
func (c *Container) ByName(name string) (*GameObject, bool) {
	o, ok := c.byName[name]
	return o, ok
}

// BuildRelationships links components to parents: any object whose Names
// has length >= 2 is a component; its last name is looked up in the
// by-primary-name index and bound as its parent.
func (c *Container) BuildRelationships() {
	for _, obj := range c.Objects {
		if !obj.IsComponent() {
			continue
		}
		lastName := obj.Names[len(obj.Names)-1].String()
		if parent, ok := c.byName[lastName]; ok {
			parent.AddComponent(obj)
		}
	}
}

func hasProperty(o *GameObject, name string) bool {
	_, ok := o.GetProperty(name)
	return ok
}

// GetTamedCreatures returns objects carrying a TamingTeamID property.
func (c *Container) GetTamedCreatures() []*GameObject {
	var out []*GameObject
	for _, obj := range c.Objects {
		if hasProperty(obj, "TamingTeamID") {
			out = append(out, obj)
		}
	}
	return out
}

// GetWildCreatures returns dino-class objects with no TamingTeamID.
func (c *Container) GetWildCreatures() []*GameObject {
	var out []*GameObject
	for _, obj := range c.Objects {
		if !isDinoClass(obj.ClassName) {
			continue
		}
		if !hasProperty(obj, "TamingTeamID") {
			out = append(out, obj)
		}
	}
	return out
}

// nonStructurePatterns is the negative class-name pattern list used to
// exclude non-structure actors from GetStructures, per original_source's
// container.py.
var nonStructurePatterns = []string{
	"_Character_BP",
	"PlayerPawnTest",
	"DroppedItem",
	"Projectile",
	"Weapon_",
	"Mission_",
	"Raft_BP",
	"Ragnarok_WyvernNest",
	"BiomeZoneVolume",
	"WorldSettings",
	"NPCZoneManager",
	"SupplyCrate_",
}

// GetStructures returns objects with a TargetingTeam property, no
// DinoID1, and a class name not matching a known non-structure pattern.
func (c *Container) GetStructures() []*GameObject {
	var out []*GameObject
	for _, obj := range c.Objects {
		if !hasProperty(obj, "TargetingTeam") {
			continue
		}
		if hasProperty(obj, "DinoID1") {
			continue
		}
		if matchesAny(obj.ClassName, nonStructurePatterns) {
			continue
		}
		out = append(out, obj)
	}
	return out
}

// GetPlayerPawns returns objects whose class name contains the player
// pawn marker.
func (c *Container) GetPlayerPawns() []*GameObject {
	return c.classContains("PlayerPawnTest")
}

// GetCreatures returns objects whose class name looks like a creature
// blueprint.
func (c *Container) GetCreatures() []*GameObject {
	var out []*GameObject
	for _, obj := range c.Objects {
		if isDinoClass(obj.ClassName) {
			out = append(out, obj)
		}
	}
	return out
}

// Supplemental predicates present in the original source but dropped from
// the distilled spec; kept because they reuse the same property-predicate
// machinery at negligible cost.

// GetTerminals returns terminal-class objects (crafting/shop terminals).
func (c *Container) GetTerminals() []*GameObject {
	return c.classContains("Terminal")
}

// GetSupplyDrops returns supply-crate objects.
func (c *Container) GetSupplyDrops() []*GameObject {
	return c.classContains("SupplyCrate")
}

// GetArtifactCrates returns artifact-crate objects.
func (c *Container) GetArtifactCrates() []*GameObject {
	return c.classContains("ArtifactCrate")
}

// GetMapResources returns harvestable map-resource objects (e.g. metal
// and crystal nodes, charge nodes).
func (c *Container) GetMapResources() []*GameObject {
	return c.classContains("ResourceNode")
}

func (c *Container) classContains(substr string) []*GameObject {
	var out []*GameObject
	for _, obj := range c.Objects {
		if strings.Contains(obj.ClassName, substr) {
			out = append(out, obj)
		}
	}
	return out
}

func isDinoClass(className string) bool {
	return strings.Contains(className, "_Character_BP")
}

func matchesAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
