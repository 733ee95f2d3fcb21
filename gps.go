package arkparser

// MapConfig converts an in-world location to the lat/lon coordinates shown
// on the game's in-game map. It is a pure affine transform; no mutable
// global state is involved, per the design note that coordinate
// conversion is "a small struct with two affine parameters".
type MapConfig struct {
	Name     string
	Filename string
	LatShift float64
	LatDiv   float64
	LonShift float64
	LonDiv   float64
}

// ToGPS converts world-space x,y into lat,lon using this map's affine
// parameters: lat = (x + LatShift) / LatDiv, lon = (y + LonShift) / LonDiv.
func (m MapConfig) ToGPS(x, y float64) (lat, lon float64) {
	lat = (x + m.LatShift) / m.LatDiv
	lon = (y + m.LonShift) / m.LonDiv
	return lat, lon
}

// Known map configurations shipped with the base game. This is a static
// dataset queried through a pure lookup, not a mutable registry.
var knownMapConfigs = map[string]MapConfig{
	"TheIsland":    {Name: "The Island", Filename: "TheIsland", LatShift: 400000, LatDiv: 8000, LonShift: 400000, LonDiv: 8000},
	"ScorchedEarth": {Name: "Scorched Earth", Filename: "ScorchedEarth_P", LatShift: 400000, LatDiv: 8000, LonShift: 400000, LonDiv: 8000},
	"Aberration":   {Name: "Aberration", Filename: "Aberration_P", LatShift: 400000, LatDiv: 8000, LonShift: 400000, LonDiv: 8000},
	"Extinction":   {Name: "Extinction", Filename: "Extinction", LatShift: 400000, LatDiv: 8000, LonShift: 400000, LonDiv: 8000},
	"TheCenter":    {Name: "The Center", Filename: "TheCenter", LatShift: 450000, LatDiv: 9000, LonShift: 450000, LonDiv: 9000},
	"Ragnarok":     {Name: "Ragnarok", Filename: "Ragnarok", LatShift: 1000000, LatDiv: 13000, LonShift: 1000000, LonDiv: 13000},
}

// MapConfigFor looks up a known map configuration by its save-file map
// name. ok is false for unrecognized or modded maps; callers should skip
// GPS conversion rather than guess.
func MapConfigFor(name string) (cfg MapConfig, ok bool) {
	cfg, ok = knownMapConfigs[name]
	return cfg, ok
}
