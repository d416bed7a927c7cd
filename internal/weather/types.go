package weather

// DefaultSeasonKey is the ZoneConfig.Temperatures key used when no entry
// exists for the active season.
const DefaultSeasonKey = "_default"

type TempRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DefaultTempRange is the range used when neither a season nor a zone
// supplies temperatures.
var DefaultTempRange = TempRange{Min: 10, Max: 22}

func (r TempRange) normalized() TempRange {
	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
	}
	return r
}

type SpeedRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// DefaultWindSpeedRange bounds generated wind speed when a zone does not.
var DefaultWindSpeedRange = SpeedRange{Min: 0, Max: 5}

// WindDefaults is the wind a preset starts from before zone constraints.
type WindDefaults struct {
	Speed     int      `json:"speed"`
	Direction *float64 `json:"direction,omitempty"`
	Forced    bool     `json:"forced,omitempty"`
}

type Wind struct {
	Speed     int     `json:"speed"`
	Direction float64 `json:"direction"`
	Forced    bool    `json:"forced"`
}

// Precipitation with an empty Type means none; Intensity is then 0.
type Precipitation struct {
	Type      string  `json:"type,omitempty"`
	Intensity float64 `json:"intensity"`
}

type Preset struct {
	ID            string        `json:"id"`
	Label         string        `json:"label"`
	Category      string        `json:"category"`
	Icon          string        `json:"icon,omitempty"`
	Color         string        `json:"color,omitempty"`
	Chance        float64       `json:"chance"`
	TempMin       float64       `json:"tempMin"`
	TempMax       float64       `json:"tempMax"`
	Wind          WindDefaults  `json:"wind"`
	Precipitation Precipitation `json:"precipitation"`
	// InertiaWeight scales persistence; nil means 1, 0 never persists.
	InertiaWeight *float64 `json:"inertiaWeight,omitempty"`
}

func (p Preset) inertiaWeight() float64 {
	if p.InertiaWeight == nil {
		return 1
	}
	return *p.InertiaWeight
}

// StubPreset stands in for an id the catalog does not know, so generation
// never fails on a dangling custom preset reference.
func StubPreset(id string) Preset {
	return Preset{
		ID:    id,
		Label: id,
		Icon:  "fa-question",
		Color: "#888888",
	}
}

// ChanceEntry is one weighted preset reference in a season's base climate.
type ChanceEntry struct {
	ID     string  `json:"id"`
	Chance float64 `json:"chance"`
}

// SeasonClimate is the calendar's base climate for one season.
type SeasonClimate struct {
	Temperatures *TempRange    `json:"temperatures,omitempty"`
	Presets      []ChanceEntry `json:"presets,omitempty"`
}

// SeasonInfo is what a calendar reports for a given date.
type SeasonInfo struct {
	Name    string         `json:"name"`
	Climate *SeasonClimate `json:"climate,omitempty"`
}

type TempModifierRange struct {
	Min Modifier `json:"min"`
	Max Modifier `json:"max"`
}

// ZonePreset is a zone's opinion about one preset. Chance may be absolute or
// relative to the season's base chance.
type ZonePreset struct {
	ID            string         `json:"id"`
	Enabled       *bool          `json:"enabled,omitempty"`
	Chance        ChanceModifier `json:"chance"`
	TempMin       Modifier       `json:"tempMin"`
	TempMax       Modifier       `json:"tempMax"`
	InertiaWeight *float64       `json:"inertiaWeight,omitempty"`
}

func (p ZonePreset) enabled() bool {
	return p.Enabled == nil || *p.Enabled
}

// SeasonOverride adjusts the active SeasonClimate for one zone.
type SeasonOverride struct {
	Presets      []ZonePreset       `json:"presets,omitempty"`
	Temperatures *TempModifierRange `json:"temperatures,omitempty"`
}

// ZoneConfig is a location's climate identity. Season overrides are always
// relative to the calendar's SeasonClimate.
type ZoneConfig struct {
	ID              string                       `json:"id"`
	Name            string                       `json:"name,omitempty"`
	Presets         []ZonePreset                 `json:"presets,omitempty"`
	SeasonOverrides map[string]SeasonOverride    `json:"seasonOverrides,omitempty"`
	Temperatures    map[string]TempModifierRange `json:"temperatures,omitempty"`
	WindSpeedRange  *SpeedRange                  `json:"windSpeedRange,omitempty"`
	WindDirections  map[Compass]float64          `json:"windDirections,omitempty"`
}

func (z *ZoneConfig) seasonOverride(season string) *SeasonOverride {
	if z == nil || z.SeasonOverrides == nil {
		return nil
	}
	override, ok := z.SeasonOverrides[season]
	if !ok {
		return nil
	}
	return &override
}

func (z *ZoneConfig) windSpeedRange() SpeedRange {
	if z == nil || z.WindSpeedRange == nil {
		return DefaultWindSpeedRange
	}
	return *z.WindSpeedRange
}

// presetTempModifiers resolves the tempMin/tempMax modifiers for id. Each
// bound comes from the season override entry when it sets that bound, else
// from the zone's own entry.
func (z *ZoneConfig) presetTempModifiers(override *SeasonOverride, id string) (minMod, maxMod Modifier) {
	var lists [][]ZonePreset
	if override != nil {
		lists = append(lists, override.Presets)
	}
	if z != nil {
		lists = append(lists, z.Presets)
	}
	for _, list := range lists {
		for _, p := range list {
			if p.ID != id {
				continue
			}
			if !minMod.IsSet() {
				minMod = p.TempMin
			}
			if !maxMod.IsSet() {
				maxMod = p.TempMax
			}
		}
	}
	return minMod, maxMod
}

// inertiaWeights collects zone-level inertia weight overrides; season
// override entries win over the zone's own.
func (z *ZoneConfig) inertiaWeights(override *SeasonOverride) map[string]float64 {
	out := map[string]float64{}
	if z != nil {
		for _, p := range z.Presets {
			if p.InertiaWeight != nil {
				out[p.ID] = *p.InertiaWeight
			}
		}
	}
	if override != nil {
		for _, p := range override.Presets {
			if p.InertiaWeight != nil {
				out[p.ID] = *p.InertiaWeight
			}
		}
	}
	return out
}

// Weather is one fully specified generated weather state.
type Weather struct {
	Preset        Preset        `json:"preset"`
	Temperature   int           `json:"temperature"`
	Wind          Wind          `json:"wind"`
	Precipitation Precipitation `json:"precipitation"`
}

// ForecastEntry is one day of a forecast. Month is 0-indexed.
type ForecastEntry struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
	Weather
	IsVaried bool `json:"isVaried"`
}
