package weather

import "math"

// GenerateOptions configures one Generate call. Every field is optional.
type GenerateOptions struct {
	Zone       *ZoneConfig
	Season     *SeasonClimate
	SeasonName string
	// Catalog defaults to the built-in presets.
	Catalog *Catalog
	// Seed makes the result reproducible; nil draws from RandomRNG.
	Seed *uint32
	// CurrentWeatherID is the condition the caller is currently showing.
	// Together with a positive Inertia it biases the pick towards it.
	CurrentWeatherID string
	Inertia          float64
}

// Generate produces one weather state. It never fails: missing
// configuration degrades to documented defaults and an unknown preset id
// becomes a stub.
//
// The draw order is fixed: condition, temperature, wind, precipitation. The
// same options and seed therefore always yield the same Weather.
func Generate(opts GenerateOptions) Weather {
	catalog := catalogOrDefault(opts.Catalog)
	rng := RandomRNG()
	if opts.Seed != nil {
		rng = NewRNG(*opts.Seed)
	}

	if opts.Zone == nil && opts.Season == nil {
		return generateUnconfigured(catalog, rng)
	}

	override := opts.Zone.seasonOverride(opts.SeasonName)
	merged := MergeClimate(opts.Season, override, opts.Zone, opts.SeasonName)

	table := merged.Probabilities
	if opts.CurrentWeatherID != "" && opts.Inertia > 0 {
		table = ApplyInertia(opts.CurrentWeatherID, table, opts.Inertia, catalog, opts.Zone.inertiaWeights(override))
	}

	id := SelectWeighted(table, rng)
	preset, ok := catalog.Lookup(id)
	if !ok {
		preset = StubPreset(id)
	}

	minMod, maxMod := opts.Zone.presetTempModifiers(override, id)
	tempRange := TempRange{
		Min: minMod.Apply(merged.TempRange.Min),
		Max: maxMod.Apply(merged.TempRange.Max),
	}.normalized()

	return Weather{
		Preset:        preset,
		Temperature:   drawTemperature(tempRange, rng),
		Wind:          GenerateWind(preset, opts.Zone, rng),
		Precipitation: GeneratePrecipitation(preset, rng),
	}
}

// generateUnconfigured picks uniformly among every known preset and uses the
// preset's own temperature bounds.
func generateUnconfigured(catalog *Catalog, rng RNG) Weather {
	presets := catalog.Presets()
	if len(presets) == 0 {
		presets = []Preset{StubPreset(FallbackPresetID)}
	}
	idx := int(math.Floor(rng() * float64(len(presets))))
	if idx >= len(presets) {
		idx = len(presets) - 1
	}
	preset := presets[idx]

	return Weather{
		Preset:        preset,
		Temperature:   drawTemperature(TempRange{Min: preset.TempMin, Max: preset.TempMax}.normalized(), rng),
		Wind:          GenerateWind(preset, nil, rng),
		Precipitation: GeneratePrecipitation(preset, rng),
	}
}

// drawTemperature returns an integer inside r. Fractional bounds are pulled
// inwards so rounding cannot escape the range.
func drawTemperature(r TempRange, rng RNG) int {
	t := roundHalfUp(r.Min + rng()*(r.Max-r.Min))
	lo, hi := math.Ceil(r.Min), math.Floor(r.Max)
	if lo <= hi {
		t = clampFloat(t, lo, hi)
	}
	return int(t)
}
