package weather

import (
	"errors"
	"fmt"
	"math"
)

// Validate rejects presets that generation would have to silently coerce.
func (p Preset) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidPreset)
	}
	if !finite(p.Chance) || p.Chance < 0 {
		return fmt.Errorf("%w: %s: chance must be a non-negative number, got %v", ErrInvalidPreset, p.ID, p.Chance)
	}
	if !finite(p.TempMin) || !finite(p.TempMax) {
		return fmt.Errorf("%w: %s: temperature bounds must be finite", ErrInvalidPreset, p.ID)
	}
	if p.TempMin > p.TempMax {
		return fmt.Errorf("%w: %s: tempMin %v exceeds tempMax %v", ErrInvalidPreset, p.ID, p.TempMin, p.TempMax)
	}
	if p.Wind.Speed < DefaultWindSpeedRange.Min || p.Wind.Speed > DefaultWindSpeedRange.Max {
		return fmt.Errorf("%w: %s: wind speed must be between %d and %d, got %d", ErrInvalidPreset, p.ID, DefaultWindSpeedRange.Min, DefaultWindSpeedRange.Max, p.Wind.Speed)
	}
	if p.Wind.Direction != nil && !finite(*p.Wind.Direction) {
		return fmt.Errorf("%w: %s: wind direction must be finite", ErrInvalidPreset, p.ID)
	}
	if !finite(p.Precipitation.Intensity) || p.Precipitation.Intensity < 0 || p.Precipitation.Intensity > 1 {
		return fmt.Errorf("%w: %s: precipitation intensity must be between 0 and 1, got %v", ErrInvalidPreset, p.ID, p.Precipitation.Intensity)
	}
	if p.InertiaWeight != nil && (!finite(*p.InertiaWeight) || *p.InertiaWeight < 0) {
		return fmt.Errorf("%w: %s: inertia weight must be non-negative", ErrInvalidPreset, p.ID)
	}
	return nil
}

// ValidatePresets validates every preset and rejects duplicate ids.
func ValidatePresets(presets []Preset) error {
	seen := map[string]bool{}
	var errs []error
	for _, p := range presets {
		if err := p.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if seen[p.ID] {
			errs = append(errs, fmt.Errorf("%w: duplicate id %q", ErrInvalidPreset, p.ID))
		}
		seen[p.ID] = true
	}
	return errors.Join(errs...)
}

// Validate checks a zone at the configuration boundary. When catalog is not
// nil, preset references are checked against it.
func (z ZoneConfig) Validate(catalog *Catalog) error {
	var errs []error
	check := func(where string, presets []ZonePreset) {
		for _, p := range presets {
			if p.ID == "" {
				errs = append(errs, fmt.Errorf("%w: %s: preset id is required", ErrInvalidZone, where))
				continue
			}
			if p.Chance.Kind == ModifierAbsolute && p.Chance.Value < 0 {
				errs = append(errs, fmt.Errorf("%w: %s: %s: chance must be non-negative", ErrInvalidZone, where, p.ID))
			}
			if p.InertiaWeight != nil && (!finite(*p.InertiaWeight) || *p.InertiaWeight < 0) {
				errs = append(errs, fmt.Errorf("%w: %s: %s: inertia weight must be non-negative", ErrInvalidZone, where, p.ID))
			}
			if catalog != nil {
				if _, err := catalog.Resolve(p.ID); err != nil {
					errs = append(errs, fmt.Errorf("%w: %s: %w", ErrInvalidZone, where, err))
				}
			}
		}
	}

	check("presets", z.Presets)
	for season, override := range z.SeasonOverrides {
		check("seasonOverrides."+season, override.Presets)
	}
	if z.WindSpeedRange != nil && z.WindSpeedRange.Min > z.WindSpeedRange.Max {
		errs = append(errs, fmt.Errorf("%w: wind speed range min %d exceeds max %d", ErrInvalidZone, z.WindSpeedRange.Min, z.WindSpeedRange.Max))
	}
	for compass, weight := range z.WindDirections {
		if _, ok := compass.Degrees(); !ok {
			errs = append(errs, fmt.Errorf("%w: unknown compass point %q", ErrInvalidZone, compass))
		}
		if !finite(weight) || weight < 0 {
			errs = append(errs, fmt.Errorf("%w: wind direction %s weight must be non-negative", ErrInvalidZone, compass))
		}
	}
	return errors.Join(errs...)
}

// Validate rejects negative weights and non-finite bounds in a season's base
// climate.
func (s SeasonClimate) Validate() error {
	var errs []error
	if s.Temperatures != nil && (!finite(s.Temperatures.Min) || !finite(s.Temperatures.Max)) {
		errs = append(errs, errors.New("season temperatures must be finite"))
	}
	for _, entry := range s.Presets {
		if !finite(entry.Chance) || entry.Chance < 0 {
			errs = append(errs, fmt.Errorf("season preset %q: chance must be non-negative", entry.ID))
		}
	}
	return errors.Join(errs...)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
