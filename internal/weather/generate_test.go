package weather

import (
	"reflect"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	zone := testZone()
	for seed := uint32(1); seed < 100; seed++ {
		opts := GenerateOptions{Zone: zone, SeasonName: "winter", Seed: seedPtr(seed), CurrentWeatherID: "rain", Inertia: 0.3}
		a := Generate(opts)
		b := Generate(opts)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("seed %d: expected identical results, got %+v and %+v", seed, a, b)
		}
	}
}

func TestGenerateRangeContainment(t *testing.T) {
	zone := testZone()
	for seed := uint32(0); seed < 500; seed++ {
		w := Generate(GenerateOptions{Zone: zone, SeasonName: "summer", Seed: seedPtr(seed)})

		if w.Temperature < -4 || w.Temperature > 16 {
			t.Fatalf("seed %d: temperature %d outside [-4,16]", seed, w.Temperature)
		}
		if !w.Wind.Forced && (w.Wind.Speed < 1 || w.Wind.Speed > 3) {
			t.Fatalf("seed %d: wind speed %d outside zone range", seed, w.Wind.Speed)
		}
		if w.Precipitation.Type == "" {
			if w.Precipitation.Intensity != 0 {
				t.Fatalf("seed %d: expected zero intensity without precipitation, got %v", seed, w.Precipitation.Intensity)
			}
		} else if w.Precipitation.Intensity < 0.1 || w.Precipitation.Intensity > 1 {
			t.Fatalf("seed %d: intensity %v outside [0.1,1]", seed, w.Precipitation.Intensity)
		}
		switch w.Preset.ID {
		case "clear", "rain", "snow", "fog":
		default:
			t.Fatalf("seed %d: unexpected preset %q", seed, w.Preset.ID)
		}
	}
}

func TestGenerateForcedWindIgnoresZoneRange(t *testing.T) {
	zone := &ZoneConfig{
		Presets:        []ZonePreset{{ID: "tornado", Chance: ParseChanceModifier(100)}},
		WindSpeedRange: &SpeedRange{Min: 0, Max: 2},
	}
	for seed := uint32(0); seed < 50; seed++ {
		w := Generate(GenerateOptions{Zone: zone, Seed: seedPtr(seed)})
		if w.Preset.ID != "tornado" {
			t.Fatalf("expected tornado, got %q", w.Preset.ID)
		}
		if !w.Wind.Forced || w.Wind.Speed != 5 {
			t.Fatalf("expected forced speed 5, got %+v", w.Wind)
		}
	}
}

func TestGenerateFullInertiaKeepsCurrentCondition(t *testing.T) {
	zone := &ZoneConfig{Presets: []ZonePreset{
		{ID: "rain", Chance: ParseChanceModifier(10)},
		{ID: "clear", Chance: ParseChanceModifier(90)},
	}}
	for seed := uint32(0); seed < 100; seed++ {
		w := Generate(GenerateOptions{Zone: zone, Seed: seedPtr(seed), CurrentWeatherID: "rain", Inertia: 1})
		if w.Preset.ID != "rain" {
			t.Fatalf("seed %d: expected rain to persist, got %q", seed, w.Preset.ID)
		}
	}
}

func TestGenerateUnknownPresetBecomesStub(t *testing.T) {
	zone := &ZoneConfig{Presets: []ZonePreset{{ID: "custom-gloom", Chance: ParseChanceModifier(100)}}}
	w := Generate(GenerateOptions{Zone: zone, Seed: seedPtr(7)})
	if w.Preset.ID != "custom-gloom" || w.Preset.Label != "custom-gloom" {
		t.Fatalf("expected stub preset, got %+v", w.Preset)
	}
	if w.Preset.Icon != "fa-question" || w.Preset.Color != "#888888" {
		t.Fatalf("expected stub icon and color, got %+v", w.Preset)
	}
}

func TestGenerateCustomPresetFromCatalog(t *testing.T) {
	catalog := NewCatalog(Preset{
		ID: "custom-gloom", Label: "Gloom", Category: CategoryFantasy,
		Precipitation: Precipitation{Type: "ash", Intensity: 0.5},
	})
	zone := &ZoneConfig{Presets: []ZonePreset{{ID: "custom-gloom", Chance: ParseChanceModifier(100)}}}
	w := Generate(GenerateOptions{Zone: zone, Catalog: catalog, Seed: seedPtr(3)})
	if w.Preset.Label != "Gloom" {
		t.Fatalf("expected custom preset, got %+v", w.Preset)
	}
	if w.Precipitation.Type != "ash" {
		t.Fatalf("expected ash precipitation, got %+v", w.Precipitation)
	}
}

func TestGeneratePresetTemperatureOverride(t *testing.T) {
	season := &SeasonClimate{
		Temperatures: &TempRange{Min: 0, Max: 10},
		Presets:      []ChanceEntry{{ID: "heatwave", Chance: 10}},
	}
	zone := &ZoneConfig{SeasonOverrides: map[string]SeasonOverride{
		"summer": {Presets: []ZonePreset{{ID: "heatwave", Chance: ParseChanceModifier("+5"), TempMin: ParseModifier("20+"), TempMax: ParseModifier(35)}}},
	}}
	for seed := uint32(0); seed < 100; seed++ {
		w := Generate(GenerateOptions{Zone: zone, Season: season, SeasonName: "summer", Seed: seedPtr(seed)})
		if w.Temperature < 20 || w.Temperature > 35 {
			t.Fatalf("seed %d: expected temperature in [20,35], got %d", seed, w.Temperature)
		}
	}
}

func TestGenerateResolvesEachTemperatureBoundSeparately(t *testing.T) {
	season := &SeasonClimate{
		Temperatures: &TempRange{Min: 0, Max: 10},
		Presets:      []ChanceEntry{{ID: "heatwave", Chance: 10}},
	}
	zone := &ZoneConfig{
		Presets: []ZonePreset{{ID: "heatwave", Chance: ParseChanceModifier(10), TempMin: ParseModifier("20+"), TempMax: ParseModifier(35)}},
		SeasonOverrides: map[string]SeasonOverride{
			"summer": {Presets: []ZonePreset{{ID: "heatwave", Chance: ParseChanceModifier("+5")}}},
			"autumn": {Presets: []ZonePreset{{ID: "heatwave", Chance: ParseChanceModifier("+5"), TempMax: ParseModifier(25)}}},
		},
	}
	for seed := uint32(0); seed < 100; seed++ {
		w := Generate(GenerateOptions{Zone: zone, Season: season, SeasonName: "summer", Seed: seedPtr(seed)})
		if w.Temperature < 20 || w.Temperature > 35 {
			t.Fatalf("seed %d: expected zone bounds [20,35] through a chance-only override, got %d", seed, w.Temperature)
		}
		w = Generate(GenerateOptions{Zone: zone, Season: season, SeasonName: "autumn", Seed: seedPtr(seed)})
		if w.Temperature < 20 || w.Temperature > 25 {
			t.Fatalf("seed %d: expected override max with zone min [20,25], got %d", seed, w.Temperature)
		}
	}
}

func TestGenerateWithoutConfigurationUsesPresetBounds(t *testing.T) {
	catalog := DefaultCatalog()
	seen := map[string]bool{}
	for seed := uint32(0); seed < 300; seed++ {
		w := Generate(GenerateOptions{Catalog: catalog, Seed: seedPtr(seed)})
		preset, ok := catalog.Lookup(w.Preset.ID)
		if !ok {
			t.Fatalf("seed %d: unexpected preset %q", seed, w.Preset.ID)
		}
		if float64(w.Temperature) < preset.TempMin || float64(w.Temperature) > preset.TempMax {
			t.Fatalf("seed %d: %s temperature %d outside [%v,%v]", seed, preset.ID, w.Temperature, preset.TempMin, preset.TempMax)
		}
		seen[preset.ID] = true
	}
	if len(seen) < 10 {
		t.Fatalf("expected a uniform pick to cover many presets, saw %d", len(seen))
	}
}

func TestDrawTemperatureStaysInsideFractionalBounds(t *testing.T) {
	r := TempRange{Min: 9.6, Max: 11.4}
	for _, roll := range []float64{0, 0.5, 0.999} {
		got := drawTemperature(r, sequence(roll))
		if got < 10 || got > 11 {
			t.Fatalf("roll %v: expected 10 or 11, got %d", roll, got)
		}
	}
}
