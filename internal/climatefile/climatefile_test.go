package climatefile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/appengine-ltd/weathergen/internal/calendar"
	"github.com/appengine-ltd/weathergen/internal/weather"
	"github.com/appengine-ltd/weathergen/internal/zones"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadPresetsAcceptsArrayAndObject(t *testing.T) {
	array := writeFile(t, "array.json", `[{"id":"ember-storm","label":"Ember Storm","category":"fantasy","tempMin":20,"tempMax":35,"wind":{"speed":3}}]`)
	presets, err := LoadPresets(array)
	if err != nil {
		t.Fatalf("load array: %v", err)
	}
	if len(presets) != 1 || presets[0].ID != "ember-storm" || presets[0].Wind.Speed != 3 {
		t.Fatalf("unexpected presets %+v", presets)
	}

	object := writeFile(t, "object.json", `{"presets":[{"id":"glass-rain","label":"Glass Rain","category":"fantasy","inertiaWeight":0}]}`)
	presets, err = LoadPresets(object)
	if err != nil {
		t.Fatalf("load object: %v", err)
	}
	if len(presets) != 1 || presets[0].InertiaWeight == nil || *presets[0].InertiaWeight != 0 {
		t.Fatalf("unexpected presets %+v", presets)
	}
}

func TestLoadPresetsRejectsInvalid(t *testing.T) {
	path := writeFile(t, "bad.json", `[{"id":"x","tempMin":10,"tempMax":2}]`)
	if _, err := LoadPresets(path); !errors.Is(err, weather.ErrInvalidPreset) {
		t.Fatalf("expected ErrInvalidPreset, got %v", err)
	}

	path = writeFile(t, "garbage.json", `{`)
	if _, err := LoadPresets(path); err == nil || !strings.Contains(err.Error(), "parse presets") {
		t.Fatalf("expected parse error, got %v", err)
	}

	if _, err := LoadPresets(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoadZoneParsesModifiers(t *testing.T) {
	path := writeFile(t, "zone.json", `{
  "id": "swamp",
  "presets": [{"id": "fog", "chance": 30, "tempMin": "2-"}],
  "seasonOverrides": {
    "summer": {"presets": [{"id": "rain", "chance": "+10"}, {"id": "snow", "enabled": false}]}
  },
  "temperatures": {"_default": {"min": 5, "max": "3+"}},
  "windDirections": {"S": 2, "SW": 1}
}`)

	zone, err := LoadZone(path, weather.DefaultCatalog())
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}
	if zone.Presets[0].Chance.Kind != weather.ModifierAbsolute || zone.Presets[0].Chance.Value != 30 {
		t.Fatalf("unexpected fog chance %+v", zone.Presets[0].Chance)
	}
	if zone.Presets[0].TempMin != weather.Delta(-2) {
		t.Fatalf("unexpected fog tempMin %+v", zone.Presets[0].TempMin)
	}
	summer := zone.SeasonOverrides["summer"]
	if summer.Presets[0].Chance.Modifier != weather.Delta(10) {
		t.Fatalf("unexpected rain chance %+v", summer.Presets[0].Chance)
	}
	if summer.Presets[1].Enabled == nil || *summer.Presets[1].Enabled {
		t.Fatalf("expected snow to be disabled")
	}
	if zone.Temperatures[weather.DefaultSeasonKey].Max != weather.Delta(3) {
		t.Fatalf("unexpected max %+v", zone.Temperatures[weather.DefaultSeasonKey].Max)
	}
	if zone.WindDirections[weather.CompassS] != 2 {
		t.Fatalf("unexpected wind directions %+v", zone.WindDirections)
	}
}

func TestLoadZoneRejectsUnknownPreset(t *testing.T) {
	path := writeFile(t, "zone.json", `{"id":"x","presets":[{"id":"thunderstrom","chance":5}]}`)
	_, err := LoadZone(path, weather.DefaultCatalog())
	if !errors.Is(err, weather.ErrInvalidZone) || !strings.Contains(err.Error(), "thunderstorm") {
		t.Fatalf("expected invalid zone with suggestion, got %v", err)
	}
}

func TestWriteZoneRoundTrips(t *testing.T) {
	zone, err := zones.Lookup("arctic")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	path := filepath.Join(t.TempDir(), "nested", "arctic.json")
	if err := WriteZone(path, zone); err != nil {
		t.Fatalf("write zone: %v", err)
	}

	loaded, err := LoadZone(path, weather.DefaultCatalog())
	if err != nil {
		t.Fatalf("reload zone: %v", err)
	}

	season := calendar.Gregorian().SeasonForDate(2024, 0, 10)
	want := weather.MergeClimate(season.Climate, nil, &zone, season.Name)
	got := weather.MergeClimate(season.Climate, nil, &loaded, season.Name)
	if len(want.Probabilities) != len(got.Probabilities) {
		t.Fatalf("expected %v, got %v", want.Probabilities, got.Probabilities)
	}
	for _, w := range want.Probabilities {
		if got.Probabilities.Get(w.ID) != w.Weight {
			t.Fatalf("expected %s=%v, got %v", w.ID, w.Weight, got.Probabilities.Get(w.ID))
		}
	}
	if loaded.Presets[2].TempMin != weather.Delta(-6) {
		t.Fatalf("expected blizzard tempMin delta to survive, got %+v", loaded.Presets[2].TempMin)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp file to be cleaned up, got %d entries", len(entries))
	}
}

func TestLoadCalendar(t *testing.T) {
	path := writeFile(t, "calendar.json", `{
  "name": "harptos",
  "months": [{"name": "Hammer", "days": 30}, {"name": "Alturiak", "days": 30}],
  "seasons": [{"name": "winter", "startMonth": 0, "startDay": 1, "climate": {"presets": [{"id": "snow", "chance": 50}]}}]
}`)
	cal, err := LoadCalendar(path)
	if err != nil {
		t.Fatalf("load calendar: %v", err)
	}
	if cal.MonthsPerYear() != 2 || cal.DaysInMonth(1, 1) != 30 {
		t.Fatalf("unexpected calendar %+v", cal)
	}

	bad := writeFile(t, "bad.json", `{"name":"x","months":[]}`)
	if _, err := LoadCalendar(bad); !errors.Is(err, calendar.ErrInvalidCalendar) {
		t.Fatalf("expected ErrInvalidCalendar, got %v", err)
	}
}
