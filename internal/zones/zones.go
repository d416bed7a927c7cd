package zones

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/appengine-ltd/weathergen/internal/weather"
)

// ErrUnknownZone indicates a zone id is not built in.
var ErrUnknownZone = errors.New("unknown climate zone")

// Discovery summary:
// - Each zone carries absolute presets and temperatures for use without a
//   calendar, plus season overrides that nudge a calendar's base climate.
// - Override chances are relative ("+N"/"-N") wherever the zone only shifts
//   the odds, and absolute where it replaces them outright.

type builder func() weather.ZoneConfig

var builtins = map[string]builder{
	"temperate": temperate,
	"tropical":  tropical,
	"arctic":    arctic,
	"desert":    desert,
	"coastal":   coastal,
	"mountain":  mountain,
}

// IDs lists the built-in zones in a stable order.
func IDs() []string {
	out := make([]string, 0, len(builtins))
	for id := range builtins {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Lookup returns a fresh copy of a built-in zone.
func Lookup(id string) (weather.ZoneConfig, error) {
	key := strings.ToLower(strings.TrimSpace(id))
	if build, ok := builtins[key]; ok {
		return build(), nil
	}
	if suggestion := weather.ClosestID(key, IDs()); suggestion != "" {
		return weather.ZoneConfig{}, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownZone, id, suggestion)
	}
	return weather.ZoneConfig{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownZone, id, strings.Join(IDs(), ", "))
}

func chance(v any) weather.ChanceModifier { return weather.ParseChanceModifier(v) }

func temp(v any) weather.Modifier { return weather.ParseModifier(v) }

func presets(pairs ...any) []weather.ZonePreset {
	out := make([]weather.ZonePreset, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, weather.ZonePreset{ID: pairs[i].(string), Chance: chance(pairs[i+1])})
	}
	return out
}

func temps(minV, maxV any) weather.TempModifierRange {
	return weather.TempModifierRange{Min: temp(minV), Max: temp(maxV)}
}

func tempsPtr(minV, maxV any) *weather.TempModifierRange {
	r := temps(minV, maxV)
	return &r
}

func temperate() weather.ZoneConfig {
	return weather.ZoneConfig{
		ID:   "temperate",
		Name: "Temperate",
		Presets: presets(
			"clear", 18, "partly-cloudy", 16, "cloudy", 24, "rain", 22,
			"drizzle", 8, "thunderstorm", 6, "windy", 6,
		),
		SeasonOverrides: map[string]weather.SeasonOverride{
			"spring": {Presets: presets("fog", "+4")},
			"summer": {Presets: presets("heatwave", "+2", "thunderstorm", "+2")},
			"autumn": {Presets: presets("fog", "+6", "mist", "+4")},
			"winter": {Presets: presets("snow", "+4", "rain", "-4")},
		},
		Temperatures: map[string]weather.TempModifierRange{
			"spring":                 temps(6, 18),
			"summer":                 temps(16, 30),
			"autumn":                 temps(5, 17),
			"winter":                 temps(-6, 6),
			weather.DefaultSeasonKey: temps(8, 24),
		},
		WindSpeedRange: &weather.SpeedRange{Min: 0, Max: 4},
		WindDirections: map[weather.Compass]float64{
			weather.CompassW: 4, weather.CompassSW: 3, weather.CompassNW: 2, weather.CompassN: 1,
		},
	}
}

func tropical() weather.ZoneConfig {
	return weather.ZoneConfig{
		ID:   "tropical",
		Name: "Tropical",
		Presets: presets(
			"cloudy", 18, "rain", 32, "thunderstorm", 14, "partly-cloudy", 10,
			"clear", 6, "sunshower", 8, "windy", 3, "hurricane", 1,
		),
		SeasonOverrides: map[string]weather.SeasonOverride{
			"spring": {Presets: presets("snow", 0, "sleet", 0, "rain", "+10", "sunshower", "+6"), Temperatures: tempsPtr("16+", "12+")},
			"summer": {Presets: presets("rain", "+18", "thunderstorm", "+10", "hurricane", "+2", "heatwave", 0), Temperatures: tempsPtr("8+", "6+")},
			"autumn": {Presets: presets("rain", "+12", "thunderstorm", "+6", "fog", 0, "hurricane", "+1"), Temperatures: tempsPtr("17+", "15+")},
			"winter": {Presets: presets("snow", 0, "sleet", 0, "clear", "+12", "partly-cloudy", "+10", "rain", "-8"), Temperatures: tempsPtr("26+", "24+")},
		},
		Temperatures: map[string]weather.TempModifierRange{
			weather.DefaultSeasonKey: temps(22, 37),
		},
		WindSpeedRange: &weather.SpeedRange{Min: 0, Max: 3},
		WindDirections: map[weather.Compass]float64{
			weather.CompassE: 5, weather.CompassNE: 3, weather.CompassSE: 3,
		},
	}
}

func arctic() weather.ZoneConfig {
	return weather.ZoneConfig{
		ID:   "arctic",
		Name: "Arctic",
		Presets: []weather.ZonePreset{
			{ID: "cloudy", Chance: chance(26)},
			{ID: "snow", Chance: chance(30), InertiaWeight: floatPtr(1.6)},
			{ID: "blizzard", Chance: chance(14), TempMin: temp("6-"), TempMax: temp("4-")},
			{ID: "windy", Chance: chance(10)},
			{ID: "clear", Chance: chance(12)},
			{ID: "aurora", Chance: chance(4)},
			{ID: "polar-twilight", Chance: chance(4)},
		},
		SeasonOverrides: map[string]weather.SeasonOverride{
			"spring": {Presets: presets("rain", 0, "thunderstorm", 0, "drizzle", 0, "snow", "+20", "blizzard", "+6"), Temperatures: tempsPtr(-22, -6)},
			"summer": {Presets: presets("heatwave", 0, "thunderstorm", 0, "snow", "+10", "fog", "+6"), Temperatures: tempsPtr(-4, 8)},
			"autumn": {Presets: presets("rain", 0, "thunderstorm", 0, "snow", "+16", "blizzard", "+4"), Temperatures: tempsPtr(-18, -2)},
			"winter": {Presets: presets("rain", 0, "sleet", 0, "snow", "+20", "blizzard", "+12", "polar-twilight", "+10", "aurora", "+6"), Temperatures: tempsPtr(-35, -15)},
		},
		Temperatures: map[string]weather.TempModifierRange{
			"winter":                 temps(-35, -15),
			"summer":                 temps(-4, 8),
			weather.DefaultSeasonKey: temps(-25, 5),
		},
		WindSpeedRange: &weather.SpeedRange{Min: 1, Max: 5},
		WindDirections: map[weather.Compass]float64{
			weather.CompassN: 5, weather.CompassNE: 2, weather.CompassNW: 2,
		},
	}
}

func desert() weather.ZoneConfig {
	return weather.ZoneConfig{
		ID:   "desert",
		Name: "Desert",
		Presets: presets(
			"clear", 40, "partly-cloudy", 10, "windy", 16, "heatwave", 14,
			"sandstorm", 8, "rain", 3, "thunderstorm", 2,
		),
		SeasonOverrides: map[string]weather.SeasonOverride{
			"spring": {Presets: presets("rain", "-18", "snow", 0, "sleet", 0, "sandstorm", "+8", "clear", "+20"), Temperatures: tempsPtr("12+", "14+")},
			"summer": {Presets: presets("rain", "-18", "thunderstorm", "-6", "heatwave", "+18", "sandstorm", "+6", "clear", "+18"), Temperatures: tempsPtr("8+", "14+")},
			"autumn": {Presets: presets("rain", "-20", "fog", 0, "sandstorm", "+10", "clear", "+20"), Temperatures: tempsPtr("10+", "14+")},
			"winter": {Presets: presets("snow", "-12", "sleet", 0, "rain", "-12", "clear", "+24", "windy", "+6"), Temperatures: tempsPtr("8+", "12+")},
		},
		Temperatures: map[string]weather.TempModifierRange{
			"summer":                 temps(28, 48),
			"winter":                 temps(2, 22),
			weather.DefaultSeasonKey: temps(3, 45),
		},
		WindSpeedRange: &weather.SpeedRange{Min: 0, Max: 4},
		WindDirections: map[weather.Compass]float64{
			weather.CompassE: 3, weather.CompassNE: 2, weather.CompassSE: 1,
		},
	}
}

func coastal() weather.ZoneConfig {
	return weather.ZoneConfig{
		ID:   "coastal",
		Name: "Coastal",
		Presets: presets(
			"cloudy", 24, "rain", 28, "thunderstorm", 10, "windy", 10,
			"clear", 10, "partly-cloudy", 6, "fog", 8, "mist", 4,
		),
		SeasonOverrides: map[string]weather.SeasonOverride{
			"spring": {Presets: presets("fog", "+8", "mist", "+4"), Temperatures: tempsPtr("2+", "2-")},
			"summer": {Presets: presets("fog", "+6", "heatwave", "-2", "windy", "+4"), Temperatures: tempsPtr("1+", "4-")},
			"autumn": {Presets: presets("rain", "+6", "thunderstorm", "+4", "windy", "+6"), Temperatures: tempsPtr("3+", "1-")},
			"winter": {Presets: presets("snow", "-8", "rain", "+8", "thunderstorm", "+4"), Temperatures: tempsPtr("4+", "2+")},
		},
		Temperatures: map[string]weather.TempModifierRange{
			weather.DefaultSeasonKey: temps(4, 24),
		},
		WindSpeedRange: &weather.SpeedRange{Min: 1, Max: 5},
		WindDirections: map[weather.Compass]float64{
			weather.CompassW: 5, weather.CompassWSW: 3, weather.CompassSW: 3, weather.CompassNW: 1,
		},
	}
}

func mountain() weather.ZoneConfig {
	return weather.ZoneConfig{
		ID:   "mountain",
		Name: "Mountain",
		Presets: presets(
			"clear", 24, "cloudy", 24, "rain", 18, "thunderstorm", 12,
			"windy", 12, "snow", 6, "fog", 4,
		),
		SeasonOverrides: map[string]weather.SeasonOverride{
			"spring": {Presets: presets("snow", "+8", "fog", "+4"), Temperatures: tempsPtr("8-", "6-")},
			"summer": {Presets: presets("thunderstorm", "+8", "heatwave", 0), Temperatures: tempsPtr("8-", "8-")},
			"autumn": {Presets: presets("snow", "+6", "windy", "+6"), Temperatures: tempsPtr("8-", "6-")},
			"winter": {Presets: presets("snow", "+16", "blizzard", "+10", "rain", "-14"), Temperatures: tempsPtr("10-", "8-")},
		},
		Temperatures: map[string]weather.TempModifierRange{
			"winter":                 temps(-18, -2),
			weather.DefaultSeasonKey: temps(-8, 16),
		},
		WindSpeedRange: &weather.SpeedRange{Min: 1, Max: 5},
		WindDirections: map[weather.Compass]float64{
			weather.CompassW: 3, weather.CompassNW: 3, weather.CompassN: 2,
		},
	}
}

func floatPtr(v float64) *float64 { return &v }
