package weather

import "math"

// Compass is one of the sixteen points of the wind rose.
type Compass string

const (
	CompassN   Compass = "N"
	CompassNNE Compass = "NNE"
	CompassNE  Compass = "NE"
	CompassENE Compass = "ENE"
	CompassE   Compass = "E"
	CompassESE Compass = "ESE"
	CompassSE  Compass = "SE"
	CompassSSE Compass = "SSE"
	CompassS   Compass = "S"
	CompassSSW Compass = "SSW"
	CompassSW  Compass = "SW"
	CompassWSW Compass = "WSW"
	CompassW   Compass = "W"
	CompassWNW Compass = "WNW"
	CompassNW  Compass = "NW"
	CompassNNW Compass = "NNW"
)

// CompassPoints lists the rose clockwise from north. Zone direction tables
// are always walked in this order.
var CompassPoints = []Compass{
	CompassN, CompassNNE, CompassNE, CompassENE,
	CompassE, CompassESE, CompassSE, CompassSSE,
	CompassS, CompassSSW, CompassSW, CompassWSW,
	CompassW, CompassWNW, CompassNW, CompassNNW,
}

const compassStep = 360.0 / 16

func (c Compass) Degrees() (float64, bool) {
	for i, point := range CompassPoints {
		if point == c {
			return float64(i) * compassStep, true
		}
	}
	return 0, false
}

// CompassFromDegrees returns the nearest compass point.
func CompassFromDegrees(deg float64) Compass {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	idx := int(roundHalfUp(deg/compassStep)) % len(CompassPoints)
	return CompassPoints[idx]
}

func randomCompassDegrees(rng RNG) float64 {
	idx := int(math.Floor(rng() * float64(len(CompassPoints))))
	if idx >= len(CompassPoints) {
		idx = len(CompassPoints) - 1
	}
	return float64(idx) * compassStep
}

// GenerateWind derives the day's wind from the preset and the zone. Forced
// winds are returned verbatim and never clamped.
func GenerateWind(preset Preset, zone *ZoneConfig, rng RNG) Wind {
	rng = orRandom(rng)
	if preset.Wind.Forced {
		var dir float64
		if preset.Wind.Direction != nil {
			dir = *preset.Wind.Direction
		} else {
			dir = randomCompassDegrees(rng)
		}
		return Wind{Speed: preset.Wind.Speed, Direction: dir, Forced: true}
	}

	bounds := zone.windSpeedRange()
	variance := int(math.Floor(rng()*3)) - 1
	if variance > 1 {
		variance = 1
	}
	speed := clampInt(preset.Wind.Speed+variance, bounds.Min, bounds.Max)

	return Wind{Speed: speed, Direction: windDirection(preset, zone, rng)}
}

func windDirection(preset Preset, zone *ZoneConfig, rng RNG) float64 {
	if zone != nil && len(zone.WindDirections) > 0 {
		table := Probabilities{}
		for _, point := range CompassPoints {
			if w := zone.WindDirections[point]; w > 0 {
				table.Set(string(point), w)
			}
		}
		if len(table) > 0 {
			deg, _ := Compass(SelectWeighted(table, rng)).Degrees()
			return deg
		}
	}
	if preset.Wind.Direction != nil {
		return *preset.Wind.Direction
	}
	return randomCompassDegrees(rng)
}

// WindLabel names a 0–5 wind speed.
func WindLabel(speed int) string {
	switch {
	case speed <= 0:
		return "Calm"
	case speed == 1:
		return "Light"
	case speed == 2:
		return "Moderate"
	case speed == 3:
		return "Strong"
	case speed == 4:
		return "Gale"
	default:
		return "Extreme"
	}
}

// GeneratePrecipitation jitters the preset's base intensity by up to ±0.15.
// A preset without a precipitation type always yields none.
func GeneratePrecipitation(preset Preset, rng RNG) Precipitation {
	if preset.Precipitation.Type == "" {
		return Precipitation{}
	}
	rng = orRandom(rng)
	intensity := clampFloat(preset.Precipitation.Intensity+(rng()-0.5)*0.3, 0.1, 1.0)
	return Precipitation{
		Type:      preset.Precipitation.Type,
		Intensity: math.Round(intensity*100) / 100,
	}
}
