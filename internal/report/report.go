package report

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/appengine-ltd/weathergen/internal/weather"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrUnknownUnit indicates a temperature unit name was not recognised.
var ErrUnknownUnit = errors.New("unknown temperature unit")

type Unit int

const (
	Celsius Unit = iota
	Fahrenheit
)

func ParseUnit(raw string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "c", "celsius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	default:
		return Celsius, fmt.Errorf("%w: %q", ErrUnknownUnit, raw)
	}
}

func (u Unit) Symbol() string {
	if u == Fahrenheit {
		return "°F"
	}
	return "°C"
}

// Convert turns a generated Celsius temperature into u.
func (u Unit) Convert(celsius int) int {
	if u == Fahrenheit {
		return int(math.Round(float64(celsius)*9/5 + 32))
	}
	return celsius
}

// NewPrinter returns a printer for locale, falling back to English when the
// tag does not parse.
func NewPrinter(locale string) *message.Printer {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// FormatWeather renders one weather state on a single line.
func FormatWeather(p *message.Printer, w weather.Weather, unit Unit) string {
	label := w.Preset.Label
	if label == "" {
		label = w.Preset.ID
	}

	parts := []string{
		label,
		p.Sprintf("%d%s", unit.Convert(w.Temperature), unit.Symbol()),
		formatWind(p, w.Wind),
	}
	if w.Precipitation.Type != "" {
		parts = append(parts, p.Sprintf("%s %.0f%%", w.Precipitation.Type, w.Precipitation.Intensity*100))
	}
	return strings.Join(parts, " · ")
}

func formatWind(p *message.Printer, wind weather.Wind) string {
	label := weather.WindLabel(wind.Speed)
	if wind.Speed <= 0 {
		return label + " wind"
	}
	compass := weather.CompassFromDegrees(wind.Direction)
	return p.Sprintf("%s wind from %s (%.0f°)", label, compass, wind.Direction)
}

// FormatForecast renders one line per day. monthName may be nil, in which
// case months are printed as 1-based numbers.
func FormatForecast(p *message.Printer, entries []weather.ForecastEntry, unit Unit, monthName func(month int) string) string {
	var b strings.Builder
	for _, entry := range entries {
		month := fmt.Sprintf("%02d", entry.Month+1)
		if monthName != nil {
			month = monthName(entry.Month)
		}
		// Years print without locale grouping.
		line := fmt.Sprintf("%d %s %d: %s", entry.Year, month, entry.Day, FormatWeather(p, entry.Weather, unit))
		if entry.IsVaried {
			line += " (uncertain)"
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
