package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/appengine-ltd/weathergen/internal/weather"
)

func rainyDay() weather.Weather {
	return weather.Weather{
		Preset:        weather.Preset{ID: "rain", Label: "Rain"},
		Temperature:   12,
		Wind:          weather.Wind{Speed: 2, Direction: 225},
		Precipitation: weather.Precipitation{Type: "rain", Intensity: 0.6},
	}
}

func TestParseUnit(t *testing.T) {
	cases := map[string]Unit{"": Celsius, "C": Celsius, "celsius": Celsius, "f": Fahrenheit, " Fahrenheit ": Fahrenheit}
	for raw, want := range cases {
		got, err := ParseUnit(raw)
		if err != nil || got != want {
			t.Fatalf("%q: expected %v, got %v (%v)", raw, want, got, err)
		}
	}
	if _, err := ParseUnit("kelvin"); !errors.Is(err, ErrUnknownUnit) {
		t.Fatalf("expected ErrUnknownUnit, got %v", err)
	}
}

func TestConvert(t *testing.T) {
	if got := Fahrenheit.Convert(100); got != 212 {
		t.Fatalf("expected 212, got %d", got)
	}
	if got := Fahrenheit.Convert(-40); got != -40 {
		t.Fatalf("expected -40, got %d", got)
	}
	if got := Celsius.Convert(7); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}

func TestFormatWeather(t *testing.T) {
	p := NewPrinter("en")

	got := FormatWeather(p, rainyDay(), Celsius)
	want := "Rain · 12°C · Moderate wind from SW (225°) · rain 60%"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	calm := weather.Weather{Preset: weather.Preset{ID: "clear"}, Temperature: 0}
	got = FormatWeather(p, calm, Fahrenheit)
	if got != "clear · 32°F · Calm wind" {
		t.Fatalf("unexpected calm rendering %q", got)
	}
}

func TestFormatForecast(t *testing.T) {
	p := NewPrinter("not a locale")
	entries := []weather.ForecastEntry{
		{Year: 2024, Month: 2, Day: 5, Weather: rainyDay()},
		{Year: 2024, Month: 2, Day: 6, Weather: rainyDay(), IsVaried: true},
	}

	out := FormatForecast(p, entries, Celsius, nil)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out)
	}
	if !strings.HasPrefix(lines[0], "2024 03 5: Rain") {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "(uncertain)") {
		t.Fatalf("expected varied marker, got %q", lines[1])
	}

	named := FormatForecast(p, entries[:1], Celsius, func(int) string { return "March" })
	if !strings.HasPrefix(named, "2024 March 5:") {
		t.Fatalf("expected month name, got %q", named)
	}
}
