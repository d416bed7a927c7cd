package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/appengine-ltd/weathergen/internal/climatefile"
	"github.com/appengine-ltd/weathergen/internal/config"
	"github.com/appengine-ltd/weathergen/internal/engine"
	"github.com/appengine-ltd/weathergen/internal/report"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		die(err.Error())
	}

	var (
		showVersion bool
		asJSON      bool
		listZones   bool
		dateRaw     string
		season      string
		seed        int64
		current     string
		inertia     float64
		writeZone   string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&asJSON, "json", false, "print JSON instead of text")
	flag.BoolVar(&listZones, "zones", false, "list known zones and exit")
	flag.StringVar(&cfg.Zone, "zone", cfg.Zone, "climate zone id")
	flag.StringVar(&dateRaw, "date", "", "calendar date as YEAR-MONTH-DAY, months counted from 1")
	flag.StringVar(&season, "season", "", "season name, used when no date is given")
	flag.IntVar(&cfg.Days, "days", cfg.Days, "forecast length; 0 prints a single day")
	flag.Float64Var(&cfg.Accuracy, "accuracy", cfg.Accuracy, "forecast accuracy percentage")
	flag.Int64Var(&seed, "seed", -1, "seed for a single day; negative picks one from the date or at random")
	flag.StringVar(&current, "current", "", "preset id currently showing, biases towards persistence")
	flag.Float64Var(&inertia, "inertia", cfg.Inertia, "persistence strength between 0 and 1")
	flag.StringVar(&cfg.Unit, "unit", cfg.Unit, "temperature unit: celsius or fahrenheit")
	flag.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for number formatting")
	flag.StringVar(&cfg.Calendar, "calendar", cfg.Calendar, "built-in calendar name")
	flag.StringVar(&cfg.PresetsFile, "presets", cfg.PresetsFile, "JSON file of custom presets")
	flag.StringVar(&cfg.ZoneFile, "zone-file", cfg.ZoneFile, "JSON zone definition")
	flag.StringVar(&cfg.CalendarFile, "calendar-file", cfg.CalendarFile, "JSON calendar definition")
	flag.StringVar(&writeZone, "write-zone", "", "write the selected zone as JSON to this path and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("weathergen %s (%s) %s\n", version, commit, date)
		return
	}
	cfg.Inertia = inertia
	if err := cfg.Validate(); err != nil {
		die(err.Error())
	}

	env, err := engine.Load(cfg)
	if err != nil {
		die(err.Error())
	}

	if listZones {
		fmt.Println(strings.Join(env.ZoneIDs(), "\n"))
		return
	}
	if writeZone != "" {
		zone, err := env.Zone(cfg.Zone)
		if err != nil {
			die(err.Error())
		}
		if err := climatefile.WriteZone(writeZone, zone); err != nil {
			die(fmt.Sprintf("write zone: %v", err))
		}
		fmt.Printf("wrote %s\n", writeZone)
		return
	}

	var start *engine.Date
	if strings.TrimSpace(dateRaw) != "" {
		d, err := parseDate(dateRaw)
		if err != nil {
			die(err.Error())
		}
		start = &d
	}

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	days, err := forecastDays(cfg.Days, explicit["days"], start != nil, seed >= 0)
	if err != nil {
		die(err.Error())
	}

	if days > 0 {
		entries, err := env.Forecast(engine.ForecastRequest{
			Zone:             cfg.Zone,
			Start:            *start,
			Days:             &days,
			Accuracy:         &cfg.Accuracy,
			CurrentWeatherID: current,
			Inertia:          &inertia,
		})
		if err != nil {
			die(fmt.Sprintf("forecast: %v", err))
		}
		if asJSON {
			printJSON(entries)
			return
		}
		fmt.Print(report.FormatForecast(env.Printer, entries, env.Unit, env.Calendar.MonthName))
		return
	}

	req := engine.GenerateRequest{
		Zone:             cfg.Zone,
		Season:           season,
		Date:             start,
		CurrentWeatherID: current,
		Inertia:          &inertia,
	}
	if seed >= 0 {
		s := uint32(seed)
		req.Seed = &s
	}
	resp, err := env.Generate(req)
	if err != nil {
		die(fmt.Sprintf("generate: %v", err))
	}
	if asJSON {
		printJSON(resp)
		return
	}
	fmt.Println(report.FormatWeather(env.Printer, resp.Weather, env.Unit))
}

// forecastDays decides how many days to forecast. Without a date the run
// falls back to a single day unless --days was set explicitly. A seed only
// makes sense for a single day, since forecast days are seeded from their
// dates.
func forecastDays(days int, daysExplicit, hasDate, hasSeed bool) (int, error) {
	if !hasDate {
		if daysExplicit && days > 0 {
			return 0, errors.New("--date is required for a forecast; use --days 0 for a single day")
		}
		return 0, nil
	}
	if days > 0 && hasSeed {
		return 0, errors.New("--seed applies to a single day; forecast days are seeded from their dates, use --days 0")
	}
	return days, nil
}

// parseDate reads YEAR-MONTH-DAY with a 1-based month and returns the
// engine's 0-based form.
func parseDate(raw string) (engine.Date, error) {
	parts := strings.Split(strings.TrimSpace(raw), "-")
	if len(parts) != 3 {
		return engine.Date{}, fmt.Errorf("invalid date %q: want YEAR-MONTH-DAY", raw)
	}
	var values [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return engine.Date{}, fmt.Errorf("invalid date %q: %w", raw, err)
		}
		values[i] = n
	}
	if values[1] < 1 {
		return engine.Date{}, fmt.Errorf("invalid date %q: months start at 1", raw)
	}
	return engine.Date{Year: values[0], Month: values[1] - 1, Day: values[2]}, nil
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		die(fmt.Sprintf("encode json: %v", err))
	}
}

func die(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
