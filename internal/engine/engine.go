package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/appengine-ltd/weathergen/internal/calendar"
	"github.com/appengine-ltd/weathergen/internal/climatefile"
	"github.com/appengine-ltd/weathergen/internal/config"
	"github.com/appengine-ltd/weathergen/internal/report"
	"github.com/appengine-ltd/weathergen/internal/weather"
	"github.com/appengine-ltd/weathergen/internal/zones"
	"golang.org/x/text/message"
)

// MaxForecastDays bounds a single forecast request.
const MaxForecastDays = 366

// customZoneID names a loaded zone file that carries no id of its own.
const customZoneID = "custom"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnknownSeason  = errors.New("unknown season")
)

// Env is the resolved configuration a CLI run or an MCP session generates
// against. It is read-only after Load and safe for concurrent use.
type Env struct {
	Config   config.Config
	Catalog  *weather.Catalog
	Calendar *calendar.Calendar
	Unit     report.Unit
	Printer  *message.Printer

	defaultZone string
	customZone  *weather.ZoneConfig
}

// Load resolves cfg into an Env, reading any configured files.
func Load(cfg config.Config) (*Env, error) {
	env := &Env{Config: cfg, defaultZone: cfg.Zone}

	var custom []weather.Preset
	if cfg.PresetsFile != "" {
		presets, err := climatefile.LoadPresets(cfg.PresetsFile)
		if err != nil {
			return nil, err
		}
		custom = presets
	}
	env.Catalog = weather.NewCatalog(custom...)

	if cfg.CalendarFile != "" {
		cal, err := climatefile.LoadCalendar(cfg.CalendarFile)
		if err != nil {
			return nil, err
		}
		env.Calendar = cal
	} else {
		cal, ok := calendar.Builtin(cfg.Calendar)
		if !ok {
			return nil, fmt.Errorf("%w: unknown calendar %q", ErrInvalidRequest, cfg.Calendar)
		}
		env.Calendar = cal
	}

	if cfg.ZoneFile != "" {
		zone, err := climatefile.LoadZone(cfg.ZoneFile, env.Catalog)
		if err != nil {
			return nil, err
		}
		if zone.ID == "" {
			zone.ID = customZoneID
		}
		env.customZone = &zone
		env.defaultZone = zone.ID
	}

	unit, err := report.ParseUnit(cfg.Unit)
	if err != nil {
		return nil, err
	}
	env.Unit = unit
	env.Printer = report.NewPrinter(cfg.Locale)
	return env, nil
}

// Zone resolves a zone id; empty means the configured default. A loaded
// zone file shadows the built-in zone of the same id.
func (e *Env) Zone(id string) (weather.ZoneConfig, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		id = e.defaultZone
	}
	if e.customZone != nil && strings.EqualFold(e.customZone.ID, id) {
		return *e.customZone, nil
	}
	return zones.Lookup(id)
}

// ZoneIDs lists every zone id Zone accepts.
func (e *Env) ZoneIDs() []string {
	ids := zones.IDs()
	if e.customZone != nil {
		if _, err := zones.Lookup(e.customZone.ID); err != nil {
			ids = append(ids, e.customZone.ID)
		}
	}
	return ids
}

// Date is a calendar date with a 0-indexed month.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func (e *Env) validateDate(d Date) error {
	if d.Month < 0 || d.Month >= e.Calendar.MonthsPerYear() {
		return fmt.Errorf("%w: month %d is outside 0..%d", ErrInvalidRequest, d.Month, e.Calendar.MonthsPerYear()-1)
	}
	if days := e.Calendar.DaysInMonth(d.Month, d.Year); d.Day < 1 || d.Day > days {
		return fmt.Errorf("%w: day %d is outside 1..%d", ErrInvalidRequest, d.Day, days)
	}
	return nil
}

// currentWeather checks a caller-supplied current condition so typos get a
// suggestion instead of silently disabling inertia.
func (e *Env) currentWeather(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", nil
	}
	if _, err := e.Catalog.Resolve(id); err != nil {
		return "", fmt.Errorf("%w: current weather: %w", ErrInvalidRequest, err)
	}
	return id, nil
}

func (e *Env) inertia(v *float64) (float64, error) {
	if v == nil {
		return e.Config.Inertia, nil
	}
	if *v < 0 || *v > 1 {
		return 0, fmt.Errorf("%w: inertia must be between 0 and 1, got %v", ErrInvalidRequest, *v)
	}
	return *v, nil
}

type GenerateRequest struct {
	Zone string
	// Season picks a calendar season by name; Date wins when both are set.
	Season           string
	Date             *Date
	Seed             *uint32
	CurrentWeatherID string
	Inertia          *float64
}

type GenerateResponse struct {
	Zone    string          `json:"zone"`
	Season  string          `json:"season,omitempty"`
	Seed    *uint32         `json:"seed,omitempty"`
	Weather weather.Weather `json:"weather"`
}

// Generate produces one day of weather. A Date without a Seed is seeded from
// the date, so the same day always reads the same.
func (e *Env) Generate(req GenerateRequest) (GenerateResponse, error) {
	zone, err := e.Zone(req.Zone)
	if err != nil {
		return GenerateResponse{}, err
	}
	current, err := e.currentWeather(req.CurrentWeatherID)
	if err != nil {
		return GenerateResponse{}, err
	}
	inertia, err := e.inertia(req.Inertia)
	if err != nil {
		return GenerateResponse{}, err
	}

	var season *weather.SeasonInfo
	seed := req.Seed
	switch {
	case req.Date != nil:
		if err := e.validateDate(*req.Date); err != nil {
			return GenerateResponse{}, err
		}
		season = e.Calendar.SeasonForDate(req.Date.Year, req.Date.Month, req.Date.Day)
		if seed == nil {
			s := weather.DateSeed(req.Date.Year, req.Date.Month, req.Date.Day)
			seed = &s
		}
	case req.Season != "":
		info, ok := e.Calendar.SeasonByName(req.Season)
		if !ok {
			return GenerateResponse{}, fmt.Errorf("%w: %q", ErrUnknownSeason, req.Season)
		}
		season = info
	}

	opts := weather.GenerateOptions{
		Zone:             &zone,
		Catalog:          e.Catalog,
		Seed:             seed,
		CurrentWeatherID: current,
		Inertia:          inertia,
	}
	resp := GenerateResponse{Zone: zone.ID, Seed: seed}
	if season != nil {
		opts.Season = season.Climate
		opts.SeasonName = season.Name
		resp.Season = season.Name
	}
	resp.Weather = weather.Generate(opts)
	return resp, nil
}

type ForecastRequest struct {
	Zone             string
	Start            Date
	Days             *int
	Accuracy         *float64
	CurrentWeatherID string
	Inertia          *float64
}

func (e *Env) Forecast(req ForecastRequest) ([]weather.ForecastEntry, error) {
	zone, err := e.Zone(req.Zone)
	if err != nil {
		return nil, err
	}
	if err := e.validateDate(req.Start); err != nil {
		return nil, err
	}
	current, err := e.currentWeather(req.CurrentWeatherID)
	if err != nil {
		return nil, err
	}
	inertia, err := e.inertia(req.Inertia)
	if err != nil {
		return nil, err
	}

	days := e.Config.Days
	if req.Days != nil {
		days = *req.Days
	}
	if days < 0 || days > MaxForecastDays {
		return nil, fmt.Errorf("%w: days must be between 0 and %d, got %d", ErrInvalidRequest, MaxForecastDays, days)
	}
	accuracy := e.Config.Accuracy
	if req.Accuracy != nil {
		accuracy = *req.Accuracy
	}
	if accuracy < 0 || accuracy > 100 {
		return nil, fmt.Errorf("%w: accuracy must be between 0 and 100, got %v", ErrInvalidRequest, accuracy)
	}

	opts := e.Calendar.ForecastOptions(weather.ForecastOptions{
		Zone:             &zone,
		Catalog:          e.Catalog,
		Year:             req.Start.Year,
		Month:            req.Start.Month,
		Day:              req.Start.Day,
		Days:             days,
		CurrentWeatherID: current,
		Inertia:          inertia,
		Accuracy:         &accuracy,
	})
	return weather.BuildForecast(opts), nil
}
