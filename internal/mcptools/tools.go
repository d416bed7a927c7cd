package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/appengine-ltd/weathergen/internal/engine"
	"github.com/appengine-ltd/weathergen/internal/report"
	"github.com/appengine-ltd/weathergen/internal/weather"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/time/rate"
)

// GenerateInput represents the MCP tool input for one day of weather.
type GenerateInput struct {
	Zone             string   `json:"zone,omitempty" jsonschema:"climate zone id; defaults to the server's zone"`
	Season           string   `json:"season,omitempty" jsonschema:"calendar season name, used when no date is given"`
	Year             *int     `json:"year,omitempty" jsonschema:"calendar year; with month and day selects the season and seed"`
	Month            *int     `json:"month,omitempty" jsonschema:"0-indexed month"`
	Day              *int     `json:"day,omitempty" jsonschema:"1-indexed day of month"`
	Seed             *uint32  `json:"seed,omitempty" jsonschema:"optional seed for reproducible weather"`
	CurrentWeatherID string   `json:"current_weather_id,omitempty" jsonschema:"preset id currently shown, biases towards persistence"`
	Inertia          *float64 `json:"inertia,omitempty" jsonschema:"persistence strength between 0 and 1"`
}

// WeatherResult represents one generated weather state for MCP output.
type WeatherResult struct {
	PresetID      string   `json:"preset_id" jsonschema:"chosen preset id"`
	Label         string   `json:"label" jsonschema:"display label"`
	Category      string   `json:"category" jsonschema:"preset category"`
	Temperature   int      `json:"temperature" jsonschema:"temperature in degrees Celsius"`
	WindSpeed     int      `json:"wind_speed" jsonschema:"wind speed on the 0-5 scale"`
	WindDirection float64  `json:"wind_direction" jsonschema:"wind direction in degrees"`
	WindForced    bool     `json:"wind_forced" jsonschema:"whether the preset dictates the wind"`
	Precipitation string   `json:"precipitation,omitempty" jsonschema:"precipitation type, empty for none"`
	Intensity     float64  `json:"intensity" jsonschema:"precipitation intensity between 0 and 1"`
	Summary       string   `json:"summary" jsonschema:"human readable summary"`
	Varied        bool     `json:"varied,omitempty" jsonschema:"whether forecast uncertainty changed this day"`
	Date          *DateRef `json:"date,omitempty" jsonschema:"calendar date of a forecast day"`
}

type DateRef struct {
	Year  int `json:"year" jsonschema:"calendar year"`
	Month int `json:"month" jsonschema:"0-indexed month"`
	Day   int `json:"day" jsonschema:"1-indexed day"`
}

// GenerateResult represents the MCP tool output for one day of weather.
type GenerateResult struct {
	Zone    string        `json:"zone" jsonschema:"zone the weather was generated for"`
	Season  string        `json:"season,omitempty" jsonschema:"season in effect"`
	Seed    *uint32       `json:"seed,omitempty" jsonschema:"seed used, when deterministic"`
	Weather WeatherResult `json:"weather" jsonschema:"generated weather"`
}

// ForecastInput represents the MCP tool input for a multi-day forecast.
type ForecastInput struct {
	Zone             string   `json:"zone,omitempty" jsonschema:"climate zone id; defaults to the server's zone"`
	Year             int      `json:"year" jsonschema:"start year"`
	Month            int      `json:"month" jsonschema:"0-indexed start month"`
	Day              int      `json:"day" jsonschema:"1-indexed start day"`
	Days             *int     `json:"days,omitempty" jsonschema:"number of days to forecast"`
	Accuracy         *float64 `json:"accuracy,omitempty" jsonschema:"forecast accuracy percentage between 0 and 100"`
	CurrentWeatherID string   `json:"current_weather_id,omitempty" jsonschema:"preset id shown today"`
	Inertia          *float64 `json:"inertia,omitempty" jsonschema:"persistence strength between 0 and 1"`
}

// ForecastResult represents the MCP tool output for a forecast.
type ForecastResult struct {
	Zone string          `json:"zone" jsonschema:"zone the forecast was generated for"`
	Days []WeatherResult `json:"days" jsonschema:"one entry per day in order"`
}

// PresetsInput represents the MCP tool input for listing presets.
type PresetsInput struct {
	Category string `json:"category,omitempty" jsonschema:"optional category filter"`
}

type PresetSummary struct {
	ID       string  `json:"id" jsonschema:"preset id"`
	Label    string  `json:"label" jsonschema:"display label"`
	Category string  `json:"category" jsonschema:"preset category"`
	TempMin  float64 `json:"temp_min" jsonschema:"minimum temperature in degrees Celsius"`
	TempMax  float64 `json:"temp_max" jsonschema:"maximum temperature in degrees Celsius"`
}

// PresetsResult represents the MCP tool output for listing presets.
type PresetsResult struct {
	Presets []PresetSummary `json:"presets" jsonschema:"known presets"`
	Zones   []string        `json:"zones" jsonschema:"known zone ids"`
}

func GenerateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "weather_generate",
		Description: "Generates one day of weather for a climate zone",
	}
}

func ForecastTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "weather_forecast",
		Description: "Generates a multi-day weather forecast starting at a calendar date",
	}
}

func PresetsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "weather_presets",
		Description: "Lists weather presets and climate zones",
	}
}

// GenerateHandler generates one day of weather.
func GenerateHandler(env *engine.Env) mcp.ToolHandlerFor[GenerateInput, GenerateResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, GenerateResult, error) {
		req := engine.GenerateRequest{
			Zone:             input.Zone,
			Season:           input.Season,
			Seed:             input.Seed,
			CurrentWeatherID: input.CurrentWeatherID,
			Inertia:          input.Inertia,
		}
		if input.Year != nil || input.Month != nil || input.Day != nil {
			if input.Year == nil || input.Month == nil || input.Day == nil {
				return nil, GenerateResult{}, fmt.Errorf("%w: year, month and day must be given together", engine.ErrInvalidRequest)
			}
			req.Date = &engine.Date{Year: *input.Year, Month: *input.Month, Day: *input.Day}
		}

		resp, err := env.Generate(req)
		if err != nil {
			return nil, GenerateResult{}, fmt.Errorf("generate weather: %w", err)
		}

		result := GenerateResult{
			Zone:    resp.Zone,
			Season:  resp.Season,
			Seed:    resp.Seed,
			Weather: weatherResult(env, resp.Weather),
		}
		return textResult(result.Weather.Summary), result, nil
	}
}

// ForecastHandler generates a forecast.
func ForecastHandler(env *engine.Env) mcp.ToolHandlerFor[ForecastInput, ForecastResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ForecastInput) (*mcp.CallToolResult, ForecastResult, error) {
		entries, err := env.Forecast(engine.ForecastRequest{
			Zone:             input.Zone,
			Start:            engine.Date{Year: input.Year, Month: input.Month, Day: input.Day},
			Days:             input.Days,
			Accuracy:         input.Accuracy,
			CurrentWeatherID: input.CurrentWeatherID,
			Inertia:          input.Inertia,
		})
		if err != nil {
			return nil, ForecastResult{}, fmt.Errorf("build forecast: %w", err)
		}

		zone, _ := env.Zone(input.Zone)
		result := ForecastResult{Zone: zone.ID, Days: make([]WeatherResult, 0, len(entries))}
		for _, entry := range entries {
			day := weatherResult(env, entry.Weather)
			day.Varied = entry.IsVaried
			day.Date = &DateRef{Year: entry.Year, Month: entry.Month, Day: entry.Day}
			result.Days = append(result.Days, day)
		}
		text := report.FormatForecast(env.Printer, entries, env.Unit, env.Calendar.MonthName)
		if text == "" {
			text = "No days requested."
		}
		return textResult(strings.TrimRight(text, "\n")), result, nil
	}
}

// PresetsHandler lists presets, optionally filtered by category.
func PresetsHandler(env *engine.Env) mcp.ToolHandlerFor[PresetsInput, PresetsResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input PresetsInput) (*mcp.CallToolResult, PresetsResult, error) {
		presets := env.Catalog.Presets()
		if category := strings.TrimSpace(input.Category); category != "" {
			presets = env.Catalog.ByCategory(strings.ToLower(category))
			if len(presets) == 0 {
				return nil, PresetsResult{}, fmt.Errorf("%w: unknown category %q (known: %s)", engine.ErrInvalidRequest, category, strings.Join(env.Catalog.Categories(), ", "))
			}
		}

		result := PresetsResult{Zones: env.ZoneIDs(), Presets: make([]PresetSummary, 0, len(presets))}
		ids := make([]string, 0, len(presets))
		for _, p := range presets {
			result.Presets = append(result.Presets, PresetSummary{
				ID:       p.ID,
				Label:    p.Label,
				Category: p.Category,
				TempMin:  p.TempMin,
				TempMax:  p.TempMax,
			})
			ids = append(ids, p.ID)
		}
		return textResult(strings.Join(ids, ", ")), result, nil
	}
}

func weatherResult(env *engine.Env, w weather.Weather) WeatherResult {
	return WeatherResult{
		PresetID:      w.Preset.ID,
		Label:         w.Preset.Label,
		Category:      w.Preset.Category,
		Temperature:   w.Temperature,
		WindSpeed:     w.Wind.Speed,
		WindDirection: w.Wind.Direction,
		WindForced:    w.Wind.Forced,
		Precipitation: w.Precipitation.Type,
		Intensity:     w.Precipitation.Intensity,
		Summary:       report.FormatWeather(env.Printer, w, env.Unit),
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: text}}}
}

// limited makes a handler wait on limiter before running. A nil limiter
// leaves the handler unchanged.
func limited[I, O any](limiter *rate.Limiter, handler mcp.ToolHandlerFor[I, O]) mcp.ToolHandlerFor[I, O] {
	if limiter == nil {
		return handler
	}
	return func(ctx context.Context, req *mcp.CallToolRequest, input I) (*mcp.CallToolResult, O, error) {
		if err := limiter.Wait(ctx); err != nil {
			var zero O
			return nil, zero, fmt.Errorf("rate limit wait canceled: %w", err)
		}
		return handler(ctx, req, input)
	}
}

// NewLimiter builds the shared tool-call limiter; rps <= 0 disables limiting.
func NewLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

// Register adds every weather tool to server, sharing one limiter.
func Register(server *mcp.Server, env *engine.Env, limiter *rate.Limiter) {
	mcp.AddTool(server, GenerateTool(), limited(limiter, GenerateHandler(env)))
	mcp.AddTool(server, ForecastTool(), limited(limiter, ForecastHandler(env)))
	mcp.AddTool(server, PresetsTool(), limited(limiter, PresetsHandler(env)))
}

// NewServer builds an MCP server with the weather tools registered.
func NewServer(env *engine.Env, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "weathergen", Version: version}, nil)
	Register(server, env, NewLimiter(env.Config.MCPRate, env.Config.MCPBurst))
	return server
}
