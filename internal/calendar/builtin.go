package calendar

import "github.com/appengine-ltd/weathergen/internal/weather"

const (
	SeasonSpring = "spring"
	SeasonSummer = "summer"
	SeasonAutumn = "autumn"
	SeasonWinter = "winter"
)

// Gregorian is a northern-hemisphere Gregorian calendar whose seasons carry
// a temperate base climate for zones to adjust.
func Gregorian() *Calendar {
	return &Calendar{
		Name: "gregorian",
		Months: []Month{
			{Name: "January", Days: 31},
			{Name: "February", Days: 28, LeapDays: 1},
			{Name: "March", Days: 31},
			{Name: "April", Days: 30},
			{Name: "May", Days: 31},
			{Name: "June", Days: 30},
			{Name: "July", Days: 31},
			{Name: "August", Days: 31},
			{Name: "September", Days: 30},
			{Name: "October", Days: 31},
			{Name: "November", Days: 30},
			{Name: "December", Days: 31},
		},
		Leap: LeapRule{Every: 4, Except: 100, Unless: 400},
		Seasons: []SeasonPhase{
			{Name: SeasonSpring, StartMonth: 2, StartDay: 20, Climate: &weather.SeasonClimate{
				Temperatures: &weather.TempRange{Min: 6, Max: 18},
				Presets: []weather.ChanceEntry{
					{ID: "clear", Chance: 16},
					{ID: "partly-cloudy", Chance: 18},
					{ID: "cloudy", Chance: 24},
					{ID: "rain", Chance: 22},
					{ID: "drizzle", Chance: 8},
					{ID: "thunderstorm", Chance: 6},
					{ID: "windy", Chance: 6},
				},
			}},
			{Name: SeasonSummer, StartMonth: 5, StartDay: 21, Climate: &weather.SeasonClimate{
				Temperatures: &weather.TempRange{Min: 16, Max: 30},
				Presets: []weather.ChanceEntry{
					{ID: "clear", Chance: 24},
					{ID: "partly-cloudy", Chance: 22},
					{ID: "cloudy", Chance: 18},
					{ID: "rain", Chance: 16},
					{ID: "thunderstorm", Chance: 8},
					{ID: "windy", Chance: 12},
					{ID: "heatwave", Chance: 4},
				},
			}},
			{Name: SeasonAutumn, StartMonth: 8, StartDay: 22, Climate: &weather.SeasonClimate{
				Temperatures: &weather.TempRange{Min: 5, Max: 17},
				Presets: []weather.ChanceEntry{
					{ID: "clear", Chance: 10},
					{ID: "cloudy", Chance: 24},
					{ID: "overcast", Chance: 14},
					{ID: "rain", Chance: 28},
					{ID: "fog", Chance: 8},
					{ID: "thunderstorm", Chance: 6},
					{ID: "windy", Chance: 10},
				},
			}},
			{Name: SeasonWinter, StartMonth: 11, StartDay: 21, Climate: &weather.SeasonClimate{
				Temperatures: &weather.TempRange{Min: -6, Max: 6},
				Presets: []weather.ChanceEntry{
					{ID: "cloudy", Chance: 26},
					{ID: "rain", Chance: 20},
					{ID: "snow", Chance: 14},
					{ID: "windy", Chance: 10},
					{ID: "sleet", Chance: 8},
					{ID: "clear", Chance: 12},
					{ID: "overcast", Chance: 10},
				},
			}},
		},
	}
}

// Builtin returns a built-in calendar by name.
func Builtin(name string) (*Calendar, bool) {
	switch name {
	case "", "gregorian":
		return Gregorian(), true
	default:
		return nil, false
	}
}
