package weather

// DefaultMonthsPerYear is used when ForecastOptions.MonthsPerYear is unset.
const DefaultMonthsPerYear = 12

// defaultDaysInMonth stands in when the caller supplies no month lengths.
const defaultDaysInMonth = 30

// ForecastOptions configures BuildForecast. Months are 0-indexed, days
// 1-indexed, matching the host calendar.
type ForecastOptions struct {
	Zone    *ZoneConfig
	Catalog *Catalog

	Year  int
	Month int
	Day   int
	Days  int

	// CurrentWeatherID seeds the inertia chain on the first day.
	CurrentWeatherID string
	Inertia          float64
	// Accuracy is a percentage; nil means 100 (a perfect forecast).
	Accuracy *float64

	// SeasonForDate resolves the season of each day. When it is nil or
	// returns nil, StaticSeason is used with no base climate.
	SeasonForDate func(year, month, day int) *SeasonInfo
	StaticSeason  string
	// DaysInMonth reports month lengths for date rollover.
	DaysInMonth   func(month, year int) int
	MonthsPerYear int
}

// BuildForecast generates Days consecutive days starting at the given date.
// Each day is seeded from its date and biased by the previous day's chosen
// condition, so the days are computed strictly in order. Days further out
// are perturbed by ApplyVariance when Accuracy is below 100.
func BuildForecast(opts ForecastOptions) []ForecastEntry {
	if opts.Days <= 0 {
		return nil
	}
	catalog := catalogOrDefault(opts.Catalog)
	monthsPerYear := opts.MonthsPerYear
	if monthsPerYear <= 0 {
		monthsPerYear = DefaultMonthsPerYear
	}
	accuracy := 100.0
	if opts.Accuracy != nil {
		accuracy = *opts.Accuracy
	}

	year, month, day := opts.Year, opts.Month, opts.Day
	previous := opts.CurrentWeatherID
	entries := make([]ForecastEntry, 0, opts.Days)

	for i := 0; i < opts.Days; i++ {
		season := SeasonInfo{Name: opts.StaticSeason}
		if opts.SeasonForDate != nil {
			if info := opts.SeasonForDate(year, month, day); info != nil {
				season = *info
			}
		}

		seed := DateSeed(year, month, day)
		w := Generate(GenerateOptions{
			Zone:             opts.Zone,
			Season:           season.Climate,
			SeasonName:       season.Name,
			Catalog:          catalog,
			Seed:             &seed,
			CurrentWeatherID: previous,
			Inertia:          opts.Inertia,
		})
		previous = w.Preset.ID

		varied := false
		if accuracy < 100 {
			w, varied = ApplyVariance(w, i+1, opts.Days, accuracy, NewRNG(seed+1), catalog)
		}

		entries = append(entries, ForecastEntry{
			Year:     year,
			Month:    month,
			Day:      day,
			Weather:  w,
			IsVaried: varied,
		})

		year, month, day = nextDate(year, month, day, monthsPerYear, opts.DaysInMonth)
	}
	return entries
}

func nextDate(year, month, day, monthsPerYear int, daysInMonth func(month, year int) int) (int, int, int) {
	length := defaultDaysInMonth
	if daysInMonth != nil {
		length = daysInMonth(month, year)
	}
	day++
	if day > length {
		day = 1
		month++
		if month >= monthsPerYear {
			month = 0
			year++
		}
	}
	return year, month, day
}
