package calendar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/appengine-ltd/weathergen/internal/weather"
)

// ErrInvalidCalendar indicates a calendar definition failed validation.
var ErrInvalidCalendar = errors.New("invalid calendar")

type Month struct {
	Name string `json:"name"`
	Days int    `json:"days"`
	// LeapDays are added to Days in leap years.
	LeapDays int `json:"leapDays,omitempty"`
}

// LeapRule marks a year as leap when it divides by Every, unless it divides
// by Except, unless it also divides by Unless. Every == 0 means no leap years.
type LeapRule struct {
	Every  int `json:"every,omitempty"`
	Except int `json:"except,omitempty"`
	Unless int `json:"unless,omitempty"`
}

func (r LeapRule) IsLeap(year int) bool {
	if r.Every <= 0 || year%r.Every != 0 {
		return false
	}
	if r.Except > 0 && year%r.Except == 0 {
		return r.Unless > 0 && year%r.Unless == 0
	}
	return true
}

// SeasonPhase starts on StartMonth/StartDay and runs until the next phase.
type SeasonPhase struct {
	Name       string                 `json:"name"`
	StartMonth int                    `json:"startMonth"`
	StartDay   int                    `json:"startDay"`
	Climate    *weather.SeasonClimate `json:"climate,omitempty"`
}

type Calendar struct {
	Name    string        `json:"name"`
	Months  []Month       `json:"months"`
	Leap    LeapRule      `json:"leap"`
	Seasons []SeasonPhase `json:"seasons,omitempty"`
}

func (c *Calendar) MonthsPerYear() int {
	if c == nil || len(c.Months) == 0 {
		return weather.DefaultMonthsPerYear
	}
	return len(c.Months)
}

// DaysInMonth reports the length of a 0-indexed month. Out-of-range months
// wrap so a caller walking dates never sees a zero-length month.
func (c *Calendar) DaysInMonth(month, year int) int {
	if c == nil || len(c.Months) == 0 {
		return 30
	}
	idx := month % len(c.Months)
	if idx < 0 {
		idx += len(c.Months)
	}
	m := c.Months[idx]
	if c.Leap.IsLeap(year) {
		return m.Days + m.LeapDays
	}
	return m.Days
}

func (c *Calendar) MonthName(month int) string {
	if c == nil || month < 0 || month >= len(c.Months) {
		return fmt.Sprintf("Month %d", month+1)
	}
	return c.Months[month].Name
}

// SeasonForDate returns the phase in effect on the given date: the latest
// phase starting on or before it, or the year's last phase carried over from
// the previous year. nil means the calendar has no seasons.
func (c *Calendar) SeasonForDate(year, month, day int) *weather.SeasonInfo {
	if c == nil || len(c.Seasons) == 0 {
		return nil
	}
	key := dateKey(month, day)

	var current *SeasonPhase
	var last *SeasonPhase
	for i := range c.Seasons {
		phase := &c.Seasons[i]
		start := dateKey(phase.StartMonth, phase.StartDay)
		if last == nil || start > dateKey(last.StartMonth, last.StartDay) {
			last = phase
		}
		if start > key {
			continue
		}
		if current == nil || start > dateKey(current.StartMonth, current.StartDay) {
			current = phase
		}
	}
	if current == nil {
		current = last
	}
	return &weather.SeasonInfo{Name: current.Name, Climate: current.Climate}
}

// SeasonByName finds a phase by name, ignoring case.
func (c *Calendar) SeasonByName(name string) (*weather.SeasonInfo, bool) {
	if c == nil {
		return nil, false
	}
	for _, phase := range c.Seasons {
		if strings.EqualFold(phase.Name, name) {
			return &weather.SeasonInfo{Name: phase.Name, Climate: phase.Climate}, true
		}
	}
	return nil, false
}

func dateKey(month, day int) int {
	return month*1000 + day
}

// Validate rejects calendars that would break date rollover.
func (c Calendar) Validate() error {
	var errs []error
	if len(c.Months) == 0 {
		errs = append(errs, fmt.Errorf("%w: at least one month is required", ErrInvalidCalendar))
	}
	for i, m := range c.Months {
		if m.Days < 1 {
			errs = append(errs, fmt.Errorf("%w: month %d (%s) must have at least one day", ErrInvalidCalendar, i, m.Name))
		}
		if m.LeapDays < 0 {
			errs = append(errs, fmt.Errorf("%w: month %d (%s) has negative leap days", ErrInvalidCalendar, i, m.Name))
		}
	}
	for _, s := range c.Seasons {
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("%w: season name is required", ErrInvalidCalendar))
		}
		if s.StartMonth < 0 || s.StartMonth >= len(c.Months) {
			errs = append(errs, fmt.Errorf("%w: season %s starts in unknown month %d", ErrInvalidCalendar, s.Name, s.StartMonth))
		} else if s.StartDay < 1 || s.StartDay > c.Months[s.StartMonth].Days+c.Months[s.StartMonth].LeapDays {
			errs = append(errs, fmt.Errorf("%w: season %s starts on invalid day %d", ErrInvalidCalendar, s.Name, s.StartDay))
		}
		if s.Climate != nil {
			if err := s.Climate.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("%w: season %s: %w", ErrInvalidCalendar, s.Name, err))
			}
		}
	}
	return errors.Join(errs...)
}

// ForecastOptions fills the calendar callbacks of a forecast request.
func (c *Calendar) ForecastOptions(opts weather.ForecastOptions) weather.ForecastOptions {
	opts.SeasonForDate = c.SeasonForDate
	opts.DaysInMonth = c.DaysInMonth
	opts.MonthsPerYear = c.MonthsPerYear()
	return opts
}
