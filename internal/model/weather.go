package model

import (
	"fmt"
	"time"
)

// WeatherObservation is one hourly record from the weather feed.
// Units:
// - TempC: ambient air temperature at 2 m, °C
// - WindMS: wind speed at 10 m, m/s
// - CloudPct: total cloud cover, percent 0..100
type WeatherObservation struct {
	Time     time.Time `json:"time"`
	TempC    float64   `json:"temperature_2m"`
	WindMS   float64   `json:"wind_speed_10m"`
	CloudPct float64   `json:"cloud_cover"`
}

// WeatherDay is an ordered hourly series covering a single date.
// Timestamps are timezone-aware (fixed offset from the feed) and strictly
// increasing; the feed may return a partial day at range boundaries.
type WeatherDay struct {
	Date         Date
	Observations []WeatherObservation
}

// Validate checks the series contract: non-empty, strictly increasing
// timestamps, cloud cover within [0, 100].
func (d *WeatherDay) Validate() error {
	if len(d.Observations) == 0 {
		return fmt.Errorf("weather day %s has no observations", d.Date)
	}
	for i, obs := range d.Observations {
		if i > 0 && !obs.Time.After(d.Observations[i-1].Time) {
			return fmt.Errorf("weather day %s: timestamps not strictly increasing at index %d", d.Date, i)
		}
		if obs.CloudPct < 0 || obs.CloudPct > 100 {
			return &NumericDomainError{Quantity: "cloud_cover", Value: obs.CloudPct}
		}
	}
	return nil
}

// Times returns the timestamp column.
func (d *WeatherDay) Times() []time.Time {
	ts := make([]time.Time, len(d.Observations))
	for i, obs := range d.Observations {
		ts[i] = obs.Time
	}
	return ts
}

// Date is a calendar date (no time-of-day). Kept as its own type so cache
// keys and error messages are unambiguous about granularity.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// AddDays returns the date shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	return DateOf(t.AddDate(0, 0, n))
}

// Before reports chronological order.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// DateRange expands a start date and a day count into an ordered date list.
func DateRange(start Date, days int) []Date {
	if days <= 0 {
		return nil
	}
	out := make([]Date, days)
	for i := range out {
		out[i] = start.AddDays(i)
	}
	return out
}
