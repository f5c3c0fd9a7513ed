package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func obsAt(base time.Time, hour int, cloud float64) WeatherObservation {
	return WeatherObservation{Time: base.Add(time.Duration(hour) * time.Hour), TempC: 25, WindMS: 2, CloudPct: cloud}
}

func TestWeatherDayValidate(t *testing.T) {
	base := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	day := &WeatherDay{
		Date:         Date{Year: 2026, Month: time.August, Day: 26},
		Observations: []WeatherObservation{obsAt(base, 0, 10), obsAt(base, 1, 20), obsAt(base, 2, 30)},
	}
	assert.NoError(t, day.Validate())
}

func TestWeatherDayValidateEmpty(t *testing.T) {
	day := &WeatherDay{Date: Date{Year: 2026, Month: time.August, Day: 26}}
	assert.Error(t, day.Validate())
}

func TestWeatherDayValidateNonIncreasing(t *testing.T) {
	base := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	day := &WeatherDay{
		Date:         Date{Year: 2026, Month: time.August, Day: 26},
		Observations: []WeatherObservation{obsAt(base, 1, 10), obsAt(base, 1, 20)},
	}
	err := day.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strictly increasing")
}

func TestWeatherDayValidateCloudRange(t *testing.T) {
	base := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	for _, cloud := range []float64{-1, 101, 180} {
		day := &WeatherDay{
			Date:         Date{Year: 2026, Month: time.August, Day: 26},
			Observations: []WeatherObservation{obsAt(base, 0, cloud)},
		}
		err := day.Validate()
		var domainErr *NumericDomainError
		require.ErrorAs(t, err, &domainErr, "cloud %v", cloud)
		assert.Equal(t, "cloud_cover", domainErr.Quantity)
	}
}

func TestWeatherDayTimes(t *testing.T) {
	base := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	day := &WeatherDay{Observations: []WeatherObservation{obsAt(base, 0, 0), obsAt(base, 1, 0)}}
	times := day.Times()
	require.Len(t, times, 2)
	assert.Equal(t, base, times[0])
	assert.Equal(t, base.Add(time.Hour), times[1])
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-26")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2026, Month: time.August, Day: 26}, d)
	assert.Equal(t, "2026-08-26", d.String())

	for _, bad := range []string{"", "26-08-2026", "2026/08/26", "2026-13-01"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestDateAddDaysCrossesMonthAndYear(t *testing.T) {
	d := Date{Year: 2026, Month: time.December, Day: 30}
	assert.Equal(t, Date{Year: 2026, Month: time.December, Day: 31}, d.AddDays(1))
	assert.Equal(t, Date{Year: 2027, Month: time.January, Day: 2}, d.AddDays(3))
}

func TestDateBefore(t *testing.T) {
	a := Date{Year: 2026, Month: time.June, Day: 1}
	b := Date{Year: 2026, Month: time.June, Day: 2}
	c := Date{Year: 2026, Month: time.July, Day: 1}
	assert.True(t, a.Before(b))
	assert.True(t, b.Before(c))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}

func TestDateRange(t *testing.T) {
	start := Date{Year: 2026, Month: time.August, Day: 30}
	dates := DateRange(start, 4)
	require.Len(t, dates, 4)
	assert.Equal(t, start, dates[0])
	assert.Equal(t, Date{Year: 2026, Month: time.September, Day: 2}, dates[3])

	assert.Nil(t, DateRange(start, 0))
	assert.Nil(t, DateRange(start, -2))
}
