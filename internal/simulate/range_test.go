package simulate

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZenithX9271/SolarPowerEvaluator/internal/model"
)

// fakeProvider serves deterministic synthetic weather and can be told to
// fail specific dates, standing in for a flaky feed.
type fakeProvider struct {
	mu       sync.Mutex
	calls    int
	failing  map[model.Date]error
	cloudPct float64
}

func (f *fakeProvider) HourlyWeather(_ context.Context, loc model.Location, date model.Date) (*model.WeatherDay, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if err, ok := f.failing[date]; ok {
		return nil, err
	}
	zone := time.FixedZone("fake", 5*3600+1800)
	return weatherDay(date, zone, f.cloudPct), nil
}

func (f *fakeProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestRangeSimulatesEveryDate(t *testing.T) {
	loc := testLocation(t)
	panel := testPanel(t)
	provider := &fakeProvider{}

	start := model.Date{Year: 2026, Month: time.June, Day: 1}
	dates := model.DateRange(start, 5)

	res, err := Range(context.Background(), provider, loc, dates, panel)
	require.NoError(t, err)

	assert.Equal(t, 5, provider.callCount())
	require.Len(t, res.PerDay, 5)
	require.Len(t, res.Days, 5)
	assert.Empty(t, res.Failed)

	sum := 0.0
	for i, day := range res.PerDay {
		assert.Equal(t, dates[i], day.Date, "results must come back in date order")
		assert.Greater(t, day.EnergyKWh, 0.0)
		sum += day.EnergyKWh
	}
	assert.InDelta(t, sum, res.TotalKWh, 1e-9)
}

func TestRangeSortsUnorderedDates(t *testing.T) {
	loc := testLocation(t)
	panel := testPanel(t)
	provider := &fakeProvider{}

	shuffled := []model.Date{
		{Year: 2026, Month: time.June, Day: 3},
		{Year: 2026, Month: time.June, Day: 1},
		{Year: 2026, Month: time.June, Day: 2},
	}

	res, err := Range(context.Background(), provider, loc, shuffled, panel)
	require.NoError(t, err)
	require.Len(t, res.PerDay, 3)
	assert.Equal(t, 1, res.PerDay[0].Date.Day)
	assert.Equal(t, 2, res.PerDay[1].Date.Day)
	assert.Equal(t, 3, res.PerDay[2].Date.Day)
}

func TestRangeReportsFailedDayAndContinues(t *testing.T) {
	loc := testLocation(t)
	panel := testPanel(t)

	start := model.Date{Year: 2026, Month: time.June, Day: 1}
	dates := model.DateRange(start, 7)
	badDate := dates[3]
	provider := &fakeProvider{
		failing: map[model.Date]error{
			badDate: &model.WeatherUnavailableError{Date: badDate, Reason: "feed returned status 503"},
		},
	}

	res, err := Range(context.Background(), provider, loc, dates, panel)
	require.NoError(t, err, "one failed day must not abort the range")

	require.Len(t, res.Failed, 1)
	assert.Equal(t, badDate, res.Failed[0].Date)
	assert.Contains(t, res.Failed[0].Reason, "503")

	require.Len(t, res.PerDay, 6)
	for _, day := range res.PerDay {
		assert.NotEqual(t, badDate, day.Date, "failed day must be excluded from results")
	}

	sum := 0.0
	for _, day := range res.PerDay {
		sum += day.EnergyKWh
	}
	assert.InDelta(t, sum, res.TotalKWh, 1e-9, "total must exclude the failed day")
}

func TestRangeAllDaysFailedIsError(t *testing.T) {
	loc := testLocation(t)
	panel := testPanel(t)

	dates := model.DateRange(model.Date{Year: 2026, Month: time.June, Day: 1}, 3)
	failing := make(map[model.Date]error, len(dates))
	for _, d := range dates {
		failing[d] = &model.WeatherUnavailableError{Date: d, Reason: "offline"}
	}
	provider := &fakeProvider{failing: failing}

	res, err := Range(context.Background(), provider, loc, dates, panel)
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Len(t, res.Failed, 3)
	assert.Zero(t, res.TotalKWh)
}

func TestRangeRejectsBadArguments(t *testing.T) {
	loc := testLocation(t)
	panel := testPanel(t)
	dates := model.DateRange(model.Date{Year: 2026, Month: time.June, Day: 1}, 2)

	_, err := Range(context.Background(), nil, loc, dates, panel)
	assert.Error(t, err)

	_, err = Range(context.Background(), &fakeProvider{}, loc, nil, panel)
	assert.Error(t, err)

	_, err = Range(context.Background(), &fakeProvider{}, loc, dates, nil)
	assert.Error(t, err)
}

func TestRangeConcatFlattensDays(t *testing.T) {
	loc := testLocation(t)
	panel := testPanel(t)
	provider := &fakeProvider{}

	dates := model.DateRange(model.Date{Year: 2026, Month: time.June, Day: 1}, 2)
	res, err := Range(context.Background(), provider, loc, dates, panel)
	require.NoError(t, err)

	series := res.Concat()
	require.Len(t, series.Times, 48)
	require.Len(t, series.Power, 48)
	require.Len(t, series.Irradiance, 48)
	require.Len(t, series.TempC, 48)
	require.Len(t, series.WindMS, 48)

	for i := 1; i < len(series.Times); i++ {
		assert.True(t, series.Times[i].After(series.Times[i-1]), "index %d", i)
	}
}
