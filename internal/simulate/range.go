package simulate

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/ZenithX9271/SolarPowerEvaluator/internal/model"
)

// WeatherProvider supplies the hourly series for one date. The data clients
// (and their caches) satisfy this; the core math never performs I/O itself.
type WeatherProvider interface {
	HourlyWeather(ctx context.Context, loc model.Location, date model.Date) (*model.WeatherDay, error)
}

// rangeConcurrency bounds parallel day fetches so a long range does not
// hammer the weather feed.
const rangeConcurrency = 4

// Range simulates a list of dates. Days are independent and run in
// parallel; outcomes are collected and re-sorted by date before aggregation,
// so no ordering is guaranteed during computation, only at assembly.
//
// A failed day does not abort the range: it is reported in Failed with its
// date and excluded from TotalKWh. Range itself errors only on invalid
// arguments or when every day failed.
func Range(ctx context.Context, provider WeatherProvider, loc model.Location, dates []model.Date, panel *model.PanelConfiguration) (*RangeResult, error) {
	if provider == nil {
		return nil, fmt.Errorf("weather provider is nil")
	}
	if len(dates) == 0 {
		return nil, fmt.Errorf("no dates to simulate")
	}
	if panel == nil {
		return nil, fmt.Errorf("panel configuration is nil")
	}
	if err := panel.Validate(); err != nil {
		return nil, fmt.Errorf("panel config invalid: %w", err)
	}

	ordered := make([]model.Date, len(dates))
	copy(ordered, dates)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Before(ordered[j]) })

	type outcome struct {
		day *DayResult
		err error
	}
	outcomes := make([]outcome, len(ordered))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rangeConcurrency)
	for i, date := range ordered {
		i, date := i, date
		g.Go(func() error {
			weather, err := provider.HourlyWeather(gctx, loc, date)
			if err != nil {
				outcomes[i] = outcome{err: err}
				return nil
			}
			day, err := Day(loc, weather, panel)
			outcomes[i] = outcome{day: day, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &RangeResult{}
	for i, oc := range outcomes {
		if oc.err != nil {
			res.Failed = append(res.Failed, DayFailure{Date: ordered[i], Reason: oc.err.Error()})
			continue
		}
		res.Days = append(res.Days, oc.day)
		res.PerDay = append(res.PerDay, model.EnergyResult{Date: oc.day.Date, EnergyKWh: oc.day.EnergyKWh})
	}
	res.TotalKWh = TotalKWh(res.PerDay)

	if len(res.Days) == 0 {
		return res, fmt.Errorf("all %d days failed (first: %s)", len(ordered), res.Failed[0].Reason)
	}
	return res, nil
}
