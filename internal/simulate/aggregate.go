package simulate

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/ZenithX9271/SolarPowerEvaluator/internal/model"
)

// AggregateDaily integrates instantaneous AC power into per-day energy.
// Samples are resampled into hourly buckets (summed watt-samples approximate
// watt-hours since each bucket spans one hour), converted W -> kWh by /1000,
// then summed per calendar day. Missing or NaN power contributes 0 energy
// rather than propagating as undefined. Output order follows input
// chronological order; nothing is reordered or deduplicated beyond the
// bucketing itself.
func AggregateDaily(times []time.Time, power []model.PowerSample) []model.EnergyResult {
	type hourKey struct {
		date model.Date
		hour int
	}

	hourlyWh := make(map[hourKey]float64)
	var dayOrder []model.Date
	seenDay := make(map[model.Date]bool)

	for i, t := range times {
		if i >= len(power) {
			break
		}
		w := power[i].ACWatts
		if math.IsNaN(w) || math.IsInf(w, 0) {
			w = 0
		}
		d := model.DateOf(t)
		hourlyWh[hourKey{date: d, hour: t.Hour()}] += w
		if !seenDay[d] {
			seenDay[d] = true
			dayOrder = append(dayOrder, d)
		}
	}

	out := make([]model.EnergyResult, 0, len(dayOrder))
	for _, d := range dayOrder {
		wh := make([]float64, 0, 24)
		for h := 0; h < 24; h++ {
			if v, ok := hourlyWh[hourKey{date: d, hour: h}]; ok {
				wh = append(wh, v)
			}
		}
		out = append(out, model.EnergyResult{Date: d, EnergyKWh: floats.Sum(wh) / 1000.0})
	}
	return out
}

// TotalKWh sums per-day energies over a range.
func TotalKWh(perDay []model.EnergyResult) float64 {
	vals := make([]float64, len(perDay))
	for i, e := range perDay {
		vals[i] = e.EnergyKWh
	}
	return floats.Sum(vals)
}
