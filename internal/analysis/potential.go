package analysis

import (
	"math"
	"sort"
	"time"

	"github.com/ZenithX9271/SolarPowerEvaluator/internal/model"
	"github.com/ZenithX9271/SolarPowerEvaluator/internal/pv"
	"github.com/ZenithX9271/SolarPowerEvaluator/internal/simulate"
	"github.com/ZenithX9271/SolarPowerEvaluator/internal/solar"
)

// SolarPotential is a site-level summary for ranking candidate locations.
// It is computed from clear-sky irradiance only (no weather feed), so it is
// an upper bound on yield, not a forecast. The canonical reference panel is
// 1.6 m² at 20% efficiency (320 W rated).
type SolarPotential struct {
	Site model.Location `json:"site"`

	Start model.Date `json:"start"`
	End   model.Date `json:"end"`
	Days  int        `json:"days"`

	TotalKWh     float64 `json:"total_kwh"`
	MeanDailyKWh float64 `json:"mean_daily_kwh"`
	MinDailyKWh  float64 `json:"min_daily_kwh"`
	MaxDailyKWh  float64 `json:"max_daily_kwh"`
	P05DailyKWh  float64 `json:"p05_daily_kwh"`
	P95DailyKWh  float64 `json:"p95_daily_kwh"`

	PeakGHI float64 `json:"peak_ghi"`
}

// referencePanel is the canonical panel used so potentials are comparable
// across sites.
func referencePanel() *model.PanelConfiguration {
	p, _ := model.NewPanel(model.PanelConfiguration{
		Name:          "reference-320w",
		AreaM2:        1.6,
		TiltDeg:       30,
		AzimuthDeg:    180,
		EfficiencyPct: 20,
	})
	return p
}

// Reference ambient conditions for the clear-sky potential: mild air, light
// wind. The exact values barely move the ranking; they exist so the cell
// temperature model has defined inputs.
const (
	refAmbientC = 20.0
	refWindMS   = 1.0
)

// ComputePotential evaluates the clear-sky yield of one site over a date
// range.
func ComputePotential(site model.Location, dates []model.Date) SolarPotential {
	p := SolarPotential{Site: site}
	if len(dates) == 0 {
		return p
	}

	ordered := make([]model.Date, len(dates))
	copy(ordered, dates)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Before(ordered[j]) })

	p.Start = ordered[0]
	p.End = ordered[len(ordered)-1]
	p.Days = len(ordered)

	panel := referencePanel()
	zone := solarZone(site.Lon)

	daily := make([]float64, 0, len(ordered))
	for _, date := range ordered {
		times := hourlyTimes(date, zone)
		clear := solar.ClearSky(site, times)

		for _, s := range clear {
			if s.GHI > p.PeakGHI {
				p.PeakGHI = s.GHI
			}
		}

		power := make([]model.PowerSample, len(times))
		for i, s := range clear {
			cell := pv.CellTemperature(s.GHI, refAmbientC, refWindMS)
			pdc := pv.DCPower(s.GHI, cell, panel)
			power[i] = model.PowerSample{DCWatts: pdc, ACWatts: pv.ACPower(pdc, panel)}
		}

		perDay := simulate.AggregateDaily(times, power)
		daily = append(daily, simulate.TotalKWh(perDay))
	}

	sum := 0.0
	minv := math.Inf(1)
	maxv := math.Inf(-1)
	for _, v := range daily {
		sum += v
		if v < minv {
			minv = v
		}
		if v > maxv {
			maxv = v
		}
	}
	sorted := append([]float64(nil), daily...)
	sort.Float64s(sorted)

	p.TotalKWh = sum
	p.MeanDailyKWh = sum / float64(len(daily))
	p.MinDailyKWh = minv
	p.MaxDailyKWh = maxv
	p.P05DailyKWh = percentileSorted(sorted, 0.05)
	p.P95DailyKWh = percentileSorted(sorted, 0.95)
	return p
}

// solarZone approximates the site's civil timezone from longitude. Good
// enough for clear-sky potential, where only the day boundary matters.
func solarZone(lon float64) *time.Location {
	offsetH := int(math.Round(lon / 15.0))
	return time.FixedZone("solar", offsetH*3600)
}

func hourlyTimes(date model.Date, zone *time.Location) []time.Time {
	out := make([]time.Time, 24)
	for h := 0; h < 24; h++ {
		out[h] = time.Date(date.Year, date.Month, date.Day, h, 0, 0, 0, zone)
	}
	return out
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
