package simulate

import (
	"time"

	"github.com/ZenithX9271/SolarPowerEvaluator/internal/model"
)

// DayResult is the full per-hour artifact for one simulated day.
// This is the primary "what happened" record; everything in it derives from
// the inputs by pure transforms.
type DayResult struct {
	Date model.Date

	Times      []time.Time
	Positions  []model.SolarPosition
	ClearSky   []model.IrradianceSample
	Irradiance []model.IrradianceSample
	Weather    []model.WeatherObservation
	Power      []model.PowerSample

	EnergyKWh float64
}

// DayFailure marks a date whose pipeline failed. Failed days are reported
// explicitly, never silently omitted from a range.
type DayFailure struct {
	Date   model.Date `json:"date"`
	Reason string     `json:"reason"`
}

// RangeResult aggregates a multi-day simulation. Days holds the surviving
// day results in chronological order; Failed lists the dates excluded from
// TotalKWh.
type RangeResult struct {
	PerDay   []model.EnergyResult
	Failed   []DayFailure
	TotalKWh float64

	Days []*DayResult
}

// ConcatSeries is the chronological concatenation of the per-day series,
// for trend reporting across the whole range.
type ConcatSeries struct {
	Times      []time.Time              `json:"times"`
	Power      []model.PowerSample      `json:"power"`
	Irradiance []model.IrradianceSample `json:"irradiance"`
	TempC      []float64                `json:"temperature_c"`
	WindMS     []float64                `json:"wind_ms"`
}

// Concat flattens the surviving days into continuous series.
func (r *RangeResult) Concat() *ConcatSeries {
	n := 0
	for _, d := range r.Days {
		n += len(d.Times)
	}
	out := &ConcatSeries{
		Times:      make([]time.Time, 0, n),
		Power:      make([]model.PowerSample, 0, n),
		Irradiance: make([]model.IrradianceSample, 0, n),
		TempC:      make([]float64, 0, n),
		WindMS:     make([]float64, 0, n),
	}
	for _, d := range r.Days {
		out.Times = append(out.Times, d.Times...)
		out.Power = append(out.Power, d.Power...)
		out.Irradiance = append(out.Irradiance, d.Irradiance...)
		for _, obs := range d.Weather {
			out.TempC = append(out.TempC, obs.TempC)
			out.WindMS = append(out.WindMS, obs.WindMS)
		}
	}
	return out
}
