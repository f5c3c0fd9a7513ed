package models

import (
	"github.com/ZenithX9271/SolarPowerEvaluator/internal/analysis"
	"github.com/ZenithX9271/SolarPowerEvaluator/internal/model"
	"github.com/ZenithX9271/SolarPowerEvaluator/internal/simulate"
)

// SimulateResponse is the result of a simulation run.
type SimulateResponse struct {
	ID      string          `json:"id"`
	Status  string          `json:"status"`
	Site    model.Location  `json:"site"`
	Panel   PanelEcho       `json:"panel"`
	Summary RangeSummary    `json:"summary"`
	PerDay  []model.EnergyResult  `json:"per_day"`
	Failed  []simulate.DayFailure `json:"failed_days,omitempty"`

	// Series is present when options.include_series is set.
	Series *simulate.ConcatSeries `json:"series,omitempty"`
}

// PanelEcho reports the effective panel configuration after preset merge,
// including the derived rated capacity.
type PanelEcho struct {
	Name          string  `json:"name,omitempty"`
	AreaM2        float64 `json:"area_m2"`
	TiltDeg       float64 `json:"tilt_deg"`
	AzimuthDeg    float64 `json:"azimuth_deg"`
	EfficiencyPct float64 `json:"efficiency_pct"`
	GammaPdc      float64 `json:"gamma_pdc"`
	RatedDCWatts  float64 `json:"rated_dc_watts"`
}

// RangeSummary contains the aggregated energy results.
type RangeSummary struct {
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	DaysRequested int     `json:"days_requested"`
	DaysSimulated int     `json:"days_simulated"`
	DaysFailed    int     `json:"days_failed"`
	TotalKWh      float64 `json:"total_kwh"`
}

// CompareResponse reports one summary per panel variation.
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

type ComparisonResult struct {
	Name    string       `json:"name"`
	Panel   PanelEcho    `json:"panel"`
	Summary RangeSummary `json:"summary"`
}

// RankResponse lists sites by clear-sky potential, best first.
type RankResponse struct {
	Rankings []Ranking `json:"rankings"`
}

type Ranking struct {
	Rank      int                      `json:"rank"`
	Potential analysis.SolarPotential  `json:"potential"`
}

// PanelInfo describes a panel preset available on disk.
type PanelInfo struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	File  string     `json:"file"`
	Specs PanelSpecs `json:"specs"`
}

type PanelSpecs struct {
	AreaM2        float64 `json:"area_m2"`
	EfficiencyPct float64 `json:"efficiency_pct"`
	RatedDCWatts  float64 `json:"rated_dc_watts"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
