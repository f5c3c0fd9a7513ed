package simulate

import (
	"fmt"

	"github.com/ZenithX9271/SolarPowerEvaluator/internal/model"
	"github.com/ZenithX9271/SolarPowerEvaluator/internal/pv"
	"github.com/ZenithX9271/SolarPowerEvaluator/internal/solar"
)

// Day runs the full irradiance-to-energy pipeline for one date:
// geometry -> clear-sky -> cloud adjustment -> decomposition -> power ->
// energy. Pure function of its arguments; the unit of testing. Weather is
// consumed as an already-fetched hourly series, so nothing here blocks.
func Day(loc model.Location, weather *model.WeatherDay, panel *model.PanelConfiguration) (*DayResult, error) {
	if panel == nil {
		return nil, fmt.Errorf("panel configuration is nil")
	}
	if err := panel.Validate(); err != nil {
		return nil, fmt.Errorf("panel config invalid: %w", err)
	}
	if err := loc.Validate(); err != nil {
		return nil, fmt.Errorf("location invalid: %w", err)
	}
	if weather == nil {
		return nil, fmt.Errorf("weather day is nil")
	}
	if err := weather.Validate(); err != nil {
		return nil, err
	}

	times := weather.Times()
	positions := solar.Positions(loc, times)
	clearSky := solar.ClearSkyWithPositions(loc, times, positions)

	adjusted := make([]float64, len(times))
	for i, obs := range weather.Observations {
		adjusted[i] = solar.ApplyCloudCover(clearSky[i].GHI, obs.CloudPct)
	}

	irradiance, err := solar.DecomposeSeries(adjusted, positions, times)
	if err != nil {
		return nil, fmt.Errorf("day %s: %w", weather.Date, err)
	}

	power := pv.Simulate(irradiance, weather.Observations, panel)

	perDay := AggregateDaily(times, power)
	energy := TotalKWh(perDay)

	return &DayResult{
		Date:       weather.Date,
		Times:      times,
		Positions:  positions,
		ClearSky:   clearSky,
		Irradiance: irradiance,
		Weather:    weather.Observations,
		Power:      power,
		EnergyKWh:  energy,
	}, nil
}
