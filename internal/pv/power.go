package pv

import (
	"github.com/ZenithX9271/SolarPowerEvaluator/internal/model"
)

// DCPower is the PVWatts DC model: rated capacity scaled by irradiance and
// derated by cell temperature relative to the 25 °C STC reference.
//
//	pdc = pdc0 × (ghi/1000) × (1 + γ × (Tcell − 25))
//
// Floored at 0; below-horizon samples carry ghi = 0 and therefore produce 0.
func DCPower(ghi, cellTempC float64, panel *model.PanelConfiguration) float64 {
	pdc := panel.RatedDCWatts() * (ghi / stcIrrad) * (1 + panel.GammaPdc*(cellTempC-25.0))
	if pdc < 0 {
		pdc = 0
	}
	return pdc
}

// ACPower clips DC power at the inverter's rated AC capacity and applies no
// conversion loss. The loss-free inverter is a documented simplification;
// downstream energy expectations are calibrated to exactly this model.
func ACPower(pdc float64, panel *model.PanelConfiguration) float64 {
	cap := panel.InverterCapacityWatts()
	if pdc > cap {
		return cap
	}
	if pdc < 0 {
		return 0
	}
	return pdc
}

// Simulate converts aligned irradiance and weather series into per-timestamp
// power samples. Pure per-timestamp transform; no shared state.
func Simulate(irr []model.IrradianceSample, obs []model.WeatherObservation, panel *model.PanelConfiguration) []model.PowerSample {
	out := make([]model.PowerSample, len(irr))
	for i := range irr {
		cell := CellTemperature(irr[i].GHI, obs[i].TempC, obs[i].WindMS)
		pdc := DCPower(irr[i].GHI, cell, panel)
		out[i] = model.PowerSample{DCWatts: pdc, ACWatts: ACPower(pdc, panel)}
	}
	return out
}
