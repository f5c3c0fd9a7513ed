package pv

import "math"

// SAPM cell-temperature coefficients for an open-rack glass/glass mount.
const (
	sapmA      = -3.47
	sapmB      = -0.0594
	sapmDeltaT = 3.0
	stcIrrad   = 1000.0
)

// CellTemperature estimates module cell temperature (°C) from plane
// irradiance (W/m²), ambient temperature (°C) and wind speed (m/s) with the
// Sandia Array Performance Model for an open-rack glass/glass mount.
// With no irradiance the cell sits at ambient.
func CellTemperature(ghi, ambientC, windMS float64) float64 {
	moduleTemp := ghi*math.Exp(sapmA+sapmB*windMS) + ambientC
	return moduleTemp + ghi/stcIrrad*sapmDeltaT
}
