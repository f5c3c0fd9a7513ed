package model

// SolarPosition is the sun's apparent position at one timestamp.
// ZenithDeg is 0 with the sun overhead and >= 90 below the horizon.
// AzimuthDeg is measured clockwise from north.
type SolarPosition struct {
	ZenithDeg  float64 `json:"zenith_deg"`
	AzimuthDeg float64 `json:"azimuth_deg"`
}

// BelowHorizon reports whether the sun contributes no direct irradiance.
func (p SolarPosition) BelowHorizon() bool {
	return p.ZenithDeg >= 90
}

// IrradianceSample holds the three standard irradiance components at one
// timestamp, all in W/m² and >= 0.
// Invariant: GHI ≈ DNI·cos(zenith) + DHI within decomposition tolerance,
// and all three are 0 whenever the sun is below the horizon.
type IrradianceSample struct {
	GHI float64 `json:"ghi"`
	DNI float64 `json:"dni"`
	DHI float64 `json:"dhi"`
}

// PowerSample is the simulated electrical output at one timestamp, in watts.
// ACWatts is clipped at the inverter capacity and floored at 0.
type PowerSample struct {
	DCWatts float64 `json:"dc_watts"`
	ACWatts float64 `json:"ac_watts"`
}

// EnergyResult is the integrated AC energy for one date.
type EnergyResult struct {
	Date      Date    `json:"date"`
	EnergyKWh float64 `json:"energy_kwh"`
}
