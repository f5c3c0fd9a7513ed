package solar

import (
	"math"
	"time"
)

// SolarConstant is the mean extraterrestrial normal irradiance in W/m².
const SolarConstant = 1366.1

// Extraterrestrial returns the extraterrestrial normal irradiance (W/m²)
// for a day of year, corrected for the Earth-Sun distance.
func Extraterrestrial(t time.Time) float64 {
	doy := float64(t.UTC().YearDay())
	return SolarConstant * (1 + 0.033*math.Cos(2*math.Pi*doy/365))
}

// surfacePressurePa approximates barometric pressure from altitude, for
// absolute air mass correction.
func surfacePressurePa(altitudeM float64) float64 {
	return 101325.0 * math.Exp(-altitudeM/8434.5)
}

// relativeAirMassKY is the Kasten-Young (1989) relative air mass for an
// apparent zenith angle in degrees. Returns +Inf at or below the horizon.
func relativeAirMassKY(zenithDeg float64) float64 {
	if zenithDeg >= 90 {
		return math.Inf(1)
	}
	return 1.0 / (math.Cos(degToRad(zenithDeg)) + 0.50572*math.Pow(96.07995-zenithDeg, -1.6364))
}

// relativeAirMassKasten is the Kasten (1965) relative air mass used by the
// DISC decomposition.
func relativeAirMassKasten(zenithDeg float64) float64 {
	if zenithDeg >= 90 {
		return math.Inf(1)
	}
	return 1.0 / (math.Cos(degToRad(zenithDeg)) + 0.15*math.Pow(93.885-zenithDeg, -1.253))
}
