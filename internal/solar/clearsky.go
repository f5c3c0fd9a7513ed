package solar

import (
	"math"
	"time"

	"github.com/ZenithX9271/SolarPowerEvaluator/internal/model"
)

// LinkeTurbidity is the fixed climatological atmospheric turbidity used by
// the clear-sky model. 3.0 is a reasonable mid-latitude annual value.
const LinkeTurbidity = 3.0

// ClearSky computes theoretical cloud-free irradiance with the
// Ineichen-Perez model at fixed Linke turbidity. The result is the physical
// upper bound fed to the cloud-adjustment stage; it is never served
// directly as output. All components are 0 at zenith >= 90°.
func ClearSky(loc model.Location, times []time.Time) []model.IrradianceSample {
	positions := Positions(loc, times)
	out := make([]model.IrradianceSample, len(times))
	for i, t := range times {
		out[i] = clearSkyAt(loc, t, positions[i])
	}
	return out
}

// ClearSkyWithPositions avoids recomputing geometry when the caller already
// has it (the day engine computes positions once per day).
func ClearSkyWithPositions(loc model.Location, times []time.Time, positions []model.SolarPosition) []model.IrradianceSample {
	out := make([]model.IrradianceSample, len(times))
	for i, t := range times {
		out[i] = clearSkyAt(loc, t, positions[i])
	}
	return out
}

func clearSkyAt(loc model.Location, t time.Time, pos model.SolarPosition) model.IrradianceSample {
	if pos.BelowHorizon() {
		return model.IrradianceSample{}
	}

	cosZen := math.Cos(degToRad(pos.ZenithDeg))
	i0 := Extraterrestrial(t)
	alt := loc.ElevationM

	amRel := relativeAirMassKY(pos.ZenithDeg)
	am := amRel * surfacePressurePa(alt) / 101325.0

	fh1 := math.Exp(-alt / 8000.0)
	fh2 := math.Exp(-alt / 1250.0)
	cg1 := 5.09e-5*alt + 0.868
	cg2 := 3.92e-5*alt + 0.0387

	ghi := cg1 * i0 * cosZen *
		math.Exp(-cg2*am*(fh1+fh2*(LinkeTurbidity-1))) *
		math.Exp(0.01*math.Pow(am, 1.8))
	if ghi < 0 {
		ghi = 0
	}

	b := 0.664 + 0.163/fh1
	dni := b * i0 * math.Exp(-0.09*am*(LinkeTurbidity-1))
	// Upper bound on the beam fraction so DNI stays consistent with GHI at
	// high zenith angles.
	dniMax := ghi * (1 - (0.1-0.2*math.Exp(-LinkeTurbidity))/(0.1+0.882/fh1)) / cosZen
	if dni > dniMax {
		dni = dniMax
	}
	if dni < 0 {
		dni = 0
	}

	dhi := ghi - dni*cosZen
	if dhi < 0 {
		dhi = 0
	}

	return model.IrradianceSample{GHI: ghi, DNI: dni, DHI: dhi}
}
