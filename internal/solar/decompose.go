package solar

import (
	"math"
	"time"

	"github.com/ZenithX9271/SolarPowerEvaluator/internal/model"
)

// DISC model limits. Beyond maxKtZenithDeg the clearness-index denominator
// degenerates, so the beam estimate is forced to zero there.
const (
	maxAirmass      = 12.0
	maxKtZenithDeg  = 87.0
	maxClearnessIdx = 2.0
)

// Decompose splits global horizontal irradiance into direct-normal and
// diffuse-horizontal components with the DISC clearness-index regression
// (Maxwell 1987): derive a clearness index from GHI relative to the
// extraterrestrial value, map it through a piecewise empirical polynomial to
// a beam transmittance deficit, and take DHI as the clamped residual
// ghi − dni·cos(zenith).
//
// At zenith >= 90° or ghi <= 0 both outputs are 0. Negative GHI or a zenith
// outside [0, 180] is a NumericDomainError: that is an upstream contract
// violation, never clamped here.
func Decompose(ghi, zenithDeg float64, t time.Time) (dni, dhi float64, err error) {
	if ghi < 0 {
		return 0, 0, &model.NumericDomainError{Quantity: "ghi", Value: ghi}
	}
	if zenithDeg < 0 || zenithDeg > 180 {
		return 0, 0, &model.NumericDomainError{Quantity: "zenith", Value: zenithDeg}
	}
	if zenithDeg >= 90 || ghi <= 0 {
		return 0, 0, nil
	}

	i0 := Extraterrestrial(t)

	// Clearness index with the cosine floored at cos(87°) so near-horizon
	// samples do not blow up the ratio.
	cosZen := math.Cos(degToRad(zenithDeg))
	cosFloor := math.Cos(degToRad(maxKtZenithDeg))
	denomCos := cosZen
	if denomCos < cosFloor {
		denomCos = cosFloor
	}
	kt := ghi / (i0 * denomCos)
	if kt > maxClearnessIdx {
		kt = maxClearnessIdx
	}

	am := relativeAirMassKasten(zenithDeg)
	if am > maxAirmass {
		am = maxAirmass
	}

	var a, b, c float64
	if kt <= 0.6 {
		a = 0.512 - 1.56*kt + 2.286*kt*kt - 2.222*kt*kt*kt
		b = 0.370 + 0.962*kt
		c = -0.280 + 0.932*kt - 2.048*kt*kt
	} else {
		a = -5.743 + 21.77*kt - 27.49*kt*kt + 11.56*kt*kt*kt
		b = 41.40 - 118.5*kt + 66.05*kt*kt + 31.90*kt*kt*kt
		c = -47.01 + 184.2*kt - 222.0*kt*kt + 73.81*kt*kt*kt
	}

	knc := 0.866 - 0.122*am + 0.0121*am*am - 0.000653*am*am*am + 0.000014*am*am*am*am
	kn := knc - (a + b*math.Exp(c*am))

	if zenithDeg <= maxKtZenithDeg {
		dni = kn * i0
	}
	if dni < 0 {
		dni = 0
	}

	dhi = ghi - dni*cosZen
	if dhi < 0 {
		dhi = 0
	}
	return dni, dhi, nil
}

// DecomposeSeries applies Decompose across an adjusted-GHI series, pairing
// each value with its solar position and timestamp.
func DecomposeSeries(ghi []float64, positions []model.SolarPosition, times []time.Time) ([]model.IrradianceSample, error) {
	out := make([]model.IrradianceSample, len(ghi))
	for i := range ghi {
		dni, dhi, err := Decompose(ghi[i], positions[i].ZenithDeg, times[i])
		if err != nil {
			return nil, err
		}
		out[i] = model.IrradianceSample{GHI: ghi[i], DNI: dni, DHI: dhi}
	}
	return out, nil
}
