package solar

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"

	"github.com/ZenithX9271/SolarPowerEvaluator/internal/model"
)

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }
func radToDeg(rad float64) float64 { return rad * 180.0 / math.Pi }
func fixAngle(a float64) float64   { return a - 360.0*math.Floor(a/360.0) }

// Position computes the sun's apparent zenith and azimuth for one timestamp
// using the NOAA low-precision formulae (solar declination, equation of
// time, hour angle) with an atmospheric refraction correction near the
// horizon. Accurate to fractions of a degree against a reference ephemeris.
func Position(loc model.Location, t time.Time) model.SolarPosition {
	utc := t.UTC()
	jd := julian.TimeToJD(utc)
	T := (jd - 2451545.0) / 36525.0

	// Geometric mean longitude and anomaly of the sun.
	L0 := fixAngle(280.46646 + T*(36000.76983+T*0.0003032))
	M := fixAngle(357.52911 + T*(35999.05029-T*0.0001537))
	e := 0.016708634 - T*(0.000042037+T*0.0000001267)
	C := math.Sin(degToRad(M))*(1.914602-T*(0.004817+T*0.000014)) +
		math.Sin(degToRad(2*M))*(0.019993-T*0.000101) +
		math.Sin(degToRad(3*M))*0.000289
	sunLong := L0 + C
	omega := 125.04 - 1934.136*T
	lambda := sunLong - 0.00569 - 0.00478*math.Sin(degToRad(omega))
	eps0 := 23 + (26+(21.448-T*(46.815+T*(0.00059-T*0.001813)))/60)/60
	declRad := math.Asin(math.Sin(degToRad(eps0)) * math.Sin(degToRad(lambda)))

	// Equation of time, minutes.
	y := math.Tan(degToRad(eps0)/2) * math.Tan(degToRad(eps0)/2)
	eqTimeMin := radToDeg(y*math.Sin(degToRad(2*L0))-
		2*e*math.Sin(degToRad(M))+
		4*e*y*math.Sin(degToRad(M))*math.Cos(degToRad(2*L0))-
		0.5*y*y*math.Sin(degToRad(4*L0))-
		1.25*e*e*math.Sin(degToRad(2*M))) * 4

	// True solar time and hour angle.
	utcMin := float64(utc.Hour()*60+utc.Minute()) + float64(utc.Second())/60.0
	tst := utcMin + 4*loc.Lon + eqTimeMin
	ha := tst/4 - 180
	haRad := degToRad(ha)

	latRad := degToRad(loc.Lat)
	cosZen := math.Sin(latRad)*math.Sin(declRad) + math.Cos(latRad)*math.Cos(declRad)*math.Cos(haRad)
	if cosZen > 1 {
		cosZen = 1
	} else if cosZen < -1 {
		cosZen = -1
	}
	zenRad := math.Acos(cosZen)
	elevDeg := 90 - radToDeg(zenRad)
	zenDeg := 90 - (elevDeg + refractionDeg(elevDeg))

	azDeg := 0.0
	azDen := math.Cos(latRad) * math.Sin(zenRad)
	if math.Abs(azDen) > 1e-9 {
		azCos := (math.Sin(declRad) - math.Sin(latRad)*cosZen) / azDen
		if azCos > 1 {
			azCos = 1
		} else if azCos < -1 {
			azCos = -1
		}
		azDeg = radToDeg(math.Acos(azCos))
		if ha > 0 {
			azDeg = 360 - azDeg
		}
	}

	return model.SolarPosition{ZenithDeg: zenDeg, AzimuthDeg: azDeg}
}

// Positions computes the apparent sun position for an ordered timestamp
// sequence. Pure function of (location, timestamp) pairs.
func Positions(loc model.Location, times []time.Time) []model.SolarPosition {
	out := make([]model.SolarPosition, len(times))
	for i, t := range times {
		out[i] = Position(loc, t)
	}
	return out
}

// refractionDeg is the NOAA atmospheric refraction correction in degrees of
// elevation. Zero above 85° where refraction is negligible.
func refractionDeg(elevDeg float64) float64 {
	if elevDeg > 85 {
		return 0
	}
	te := math.Tan(degToRad(elevDeg))
	var corr float64
	switch {
	case elevDeg > 5:
		corr = 58.1/te - 0.07/(te*te*te) + 0.000086/math.Pow(te, 5)
	case elevDeg > -0.575:
		corr = 1735 + elevDeg*(-518.2+elevDeg*(103.4+elevDeg*(-12.79+elevDeg*0.711)))
	default:
		corr = -20.774 / te
	}
	return corr / 3600.0
}
