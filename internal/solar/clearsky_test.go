package solar

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearSkyNightIsZero(t *testing.T) {
	loc := mustLocation(t, 0, 0)
	times := []time.Time{
		time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 20, 2, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 20, 22, 0, 0, 0, time.UTC),
	}

	for _, s := range ClearSky(loc, times) {
		assert.Zero(t, s.GHI)
		assert.Zero(t, s.DNI)
		assert.Zero(t, s.DHI)
	}
}

func TestClearSkyNoonPlausible(t *testing.T) {
	// Equator, sea level, equinox noon: near-overhead sun through a clean
	// atmosphere. The model should land in the textbook clear-sky band.
	loc := mustLocation(t, 0, 0)
	noon := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)

	samples := ClearSky(loc, []time.Time{noon})
	require.Len(t, samples, 1)
	s := samples[0]

	assert.Greater(t, s.GHI, 900.0)
	assert.Less(t, s.GHI, 1150.0)
	assert.Greater(t, s.DNI, 800.0)
	assert.Less(t, s.DNI, 1050.0)
	assert.Greater(t, s.DHI, 50.0)
	assert.Less(t, s.DHI, 300.0)
}

func TestClearSkyClosure(t *testing.T) {
	// DHI is the residual ghi − dni·cos(zenith), so the components must
	// reassemble into GHI whenever the residual was not clamped.
	loc := mustLocation(t, 28.6139, 77.2090)
	var times []time.Time
	for h := 0; h < 24; h++ {
		times = append(times, time.Date(2026, 6, 21, h, 0, 0, 0, time.UTC))
	}

	positions := Positions(loc, times)
	samples := ClearSkyWithPositions(loc, times, positions)
	for i, s := range samples {
		if s.DHI == 0 {
			continue
		}
		cosZen := math.Cos(degToRad(positions[i].ZenithDeg))
		assert.InDelta(t, s.GHI, s.DNI*cosZen+s.DHI, 1e-6, "hour %d", i)
	}
}

func TestClearSkyAltitudeRaisesGHI(t *testing.T) {
	// Thinner atmosphere at altitude attenuates less.
	noon := time.Date(2026, 6, 21, 19, 0, 0, 0, time.UTC) // ~local noon at 120°W

	seaLevel := mustLocation(t, 39.5296, -119.8138)
	highDesert := seaLevel
	highDesert.ElevationM = 1373

	low := ClearSky(seaLevel, []time.Time{noon})[0]
	high := ClearSky(highDesert, []time.Time{noon})[0]

	assert.Greater(t, high.GHI, low.GHI)
	assert.Greater(t, high.DNI, low.DNI)
}

func TestClearSkyComponentsNonNegative(t *testing.T) {
	// Sweep a whole high-latitude winter day; low sun angles are where
	// negative intermediates would leak out.
	loc := mustLocation(t, 64.1466, -21.9426)
	var times []time.Time
	for h := 0; h < 24; h++ {
		times = append(times, time.Date(2026, 12, 21, h, 0, 0, 0, time.UTC))
	}

	for i, s := range ClearSky(loc, times) {
		assert.GreaterOrEqual(t, s.GHI, 0.0, "hour %d", i)
		assert.GreaterOrEqual(t, s.DNI, 0.0, "hour %d", i)
		assert.GreaterOrEqual(t, s.DHI, 0.0, "hour %d", i)
		assert.False(t, math.IsNaN(s.GHI) || math.IsInf(s.GHI, 0), "hour %d", i)
	}
}

func TestClearSkyWithPositionsMatchesClearSky(t *testing.T) {
	loc := mustLocation(t, -1.2921, 36.8219)
	var times []time.Time
	for h := 6; h < 19; h++ {
		times = append(times, time.Date(2026, 8, 26, h, 0, 0, 0, time.UTC))
	}

	direct := ClearSky(loc, times)
	precomputed := ClearSkyWithPositions(loc, times, Positions(loc, times))
	assert.Equal(t, direct, precomputed)
}

func TestExtraterrestrialSeasonalSwing(t *testing.T) {
	// Earth is closest to the sun in early January: the top-of-atmosphere
	// irradiance should peak there and trough in early July, ±3.3% around
	// the solar constant.
	jan := Extraterrestrial(time.Date(2026, 1, 3, 12, 0, 0, 0, time.UTC))
	jul := Extraterrestrial(time.Date(2026, 7, 4, 12, 0, 0, 0, time.UTC))

	assert.Greater(t, jan, jul)
	assert.InDelta(t, SolarConstant*1.033, jan, 2.0)
	assert.InDelta(t, SolarConstant*0.967, jul, 2.0)
}
