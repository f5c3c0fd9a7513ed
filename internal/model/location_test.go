package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	loc, err := NewLocation(28.6139, 77.2090)
	require.NoError(t, err)
	assert.Equal(t, 28.6139, loc.Lat)
	assert.Equal(t, 77.2090, loc.Lon)

	for _, tc := range []struct{ lat, lon float64 }{
		{91, 0}, {-91, 0}, {0, 181}, {0, -181},
	} {
		_, err := NewLocation(tc.lat, tc.lon)
		assert.Error(t, err, "lat=%v lon=%v", tc.lat, tc.lon)
	}
}

func TestLocationValidateElevation(t *testing.T) {
	loc := Location{Lat: 0, Lon: 0, ElevationM: -600}
	assert.Error(t, loc.Validate())

	loc.ElevationM = -400 // Dead Sea territory, plausible
	assert.NoError(t, loc.Validate())
}

func TestLocationString(t *testing.T) {
	named := Location{Name: "Delhi, India", Lat: 28.6139, Lon: 77.209}
	assert.Contains(t, named.String(), "Delhi, India")

	anonymous := Location{Lat: 28.6139, Lon: 77.209}
	assert.Contains(t, anonymous.String(), "28.6139")
}
