package model

import (
	"errors"
	"fmt"
)

// Location is an immutable geographic point used by every geometry and
// irradiance computation.
// Units:
// - Lat: degrees, -90..90 (north positive)
// - Lon: degrees, -180..180 (east positive)
// - ElevationM: meters above sea level (optional, 0 if unknown)
type Location struct {
	Name       string  `json:"name,omitempty"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	ElevationM float64 `json:"elevation_m,omitempty"`
}

func NewLocation(lat, lon float64) (Location, error) {
	l := Location{Lat: lat, Lon: lon}
	if err := l.Validate(); err != nil {
		return Location{}, err
	}
	return l, nil
}

func (l Location) Validate() error {
	if l.Lat < -90 || l.Lat > 90 {
		return errors.New("Lat must be in [-90, 90]")
	}
	if l.Lon < -180 || l.Lon > 180 {
		return errors.New("Lon must be in [-180, 180]")
	}
	if l.ElevationM < -500 {
		return errors.New("ElevationM is implausibly low")
	}
	return nil
}

func (l Location) String() string {
	if l.Name != "" {
		return fmt.Sprintf("%s (%.4f, %.4f)", l.Name, l.Lat, l.Lon)
	}
	return fmt.Sprintf("(%.4f, %.4f)", l.Lat, l.Lon)
}
