package model

import (
	"errors"
)

// PanelConfiguration defines the physical parameters of a PV installation.
// Units:
// - AreaM2: m²
// - TiltDeg: degrees from horizontal, 0..90
// - AzimuthDeg: degrees clockwise from north, 0..360
// - EfficiencyPct: module efficiency at STC, percent, 1..30
// - GammaPdc: temperature coefficient of power, fraction per °C (negative,
//   e.g. -0.004 for -0.4 %/°C)
//
// Tilt and azimuth are carried and validated for reporting; the power chain
// is calibrated to horizontal GHI, so they do not enter the DC model.
type PanelConfiguration struct {
	Name          string
	AreaM2        float64
	TiltDeg       float64
	AzimuthDeg    float64
	EfficiencyPct float64
	GammaPdc      float64
}

// DefaultGammaPdc matches a typical crystalline-silicon module (-0.4 %/°C).
const DefaultGammaPdc = -0.004

func NewPanel(cfg PanelConfiguration) (*PanelConfiguration, error) {
	p := cfg
	if p.GammaPdc == 0 {
		p.GammaPdc = DefaultGammaPdc
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *PanelConfiguration) Validate() error {
	if p.AreaM2 <= 0 {
		return errors.New("AreaM2 must be > 0")
	}
	if p.TiltDeg < 0 || p.TiltDeg > 90 {
		return errors.New("TiltDeg must be in [0, 90]")
	}
	if p.AzimuthDeg < 0 || p.AzimuthDeg > 360 {
		return errors.New("AzimuthDeg must be in [0, 360]")
	}
	if p.EfficiencyPct < 1 || p.EfficiencyPct > 30 {
		return errors.New("EfficiencyPct must be in [1, 30]")
	}
	if p.GammaPdc >= 0 {
		return errors.New("GammaPdc must be negative")
	}
	return nil
}

// RatedDCWatts is the nameplate DC capacity at STC (1000 W/m²):
// area × efficiency fraction × 1000 W.
func (p *PanelConfiguration) RatedDCWatts() float64 {
	return p.AreaM2 * (p.EfficiencyPct / 100.0) * 1000.0
}

// InverterCapacityWatts is the AC clipping limit. The inverter is modeled as
// loss-free with rated AC capacity equal to the rated DC capacity; this is a
// deliberate simplification, not a validated inverter model.
func (p *PanelConfiguration) InverterCapacityWatts() float64 {
	return p.RatedDCWatts()
}
