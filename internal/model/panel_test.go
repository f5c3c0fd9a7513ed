package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPanelDefaultsGamma(t *testing.T) {
	p, err := NewPanel(PanelConfiguration{AreaM2: 1.6, EfficiencyPct: 20})
	require.NoError(t, err)
	assert.Equal(t, DefaultGammaPdc, p.GammaPdc)
}

func TestNewPanelKeepsExplicitGamma(t *testing.T) {
	p, err := NewPanel(PanelConfiguration{AreaM2: 1.6, EfficiencyPct: 20, GammaPdc: -0.0025})
	require.NoError(t, err)
	assert.Equal(t, -0.0025, p.GammaPdc)
}

func TestPanelRatedDCWatts(t *testing.T) {
	p, err := NewPanel(PanelConfiguration{AreaM2: 1.6, EfficiencyPct: 20})
	require.NoError(t, err)
	assert.InDelta(t, 320.0, p.RatedDCWatts(), 1e-12)
	assert.InDelta(t, 320.0, p.InverterCapacityWatts(), 1e-12)

	big, err := NewPanel(PanelConfiguration{AreaM2: 10, EfficiencyPct: 15})
	require.NoError(t, err)
	assert.InDelta(t, 1500.0, big.RatedDCWatts(), 1e-12)
}

func TestPanelValidation(t *testing.T) {
	cases := []struct {
		name string
		cfg  PanelConfiguration
	}{
		{"zero area", PanelConfiguration{AreaM2: 0, EfficiencyPct: 20}},
		{"negative area", PanelConfiguration{AreaM2: -1, EfficiencyPct: 20}},
		{"tilt above 90", PanelConfiguration{AreaM2: 1.6, TiltDeg: 91, EfficiencyPct: 20}},
		{"negative tilt", PanelConfiguration{AreaM2: 1.6, TiltDeg: -1, EfficiencyPct: 20}},
		{"azimuth above 360", PanelConfiguration{AreaM2: 1.6, AzimuthDeg: 361, EfficiencyPct: 20}},
		{"efficiency too low", PanelConfiguration{AreaM2: 1.6, EfficiencyPct: 0.5}},
		{"efficiency too high", PanelConfiguration{AreaM2: 1.6, EfficiencyPct: 45}},
		{"positive gamma", PanelConfiguration{AreaM2: 1.6, EfficiencyPct: 20, GammaPdc: 0.004}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPanel(tc.cfg)
			assert.Error(t, err)
		})
	}
}
