package models

// SimulateRequest is the body for POST /api/v1/simulate.
type SimulateRequest struct {
	Site      SiteInput       `json:"site" binding:"required"`
	StartDate string          `json:"start_date" binding:"required"` // YYYY-MM-DD
	Days      int             `json:"days,omitempty"`                // default 1
	PanelFile string          `json:"panel_file,omitempty"`
	Panel     PanelInput      `json:"panel,omitempty"`
	Options   SimulateOptions `json:"options,omitempty"`
}

// SiteInput identifies the location. A non-empty place name is geocoded;
// otherwise the coordinates are used as given.
type SiteInput struct {
	Place      string  `json:"place,omitempty"`
	Latitude   float64 `json:"latitude,omitempty"`
	Longitude  float64 `json:"longitude,omitempty"`
	ElevationM float64 `json:"elevation_m,omitempty"`
}

// PanelInput defines panel parameters, mirroring the YAML preset shape.
type PanelInput struct {
	Name          string  `json:"name,omitempty"`
	AreaM2        float64 `json:"area_m2"`
	TiltDeg       float64 `json:"tilt_deg"`
	AzimuthDeg    float64 `json:"azimuth_deg"`
	EfficiencyPct float64 `json:"efficiency_pct"`
	GammaPdc      float64 `json:"gamma_pdc,omitempty"`
}

// SimulateOptions contains optional simulation parameters.
type SimulateOptions struct {
	IncludeSeries bool `json:"include_series,omitempty"` // default: false
}

// CompareRequest runs several panel variations over one weather fetch.
type CompareRequest struct {
	Site       SiteInput        `json:"site" binding:"required"`
	StartDate  string           `json:"start_date" binding:"required"`
	Days       int              `json:"days,omitempty"`
	BasePanel  PanelInput       `json:"base_panel,omitempty"`
	PanelFile  string           `json:"panel_file,omitempty"`
	Variations []PanelVariation `json:"variations" binding:"required"`
}

// PanelVariation overlays fields onto the base panel.
type PanelVariation struct {
	Name  string     `json:"name" binding:"required"`
	Panel PanelInput `json:"panel,omitempty"`
}

// RankRequest ranks candidate sites by clear-sky potential.
type RankRequest struct {
	Sites     []RankSite `json:"sites" binding:"required"`
	StartDate string     `json:"start_date" binding:"required"`
	Days      int        `json:"days,omitempty"`
	Limit     int        `json:"limit,omitempty"` // default 10
}

type RankSite struct {
	Name       string  `json:"name,omitempty"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	ElevationM float64 `json:"elevation_m,omitempty"`
}
