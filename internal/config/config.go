package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ZenithX9271/SolarPowerEvaluator/internal/model"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load panel parameters from a separate YAML
	// (e.g. examples/panels/*.yaml). If both PanelFile and Panel are
	// provided, Panel overrides PanelFile field by field.
	PanelFile string      `yaml:"panel_file"`
	Panel     PanelConfig `yaml:"panel"`
	Site      SiteConfig  `yaml:"site"`
	Range     RangeConfig `yaml:"range"`
}

type PanelConfig struct {
	Name          string  `yaml:"name"`
	AreaM2        float64 `yaml:"area_m2"`
	TiltDeg       float64 `yaml:"tilt_deg"`
	AzimuthDeg    float64 `yaml:"azimuth_deg"`
	EfficiencyPct float64 `yaml:"efficiency_pct"`
	GammaPdc      float64 `yaml:"gamma_pdc"`
}

// SiteConfig identifies the location, either by free-text place (geocoded)
// or by explicit coordinates. Coordinates win when both are present.
type SiteConfig struct {
	Place      string  `yaml:"place"`
	Latitude   float64 `yaml:"latitude"`
	Longitude  float64 `yaml:"longitude"`
	ElevationM float64 `yaml:"elevation_m"`
}

type RangeConfig struct {
	StartDate string `yaml:"start_date"` // YYYY-MM-DD, empty = today
	Days      int    `yaml:"days"`       // default 1
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if c.Range.Days == 0 {
		c.Range.Days = 1
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If panel_file is set, load it and merge in any explicit overrides.
	if c.PanelFile != "" {
		panelPath := c.PanelFile
		if !filepath.IsAbs(panelPath) {
			// Prefer interpreting relative paths as relative to the config
			// file directory, with a fallback to the path as given.
			cand := filepath.Join(filepath.Dir(path), panelPath)
			if _, err := os.Stat(cand); err == nil {
				panelPath = cand
			}
		}
		loaded, err := loadPanelFile(panelPath)
		if err != nil {
			return nil, err
		}
		c.Panel = MergePanel(loaded, c.Panel)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Site.Place == "" && c.Site.Latitude == 0 && c.Site.Longitude == 0 {
		return errors.New("site requires either place or latitude/longitude")
	}
	if c.Range.Days < 1 {
		return errors.New("range.days must be >= 1")
	}
	if c.Range.StartDate != "" {
		if _, err := model.ParseDate(c.Range.StartDate); err != nil {
			return err
		}
	}
	// Validate panel params by constructing a model.PanelConfiguration.
	if _, err := model.NewPanel(c.Panel.ToModelConfig()); err != nil {
		return fmt.Errorf("panel config invalid: %w", err)
	}
	return nil
}

func (p PanelConfig) ToModelConfig() model.PanelConfiguration {
	return model.PanelConfiguration{
		Name:          p.Name,
		AreaM2:        p.AreaM2,
		TiltDeg:       p.TiltDeg,
		AzimuthDeg:    p.AzimuthDeg,
		EfficiencyPct: p.EfficiencyPct,
		GammaPdc:      p.GammaPdc,
	}
}

type panelFileWrapper struct {
	Panel PanelConfig `yaml:"panel"`
}

func loadPanelFile(path string) (PanelConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return PanelConfig{}, err
	}
	var w panelFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return PanelConfig{}, err
	}
	return w.Panel, nil
}

// MergePanel overlays non-zero fields from override onto base. Used when
// loading a panel preset and then applying request overrides.
func MergePanel(base, override PanelConfig) PanelConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.AreaM2 != 0 {
		out.AreaM2 = override.AreaM2
	}
	if override.TiltDeg != 0 {
		out.TiltDeg = override.TiltDeg
	}
	if override.AzimuthDeg != 0 {
		out.AzimuthDeg = override.AzimuthDeg
	}
	if override.EfficiencyPct != 0 {
		out.EfficiencyPct = override.EfficiencyPct
	}
	if override.GammaPdc != 0 {
		out.GammaPdc = override.GammaPdc
	}
	return out
}
