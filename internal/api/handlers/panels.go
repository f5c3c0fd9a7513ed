package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ZenithX9271/SolarPowerEvaluator/internal/api/models"
	"github.com/ZenithX9271/SolarPowerEvaluator/internal/config"
	"github.com/ZenithX9271/SolarPowerEvaluator/internal/model"
)

// PanelsHandler lists the panel presets available on disk.
type PanelsHandler struct {
	dir string
}

func NewPanelsHandler() *PanelsHandler {
	return &PanelsHandler{dir: PanelDir()}
}

// ListPanels handles GET /api/v1/panels.
func (h *PanelsHandler) ListPanels(c *gin.Context) {
	entries, err := os.ReadDir(h.dir)
	if err != nil {
		// No preset directory is not an error; the API works with inline
		// panel configs.
		c.JSON(http.StatusOK, gin.H{"panels": []models.PanelInfo{}})
		return
	}

	panels := make([]models.PanelInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".yaml")
		cfg, err := config.LoadUnchecked(filepath.Join(h.dir, entry.Name()))
		if err != nil {
			continue
		}
		spec := cfg.Panel
		rated := 0.0
		if p, err := model.NewPanel(spec.ToModelConfig()); err == nil {
			rated = p.RatedDCWatts()
		}
		panels = append(panels, models.PanelInfo{
			ID:   id,
			Name: spec.Name,
			File: entry.Name(),
			Specs: models.PanelSpecs{
				AreaM2:        spec.AreaM2,
				EfficiencyPct: spec.EfficiencyPct,
				RatedDCWatts:  rated,
			},
		})
	}

	c.JSON(http.StatusOK, gin.H{"panels": panels})
}
