package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZenithX9271/SolarPowerEvaluator/internal/api/models"
)

func TestListPanelsReadsPresetDir(t *testing.T) {
	dir := t.TempDir()
	writeTestPreset(t, dir, "mono_320.yaml")
	t.Setenv("PANEL_DIR", dir)

	router := gin.New()
	router.GET("/api/v1/panels", NewPanelsHandler().ListPanels)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/panels", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Panels []models.PanelInfo `json:"panels"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Panels, 1)

	p := resp.Panels[0]
	assert.Equal(t, "mono_320", p.ID)
	assert.Equal(t, "mono-320w", p.Name)
	assert.Equal(t, "mono_320.yaml", p.File)
	assert.InDelta(t, 320.0, p.Specs.RatedDCWatts, 1e-9)
}

func TestListPanelsMissingDirIsEmptyList(t *testing.T) {
	t.Setenv("PANEL_DIR", "/nonexistent/panel/dir")

	router := gin.New()
	router.GET("/api/v1/panels", NewPanelsHandler().ListPanels)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/panels", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Panels []models.PanelInfo `json:"panels"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Panels)
}
