package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ZenithX9271/SolarPowerEvaluator/internal/api/models"
	"github.com/ZenithX9271/SolarPowerEvaluator/internal/config"
	"github.com/ZenithX9271/SolarPowerEvaluator/internal/model"
	"github.com/ZenithX9271/SolarPowerEvaluator/internal/simulate"
)

// Geocoder is the collaborator that resolves place names.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (model.Location, error)
}

// SimulateHandler handles simulation requests. Both collaborators are
// injected so tests can point them at local servers.
type SimulateHandler struct {
	geocoder Geocoder
	weather  simulate.WeatherProvider
	log      *zap.SugaredLogger
}

func NewSimulateHandler(geocoder Geocoder, weather simulate.WeatherProvider, logger *zap.SugaredLogger) *SimulateHandler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &SimulateHandler{geocoder: geocoder, weather: weather, log: logger.Named("simulate")}
}

// RunSimulation handles POST /api/v1/simulate.
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	loc, dates, panel, ok := h.prepare(c, req.Site, req.StartDate, req.Days, req.PanelFile, req.Panel)
	if !ok {
		return
	}

	res, err := simulate.Range(c.Request.Context(), h.weather, loc, dates, panel)
	if err != nil && res == nil {
		writeDomainError(c, err)
		return
	}
	if err != nil {
		// Every day failed; report them rather than a bare 500.
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "ALL_DAYS_FAILED",
				Message: err.Error(),
				Details: map[string]interface{}{"failed_days": res.Failed},
			},
		})
		return
	}

	resp := models.SimulateResponse{
		ID:      uuid.NewString(),
		Status:  "completed",
		Site:    loc,
		Panel:   panelEcho(panel),
		Summary: rangeSummary(dates, res),
		PerDay:  res.PerDay,
		Failed:  res.Failed,
	}
	if req.Options.IncludeSeries {
		resp.Series = res.Concat()
	}
	c.JSON(http.StatusOK, resp)
}

// CompareSimulations handles POST /api/v1/simulate/compare. The weather is
// fetched once per date (the provider memoizes), then each panel variation
// is simulated over it.
func (h *SimulateHandler) CompareSimulations(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	loc, dates, basePanel, ok := h.prepare(c, req.Site, req.StartDate, req.Days, req.PanelFile, req.BasePanel)
	if !ok {
		return
	}
	base := panelToConfig(basePanel)

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, variation := range req.Variations {
		merged := config.MergePanel(base, panelInputToConfig(variation.Panel))
		panel, err := model.NewPanel(merged.ToModelConfig())
		if err != nil {
			h.log.Warnw("skipping invalid variation", "name", variation.Name, "err", err)
			continue
		}

		res, err := simulate.Range(c.Request.Context(), h.weather, loc, dates, panel)
		if err != nil {
			h.log.Warnw("skipping failed variation", "name", variation.Name, "err", err)
			continue
		}

		comparison = append(comparison, models.ComparisonResult{
			Name:    variation.Name,
			Panel:   panelEcho(panel),
			Summary: rangeSummary(dates, res),
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

// prepare resolves the site, expands the date range, and builds the panel.
// On failure it writes the error response and returns ok=false.
func (h *SimulateHandler) prepare(c *gin.Context, site models.SiteInput, startDate string, days int, panelFile string, panelIn models.PanelInput) (model.Location, []model.Date, *model.PanelConfiguration, bool) {
	loc, err := h.resolveSite(c.Request.Context(), site)
	if err != nil {
		writeDomainError(c, err)
		return model.Location{}, nil, nil, false
	}

	start, err := model.ParseDate(startDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_DATE", err)
		return model.Location{}, nil, nil, false
	}
	if days == 0 {
		days = 1
	}
	if days < 1 || days > 1825 {
		writeError(c, http.StatusBadRequest, "INVALID_RANGE", fmt.Errorf("days must be in [1, 1825], got %d", days))
		return model.Location{}, nil, nil, false
	}

	panel, err := buildPanel(panelFile, panelIn)
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_PANEL", err)
		return model.Location{}, nil, nil, false
	}

	return loc, model.DateRange(start, days), panel, true
}

func (h *SimulateHandler) resolveSite(ctx context.Context, site models.SiteInput) (model.Location, error) {
	if site.Place != "" {
		return h.geocoder.Geocode(ctx, site.Place)
	}
	loc, err := model.NewLocation(site.Latitude, site.Longitude)
	if err != nil {
		return model.Location{}, err
	}
	loc.ElevationM = site.ElevationM
	return loc, nil
}

// buildPanel merges an optional on-disk preset with the inline overrides,
// the same way YAML configs merge a panel_file.
func buildPanel(panelFile string, in models.PanelInput) (*model.PanelConfiguration, error) {
	merged := panelInputToConfig(in)
	if panelFile != "" {
		path := filepath.Join(PanelDir(), panelFile+".yaml")
		loaded, err := config.LoadUnchecked(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load panel preset %q: %w", panelFile, err)
		}
		merged = config.MergePanel(loaded.Panel, merged)
	}
	return model.NewPanel(merged.ToModelConfig())
}

// PanelDir resolves the preset directory (PANEL_DIR env, then
// examples/panels under the working directory).
func PanelDir() string {
	if dir := os.Getenv("PANEL_DIR"); dir != "" {
		return dir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "./examples/panels"
	}
	return filepath.Join(wd, "examples", "panels")
}

func panelInputToConfig(in models.PanelInput) config.PanelConfig {
	return config.PanelConfig{
		Name:          in.Name,
		AreaM2:        in.AreaM2,
		TiltDeg:       in.TiltDeg,
		AzimuthDeg:    in.AzimuthDeg,
		EfficiencyPct: in.EfficiencyPct,
		GammaPdc:      in.GammaPdc,
	}
}

func panelToConfig(p *model.PanelConfiguration) config.PanelConfig {
	return config.PanelConfig{
		Name:          p.Name,
		AreaM2:        p.AreaM2,
		TiltDeg:       p.TiltDeg,
		AzimuthDeg:    p.AzimuthDeg,
		EfficiencyPct: p.EfficiencyPct,
		GammaPdc:      p.GammaPdc,
	}
}

func panelEcho(p *model.PanelConfiguration) models.PanelEcho {
	return models.PanelEcho{
		Name:          p.Name,
		AreaM2:        p.AreaM2,
		TiltDeg:       p.TiltDeg,
		AzimuthDeg:    p.AzimuthDeg,
		EfficiencyPct: p.EfficiencyPct,
		GammaPdc:      p.GammaPdc,
		RatedDCWatts:  p.RatedDCWatts(),
	}
}

func rangeSummary(dates []model.Date, res *simulate.RangeResult) models.RangeSummary {
	return models.RangeSummary{
		StartDate:     dates[0].String(),
		EndDate:       dates[len(dates)-1].String(),
		DaysRequested: len(dates),
		DaysSimulated: len(res.Days),
		DaysFailed:    len(res.Failed),
		TotalKWh:      res.TotalKWh,
	}
}

// writeDomainError maps the error taxonomy onto HTTP statuses.
func writeDomainError(c *gin.Context, err error) {
	var notFound *model.LocationNotFoundError
	var unavailable *model.WeatherUnavailableError
	var ambiguous *model.AmbiguousTimeError
	var domain *model.NumericDomainError

	switch {
	case errors.As(err, &notFound):
		writeError(c, http.StatusNotFound, "LOCATION_NOT_FOUND", err)
	case errors.As(err, &unavailable):
		writeError(c, http.StatusBadGateway, "WEATHER_UNAVAILABLE", err)
	case errors.As(err, &ambiguous):
		writeError(c, http.StatusBadGateway, "AMBIGUOUS_TIME", err)
	case errors.As(err, &domain):
		writeError(c, http.StatusBadRequest, "NUMERIC_DOMAIN", err)
	default:
		writeError(c, http.StatusBadRequest, "SIMULATION_ERROR", err)
	}
}

func writeError(c *gin.Context, status int, code string, err error) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}
