package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ZenithX9271/SolarPowerEvaluator/internal/analysis"
	"github.com/ZenithX9271/SolarPowerEvaluator/internal/api/models"
	"github.com/ZenithX9271/SolarPowerEvaluator/internal/model"
)

// RankHandler ranks candidate sites by clear-sky solar potential.
type RankHandler struct{}

func NewRankHandler() *RankHandler {
	return &RankHandler{}
}

// RankSites handles POST /api/v1/rank.
func (h *RankHandler) RankSites(c *gin.Context) {
	var req models.RankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}
	if len(req.Sites) == 0 {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", fmt.Errorf("at least one site is required"))
		return
	}

	start, err := model.ParseDate(req.StartDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_DATE", err)
		return
	}
	days := req.Days
	if days == 0 {
		days = 1
	}

	sites := make([]model.Location, 0, len(req.Sites))
	for i, s := range req.Sites {
		loc, err := model.NewLocation(s.Latitude, s.Longitude)
		if err != nil {
			writeError(c, http.StatusBadRequest, "INVALID_SITE", fmt.Errorf("site %d: %w", i, err))
			return
		}
		loc.Name = s.Name
		loc.ElevationM = s.ElevationM
		sites = append(sites, loc)
	}

	ranked := analysis.RankByPotential(sites, model.DateRange(start, days))

	limit := req.Limit
	if limit <= 0 || limit > len(ranked) {
		limit = len(ranked)
	}

	rankings := make([]models.Ranking, 0, limit)
	for i := 0; i < limit; i++ {
		rankings = append(rankings, models.Ranking{
			Rank:      i + 1,
			Potential: ranked[i].SolarPotential,
		})
	}

	c.JSON(http.StatusOK, models.RankResponse{Rankings: rankings})
}
