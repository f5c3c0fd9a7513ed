package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZenithX9271/SolarPowerEvaluator/internal/api/models"
)

func rankRouter() *gin.Engine {
	router := gin.New()
	router.POST("/api/v1/rank", NewRankHandler().RankSites)
	return router
}

func TestRankSitesOrdersByPotential(t *testing.T) {
	router := rankRouter()

	w := doJSON(t, router, "/api/v1/rank", models.RankRequest{
		Sites: []models.RankSite{
			{Name: "Reykjavik", Latitude: 64.1466, Longitude: -21.9426},
			{Name: "Nairobi", Latitude: -1.2921, Longitude: 36.8219, ElevationM: 1795},
		},
		StartDate: "2026-03-01",
		Days:      3,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.RankResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Rankings, 2)

	assert.Equal(t, 1, resp.Rankings[0].Rank)
	assert.Equal(t, "Nairobi", resp.Rankings[0].Potential.Site.Name)
	assert.Greater(t, resp.Rankings[0].Potential.TotalKWh, resp.Rankings[1].Potential.TotalKWh)
}

func TestRankSitesHonorsLimit(t *testing.T) {
	router := rankRouter()

	w := doJSON(t, router, "/api/v1/rank", models.RankRequest{
		Sites: []models.RankSite{
			{Name: "a", Latitude: 0, Longitude: 10},
			{Name: "b", Latitude: 20, Longitude: 10},
			{Name: "c", Latitude: 40, Longitude: 10},
		},
		StartDate: "2026-03-01",
		Limit:     2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.RankResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Rankings, 2)
}

func TestRankSitesEmptyListIs400(t *testing.T) {
	router := rankRouter()

	w := doJSON(t, router, "/api/v1/rank", map[string]interface{}{
		"sites":      []interface{}{},
		"start_date": "2026-03-01",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRankSitesBadCoordinatesIs400(t *testing.T) {
	router := rankRouter()

	w := doJSON(t, router, "/api/v1/rank", models.RankRequest{
		Sites:     []models.RankSite{{Name: "bad", Latitude: 123, Longitude: 0}},
		StartDate: "2026-03-01",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_SITE", resp.Error.Code)
}
