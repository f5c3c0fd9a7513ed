package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/ZenithX9271/SolarPowerEvaluator/internal/api/handlers"
	"github.com/ZenithX9271/SolarPowerEvaluator/internal/api/middleware"
	"github.com/ZenithX9271/SolarPowerEvaluator/internal/data"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	var zlog *zap.Logger
	var err error
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
		zlog, err = zap.NewProduction()
	} else {
		zlog, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer zlog.Sync()
	log := zlog.Sugar()

	cacheTTL := 1 * time.Hour
	if ttlStr := os.Getenv("CACHE_TTL"); ttlStr != "" {
		if parsed, err := time.ParseDuration(ttlStr); err == nil {
			cacheTTL = parsed
		}
	}

	geocoder := data.NewNominatimClient(os.Getenv("GEOCODER_URL"), 24*time.Hour, log)
	weather := data.NewOpenMeteoClient(os.Getenv("WEATHER_URL"), cacheTTL, log)

	router := gin.New()
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery())

	simulateHandler := handlers.NewSimulateHandler(geocoder, weather, log)
	panelsHandler := handlers.NewPanelsHandler()
	rankHandler := handlers.NewRankHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.RunSimulation)
		api.POST("/simulate/compare", simulateHandler.CompareSimulations)
		api.POST("/rank", rankHandler.RankSites)
		api.GET("/panels", panelsHandler.ListPanels)
	}

	// Browser clients (dashboards) call this API cross-origin.
	handler := cors.AllowAll().Handler(router)

	log.Infow("starting API server", "port", port, "panel_dir", handlers.PanelDir())
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalw("server exited", "err", err)
	}
}
