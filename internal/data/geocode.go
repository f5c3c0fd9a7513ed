package data

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ZenithX9271/SolarPowerEvaluator/internal/model"
)

// NominatimClient resolves free-text place names to coordinates via the
// OpenStreetMap Nominatim search API. Results are cached: a place name
// rarely changes meaning within a session, and Nominatim's usage policy
// discourages repeat lookups.
type NominatimClient struct {
	BaseURL   string
	UserAgent string
	Client    *http.Client

	cache *TTLCache[model.Location]
	log   *zap.SugaredLogger
}

// NewNominatimClient creates a geocoder. If baseURL is empty, defaults to
// the public Nominatim instance. Nominatim requires an identifying
// User-Agent.
func NewNominatimClient(baseURL string, cacheTTL time.Duration, logger *zap.SugaredLogger) *NominatimClient {
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &NominatimClient{
		BaseURL:   baseURL,
		UserAgent: "solar-power-evaluator",
		Client:    &http.Client{Timeout: 10 * time.Second},
		cache:     NewTTLCache[model.Location](cacheTTL),
		log:       logger.Named("geocode"),
	}
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves a place name. An unresolvable name is a
// LocationNotFoundError, which halts the pipeline before any computation.
func (c *NominatimClient) Geocode(ctx context.Context, place string) (model.Location, error) {
	place = strings.TrimSpace(place)
	if place == "" {
		return model.Location{}, &model.LocationNotFoundError{Place: place}
	}

	key := CacheKey("geocode", strings.ToLower(place))
	if cached, ok := c.cache.Get(key); ok {
		c.log.Debugw("cache hit", "place", place)
		return cached, nil
	}

	u, err := url.Parse(c.BaseURL + "/search")
	if err != nil {
		return model.Location{}, fmt.Errorf("invalid base URL: %w", err)
	}
	q := u.Query()
	q.Set("q", place)
	q.Set("format", "json")
	q.Set("limit", "1")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return model.Location{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return model.Location{}, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	c.log.Infow("geocoded place", "place", place, "status", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		return model.Location{}, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return model.Location{}, fmt.Errorf("failed to decode geocoder response: %w", err)
	}
	if len(results) == 0 {
		return model.Location{}, &model.LocationNotFoundError{Place: place}
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return model.Location{}, fmt.Errorf("geocoder returned bad latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return model.Location{}, fmt.Errorf("geocoder returned bad longitude %q: %w", results[0].Lon, err)
	}

	loc, err := model.NewLocation(lat, lon)
	if err != nil {
		return model.Location{}, fmt.Errorf("geocoder returned out-of-range coordinates: %w", err)
	}
	loc.Name = place

	c.cache.Set(key, loc)
	return loc, nil
}
