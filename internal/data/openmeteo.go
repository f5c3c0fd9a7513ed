package data

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/ZenithX9271/SolarPowerEvaluator/internal/model"
)

// OpenMeteoClient fetches hourly weather from the Open-Meteo forecast API.
// Responses are memoized by (location, date) with a TTL so repeated runs
// over the same range do not re-fetch.
type OpenMeteoClient struct {
	BaseURL string
	Client  *http.Client

	cache *TTLCache[*model.WeatherDay]
	log   *zap.SugaredLogger
}

const openMeteoTimeLayout = "2006-01-02T15:04"

// NewOpenMeteoClient creates a client. If baseURL is empty, defaults to the
// public API. A nil logger disables logging.
func NewOpenMeteoClient(baseURL string, cacheTTL time.Duration, logger *zap.SugaredLogger) *OpenMeteoClient {
	if baseURL == "" {
		baseURL = "https://api.open-meteo.com"
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &OpenMeteoClient{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
		cache:   NewTTLCache[*model.WeatherDay](cacheTTL),
		log:     logger.Named("openmeteo"),
	}
}

// openMeteoResponse matches the subset of the forecast JSON we consume.
type openMeteoResponse struct {
	Timezone         string `json:"timezone"`
	UTCOffsetSeconds int    `json:"utc_offset_seconds"`
	Hourly           struct {
		Time          []string  `json:"time"`
		Temperature2M []float64 `json:"temperature_2m"`
		WindSpeed10M  []float64 `json:"wind_speed_10m"`
		CloudCover    []float64 `json:"cloud_cover"`
	} `json:"hourly"`
}

// HourlyWeather fetches the hourly series for one date. A non-2xx response
// or a malformed/incomplete body surfaces as a WeatherUnavailableError
// naming the date; the caller must fail that date rather than substitute
// zeros. Satisfies simulate.WeatherProvider.
func (c *OpenMeteoClient) HourlyWeather(ctx context.Context, loc model.Location, date model.Date) (*model.WeatherDay, error) {
	key := CacheKey(
		strconv.FormatFloat(loc.Lat, 'f', 4, 64),
		strconv.FormatFloat(loc.Lon, 'f', 4, 64),
		date.String(),
	)
	if cached, ok := c.cache.Get(key); ok {
		c.log.Debugw("cache hit", "date", date.String())
		return cached, nil
	}

	u, err := url.Parse(c.BaseURL + "/v1/forecast")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(loc.Lat, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(loc.Lon, 'f', 4, 64))
	q.Set("hourly", "temperature_2m,wind_speed_10m,cloud_cover")
	q.Set("wind_speed_unit", "ms")
	q.Set("start_date", date.String())
	q.Set("end_date", date.String())
	q.Set("timezone", "auto")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.Client.Do(req)
	if err != nil {
		c.log.Warnw("request failed", "date", date.String(), "err", err)
		return nil, &model.WeatherUnavailableError{Date: date, Reason: err.Error()}
	}
	defer resp.Body.Close()

	c.log.Infow("fetched hourly weather",
		"date", date.String(),
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return nil, &model.WeatherUnavailableError{
			Date:   date,
			Reason: fmt.Sprintf("weather API returned status %d", resp.StatusCode),
		}
	}

	var body openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &model.WeatherUnavailableError{Date: date, Reason: "malformed response: " + err.Error()}
	}

	day, err := parseWeatherDay(date, &body)
	if err != nil {
		return nil, err
	}

	c.cache.Set(key, day)
	return day, nil
}

// parseWeatherDay converts the raw response into a validated WeatherDay.
// Timestamps arrive as zone-less local strings; the feed's reported UTC
// offset disambiguates them. A response without timezone context is an
// AmbiguousTimeError, since solar geometry is meaningless without it.
func parseWeatherDay(date model.Date, body *openMeteoResponse) (*model.WeatherDay, error) {
	if body.Timezone == "" {
		return nil, &model.AmbiguousTimeError{Value: date.String()}
	}
	n := len(body.Hourly.Time)
	if n == 0 {
		return nil, &model.WeatherUnavailableError{Date: date, Reason: "response contains no hourly timestamps"}
	}
	if len(body.Hourly.Temperature2M) != n || len(body.Hourly.WindSpeed10M) != n || len(body.Hourly.CloudCover) != n {
		return nil, &model.WeatherUnavailableError{Date: date, Reason: "hourly fields are missing or misaligned"}
	}

	zone := time.FixedZone(body.Timezone, body.UTCOffsetSeconds)
	obs := make([]model.WeatherObservation, n)
	for i, raw := range body.Hourly.Time {
		t, err := time.ParseInLocation(openMeteoTimeLayout, raw, zone)
		if err != nil {
			return nil, &model.AmbiguousTimeError{Value: raw}
		}
		obs[i] = model.WeatherObservation{
			Time:     t,
			TempC:    body.Hourly.Temperature2M[i],
			WindMS:   body.Hourly.WindSpeed10M[i],
			CloudPct: body.Hourly.CloudCover[i],
		}
	}

	day := &model.WeatherDay{Date: date, Observations: obs}
	if err := day.Validate(); err != nil {
		return nil, &model.WeatherUnavailableError{Date: date, Reason: err.Error()}
	}
	return day, nil
}
