// Package weather wraps the weatherapi.com forecast API.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"parksexplorer/internal/shared/errors"
	"parksexplorer/internal/shared/logger"
)

const (
	requestTimeout = 10 * time.Second
	// Maximum response body size for weather API responses (1MB)
	maxResponseSize = 1 << 20

	forecastDays = 7
)

// Forecast is the parsed subset of a weatherapi.com forecast response.
type Forecast struct {
	Current CurrentConditions `json:"current"`
}

// CurrentConditions holds the current weather at a location.
type CurrentConditions struct {
	TempF     float64   `json:"temp_f"`
	Condition Condition `json:"condition"`
}

// Condition is a textual weather condition.
type Condition struct {
	Text string `json:"text"`
}

// Summary renders the forecast the way the narrative prompt expects it.
func (f *Forecast) Summary() string {
	return fmt.Sprintf("Current conditions: %s, %.0f°F", f.Current.Condition.Text, f.Current.TempF)
}

// NeutralSummary is used when no weather data is available; the narrative
// prompt still needs a weather clause.
const NeutralSummary = "Current conditions: unavailable, plan for seasonal weather"

// Service fetches weather forecasts for coordinates.
type Service interface {
	// GetForecast returns the forecast at the given coordinates.
	GetForecast(ctx context.Context, latitude, longitude float64) (*Forecast, error)
	// Configured reports whether an API key is present. When false, callers
	// degrade to NeutralSummary instead of calling GetForecast.
	Configured() bool
}

type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     logger.Interface
}

func NewHTTPClient(baseURL, apiKey string, logger logger.Interface) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

var _ Service = (*HTTPClient)(nil)

func (c *HTTPClient) Configured() bool {
	return c.apiKey != ""
}

func (c *HTTPClient) GetForecast(ctx context.Context, latitude, longitude float64) (*Forecast, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", fmt.Sprintf("%f,%f", latitude, longitude))
	params.Set("days", fmt.Sprintf("%d", forecastDays))

	reqURL := fmt.Sprintf("%s/forecast.json?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warnw("weather API request failed", "error", err)
		return nil, errors.NewUpstreamError("Weather service is unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Errorw("weather API returned non-OK status", "status", resp.StatusCode)
		return nil, errors.NewUpstreamError("Weather service request failed")
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, errors.NewUpstreamError("Failed to read weather response")
	}

	var forecast Forecast
	if err := json.Unmarshal(body, &forecast); err != nil {
		return nil, errors.NewUpstreamError("Weather service returned an unexpected response")
	}
	return &forecast, nil
}

// conditionAdvice maps a lowercase condition keyword to visitor advice.
var conditionAdvice = map[string]string{
	"clear":  "Perfect weather for outdoor activities!",
	"sunny":  "Remember sunscreen and bring plenty of water!",
	"rain":   "Bring rain gear and check trail conditions.",
	"snow":   "Check road conditions and bring appropriate winter gear.",
	"storm":  "Consider indoor activities or postpone outdoor plans.",
	"cloudy": "Good conditions for hiking, but bring layers.",
}

// ConditionAdvice returns visitor advice for a weather condition.
func ConditionAdvice(condition string) string {
	if advice, ok := conditionAdvice[strings.ToLower(strings.TrimSpace(condition))]; ok {
		return advice
	}
	return "Check local weather reports for specific advice."
}
