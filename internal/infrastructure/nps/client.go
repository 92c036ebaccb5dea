// Package nps wraps the National Park Service developer API.
package nps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"parksexplorer/internal/shared/errors"
	"parksexplorer/internal/shared/logger"
)

const (
	requestTimeout = 10 * time.Second
	// Maximum response body size for NPS API responses (4MB; park payloads
	// carry image metadata and long descriptions)
	maxResponseSize = 4 << 20

	defaultListLimit = 50
)

// Park is one park record as returned by the NPS API.
type Park struct {
	ID          string   `json:"id"`
	ParkCode    string   `json:"parkCode"`
	FullName    string   `json:"fullName"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	States      string   `json:"states"`
	Latitude    string   `json:"latitude"`
	Longitude   string   `json:"longitude"`
	URL         string   `json:"url"`
	Designation string   `json:"designation"`
	Activities  []Entity `json:"activities"`
	Topics      []Entity `json:"topics"`
}

// Entity is a named NPS reference item (activity, topic).
type Entity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type parksEnvelope struct {
	Total string `json:"total"`
	Data  []Park `json:"data"`
}

// Client fetches park information from the NPS API.
type Client interface {
	// ListParks returns parks, optionally filtered by two-letter state code.
	ListParks(ctx context.Context, stateCode string, limit int) ([]Park, error)
	// GetParkDetails returns the park with the given code, or nil when the
	// API knows no such park.
	GetParkDetails(ctx context.Context, parkCode string) (*Park, error)
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

var _ Client = (*HTTPClient)(nil)

func (c *HTTPClient) ListParks(ctx context.Context, stateCode string, limit int) ([]Park, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("limit", strconv.Itoa(limit))
	if stateCode != "" {
		params.Set("stateCode", stateCode)
	}

	envelope, err := c.fetchParks(ctx, params)
	if err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

func (c *HTTPClient) GetParkDetails(ctx context.Context, parkCode string) (*Park, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("parkCode", strings.ToLower(parkCode))

	envelope, err := c.fetchParks(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(envelope.Data) == 0 {
		return nil, nil
	}
	return &envelope.Data[0], nil
}

func (c *HTTPClient) fetchParks(ctx context.Context, params url.Values) (*parksEnvelope, error) {
	reqURL := fmt.Sprintf("%s/parks?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warnw("NPS API request failed", "error", err)
		return nil, errors.NewUpstreamError("Parks information service is unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Errorw("NPS API returned non-OK status", "status", resp.StatusCode)
		return nil, errors.NewUpstreamError("Parks information service request failed")
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, errors.NewUpstreamError("Failed to read parks information response")
	}

	var envelope parksEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.NewUpstreamError("Parks information service returned an unexpected response")
	}
	return &envelope, nil
}
