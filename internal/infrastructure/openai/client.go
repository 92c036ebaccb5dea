// Package openai wraps the hosted language-model API used for narrative
// generation. The completion text is returned verbatim; downstream formatting
// assumes but does not enforce the requested shape.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"parksexplorer/internal/shared/errors"
	"parksexplorer/internal/shared/logger"
)

const (
	// Narrative generation is the slowest call in the system; the timeout
	// covers multi-day itineraries at full output length.
	requestTimeout = 120 * time.Second
	// Maximum response body size for completion responses (4MB)
	maxResponseSize = 4 << 20
)

// GenerationOptions control one completion request.
type GenerationOptions struct {
	Temperature float64
	MaxTokens   int
}

// Client submits prompts to the language-model API.
type Client interface {
	// GenerateText sends a system and user prompt and returns the raw
	// completion text.
	GenerateText(ctx context.Context, system, user string, opts GenerationOptions) (string, error)
}

type HTTPClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     logger.Interface
}

func NewHTTPClient(baseURL, apiKey, model string, logger logger.Interface) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

var _ Client = (*HTTPClient)(nil)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (c *HTTPClient) GenerateText(ctx context.Context, system, user string, opts GenerationOptions) (string, error) {
	payload := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warnw("language-model API request failed", "error", err)
		return "", errors.NewUpstreamError("Narrative generation service is unavailable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", errors.NewUpstreamError("Failed to read narrative generation response")
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", errors.NewUpstreamError("Narrative generation service returned an unexpected response")
	}

	if resp.StatusCode != http.StatusOK {
		message := ""
		if completion.Error != nil {
			message = completion.Error.Message
		}
		c.logger.Errorw("language-model API error",
			"status", resp.StatusCode,
			"message", message)
		return "", errors.NewUpstreamError("Narrative generation request failed")
	}

	if len(completion.Choices) == 0 {
		return "", errors.NewUpstreamError("Narrative generation returned no completion")
	}

	return completion.Choices[0].Message.Content, nil
}
