// Package identity wraps the external identity service (Supabase GoTrue).
// The client holds no per-user state; access tokens are explicit arguments on
// every call so concurrent requests from different users stay isolated.
package identity

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
	requestTimeout = 10 * time.Second
	// Maximum response body size for identity API responses (256KB)
	maxResponseSize = 256 << 10
)

// Account is an identity-service user record.
type Account struct {
	ID       string
	Email    string
	FullName string
}

// Session is an authenticated identity-service session.
type Session struct {
	AccessToken string
	Account     Account
}

// Client talks to the identity service's REST API.
type Client interface {
	// SignUp registers a new account and returns its session.
	SignUp(ctx context.Context, email, password string) (*Session, error)
	// SignInWithPassword exchanges credentials for a session.
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	// SignOut revokes the session behind the given access token.
	SignOut(ctx context.Context, accessToken string) error
	// GetUser resolves the account behind the given access token.
	GetUser(ctx context.Context, accessToken string) (*Account, error)
}

type SupabaseClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     logger.Interface
}

func NewSupabaseClient(baseURL, apiKey string, logger logger.Interface) *SupabaseClient {
	return &SupabaseClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

var _ Client = (*SupabaseClient)(nil)

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		FullName string `json:"full_name"`
	} `json:"user_metadata"`
}

type sessionPayload struct {
	AccessToken string      `json:"access_token"`
	User        userPayload `json:"user"`
	// Signup responses without autoconfirm return the bare user object.
	ID string `json:"id"`
}

type errorPayload struct {
	Message          string `json:"msg"`
	ErrorDescription string `json:"error_description"`
	ErrorCode        string `json:"error_code"`
}

func (c *SupabaseClient) SignUp(ctx context.Context, email, password string) (*Session, error) {
	body, err := c.post(ctx, "/auth/v1/signup", "", credentialsPayload{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return parseSession(body)
}

func (c *SupabaseClient) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	body, err := c.post(ctx, "/auth/v1/token?grant_type=password", "", credentialsPayload{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return parseSession(body)
}

func (c *SupabaseClient) SignOut(ctx context.Context, accessToken string) error {
	_, err := c.post(ctx, "/auth/v1/logout", accessToken, nil)
	return err
}

func (c *SupabaseClient) GetUser(ctx context.Context, accessToken string) (*Account, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req, accessToken)

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var user userPayload
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, errors.NewUpstreamError("Identity service returned an unexpected response")
	}
	return &Account{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.UserMetadata.FullName,
	}, nil
}

func (c *SupabaseClient) post(ctx context.Context, path, accessToken string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req, accessToken)

	return c.do(req)
}

func (c *SupabaseClient) setHeaders(req *http.Request, accessToken string) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
}

func (c *SupabaseClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warnw("identity service request failed",
			"path", req.URL.Path,
			"error", err)
		return nil, errors.NewUpstreamError("Identity service is unavailable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, errors.NewUpstreamError("Failed to read identity service response")
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	var apiErr errorPayload
	_ = json.Unmarshal(body, &apiErr)
	message := apiErr.Message
	if message == "" {
		message = apiErr.ErrorDescription
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, errors.NewUnauthorizedError("Invalid authentication credentials")
	case resp.StatusCode == http.StatusUnprocessableEntity || resp.StatusCode == http.StatusBadRequest:
		if message == "" {
			message = "Identity service rejected the request"
		}
		return nil, errors.NewValidationError(message)
	case resp.StatusCode == http.StatusConflict:
		return nil, errors.NewConflictError("Account already exists")
	default:
		c.logger.Errorw("identity service error",
			"path", req.URL.Path,
			"status", resp.StatusCode,
			"message", message)
		return nil, errors.NewUpstreamError("Identity service request failed")
	}
}

func parseSession(body []byte) (*Session, error) {
	var payload sessionPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.NewUpstreamError("Identity service returned an unexpected response")
	}

	session := &Session{
		AccessToken: payload.AccessToken,
		Account: Account{
			ID:       payload.User.ID,
			Email:    payload.User.Email,
			FullName: payload.User.UserMetadata.FullName,
		},
	}
	// Email-confirmation flows return a user object with no session yet.
	if session.Account.ID == "" {
		session.Account.ID = payload.ID
	}
	return session, nil
}
