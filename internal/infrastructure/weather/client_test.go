package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parksexplorer/internal/shared/errors"
	"parksexplorer/internal/shared/logger"
)

func TestHTTPClient_Configured(t *testing.T) {
	log := logger.NewLogger()

	assert.True(t, NewHTTPClient("https://api.weatherapi.com/v1", "key", log).Configured())
	assert.False(t, NewHTTPClient("https://api.weatherapi.com/v1", "", log).Configured())
}

func TestHTTPClient_GetForecast(t *testing.T) {
	t.Run("parses current conditions", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/forecast.json", r.URL.Path)
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))
			assert.Equal(t, "7", r.URL.Query().Get("days"))
			assert.Contains(t, r.URL.Query().Get("q"), "37.8")

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"current":{"temp_f":72.4,"condition":{"text":"Sunny"}}}`))
		}))
		defer server.Close()

		client := NewHTTPClient(server.URL, "test-key", logger.NewLogger())
		forecast, err := client.GetForecast(context.Background(), 37.8651, -119.5383)
		require.NoError(t, err)
		assert.Equal(t, "Sunny", forecast.Current.Condition.Text)
		assert.Equal(t, "Current conditions: Sunny, 72°F", forecast.Summary())
	})

	t.Run("non-OK status is an upstream error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		client := NewHTTPClient(server.URL, "test-key", logger.NewLogger())
		_, err := client.GetForecast(context.Background(), 37.8651, -119.5383)
		require.Error(t, err)
		assert.True(t, errors.IsUpstreamError(err))
	})

	t.Run("malformed body is an upstream error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer server.Close()

		client := NewHTTPClient(server.URL, "test-key", logger.NewLogger())
		_, err := client.GetForecast(context.Background(), 37.8651, -119.5383)
		require.Error(t, err)
		assert.True(t, errors.IsUpstreamError(err))
	})

	t.Run("unreachable host is an upstream error", func(t *testing.T) {
		client := NewHTTPClient("http://127.0.0.1:1", "test-key", logger.NewLogger())
		_, err := client.GetForecast(context.Background(), 37.8651, -119.5383)
		require.Error(t, err)
		assert.True(t, errors.IsUpstreamError(err))
	})
}

func TestConditionAdvice(t *testing.T) {
	tests := []struct {
		name      string
		condition string
		want      string
	}{
		{name: "sunny", condition: "Sunny", want: "Remember sunscreen and bring plenty of water!"},
		{name: "padded rain", condition: "  rain  ", want: "Bring rain gear and check trail conditions."},
		{name: "snow", condition: "SNOW", want: "Check road conditions and bring appropriate winter gear."},
		{name: "unknown falls back", condition: "hazy", want: "Check local weather reports for specific advice."},
		{name: "empty falls back", condition: "", want: "Check local weather reports for specific advice."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConditionAdvice(tt.condition))
		})
	}
}
