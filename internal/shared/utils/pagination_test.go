package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestValidateOffsetPage(t *testing.T) {
	tests := []struct {
		name      string
		skip      int
		limit     int
		wantSkip  int
		wantLimit int
	}{
		{
			name:      "valid values - no adjustment needed",
			skip:      20,
			limit:     25,
			wantSkip:  20,
			wantLimit: 25,
		},
		{
			name:      "negative skip - clamped to zero",
			skip:      -5,
			limit:     10,
			wantSkip:  0,
			wantLimit: 10,
		},
		{
			name:      "zero limit - defaults",
			skip:      0,
			limit:     0,
			wantSkip:  0,
			wantLimit: DefaultLimit,
		},
		{
			name:      "negative limit - defaults",
			skip:      0,
			limit:     -1,
			wantSkip:  0,
			wantLimit: DefaultLimit,
		},
		{
			name:      "limit exceeds MaxLimit - capped",
			skip:      0,
			limit:     500,
			wantSkip:  0,
			wantLimit: MaxLimit,
		},
		{
			name:      "limit equals MaxLimit - no cap",
			skip:      0,
			limit:     MaxLimit,
			wantSkip:  0,
			wantLimit: MaxLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateOffsetPage(tt.skip, tt.limit)
			if got.Skip != tt.wantSkip {
				t.Errorf("ValidateOffsetPage().Skip = %v, want %v", got.Skip, tt.wantSkip)
			}
			if got.Limit != tt.wantLimit {
				t.Errorf("ValidateOffsetPage().Limit = %v, want %v", got.Limit, tt.wantLimit)
			}
		})
	}
}

func TestParseOffsetPage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		queryParams string
		wantSkip    int
		wantLimit   int
	}{
		{
			name:        "no params - use defaults",
			queryParams: "",
			wantSkip:    0,
			wantLimit:   DefaultLimit,
		},
		{
			name:        "valid skip and limit",
			queryParams: "skip=30&limit=25",
			wantSkip:    30,
			wantLimit:   25,
		},
		{
			name:        "invalid skip - use default",
			queryParams: "skip=abc&limit=20",
			wantSkip:    0,
			wantLimit:   20,
		},
		{
			name:        "limit exceeds max - capped",
			queryParams: "skip=0&limit=500",
			wantSkip:    0,
			wantLimit:   MaxLimit,
		},
		{
			name:        "negative skip - clamped",
			queryParams: "skip=-10&limit=10",
			wantSkip:    0,
			wantLimit:   10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tt.queryParams, nil)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			got := ParseOffsetPage(c)
			if got.Skip != tt.wantSkip {
				t.Errorf("ParseOffsetPage().Skip = %v, want %v", got.Skip, tt.wantSkip)
			}
			if got.Limit != tt.wantLimit {
				t.Errorf("ParseOffsetPage().Limit = %v, want %v", got.Limit, tt.wantLimit)
			}
		})
	}
}
