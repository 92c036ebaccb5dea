package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLimit is the default page size for offset-paginated listings.
	// Earlier revisions of the API disagreed on 10 vs 100; 10 is canonical.
	DefaultLimit = 10
	// MaxLimit caps a caller-supplied limit.
	MaxLimit = 100
)

// OffsetPage holds validated skip/limit pagination parameters.
type OffsetPage struct {
	Skip  int
	Limit int
}

// ValidateOffsetPage clamps skip/limit into their allowed ranges.
func ValidateOffsetPage(skip, limit int) OffsetPage {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return OffsetPage{Skip: skip, Limit: limit}
}

// ParseOffsetPage reads skip/limit query parameters from the request.
func ParseOffsetPage(c *gin.Context) OffsetPage {
	skip := parseQueryInt(c, "skip", 0)
	limit := parseQueryInt(c, "limit", DefaultLimit)
	return ValidateOffsetPage(skip, limit)
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	raw := c.Query(key)
	if raw == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}
	return v
}
