package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"parksexplorer/internal/shared/logger"
)

const (
	cacheKeyPrefix = "weather:forecast:"
	// Forecasts move slowly; 30 minutes keeps itinerary generation cheap
	// without serving stale conditions.
	cacheTTL = 30 * time.Minute
)

// CachedService decorates a weather Service with a Redis forecast cache.
// Cache failures are logged and bypassed; they never fail the lookup.
type CachedService struct {
	inner  Service
	client *redis.Client
	logger logger.Interface
}

func NewCachedService(inner Service, client *redis.Client, logger logger.Interface) *CachedService {
	return &CachedService{
		inner:  inner,
		client: client,
		logger: logger,
	}
}

var _ Service = (*CachedService)(nil)

func (s *CachedService) Configured() bool {
	return s.inner.Configured()
}

func (s *CachedService) GetForecast(ctx context.Context, latitude, longitude float64) (*Forecast, error) {
	key := s.buildKey(latitude, longitude)

	if cached, err := s.client.Get(ctx, key).Bytes(); err == nil {
		var forecast Forecast
		if err := json.Unmarshal(cached, &forecast); err == nil {
			return &forecast, nil
		}
	} else if err != redis.Nil {
		s.logger.Warnw("weather cache read failed", "error", err)
	}

	forecast, err := s.inner.GetForecast(ctx, latitude, longitude)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(forecast); err == nil {
		if err := s.client.Set(ctx, key, data, cacheTTL).Err(); err != nil {
			s.logger.Warnw("weather cache write failed", "error", err)
		}
	}

	return forecast, nil
}

// buildKey rounds coordinates to two decimals (~1km) so nearby lookups share
// a cache entry.
func (s *CachedService) buildKey(latitude, longitude float64) string {
	return fmt.Sprintf("%s%.2f,%.2f", cacheKeyPrefix, latitude, longitude)
}
