package api

import (
	"context"
	"encoding/json"
	"time"

	"github.com/railwatch/railwatch-cli/internal/cache"
	"github.com/railwatch/railwatch-cli/internal/models"
	"github.com/rs/zerolog"
)

// DefaultCacheTTL is how long a resolved status stays cached
const DefaultCacheTTL = 90 * time.Second

// Cache stores serialized records by key
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Delete(key string) error
}

// CachedResolver serves repeated lookups from a cache before asking the next resolver.
// Only successful lookups are stored.
type CachedResolver struct {
	next   StatusResolver
	cache  Cache
	logger zerolog.Logger
}

// NewCachedResolver wraps next with cache
func NewCachedResolver(next StatusResolver, c Cache, logger zerolog.Logger) *CachedResolver {
	return &CachedResolver{
		next:   next,
		cache:  c,
		logger: logger,
	}
}

// NewDefaultCachedResolver wraps next with the file cache in the default location.
// Expired entries are swept on open. If the cache directory cannot be created,
// next is returned unwrapped.
func NewDefaultCachedResolver(next StatusResolver, ttl time.Duration, logger zerolog.Logger) StatusResolver {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	fc, err := cache.NewFileCache(cache.DefaultCacheDir(), ttl)
	if err != nil {
		logger.Warn().Err(err).Msg("Status cache disabled")
		return next
	}
	if err := fc.Cleanup(); err != nil {
		logger.Warn().Err(err).Str("dir", fc.Dir()).Msg("Status cache cleanup failed")
	}
	return NewCachedResolver(next, fc, logger)
}

func statusCacheKey(number string) string {
	return "status:" + number
}

// Lookup implements StatusResolver
func (r *CachedResolver) Lookup(ctx context.Context, trainNumber string) (*models.TrainStatus, error) {
	number, err := ValidateTrainNumber(trainNumber)
	if err != nil {
		return nil, err
	}

	key := statusCacheKey(number)
	if data, ok := r.cache.Get(key); ok {
		var rec models.TrainStatus
		if err := json.Unmarshal(data, &rec); err == nil && rec.Validate() == nil {
			r.logger.Debug().Str("train_number", number).Msg("Status served from cache")
			return &rec, nil
		}
		if err := r.cache.Delete(key); err != nil {
			r.logger.Warn().Err(err).Str("train_number", number).Msg("Failed to drop broken cache entry")
		}
	}

	rec, err := r.next.Lookup(ctx, number)
	if err != nil || rec == nil {
		return rec, err
	}

	if data, err := json.Marshal(rec); err == nil {
		if err := r.cache.Set(key, data); err != nil {
			r.logger.Warn().Err(err).Str("train_number", number).Msg("Failed to cache status")
		}
	}

	return rec, nil
}
