package service

import (
	"context"

	"github.com/rs/zerolog"
)

// dependencies are shared by every service. cache, enqueuer and metrics
// may be nil.
type dependencies struct {
	logger   *zerolog.Logger
	cache    Cache
	enqueuer Enqueuer
	metrics  Recorder
}

func (d dependencies) recordCacheLookup(key, result string) {
	if d.metrics != nil {
		d.metrics.RecordCacheLookup(key, result)
	}
}

// readThrough returns the list cached under key, loading and caching it on
// a miss. Cache failures are logged and fall through to load.
func readThrough[T any](ctx context.Context, d dependencies, key string, load func(ctx context.Context) ([]T, error)) ([]T, error) {
	if d.cache != nil {
		var cached []T
		hit, err := d.cache.Get(ctx, key, &cached)

		switch {
		case err != nil:
			d.logger.Warn().Err(err).Str("key", key).Msg("cache read failed, loading from database")
			d.recordCacheLookup(key, "error")
		case hit:
			d.recordCacheLookup(key, "hit")
			return cached, nil
		default:
			d.recordCacheLookup(key, "miss")
		}
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if d.cache != nil {
		if err := d.cache.Set(ctx, key, items); err != nil {
			d.logger.Warn().Err(err).Str("key", key).Msg("failed to cache list")
		}
	}

	return items, nil
}

// invalidate drops keys and schedules a warm so the next read is served
// from cache again.
func (d dependencies) invalidate(ctx context.Context, reason string, keys ...string) {
	if d.cache != nil {
		if err := d.cache.Delete(ctx, keys...); err != nil {
			d.logger.Warn().Err(err).Strs("keys", keys).Msg("failed to invalidate cache")
		}
	}

	if d.enqueuer != nil {
		if err := d.enqueuer.EnqueueCacheWarm(ctx, reason); err != nil {
			d.logger.Warn().Err(err).Str("reason", reason).Msg("failed to enqueue cache warm")
		}
	}
}
