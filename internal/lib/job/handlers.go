package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
)

// CacheWarmer reloads cached read models.
type CacheWarmer interface {
	WarmCache(ctx context.Context) error
}

// InitHandlers sets the dependencies task handlers need. It must run
// before Start.
func (j *JobService) InitHandlers(warmer CacheWarmer) {
	j.warmer = warmer
}

func (j *JobService) handleCacheWarmTask(ctx context.Context, t *asynq.Task) error {
	var p CacheWarmPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return errors.Wrap(err, "failed to unmarshal cache warm payload")
	}

	if j.warmer == nil {
		return errors.New("cache warm handler not initialized")
	}

	start := time.Now()

	j.logger.Debug().
		Str("type", TaskCacheWarm).
		Str("reason", p.Reason).
		Msg("processing cache warm task")

	if err := j.warmer.WarmCache(ctx); err != nil {
		j.logger.Error().
			Err(err).
			Str("type", TaskCacheWarm).
			Str("reason", p.Reason).
			Msg("failed to warm cache")
		return err
	}

	j.logger.Info().
		Str("type", TaskCacheWarm).
		Str("reason", p.Reason).
		Dur("duration", time.Since(start)).
		Msg("cache warmed")

	return nil
}
