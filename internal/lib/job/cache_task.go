package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskCacheWarm reloads the cached restaurant and pizza lists.
	TaskCacheWarm = "cache:warm"

	// CacheWarmDelay is how long after a mutation its warm runs. The warm
	// overwrites any list a concurrent read stored before the mutation
	// committed, so stale entries live at most this long.
	CacheWarmDelay = 2 * time.Second
)

// CacheWarmPayload records why a warm was requested, for the logs.
type CacheWarmPayload struct {
	Reason string `json:"reason"`
}

func NewCacheWarmTask(reason string) (*asynq.Task, error) {
	payload, err := json.Marshal(CacheWarmPayload{Reason: reason})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskCacheWarm,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
		asynq.ProcessIn(CacheWarmDelay),
	), nil
}
