// Package lib holds supporting modules that do not belong to a layer:
// the Redis list cache, background jobs on asynq, and prometheus metrics.
package lib
