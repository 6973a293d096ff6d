// Package cache provides a Redis-backed decorator for store.TaskStore.
// Single-task reads are served from Redis when possible; writes go to the
// wrapped store first and then refresh the cached copy. Redis is treated
// as best effort: any Redis failure falls back to the wrapped store.
package cache
