package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/fidev/todo-api/internal/domain"
	"github.com/fidev/todo-api/internal/platform/logger"
	"github.com/fidev/todo-api/internal/store"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// TaskStore wraps a store.TaskStore with a Redis read-through cache.
type TaskStore struct {
	base   store.TaskStore
	redis  *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates a caching wrapper around base. A nil client or a
// zero ttl disables caching and every call goes to base.
func NewTaskStore(base store.TaskStore, client *redis.Client, ttl time.Duration, logger *slog.Logger) *TaskStore {
	if base == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("cache.NewTaskStore: base store is nil")
	}
	if ttl < 0 {
		ttl = 0
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		base:   base,
		redis:  client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "task_cache")),
	}
}

// Save writes the task to the base store and refreshes the cached copy.
func (c *TaskStore) Save(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	saved, err := c.base.Save(ctx, task)
	if err != nil {
		// The base may have written before failing; drop any stale copy.
		if task != nil {
			c.evict(ctx, task.ID)
		}
		return nil, err
	}

	c.store(ctx, saved)
	return saved, nil
}

// FindByID serves the task from Redis, loading it from the base store on a miss.
func (c *TaskStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if task, ok := c.load(ctx, id); ok {
		return task, nil
	}

	task, err := c.base.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.store(ctx, task)
	return task, nil
}

// FindAllByStatus is not cached.
func (c *TaskStore) FindAllByStatus(
	ctx context.Context,
	status domain.TaskStatus,
	sort domain.Sort,
) ([]*domain.Task, error) {
	return c.base.FindAllByStatus(ctx, status, sort)
}

// FindAllByStatusNot is not cached.
func (c *TaskStore) FindAllByStatusNot(
	ctx context.Context,
	status domain.TaskStatus,
	sort domain.Sort,
) ([]*domain.Task, error) {
	return c.base.FindAllByStatusNot(ctx, status, sort)
}

func (c *TaskStore) load(ctx context.Context, id uuid.UUID) (*domain.Task, bool) {
	if !c.enabled() {
		return nil, false
	}

	key := taskCacheKey(id)
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.FromContextOrDefault(ctx, c.logger).Warn("task cache read failed",
				slog.String("error", err.Error()),
				slog.String("task_id", id.String()))
			_ = c.redis.Del(ctx, key).Err()
		}
		return nil, false
	}

	var task domain.Task
	if err := json.Unmarshal(data, &task); err != nil || task.ID != id {
		_ = c.redis.Del(ctx, key).Err()
		return nil, false
	}
	return &task, true
}

func (c *TaskStore) store(ctx context.Context, task *domain.Task) {
	if !c.enabled() || task == nil {
		return
	}
	data, err := json.Marshal(task)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, taskCacheKey(task.ID), data, c.ttl).Err(); err != nil {
		logger.FromContextOrDefault(ctx, c.logger).Warn("task cache write failed",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		_ = c.redis.Del(ctx, taskCacheKey(task.ID)).Err()
	}
}

func (c *TaskStore) evict(ctx context.Context, id uuid.UUID) {
	if c.redis == nil {
		return
	}
	_ = c.redis.Del(ctx, taskCacheKey(id)).Err()
}

// enabled reports whether reads and writes go to Redis at all.
func (c *TaskStore) enabled() bool {
	return c.redis != nil && c.ttl > 0
}

func taskCacheKey(id uuid.UUID) string {
	return "task:" + id.String()
}
