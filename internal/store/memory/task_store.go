// Package memory provides an in-process implementation of store.TaskStore.
// It backs the "memory" database driver and the service and API tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/fidev/todo-api/internal/domain"
	"github.com/fidev/todo-api/internal/store"
	"github.com/google/uuid"
)

// TaskStore keeps tasks in a map guarded by a read/write mutex.
type TaskStore struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]*domain.Task
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// New creates an empty TaskStore.
func New() *TaskStore {
	return &TaskStore{
		tasks: make(map[uuid.UUID]*domain.Task),
	}
}

// Save implements store.TaskStore.Save.
// A task without an ID is assigned a fresh one. Tasks that fail
// domain validation are rejected with store.ErrInvalidEntity.
func (ts *TaskStore) Save(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, store.NewStoreError("task", "save", "task cannot be nil", store.ErrInvalidEntity)
	}

	saved := task.Clone()
	if saved.ID == uuid.Nil {
		saved.ID = uuid.New()
	}
	if err := saved.Validate(); err != nil {
		return nil, store.NewStoreError("task", "save", "invalid task",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	ts.mu.Lock()
	ts.tasks[saved.ID] = saved
	ts.mu.Unlock()

	return saved.Clone(), nil
}

// FindByID implements store.TaskStore.FindByID.
func (ts *TaskStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	ts.mu.RLock()
	task, ok := ts.tasks[id]
	ts.mu.RUnlock()

	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return task.Clone(), nil
}

// FindAllByStatus implements store.TaskStore.FindAllByStatus.
func (ts *TaskStore) FindAllByStatus(
	ctx context.Context,
	status domain.TaskStatus,
	order domain.Sort,
) ([]*domain.Task, error) {
	return ts.filter(func(t *domain.Task) bool { return t.Status == status }, order), nil
}

// FindAllByStatusNot implements store.TaskStore.FindAllByStatusNot.
func (ts *TaskStore) FindAllByStatusNot(
	ctx context.Context,
	status domain.TaskStatus,
	order domain.Sort,
) ([]*domain.Task, error) {
	return ts.filter(func(t *domain.Task) bool { return t.Status != status }, order), nil
}

// Len returns the number of stored tasks of any status.
func (ts *TaskStore) Len() int {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return len(ts.tasks)
}

func (ts *TaskStore) filter(keep func(*domain.Task) bool, order domain.Sort) []*domain.Task {
	ts.mu.RLock()
	tasks := make([]*domain.Task, 0, len(ts.tasks))
	for _, t := range ts.tasks {
		if keep(t) {
			tasks = append(tasks, t.Clone())
		}
	}
	ts.mu.RUnlock()

	sortTasks(tasks, order)
	return tasks
}

// sortTasks orders tasks by the requested field and direction, breaking
// ties by ID ascending whatever the direction.
func sortTasks(tasks []*domain.Task, order domain.Sort) {
	sort.SliceStable(tasks, func(i, j int) bool {
		c := compareBy(order.Field, tasks[i], tasks[j])
		if c == 0 {
			return strings.Compare(tasks[i].ID.String(), tasks[j].ID.String()) < 0
		}
		if order.Ascending() {
			return c < 0
		}
		return c > 0
	})
}

func compareBy(field domain.SortField, a, b *domain.Task) int {
	switch field {
	case domain.SortByDescription:
		return strings.Compare(a.Description, b.Description)
	case domain.SortByFinalizedAt:
		// An absent time sorts below every present one.
		switch {
		case a.FinalizedAt == nil && b.FinalizedAt == nil:
			return 0
		case a.FinalizedAt == nil:
			return -1
		case b.FinalizedAt == nil:
			return 1
		default:
			return a.FinalizedAt.Compare(*b.FinalizedAt)
		}
	case domain.SortByDuration:
		return compareFloat(a.Duration, b.Duration)
	case domain.SortByDelay:
		return compareFloat(a.Delay, b.Delay)
	default:
		return strings.Compare(string(a.Status), string(b.Status))
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
