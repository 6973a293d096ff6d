package store

import (
	"context"

	"github.com/fidev/todo-api/internal/domain"
	"github.com/google/uuid"
)

// TaskStore defines the interface for task data persistence.
// Implementations guarantee single-record atomicity only and hand out
// copies: mutating a returned task never changes stored state.
type TaskStore interface {
	// Save inserts the task, or replaces the stored task with the same ID.
	// It returns the task as persisted.
	Save(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// FindByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// FindAllByStatus returns every task with exactly the given status,
	// ordered by sort. Returns an empty slice if none match.
	FindAllByStatus(ctx context.Context, status domain.TaskStatus, sort domain.Sort) ([]*domain.Task, error)

	// FindAllByStatusNot returns every task whose status differs from the
	// given one, ordered by sort. Returns an empty slice if none match.
	FindAllByStatusNot(ctx context.Context, status domain.TaskStatus, sort domain.Sort) ([]*domain.Task, error)
}
