package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/fidev/todo-api/internal/domain"
	"github.com/fidev/todo-api/internal/events"
	"github.com/fidev/todo-api/internal/platform/logger"
	"github.com/fidev/todo-api/internal/store"
	"github.com/google/uuid"
)

// SearchParams holds the raw list filters as received from the client.
// Empty fields mean "not given".
type SearchParams struct {
	Status  string
	OrderBy string
	Order   string
}

// TaskService provides task lifecycle operations.
type TaskService interface {
	// CreateTask validates and stores a new PENDING task.
	CreateTask(ctx context.Context, description string, duration float64) (*domain.TaskDetail, error)

	// SearchTasks lists tasks filtered by status and ordered by the given field.
	// Deleted tasks are only ever excluded, never listed.
	SearchTasks(ctx context.Context, params SearchParams) ([]domain.TaskDetail, error)

	// UpdateTask replaces the description and duration of a task that is not completed.
	UpdateTask(
		ctx context.Context,
		id uuid.UUID,
		description string,
		duration float64,
	) (*domain.TaskDetail, error)

	// CompleteTask marks a task as completed with the given delay.
	CompleteTask(ctx context.Context, id uuid.UUID, delay float64) (*domain.TaskDetail, error)

	// DeleteTask soft-deletes a task.
	DeleteTask(ctx context.Context, id uuid.UUID) (*domain.TaskDetail, error)
}

// Option configures a task service.
type Option func(*taskServiceImpl)

// WithClock sets the time source used to stamp completions.
func WithClock(now func() time.Time) Option {
	return func(s *taskServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	tasks        store.TaskStore
	eventEmitter events.EventEmitter
	logger       *slog.Logger
	now          func() time.Time
}

// NewTaskService creates a new TaskService.
// It returns an error if the task store is nil. A nil emitter disables
// lifecycle events.
func NewTaskService(
	tasks store.TaskStore,
	eventEmitter events.EventEmitter,
	logger *slog.Logger,
	opts ...Option,
) (TaskService, error) {
	if tasks == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "task store cannot be nil",
		}
	}
	if eventEmitter == nil {
		eventEmitter = events.NopEmitter{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &taskServiceImpl{
		tasks:        tasks,
		eventEmitter: eventEmitter,
		logger:       logger.With("component", "task_service"),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *taskServiceImpl) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

// CreateTask implements TaskService.
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	description string,
	duration float64,
) (*domain.TaskDetail, error) {
	task, err := domain.NewTask(description, duration)
	if err != nil {
		s.log(ctx).Debug("rejected new task", slog.String("error", err.Error()))
		return nil, err
	}

	saved, err := s.tasks.Save(ctx, task)
	if err != nil {
		s.log(ctx).Error("failed to save new task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	s.emit(ctx, events.TypeTaskCreated, saved)
	return detailOf(saved), nil
}

// SearchTasks implements TaskService.
func (s *taskServiceImpl) SearchTasks(
	ctx context.Context,
	params SearchParams,
) ([]domain.TaskDetail, error) {
	sort := domain.NewSort(params.OrderBy, params.Order)

	var (
		tasks []*domain.Task
		err   error
	)
	status, ok := domain.ParseStatus(params.Status)
	if params.Status != "" && !ok {
		s.log(ctx).Warn("ignoring unknown status filter", slog.String("status", params.Status))
	}
	if ok && status != domain.TaskStatusDeleted {
		tasks, err = s.tasks.FindAllByStatus(ctx, status, sort)
	} else {
		tasks, err = s.tasks.FindAllByStatusNot(ctx, domain.TaskStatusDeleted, sort)
	}
	if err != nil {
		s.log(ctx).Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.String("order_by", string(sort.Field)))
		return nil, NewTaskServiceError("search_tasks", "failed to list tasks", err)
	}

	details := make([]domain.TaskDetail, 0, len(tasks))
	for _, t := range tasks {
		details = append(details, domain.NewTaskDetail(t))
	}
	return details, nil
}

// UpdateTask implements TaskService.
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id uuid.UUID,
	description string,
	duration float64,
) (*domain.TaskDetail, error) {
	// Input is checked before the lookup.
	description, err := domain.ValidateDescription(description)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateDuration(duration); err != nil {
		return nil, err
	}

	task, err := s.find(ctx, "update_task", id)
	if err != nil {
		return nil, err
	}
	if task.IsCompleted() {
		s.log(ctx).Debug("refusing to update completed task", slog.String("task_id", id.String()))
		return nil, ErrInvalidAction
	}

	if err := task.Revise(description, duration); err != nil {
		return nil, err
	}
	return s.save(ctx, "update_task", events.TypeTaskUpdated, task)
}

// CompleteTask implements TaskService. It does not look at the current
// status: completing a deleted or completed task re-stamps it.
func (s *taskServiceImpl) CompleteTask(
	ctx context.Context,
	id uuid.UUID,
	delay float64,
) (*domain.TaskDetail, error) {
	task, err := s.find(ctx, "complete_task", id)
	if err != nil {
		return nil, err
	}

	task.Complete(delay, s.now())
	return s.save(ctx, "complete_task", events.TypeTaskCompleted, task)
}

// DeleteTask implements TaskService.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id uuid.UUID) (*domain.TaskDetail, error) {
	task, err := s.find(ctx, "delete_task", id)
	if err != nil {
		return nil, err
	}

	task.MarkDeleted()
	return s.save(ctx, "delete_task", events.TypeTaskDeleted, task)
}

func (s *taskServiceImpl) find(ctx context.Context, op string, id uuid.UUID) (*domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			s.log(ctx).Debug("task not found", slog.String("task_id", id.String()))
		} else {
			s.log(ctx).Error("failed to load task",
				slog.String("error", err.Error()),
				slog.String("task_id", id.String()))
		}
		return nil, NewTaskServiceError(op, "failed to load task", err)
	}
	return task, nil
}

func (s *taskServiceImpl) save(
	ctx context.Context,
	op, eventType string,
	task *domain.Task,
) (*domain.TaskDetail, error) {
	saved, err := s.tasks.Save(ctx, task)
	if err != nil {
		s.log(ctx).Error("failed to save task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()),
			slog.String("operation", op))
		return nil, NewTaskServiceError(op, "failed to save task", err)
	}

	s.emit(ctx, eventType, saved)
	return detailOf(saved), nil
}

// emit publishes a lifecycle event. Failures are logged only.
func (s *taskServiceImpl) emit(ctx context.Context, eventType string, task *domain.Task) {
	event := events.NewTaskEvent(eventType, task, s.now())
	if err := s.eventEmitter.EmitEvent(ctx, event); err != nil {
		s.log(ctx).Warn("failed to emit task event",
			slog.String("error", err.Error()),
			slog.String("event_type", eventType),
			slog.String("task_id", task.ID.String()))
	}
}

func detailOf(t *domain.Task) *domain.TaskDetail {
	d := domain.NewTaskDetail(t)
	return &d
}
