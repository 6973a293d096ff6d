package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/fidev/todo-api/internal/domain"
	"github.com/fidev/todo-api/internal/platform/logger"
	"github.com/fidev/todo-api/internal/store"
	"github.com/google/uuid"
)

const taskColumns = `id, description, duration, delay, finalized_at, status`

const upsertTaskQuery = `
INSERT INTO tasks (` + taskColumns + `)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET
	description  = EXCLUDED.description,
	duration     = EXCLUDED.duration,
	delay        = EXCLUDED.delay,
	finalized_at = EXCLUDED.finalized_at,
	status       = EXCLUDED.status
RETURNING ` + taskColumns

// sortColumns whitelists the ORDER BY columns. Nothing else from a
// request ever reaches the SQL text.
var sortColumns = map[domain.SortField]string{
	domain.SortByDescription: "description",
	domain.SortByFinalizedAt: "finalized_at",
	domain.SortByDuration:    "duration",
	domain.SortByDelay:       "delay",
	domain.SortByStatus:      "status",
}

// taskRow is the database shape of a task.
type taskRow struct {
	ID          uuid.UUID    `db:"id"`
	Description string       `db:"description"`
	Duration    float64      `db:"duration"`
	Delay       float64      `db:"delay"`
	FinalizedAt sql.NullTime `db:"finalized_at"`
	Status      string       `db:"status"`
}

func (r taskRow) toDomain() *domain.Task {
	t := &domain.Task{
		ID:          r.ID,
		Description: r.Description,
		Duration:    r.Duration,
		Delay:       r.Delay,
		Status:      domain.TaskStatus(r.Status),
	}
	if r.FinalizedAt.Valid {
		at := r.FinalizedAt.Time.UTC()
		t.FinalizedAt = &at
	}
	return t
}

// PostgresTaskStore implements store.TaskStore on PostgreSQL.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.TaskStore = (*PostgresTaskStore)(nil)

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// It accepts a database connection or transaction that satisfies the store.DBTX interface.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Save inserts the task or replaces the row with the same ID. The
// caller's task is never modified; an ID assigned here is only visible
// on the returned copy.
func (s *PostgresTaskStore) Save(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if task == nil {
		return nil, store.NewStoreError("task", "save", "task is nil", store.ErrInvalidEntity)
	}
	task = task.Clone()
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	if err := task.Validate(); err != nil {
		log.Debug("rejected invalid task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return nil, store.NewStoreError("task", "save", "invalid task",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	var finalizedAt sql.NullTime
	if task.FinalizedAt != nil {
		finalizedAt = sql.NullTime{Time: task.FinalizedAt.UTC(), Valid: true}
	}

	var row taskRow
	err := s.db.GetContext(ctx, &row, upsertTaskQuery,
		task.ID, task.Description, task.Duration, task.Delay, finalizedAt, string(task.Status))
	if err != nil {
		log.Error("failed to save task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return nil, store.NewStoreError("task", "save", "failed to save task", MapError(err))
	}

	log.Debug("task saved",
		slog.String("task_id", row.ID.String()),
		slog.String("status", row.Status))
	return row.toDomain(), nil
}

// FindByID returns the task with the given ID or store.ErrTaskNotFound.
func (s *PostgresTaskStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var row taskRow
	err := s.db.GetContext(ctx, &row, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	if err != nil {
		mapped := MapError(err)
		if store.IsNotFoundError(mapped) {
			log.Debug("task not found", slog.String("task_id", id.String()))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, store.NewStoreError("task", "get", "failed to get task", mapped)
	}

	return row.toDomain(), nil
}

// FindAllByStatus lists tasks with the given status.
func (s *PostgresTaskStore) FindAllByStatus(
	ctx context.Context,
	status domain.TaskStatus,
	sort domain.Sort,
) ([]*domain.Task, error) {
	return s.list(ctx, "status = $1", status, sort)
}

// FindAllByStatusNot lists tasks whose status differs from the given one.
func (s *PostgresTaskStore) FindAllByStatusNot(
	ctx context.Context,
	status domain.TaskStatus,
	sort domain.Sort,
) ([]*domain.Task, error) {
	return s.list(ctx, "status <> $1", status, sort)
}

func (s *PostgresTaskStore) list(
	ctx context.Context,
	where string,
	status domain.TaskStatus,
	sort domain.Sort,
) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE ` + where + ` ` + orderByClause(sort)

	var rows []taskRow
	if err := s.db.SelectContext(ctx, &rows, query, string(status)); err != nil {
		log.Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.String("status", string(status)))
		return nil, store.NewStoreError("task", "list", "failed to list tasks", MapError(err))
	}

	tasks := make([]*domain.Task, 0, len(rows))
	for _, r := range rows {
		tasks = append(tasks, r.toDomain())
	}
	return tasks, nil
}

// orderByClause renders the ORDER BY for sort. Absent values order as
// the lowest, and ties fall back to the ID.
func orderByClause(sort domain.Sort) string {
	column, ok := sortColumns[sort.Field]
	if !ok {
		column = sortColumns[domain.DefaultSortField]
	}
	if sort.Ascending() {
		return fmt.Sprintf("ORDER BY %s ASC NULLS FIRST, id ASC", column)
	}
	return fmt.Sprintf("ORDER BY %s DESC NULLS LAST, id ASC", column)
}
