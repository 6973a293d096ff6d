package postgres_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fidev/todo-api/internal/domain"
	"github.com/fidev/todo-api/internal/platform/postgres"
	"github.com/fidev/todo-api/internal/store"
	"github.com/fidev/todo-api/internal/testdb"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T, fn func(t *testing.T, s *postgres.PostgresTaskStore)) {
	t.Helper()
	db := testdb.GetTestDBWithT(t)
	testdb.SetupTestDatabaseSchema(t, db, postgres.Migrations, postgres.MigrationsDir)

	testdb.WithTx(t, db, func(t *testing.T, tx *sqlx.Tx) {
		// Start every test from an empty table; the delete is rolled back too.
		_, err := tx.Exec("DELETE FROM tasks")
		require.NoError(t, err)
		fn(t, postgres.NewPostgresTaskStore(tx, nil))
	})
}

func mustTask(t *testing.T, desc string, duration float64) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(desc, duration)
	require.NoError(t, err)
	return task
}

func TestPostgresTaskStore_SaveAndFind(t *testing.T) {
	setupStore(t, func(t *testing.T, s *postgres.PostgresTaskStore) {
		ctx := context.Background()
		in := mustTask(t, "Buy milk", 30)

		saved, err := s.Save(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, in.ID, saved.ID)
		assert.Equal(t, domain.TaskStatusPending, saved.Status)
		assert.Nil(t, saved.FinalizedAt)

		at := time.Now().UTC().Truncate(time.Microsecond)
		saved.Complete(12.5, at)
		_, err = s.Save(ctx, saved)
		require.NoError(t, err)

		got, err := s.FindByID(ctx, in.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.TaskStatusCompleted, got.Status)
		assert.Equal(t, 12.5, got.Delay)
		require.NotNil(t, got.FinalizedAt)
		assert.True(t, got.FinalizedAt.Equal(at))
	})
}

func TestPostgresTaskStore_FindByID_NotFound(t *testing.T) {
	setupStore(t, func(t *testing.T, s *postgres.PostgresTaskStore) {
		_, err := s.FindByID(context.Background(), uuid.New())
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}

func TestPostgresTaskStore_SaveLeavesCallerTaskUntouched(t *testing.T) {
	setupStore(t, func(t *testing.T, s *postgres.PostgresTaskStore) {
		in := &domain.Task{Description: "no id yet", Duration: 3, Status: domain.TaskStatusPending}

		saved, err := s.Save(context.Background(), in)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, saved.ID)
		assert.Equal(t, uuid.Nil, in.ID)
	})
}

func TestPostgresTaskStore_InvalidRow(t *testing.T) {
	// Each case gets its own transaction.
	tests := map[string]*domain.Task{
		"unknown status": {ID: uuid.New(), Description: "x", Duration: 1, Status: "ARCHIVED"},
		"description too long": {ID: uuid.New(), Description: strings.Repeat("a", 101), Duration: 1,
			Status: domain.TaskStatusPending},
		"duration below one": {ID: uuid.New(), Description: "x", Duration: 0, Status: domain.TaskStatusPending},
	}

	for name, task := range tests {
		t.Run(name, func(t *testing.T) {
			setupStore(t, func(t *testing.T, s *postgres.PostgresTaskStore) {
				_, err := s.Save(context.Background(), task)
				assert.ErrorIs(t, err, store.ErrInvalidEntity)
			})
		})
	}
}

func TestPostgresTaskStore_Lists(t *testing.T) {
	setupStore(t, func(t *testing.T, s *postgres.PostgresTaskStore) {
		ctx := context.Background()
		base := time.Date(2026, time.May, 1, 9, 0, 0, 0, time.UTC)

		a := mustTask(t, "A", 20)
		a.Complete(30, base)
		b := mustTask(t, "B", 25)
		b.Complete(20, base.Add(time.Minute))
		c := mustTask(t, "C", 50)
		d := mustTask(t, "D", 60)
		d.MarkDeleted()
		for _, task := range []*domain.Task{a, b, c, d} {
			_, err := s.Save(ctx, task)
			require.NoError(t, err)
		}

		names := func(tasks []*domain.Task) []string {
			out := []string{}
			for _, task := range tasks {
				out = append(out, task.Description)
			}
			return out
		}

		notDeleted, err := s.FindAllByStatusNot(ctx, domain.TaskStatusDeleted, domain.NewSort("desc", "DESC"))
		require.NoError(t, err)
		assert.Equal(t, []string{"C", "B", "A"}, names(notDeleted))

		completed, err := s.FindAllByStatus(ctx, domain.TaskStatusCompleted, domain.NewSort("delay", "ASC"))
		require.NoError(t, err)
		assert.Equal(t, []string{"B", "A"}, names(completed))

		byDateAsc, err := s.FindAllByStatusNot(ctx, domain.TaskStatusDeleted, domain.NewSort("date", "ASC"))
		require.NoError(t, err)
		assert.Equal(t, []string{"C", "A", "B"}, names(byDateAsc))

		byDateDesc, err := s.FindAllByStatusNot(ctx, domain.TaskStatusDeleted, domain.NewSort("date", "DESC"))
		require.NoError(t, err)
		assert.Equal(t, []string{"B", "A", "C"}, names(byDateDesc))

		none, err := s.FindAllByStatus(ctx, domain.TaskStatusPending, domain.NewSort("status", ""))
		require.NoError(t, err)
		assert.Equal(t, []string{"C"}, names(none))
	})
}
