package service

import (
	"errors"
	"testing"

	"github.com/fidev/todo-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "task not found", ErrTaskNotFound.Error())
	assert.Equal(t, "action not allowed for task status", ErrInvalidAction.Error())
	assert.False(t, errors.Is(ErrTaskNotFound, ErrInvalidAction))
}

func TestTaskServiceError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *TaskServiceError
		expected string
	}{
		{
			name: "with underlying error",
			err: &TaskServiceError{
				Operation: "save_task",
				Message:   "failed to save task",
				Err:       errors.New("connection refused"),
			},
			expected: "task service save_task failed: failed to save task: connection refused",
		},
		{
			name:     "without underlying error",
			err:      &TaskServiceError{Operation: "create_service", Message: "task store cannot be nil"},
			expected: "task service create_service failed: task store cannot be nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestNewTaskServiceError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, NewTaskServiceError("op", "msg", nil))
	})

	t.Run("store not found becomes service sentinel", func(t *testing.T) {
		err := NewTaskServiceError("get_task", "failed", store.ErrTaskNotFound)
		assert.Equal(t, ErrTaskNotFound, err)
	})

	t.Run("sentinels pass through", func(t *testing.T) {
		assert.Equal(t, ErrTaskNotFound, NewTaskServiceError("op", "msg", ErrTaskNotFound))
		assert.Equal(t, ErrInvalidAction, NewTaskServiceError("op", "msg", ErrInvalidAction))
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		cause := store.NewStoreError("task", "save", "write failed", store.ErrInvalidEntity)
		err := NewTaskServiceError("save_task", "failed to save task", cause)

		var svcErr *TaskServiceError
		assert.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "save_task", svcErr.Operation)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}
