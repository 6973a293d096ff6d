package service

import (
	"errors"
	"fmt"

	"github.com/fidev/todo-api/internal/store"
)

// Sentinel errors returned by TaskService. The API layer maps them to
// HTTP statuses; validation failures come straight from the domain
// package (domain.ErrInvalidDescription, domain.ErrInvalidDuration).
var (
	// ErrTaskNotFound indicates that no task has the requested ID.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidAction indicates a transition the task's current status
	// does not allow, such as editing a completed task.
	ErrInvalidAction = errors.New("action not allowed for task status")
)

// TaskServiceError wraps unexpected errors from the task service with context.
type TaskServiceError struct {
	// Operation is the operation that failed (e.g., "create_task", "complete_task")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
// Known sentinel errors are returned directly without wrapping.
func NewTaskServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrTaskNotFound), errors.Is(err, store.ErrNotFound):
		return ErrTaskNotFound
	case errors.Is(err, ErrInvalidAction):
		return ErrInvalidAction
	}

	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
