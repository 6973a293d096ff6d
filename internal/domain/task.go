package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// TaskStatus represents the lifecycle stage of a task.
type TaskStatus string

// Possible task status values. The string values are part of the wire
// format and the database schema.
const (
	TaskStatusPending   TaskStatus = "PENDING"
	TaskStatusCompleted TaskStatus = "COMPLETED"
	TaskStatusDeleted   TaskStatus = "DELETED"
)

const (
	// MaxDescriptionLength is the maximum number of characters of a
	// trimmed task description.
	MaxDescriptionLength = 100

	// MinDuration is the lowest accepted duration estimate.
	MinDuration = 1
)

// Task is a single user-tracked to-do item.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	Description string     `json:"description"`
	Duration    float64    `json:"duration"`
	Status      TaskStatus `json:"status"`
	Delay       float64    `json:"delay"`
	FinalizedAt *time.Time `json:"finalized_at,omitempty"`
}

// NewTask creates a pending task with a fresh ID.
// The description is stored trimmed. Returns ErrInvalidDescription or
// ErrInvalidDuration if the input does not pass validation.
func NewTask(description string, duration float64) (*Task, error) {
	desc, err := ValidateDescription(description)
	if err != nil {
		return nil, err
	}
	if err := ValidateDuration(duration); err != nil {
		return nil, err
	}

	return &Task{
		ID:          uuid.New(),
		Description: desc,
		Duration:    duration,
		Status:      TaskStatusPending,
	}, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}
	if _, err := ValidateDescription(t.Description); err != nil {
		return err
	}
	if err := ValidateDuration(t.Duration); err != nil {
		return err
	}
	if !t.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}

// Revise replaces the description and duration of the task.
// Status, delay and finalization time are left untouched. Whether the
// task may be revised at all is decided by the caller.
func (t *Task) Revise(description string, duration float64) error {
	desc, err := ValidateDescription(description)
	if err != nil {
		return err
	}
	if err := ValidateDuration(duration); err != nil {
		return err
	}

	t.Description = desc
	t.Duration = duration
	return nil
}

// Complete marks the task as completed at the given instant with the
// given delay. It applies regardless of the current status.
func (t *Task) Complete(delay float64, at time.Time) {
	finalizedAt := at.UTC()
	t.Status = TaskStatusCompleted
	t.Delay = delay
	t.FinalizedAt = &finalizedAt
}

// MarkDeleted soft-deletes the task. It applies regardless of the
// current status.
func (t *Task) MarkDeleted() {
	t.Status = TaskStatusDeleted
}

// IsCompleted reports whether the task is in the COMPLETED status.
func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	if t.FinalizedAt != nil {
		at := *t.FinalizedAt
		c.FinalizedAt = &at
	}
	return &c
}

// ValidateDescription trims the description and checks that it is
// non-empty and at most MaxDescriptionLength characters long.
// It returns the trimmed description.
func ValidateDescription(description string) (string, error) {
	desc := strings.TrimSpace(description)
	if desc == "" || utf8.RuneCountInString(desc) > MaxDescriptionLength {
		return "", ErrInvalidDescription
	}
	return desc, nil
}

// ValidateDuration checks that the duration is at least MinDuration.
func ValidateDuration(duration float64) error {
	// NaN fails every comparison, so test the positive form.
	if !(duration >= MinDuration) {
		return ErrInvalidDuration
	}
	return nil
}

// IsValid reports whether s is one of the known statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusCompleted, TaskStatusDeleted:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s TaskStatus) String() string {
	return string(s)
}

// ParseStatus looks up a status by its exact name.
// The second return value is false if raw is not a known status; callers
// decide on the fallback.
func ParseStatus(raw string) (TaskStatus, bool) {
	s := TaskStatus(raw)
	if !s.IsValid() {
		return "", false
	}
	return s, true
}
