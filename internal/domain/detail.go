package domain

import "time"

// TaskDetail is the flattened, client-facing representation of a task.
type TaskDetail struct {
	ID          string  `json:"id"`
	Description string  `json:"desc"`
	Duration    float64 `json:"duration"`
	// FinalDate is the RFC 3339 completion time; nil until completed.
	FinalDate *string `json:"finalDate,omitempty"`
	Delay     float64 `json:"delay"`
	Status    string  `json:"status"`
}

// NewTaskDetail maps a task onto its detail view.
func NewTaskDetail(t *Task) TaskDetail {
	d := TaskDetail{
		ID:          t.ID.String(),
		Description: t.Description,
		Duration:    t.Duration,
		Delay:       t.Delay,
		Status:      t.Status.String(),
	}
	if t.FinalizedAt != nil {
		finalDate := t.FinalizedAt.UTC().Format(time.RFC3339)
		d.FinalDate = &finalDate
	}
	return d
}
