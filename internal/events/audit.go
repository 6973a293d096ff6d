package events

import (
	"context"
	"log/slog"

	"github.com/fidev/todo-api/internal/platform/logger"
)

// AuditLogHandler writes one structured log line per task transition.
type AuditLogHandler struct {
	logger *slog.Logger
}

// NewAuditLogHandler creates an AuditLogHandler. If logger is nil, the
// default logger is used.
func NewAuditLogHandler(l *slog.Logger) *AuditLogHandler {
	if l == nil {
		l = slog.Default()
	}
	return &AuditLogHandler{logger: l.With("component", "task_audit")}
}

// HandleEvent implements EventHandler. It never fails.
func (h *AuditLogHandler) HandleEvent(ctx context.Context, event *TaskEvent) error {
	// Prefer the request-scoped logger so the trace ID is kept.
	log := logger.FromContextOrDefault(ctx, h.logger)
	log.Info("task lifecycle event",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.Type),
		slog.String("task_id", event.TaskID.String()),
		slog.String("status", event.Status.String()),
		slog.Time("occurred_at", event.OccurredAt))
	return nil
}
