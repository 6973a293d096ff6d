package api

import (
	"log/slog"
	"net/http"

	"github.com/fidev/todo-api/internal/api/shared"
	"github.com/fidev/todo-api/internal/platform/logger"
	"github.com/fidev/todo-api/internal/service"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if taskService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("taskService cannot be nil for TaskHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// CreateTask handles POST /task
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	req, err := decodeTaskRequest(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	detail, err := h.taskService.CreateTask(r.Context(), req.Description, req.Duration)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("task created", slog.String("task_id", detail.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, detail)
}

// SearchTasks handles GET /task?status=&orderBy=&order=
func (h *TaskHandler) SearchTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	details, err := h.taskService.SearchTasks(r.Context(), service.SearchParams{
		Status:  q.Get("status"),
		OrderBy: q.Get("orderBy"),
		Order:   q.Get("order"),
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, details)
}

// UpdateTask handles PUT /task/{id}
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathTaskID(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	req, err := decodeTaskRequest(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	detail, err := h.taskService.UpdateTask(r.Context(), id, req.Description, req.Duration)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, detail)
}

// CompleteTask handles PUT /task/{id}/status?delay=
func (h *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathTaskID(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	delay, err := getDelayParam(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	detail, err := h.taskService.CompleteTask(r.Context(), id, delay)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, detail)
}

// DeleteTask handles DELETE /task/{id}/status
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathTaskID(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	detail, err := h.taskService.DeleteTask(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, detail)
}
