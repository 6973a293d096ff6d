package main

import (
	"net/http"

	"github.com/fidev/todo-api/internal/api"
	apiMiddleware "github.com/fidev/todo-api/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))

	taskHandler := api.NewTaskHandler(app.taskService, app.logger)

	r.Post("/task", taskHandler.CreateTask)
	r.Get("/task", taskHandler.SearchTasks)
	r.Put("/task/{id}", taskHandler.UpdateTask)
	r.Put("/task/{id}/status", taskHandler.CompleteTask)
	r.Delete("/task/{id}/status", taskHandler.DeleteTask)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
