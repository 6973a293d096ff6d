package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fidev/todo-api/internal/config"
	"github.com/fidev/todo-api/internal/events"
	"github.com/fidev/todo-api/internal/platform/cache"
	"github.com/fidev/todo-api/internal/platform/postgres"
	"github.com/fidev/todo-api/internal/service"
	"github.com/fidev/todo-api/internal/store"
	"github.com/fidev/todo-api/internal/store/memory"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// application holds the wired dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Connections; nil when the matching backend is not configured
	db    *sqlx.DB
	redis *redis.Client

	taskStore    store.TaskStore
	eventEmitter events.EventEmitter
	taskService  service.TaskService
}

// newApplication connects the configured backends and builds the service graph.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	if logger == nil {
		logger = slog.Default()
	}
	app := &application{config: cfg, logger: logger}

	if err := app.setupStore(ctx); err != nil {
		app.cleanup()
		return nil, err
	}

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(events.NewAuditLogHandler(logger))
	app.eventEmitter = emitter

	taskService, err := service.NewTaskService(app.taskStore, app.eventEmitter, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}
	app.taskService = taskService

	return app, nil
}

// setupStore selects the task store for the configured driver and wraps
// it with the Redis cache when one is configured.
func (app *application) setupStore(ctx context.Context) error {
	cfg := app.config

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := setupAppDatabase(ctx, cfg, app.logger)
		if err != nil {
			return err
		}
		app.db = db

		if cfg.Database.AutoMigrate {
			if err := runMigrations(ctx, db.DB, "up", app.logger); err != nil {
				return fmt.Errorf("failed to apply migrations: %w", err)
			}
		}
		app.taskStore = postgres.NewPostgresTaskStore(db, app.logger)
	case config.DriverMemory, "":
		app.logger.Warn("using in-memory task store; data is lost on restart")
		app.taskStore = memory.New()
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	if cfg.Cache.Enabled() {
		client, err := setupRedis(ctx, cfg, app.logger)
		if err != nil {
			return err
		}
		app.redis = client
		app.taskStore = cache.NewTaskStore(app.taskStore, client, cfg.Cache.TTL(), app.logger)
	}

	return nil
}

// cleanup releases connections. It is safe to call on a partially built application.
func (app *application) cleanup() {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("Error closing redis client", "error", err)
		}
		app.redis = nil
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
		app.db = nil
	}

	app.logger.Info("Application shutdown completed")
}
