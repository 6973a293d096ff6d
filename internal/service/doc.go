// Package service contains the task use cases. It applies the lifecycle
// rules of domain.Task, orchestrates the store.TaskStore behind them and
// returns client-facing detail views.
//
// Services receive their dependencies through constructor injection and
// never depend on a concrete store implementation. Expected failures are
// reported as sentinel errors (ErrTaskNotFound, ErrInvalidAction and the
// domain validation errors) that callers check with errors.Is; anything
// unexpected is wrapped in a *TaskServiceError.
package service
