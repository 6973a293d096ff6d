package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// The more specific errors below wrap it, so callers may check either.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidDescription is returned when a task description is empty
	// or longer than MaxDescriptionLength after trimming.
	ErrInvalidDescription = fmt.Errorf("%w: invalid task description", ErrValidation)

	// ErrInvalidDuration is returned when a task duration is lower than
	// MinDuration (or not a number at all).
	ErrInvalidDuration = fmt.Errorf("%w: invalid task duration", ErrValidation)

	// ErrInvalidStatus is returned when a status value is not one of the
	// known task statuses.
	ErrInvalidStatus = fmt.Errorf("%w: invalid task status", ErrValidation)

	// ErrEmptyTaskID is returned when a task carries the nil UUID.
	ErrEmptyTaskID = fmt.Errorf("%w: task ID cannot be empty", ErrValidation)
)
