package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/fidev/todo-api/internal/domain"
	"github.com/fidev/todo-api/internal/service"
	"github.com/fidev/todo-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{"invalid description", domain.ErrInvalidDescription, http.StatusBadRequest,
			CodeInvalidDescription, "task description is not valid"},
		{"invalid duration", domain.ErrInvalidDuration, http.StatusBadRequest,
			CodeInvalidDuration, "estimated duration cannot be less than 1"},
		{"not found", service.ErrTaskNotFound, http.StatusNotFound,
			CodeNotFound, "no task found with the requested ID"},
		{"wrapped not found", fmt.Errorf("lookup: %w", service.ErrTaskNotFound), http.StatusNotFound,
			CodeNotFound, "no task found with the requested ID"},
		{"invalid id", ErrInvalidTaskID, http.StatusNotFound,
			CodeNotFound, "no task found with the requested ID"},
		{"invalid action", service.ErrInvalidAction, http.StatusConflict,
			CodeInvalidAction, "a completed task cannot be updated"},
		{"request error", newRequestError("delay query parameter must be a number", errors.New("x")),
			http.StatusBadRequest, CodeBadRequest, "delay query parameter must be a number"},
		{"store failure", &service.TaskServiceError{Operation: "save_task", Err: store.ErrInvalidEntity},
			http.StatusInternalServerError, CodeInternal, "an unexpected error occurred"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError,
			CodeInternal, "an unexpected error occurred"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, code, message := MapError(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantCode, code)
			assert.Equal(t, tc.wantMessage, message)
		})
	}
}

func TestRequestError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := newRequestError("request body must be a JSON task", cause)

	assert.Equal(t, "request body must be a JSON task: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "bad", (&RequestError{Message: "bad"}).Error())
}
