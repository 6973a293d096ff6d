package api

import (
	"errors"
	"net/http"

	"github.com/fidev/todo-api/internal/api/shared"
	"github.com/fidev/todo-api/internal/domain"
	"github.com/fidev/todo-api/internal/service"
)

// Error codes carried in the "code" field of error responses.
const (
	CodeInvalidDescription = "INVALID_DESC"
	CodeInvalidDuration    = "INVALID_DURATION"
	CodeNotFound           = "NOT_FOUND"
	CodeInvalidAction      = "INVALID_ACTION"
	CodeBadRequest         = "BAD_REQUEST"
	CodeInternal           = "INTERNAL_ERROR"
)

// ErrInvalidTaskID is returned for path IDs that are not UUIDs. No task
// can have such an ID, so it is reported as not found.
var ErrInvalidTaskID = errors.New("invalid task id")

// RequestError describes malformed input that the service never sees.
type RequestError struct {
	// Message is safe to show to clients
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func newRequestError(message string, err error) error {
	return &RequestError{Message: message, Err: err}
}

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// errorMappings is consulted in order; the first errors.Is match wins.
var errorMappings = []errorMapping{
	{domain.ErrInvalidDescription, http.StatusBadRequest, CodeInvalidDescription, "task description is not valid"},
	{domain.ErrInvalidDuration, http.StatusBadRequest, CodeInvalidDuration, "estimated duration cannot be less than 1"},
	{service.ErrTaskNotFound, http.StatusNotFound, CodeNotFound, "no task found with the requested ID"},
	{ErrInvalidTaskID, http.StatusNotFound, CodeNotFound, "no task found with the requested ID"},
	{service.ErrInvalidAction, http.StatusConflict, CodeInvalidAction, "a completed task cannot be updated"},
}

// MapError returns the HTTP status, error code and client-safe message
// for err. Unknown errors map to 500 with a generic message.
func MapError(err error) (status int, code, message string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.code, m.message
		}
	}

	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return http.StatusBadRequest, CodeBadRequest, reqErr.Message
	}

	return http.StatusInternalServerError, CodeInternal, "an unexpected error occurred"
}

// HandleAPIError writes the error response for err and logs the cause.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, message := MapError(err)
	shared.RespondWithErrorAndLog(w, r, status, code, message, err)
}
