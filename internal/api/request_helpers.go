package api

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/fidev/todo-api/internal/api/shared"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// getPathTaskID parses the {id} path parameter.
func getPathTaskID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, ErrInvalidTaskID
	}
	return id, nil
}

// errDelayNotFinite rejects NaN and infinities, which ParseFloat accepts.
var errDelayNotFinite = errors.New("delay is not a finite number")

// getDelayParam reads the required delay query parameter. Any float
// syntax is accepted, such as "15", "1e3", ".5" or "5.".
func getDelayParam(r *http.Request) (float64, error) {
	raw := r.URL.Query().Get("delay")
	if err := shared.ValidateValue(raw, "required"); err != nil {
		return 0, newRequestError("delay query parameter must be a number", err)
	}

	delay, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, newRequestError("delay query parameter must be a number", err)
	}
	if math.IsNaN(delay) || math.IsInf(delay, 0) {
		return 0, newRequestError("delay query parameter must be a number", errDelayNotFinite)
	}
	return delay, nil
}

// decodeTaskRequest reads a TaskRequest body.
func decodeTaskRequest(r *http.Request) (TaskRequest, error) {
	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		return req, newRequestError("request body must be a JSON task", err)
	}
	return req, nil
}
