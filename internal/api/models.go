package api

// TaskRequest is the body of POST /task and PUT /task/{id}. Field rules
// are enforced by the service so that they can be reported with their
// own error codes.
type TaskRequest struct {
	Description string  `json:"desc"`
	Duration    float64 `json:"duration"`
}
