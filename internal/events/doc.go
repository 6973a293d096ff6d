// Package events provides task lifecycle events and a synchronous,
// in-process way of publishing them.
//
// The task service emits a TaskEvent after every successful write.
// Handlers registered on an InMemoryEventEmitter receive the events in
// registration order on the caller's goroutine; AuditLogHandler is the
// handler wired by the server and writes one structured log line per
// transition.
package events
