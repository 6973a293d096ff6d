// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, allowing business rules to remain
// independent of specific database technologies or persistence details.
//
// Implementations live in internal/store/memory (in-process map),
// internal/platform/postgres (PostgreSQL) and internal/platform/cache
// (a Redis decorator over another TaskStore).
package store
