// Package postgres provides the PostgreSQL implementation of
// store.TaskStore. Queries run through sqlx on top of the pgx stdlib
// driver; the schema is managed by goose migrations embedded in
// Migrations. Driver errors are translated into store sentinels by
// MapError.
package postgres
