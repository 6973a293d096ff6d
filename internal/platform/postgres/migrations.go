package postgres

import "embed"

// Migrations holds the goose SQL migrations for the task schema. Files
// live under the "migrations" directory of this FS.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations that holds the files.
const MigrationsDir = "migrations"
