// Package config handles configuration loading, parsing, and validation
// from defaults, an optional config.yaml and TODO_-prefixed environment
// variables. It provides type-safe access to the settings needed by the
// server binary while keeping configuration details separate from
// business logic.
package config
