// Package config loads and merges the application configuration from
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults, in that priority order.
//
// The main entry point is [GetStructuredConfig], which returns a validated
// [StructuredConfig] or an error that should abort startup.
package config
