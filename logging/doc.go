// Package logging provides a tiny abstraction over log/slog so downstream
// code depends on a minimal interface (Logger) while callers can plug any
// structured logger. A NoOpLogger keeps logging optional everywhere.
package logging
