// Package logging assembles the structured slog loggers used across the
// generator.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes attr helpers plus component loggers so pipeline code
// tags every line with the component it came from. A no-op logger is
// provided for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
