// Package logging assembles the structured slog loggers used across ripper.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// exposes context-aware helpers so extraction code can automatically tag log
// lines with the run identifier and input video. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
package logging
