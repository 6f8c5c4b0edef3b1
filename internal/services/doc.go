// Package services defines the shared error taxonomy and run-scoped context
// helpers used across ripper components.
//
// Errors are tagged with sentinel markers (validation, source-open,
// processing) so the CLI can classify a failure without inspecting message
// text, while the full wrap chain remains the diagnostic detail surfaced to
// the operator.
package services
