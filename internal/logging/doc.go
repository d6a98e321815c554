// Package logging assembles structured slog loggers used by the converter,
// the verifier, and the CLI.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and provides component loggers plus a no-op logger for tests and
// wiring code that cannot fail. Diagnostic logs are kept apart from the
// user-facing reports the CLI prints to stdout: by default they go to stderr.
package logging
