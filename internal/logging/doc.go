// Package logging assembles structured slog loggers and formatting helpers used
// across feedtally.
//
// It owns the console/JSON handlers, centralizes level and output plumbing,
// and exposes context-aware helpers so worker code can automatically tag log
// lines with run IDs, job IDs, and document paths. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
//
// Console output goes to stderr; stdout is reserved for the batch report.
package logging
