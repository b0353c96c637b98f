// Package logging assembles the structured slog loggers used by datclean.
//
// It owns the console and JSON handlers, level parsing, output routing, and
// the run_id tagging applied to every record of a run. ProgressSampler
// throttles per-URL progress into log lines at a fixed cadence. NewNop gives
// tests and optional wiring a logger that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same shape.
package logging
