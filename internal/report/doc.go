// Package report publishes the outcome of a matching run.
//
// Writer persists the kept, rejected, and missing lists under a directory
// lock, Tracker turns matcher progress callbacks into sampled log lines, and
// Summary is the machine-readable digest the CLI prints at the end.
package report
