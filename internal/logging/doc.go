// Package logging builds the slog loggers used across slangvault.
//
// Runs log human-readable timestamped lines. Output is duplicated to stdout
// and to a per-day log file under the configured log directory, so a run
// scheduled from cron leaves an inspectable trail without swallowing the
// console output. A JSON format is available for machine collection.
//
// The log stream is not a machine-consumed interface; the stats file is the
// only derived artifact other tooling should read.
package logging
