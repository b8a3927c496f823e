// Package runner drives one complete fetch-and-store run.
//
// A Runner is a session object: it is constructed at the start of a run,
// bootstraps the seen-id set from disk, carries the fetch client and both
// stores, and is discarded when the run ends. Nothing in the pipeline lives
// as ambient global state.
//
// A run is single-threaded and proceeds to completion; no error inside it is
// fatal. Skipped batches, dropped records, and failed writes all degrade the
// run rather than aborting it; the worst outcome is persisting fewer entries
// than were fetched.
package runner
