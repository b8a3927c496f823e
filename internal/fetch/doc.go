// Package fetch talks to the remote random-entry API.
//
// The Client issues bounded-retry GET requests and reports exhausted retries
// as a distinguished Result rather than an error: a skipped batch is an
// expected outcome of a run, not a failure. Extract maps raw API records to
// normalized dictionary entries, silently dropping records that are missing
// required fields so the rest of the batch keeps flowing.
package fetch
