// Package store owns the two on-disk representations of the archive.
//
// DailyStore appends entries to one JSON file per calendar date; LetterStore
// merges definition records into one JSON file per leading letter (plus a
// catch-all bucket). Both follow the same read-modify-write discipline: load
// the whole file, treat absent or corrupt content as empty with a warning,
// merge in memory, and replace the file via temp-file rename so readers never
// observe a partial write. The two stores are independent of each other, and
// within the letter store each letter file is written independently.
//
// Correctness across repeated invocations relies on each run reading then
// writing each file within itself; two processes must not share a storage
// directory (the runlock package enforces this when enabled).
package store
