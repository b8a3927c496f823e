// Package dedup tracks which defids the archive has already stored.
//
// The set is never persisted as its own artifact: it is rebuilt from the
// daily dump files at startup and lives only as long as the process. New
// admissions are staged in a pending overlay so a failed dump write can be
// rolled back without forgetting what earlier runs stored.
package dedup

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"slangvault/internal/dictionary"
	"slangvault/internal/logging"
)

// SeenSet holds every defid observed across all stored dumps plus the ids
// admitted during the current run.
type SeenSet struct {
	seen    map[int64]struct{}
	pending map[int64]struct{}
}

// NewSeenSet returns an empty set.
func NewSeenSet() *SeenSet {
	return &SeenSet{
		seen:    make(map[int64]struct{}),
		pending: make(map[int64]struct{}),
	}
}

// Bootstrap rebuilds the set from every daily dump under dataDir. A dump that
// fails to parse contributes zero ids and is reported as a warning; a missing
// directory yields an empty set. Loading the same files twice produces an
// identical set.
func Bootstrap(dataDir string, logger *slog.Logger) *SeenSet {
	log := logging.WithComponent(logger, "dedup")
	set := NewSeenSet()

	files, err := os.ReadDir(dataDir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn("cannot scan data directory", logging.String("dir", dataDir), logging.Error(err))
		}
		return set
	}

	loaded := 0
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}
		path := filepath.Join(dataDir, file.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn("cannot read dump, skipping", logging.String("file", path), logging.Error(err))
			continue
		}
		var entries []dictionary.Entry
		if err := json.Unmarshal(data, &entries); err != nil {
			log.Warn("dump is not valid JSON, skipping", logging.String("file", path), logging.Error(err))
			continue
		}
		for _, entry := range entries {
			set.seen[entry.DefID] = struct{}{}
		}
		loaded++
	}

	log.Info("loaded existing defids",
		logging.Int("ids", len(set.seen)),
		logging.Int("dump_files", loaded))
	return set
}

// Admit returns true exactly once per unique id across the lifetime of the
// set, recording the id in the pending overlay. Ids already committed or
// already pending return false.
func (s *SeenSet) Admit(id int64) bool {
	if _, ok := s.seen[id]; ok {
		return false
	}
	if _, ok := s.pending[id]; ok {
		return false
	}
	s.pending[id] = struct{}{}
	return true
}

// Commit folds the pending admissions into the durable set. Called after the
// daily dump write succeeds.
func (s *SeenSet) Commit() {
	for id := range s.pending {
		s.seen[id] = struct{}{}
	}
	s.pending = make(map[int64]struct{})
}

// Rollback discards the pending admissions so a later run within the same
// process may admit those ids again.
func (s *SeenSet) Rollback() {
	s.pending = make(map[int64]struct{})
}

// Len counts committed and pending ids together.
func (s *SeenSet) Len() int {
	return len(s.seen) + len(s.pending)
}

// Contains reports whether the id is committed or pending.
func (s *SeenSet) Contains(id int64) bool {
	if _, ok := s.seen[id]; ok {
		return true
	}
	_, ok := s.pending[id]
	return ok
}
