package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"slangvault/internal/dictionary"
	"slangvault/internal/logging"
)

// DailyStore appends entries to date-partitioned dump files.
type DailyStore struct {
	dir    string
	logger *slog.Logger
}

// NewDailyStore returns a store rooted at dir.
func NewDailyStore(dir string, logger *slog.Logger) *DailyStore {
	return &DailyStore{
		dir:    dir,
		logger: logging.WithComponent(logger, "daily"),
	}
}

// Path returns the dump file for the given date.
func (s *DailyStore) Path(date time.Time) string {
	return filepath.Join(s.dir, date.Format("2006-01-02")+".json")
}

// Append merges the new entries into the dump for the given date. The
// existing sequence is loaded first (absent or corrupt content starts empty
// with a warning), the new entries are appended in order with no further
// dedup, and the whole sequence is written back atomically. An empty entry
// slice leaves the file untouched.
func (s *DailyStore) Append(date time.Time, entries []dictionary.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	path := s.Path(date)
	existing := s.load(path)
	merged := append(existing, entries...)

	if err := writeJSONFile(path, merged); err != nil {
		return fmt.Errorf("save daily dump %s: %w", path, err)
	}

	s.logger.Info("saved entries to daily dump",
		logging.Int("new", len(entries)),
		logging.Int("total", len(merged)),
		logging.String("file", path))
	return nil
}

// Load returns the entries stored for the given date. Absent or corrupt
// files yield an empty slice.
func (s *DailyStore) Load(date time.Time) []dictionary.Entry {
	return s.load(s.Path(date))
}

func (s *DailyStore) load(path string) []dictionary.Entry {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("cannot read daily dump, starting empty", logging.String("file", path), logging.Error(err))
		}
		return nil
	}
	var entries []dictionary.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("daily dump is not valid JSON, starting empty", logging.String("file", path), logging.Error(err))
		return nil
	}
	return entries
}
