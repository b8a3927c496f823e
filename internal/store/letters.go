package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"slangvault/internal/dictionary"
	"slangvault/internal/logging"
)

// Index is the content of one letter file: word (exact case) to the ordered
// definition records accumulated for that spelling.
type Index map[string][]dictionary.Record

// LetterStore merges entries into the letter-partitioned index files.
type LetterStore struct {
	dir    string
	logger *slog.Logger
}

// NewLetterStore returns a store rooted at dir.
func NewLetterStore(dir string, logger *slog.Logger) *LetterStore {
	return &LetterStore{
		dir:    dir,
		logger: logging.WithComponent(logger, "letters"),
	}
}

// Path returns the index file for a bucket name.
func (s *LetterStore) Path(bucket string) string {
	return filepath.Join(s.dir, bucket+".json")
}

// Merge partitions the entries by the uppercase first letter of their word
// (non-alphabetic or empty goes to the catch-all bucket) and appends each
// entry's record to the list keyed by its exact word. Letter files are
// independent: a failure writing one does not prevent the others, and the
// joined errors are returned at the end.
func (s *LetterStore) Merge(entries []dictionary.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	groups := make(map[string][]dictionary.Entry)
	for _, entry := range entries {
		bucket := dictionary.Bucket(entry.Word)
		groups[bucket] = append(groups[bucket], entry)
	}

	buckets := make([]string, 0, len(groups))
	for bucket := range groups {
		buckets = append(buckets, bucket)
	}
	sort.Strings(buckets)

	var errs []error
	for _, bucket := range buckets {
		if err := s.mergeBucket(bucket, groups[bucket]); err != nil {
			s.logger.Warn("letter index write failed",
				logging.String("bucket", bucket),
				logging.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Load returns the index stored for a bucket. Absent or corrupt files yield
// an empty index.
func (s *LetterStore) Load(bucket string) Index {
	return s.load(s.Path(bucket))
}

func (s *LetterStore) mergeBucket(bucket string, entries []dictionary.Entry) error {
	path := s.Path(bucket)
	index := s.load(path)

	for _, entry := range entries {
		index[entry.Word] = append(index[entry.Word], entry.Record())
	}

	if err := writeJSONFile(path, index); err != nil {
		return fmt.Errorf("save letter index %s: %w", path, err)
	}

	s.logger.Info("updated letter index",
		logging.String("bucket", bucket),
		logging.Int("new", len(entries)),
		logging.Int("words", len(index)))
	return nil
}

func (s *LetterStore) load(path string) Index {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("cannot read letter index, starting empty", logging.String("file", path), logging.Error(err))
		}
		return Index{}
	}
	var index Index
	if err := json.Unmarshal(data, &index); err != nil {
		s.logger.Warn("letter index is not valid JSON, starting empty", logging.String("file", path), logging.Error(err))
		return Index{}
	}
	if index == nil {
		index = Index{}
	}
	return index
}
