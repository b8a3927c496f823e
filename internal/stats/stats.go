// Package stats recomputes the archive summary after each run.
//
// The report is derived state: it is always recomputed wholesale from the
// daily dumps and letter index on disk, never updated incrementally, and a
// failure anywhere in the recomputation is swallowed. Nothing else in the
// pipeline depends on it.
package stats

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"slangvault/internal/dictionary"
	"slangvault/internal/logging"
	"slangvault/internal/store"
)

// LetterStats counts distinct words and total definition records in one
// letter bucket.
type LetterStats struct {
	Words       int `json:"words"`
	Definitions int `json:"definitions"`
}

// Report is the summary written to the stats file.
type Report struct {
	LastUpdated        time.Time              `json:"last_updated"`
	TotalUniqueEntries int                    `json:"total_unique_entries"`
	DailyFiles         int                    `json:"daily_files"`
	DictionaryFiles    int                    `json:"dictionary_files"`
	EntriesByLetter    map[string]LetterStats `json:"entries_by_letter"`
	DailyBreakdown     map[string]int         `json:"daily_breakdown"`
}

// Reporter recomputes and writes the archive summary.
type Reporter struct {
	dataDir string
	dictDir string
	path    string
	logger  *slog.Logger
	now     func() time.Time
}

// NewReporter builds a reporter over the archive directories, writing its
// summary to path.
func NewReporter(dataDir, dictDir, path string, logger *slog.Logger) *Reporter {
	return &Reporter{
		dataDir: dataDir,
		dictDir: dictDir,
		path:    path,
		logger:  logging.WithComponent(logger, "stats"),
		now:     time.Now,
	}
}

// Update recomputes the report and overwrites the stats file. Failures are
// logged and swallowed: stats are best-effort telemetry and must never abort
// a run.
func (r *Reporter) Update() {
	report, err := r.Recompute()
	if err != nil {
		r.logger.Warn("stats recomputation failed", logging.Error(err))
		return
	}
	if err := r.write(report); err != nil {
		r.logger.Warn("stats write failed", logging.Error(err))
		return
	}
	r.logger.Info("stats updated",
		logging.Int("unique_entries", report.TotalUniqueEntries),
		logging.Int("daily_files", report.DailyFiles),
		logging.Int("dictionary_files", report.DictionaryFiles))
}

// Recompute walks both archive directories and rebuilds the full report from
// scratch. Files that fail to parse are skipped.
func (r *Reporter) Recompute() (Report, error) {
	report := Report{
		LastUpdated:     r.now().UTC(),
		EntriesByLetter: make(map[string]LetterStats),
		DailyBreakdown:  make(map[string]int),
	}

	ids := make(map[int64]struct{})
	if err := r.scanDaily(&report, ids); err != nil {
		return Report{}, err
	}
	report.TotalUniqueEntries = len(ids)

	if err := r.scanLetters(&report); err != nil {
		return Report{}, err
	}
	return report, nil
}

// Read loads a previously written report from the stats file.
func (r *Reporter) Read() (Report, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return Report{}, err
	}
	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return Report{}, err
	}
	return report, nil
}

func (r *Reporter) scanDaily(report *Report, ids map[int64]struct{}) error {
	files, err := os.ReadDir(r.dataDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	for _, file := range files {
		name := file.Name()
		if file.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(r.dataDir, name))
		if err != nil {
			continue
		}
		var entries []dictionary.Entry
		if err := json.Unmarshal(data, &entries); err != nil {
			r.logger.Warn("skipping unreadable dump", logging.String("file", name), logging.Error(err))
			continue
		}
		report.DailyFiles++
		date := strings.TrimSuffix(name, ".json")
		report.DailyBreakdown[date] = len(entries)
		for _, entry := range entries {
			ids[entry.DefID] = struct{}{}
		}
	}
	return nil
}

func (r *Reporter) scanLetters(report *Report) error {
	files, err := os.ReadDir(r.dictDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	for _, file := range files {
		name := file.Name()
		if file.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(r.dictDir, name))
		if err != nil {
			continue
		}
		var index store.Index
		if err := json.Unmarshal(data, &index); err != nil {
			r.logger.Warn("skipping unreadable index", logging.String("file", name), logging.Error(err))
			continue
		}
		report.DictionaryFiles++
		letter := strings.TrimSuffix(name, ".json")
		stats := LetterStats{Words: len(index)}
		for _, records := range index {
			stats.Definitions += len(records)
		}
		report.EntriesByLetter[letter] = stats
	}
	return nil
}

func (r *Reporter) write(report Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(r.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmpPath := r.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
