package runner

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"slangvault/internal/config"
	"slangvault/internal/dedup"
	"slangvault/internal/dictionary"
	"slangvault/internal/fetch"
	"slangvault/internal/logging"
	"slangvault/internal/stats"
	"slangvault/internal/store"
)

// Summary reports what a run did.
type Summary struct {
	Batches        int
	SkippedBatches int
	Fetched        int
	Admitted       int
	Duplicates     int
	Dropped        int
	DumpWriteOK    bool
}

// Runner holds the state of one run.
type Runner struct {
	cfg     *config.Config
	logger  *slog.Logger
	client  *fetch.Client
	seen    *dedup.SeenSet
	daily   *store.DailyStore
	letters *store.LetterStore
	stats   *stats.Reporter

	now    func() time.Time
	sleep  func(time.Duration)
	jitter func(time.Duration) time.Duration
}

// New constructs a runner and bootstraps the seen-id set from the existing
// daily dumps.
func New(cfg *config.Config, logger *slog.Logger) *Runner {
	return newWithDoer(cfg, logger, nil)
}

func newWithDoer(cfg *config.Config, logger *slog.Logger, doer fetch.HTTPDoer) *Runner {
	runLogger := logging.WithComponent(logger, "run")
	client := fetch.NewClient(
		cfg.API.BaseURL,
		time.Duration(cfg.API.TimeoutSeconds)*time.Second,
		cfg.API.MaxRetries,
		time.Duration(cfg.API.RetryDelaySeconds)*time.Second,
		doer,
		logger,
	)
	return &Runner{
		cfg:     cfg,
		logger:  runLogger,
		client:  client,
		seen:    dedup.Bootstrap(cfg.Paths.DataDir, logger),
		daily:   store.NewDailyStore(cfg.Paths.DataDir, logger),
		letters: store.NewLetterStore(cfg.Paths.DictDir, logger),
		stats:   stats.NewReporter(cfg.Paths.DataDir, cfg.Paths.DictDir, cfg.Paths.StatsPath, logger),
		now:     time.Now,
		sleep:   time.Sleep,
		jitter:  jitterDelay,
	}
}

// Run fetches the requested number of batches and merges the admitted
// entries into both stores. It returns early only when the context is
// canceled; every other failure degrades the run and is reported through
// logs and the summary.
func (r *Runner) Run(ctx context.Context, batches int) (Summary, error) {
	if batches <= 0 {
		batches = r.cfg.API.BatchesPerRun
	}

	log := r.logger.With(logging.String("run_id", uuid.NewString()))
	log.Info("starting run", logging.Int("batches", batches), logging.Int("known_ids", r.seen.Len()))

	summary := Summary{Batches: batches}
	var admitted []dictionary.Entry

	batchDelay := time.Duration(r.cfg.API.BatchDelayMillis) * time.Millisecond
	for i := 0; i < batches; i++ {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if i > 0 && batchDelay > 0 {
			r.sleep(r.jitter(batchDelay))
		}

		log.Debug("requesting batch", logging.Int("batch", i+1))
		res := r.client.Fetch(ctx)
		if res.RetriesExhausted {
			summary.SkippedBatches++
			continue
		}

		for _, raw := range res.Batch.List {
			summary.Fetched++
			entry, ok := fetch.Extract(raw)
			if !ok {
				summary.Dropped++
				continue
			}
			if !r.seen.Admit(entry.DefID) {
				summary.Duplicates++
				continue
			}
			summary.Admitted++
			admitted = append(admitted, entry)
		}
	}

	log.Info("fetch phase done",
		logging.Int("fetched", summary.Fetched),
		logging.Int("admitted", summary.Admitted),
		logging.Int("duplicates", summary.Duplicates),
		logging.Int("dropped", summary.Dropped),
		logging.Int("skipped_batches", summary.SkippedBatches))

	if len(admitted) == 0 {
		log.Info("no new entries to save")
		return summary, nil
	}

	// The dump is the authoritative record the seen set is rebuilt from, so
	// pending ids are committed only once the dump write lands; on failure
	// they are rolled back and a later run in this process may retry them.
	if err := r.daily.Append(r.now(), admitted); err != nil {
		log.Warn("daily dump write failed, releasing admitted ids", logging.Error(err))
		r.seen.Rollback()
	} else {
		r.seen.Commit()
		summary.DumpWriteOK = true
	}

	// The letter index is an independent writer: it is merged even when the
	// dump write failed, matching the two stores' redundancy contract.
	if err := r.letters.Merge(admitted); err != nil {
		log.Warn("letter index merge incomplete", logging.Error(err))
	}

	r.stats.Update()
	return summary, nil
}

// jitterDelay spreads the inter-batch pause between 100% and 150% of the
// configured base.
func jitterDelay(base time.Duration) time.Duration {
	if base <= 0 {
		return 0
	}
	return base + rand.N(base/2+1)
}
