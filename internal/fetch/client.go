package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"slangvault/internal/logging"
)

// HTTPDoer describes the HTTP client used by the fetcher.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RawEntry is one record as returned by the API. Pointer fields distinguish
// a missing key from an empty value so Extract can enforce the required set.
type RawEntry struct {
	DefID      *int64  `json:"defid"`
	Word       *string `json:"word"`
	Definition *string `json:"definition"`
	Example    *string `json:"example"`
	WrittenOn  *string `json:"written_on"`
}

// RawBatch is the response envelope of the random-entry endpoint.
type RawBatch struct {
	List []RawEntry `json:"list"`
}

// Result reports the outcome of one fetch cycle. Exactly one of Batch and
// RetriesExhausted is meaningful: a nil Batch with RetriesExhausted set means
// the batch was skipped after the retry ceiling, not that nothing exists.
type Result struct {
	Batch            *RawBatch
	RetriesExhausted bool
}

// Client fetches batches of random entries with bounded retries.
type Client struct {
	baseURL    string
	doer       HTTPDoer
	logger     *slog.Logger
	maxRetries int
	retryDelay time.Duration
	sleep      func(time.Duration)
}

// NewClient builds a fetch client. A nil doer falls back to an http.Client
// with the provided timeout; a nil sleep falls back to time.Sleep.
func NewClient(baseURL string, timeout time.Duration, maxRetries int, retryDelay time.Duration, doer HTTPDoer, logger *slog.Logger) *Client {
	if doer == nil {
		doer = &http.Client{Timeout: timeout}
	}
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Client{
		baseURL:    baseURL,
		doer:       doer,
		logger:     logging.WithComponent(logger, "fetch"),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		sleep:      time.Sleep,
	}
}

// Fetch requests one batch. Transport errors and non-2xx statuses are retried
// up to the configured ceiling with a fixed delay between attempts; after the
// last attempt the batch is reported as skipped. Fetch never mutates any
// state beyond the network call.
func (c *Client) Fetch(ctx context.Context) Result {
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		batch, err := c.request(ctx)
		if err == nil {
			return Result{Batch: batch}
		}
		c.logger.Warn("api request failed",
			logging.Int("attempt", attempt),
			logging.Int("max_retries", c.maxRetries),
			logging.Error(err))
		if attempt < c.maxRetries {
			c.sleep(c.retryDelay)
		}
	}
	c.logger.Warn("retry ceiling reached, skipping batch")
	return Result{RetriesExhausted: true}
}

func (c *Client) request(ctx context.Context) (*RawBatch, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var batch RawBatch
	if err := json.NewDecoder(resp.Body).Decode(&batch); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &batch, nil
}
