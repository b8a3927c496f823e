package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"slangvault/internal/logging"
)

func newTestClient(url string, maxRetries int, doer HTTPDoer) *Client {
	c := NewClient(url, time.Second, maxRetries, time.Millisecond, doer, logging.NewNop())
	c.sleep = func(time.Duration) {}
	return c
}

func TestFetchReturnsBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"list":[{"defid":1,"word":"Cat","definition":"a cat","example":"the cat","written_on":"2020-01-01T00:00:00.000Z"}]}`))
	}))
	defer srv.Close()

	res := newTestClient(srv.URL, 3, nil).Fetch(context.Background())
	if res.RetriesExhausted {
		t.Fatal("retries should not be exhausted")
	}
	if res.Batch == nil || len(res.Batch.List) != 1 {
		t.Fatalf("unexpected batch: %+v", res.Batch)
	}
	if got := res.Batch.List[0]; got.DefID == nil || *got.DefID != 1 {
		t.Errorf("defid not decoded: %+v", got)
	}
}

func TestFetchMissingListYieldsEmptyBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	res := newTestClient(srv.URL, 3, nil).Fetch(context.Background())
	if res.RetriesExhausted {
		t.Fatal("retries should not be exhausted")
	}
	if res.Batch == nil {
		t.Fatal("batch should be non-nil")
	}
	if len(res.Batch.List) != 0 {
		t.Errorf("list should be empty, got %d records", len(res.Batch.List))
	}
}

type flakyDoer struct {
	failures int
	calls    int
	resp     func() *http.Response
}

func (d *flakyDoer) Do(req *http.Request) (*http.Response, error) {
	d.calls++
	if d.calls <= d.failures {
		return nil, errors.New("connection reset")
	}
	return d.resp(), nil
}

func TestFetchRetriesThenSucceeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"list":[]}`))
	}))
	defer srv.Close()

	doer := &flakyDoer{failures: 2, resp: func() *http.Response {
		resp, err := http.Get(srv.URL)
		if err != nil {
			t.Fatalf("helper request: %v", err)
		}
		return resp
	}}

	res := newTestClient(srv.URL, 3, doer).Fetch(context.Background())
	if res.RetriesExhausted {
		t.Fatal("should have succeeded on the final attempt")
	}
	if doer.calls != 3 {
		t.Errorf("calls = %d, want 3", doer.calls)
	}
}

func TestFetchExhaustsRetries(t *testing.T) {
	doer := &flakyDoer{failures: 99}
	res := newTestClient("http://localhost:1/random", 3, doer).Fetch(context.Background())
	if !res.RetriesExhausted {
		t.Fatal("RetriesExhausted should be set")
	}
	if res.Batch != nil {
		t.Errorf("batch should be nil, got %+v", res.Batch)
	}
	if doer.calls != 3 {
		t.Errorf("calls = %d, want 3", doer.calls)
	}
}

func TestFetchRetriesOnHTTPError(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	res := newTestClient(srv.URL, 2, nil).Fetch(context.Background())
	if !res.RetriesExhausted {
		t.Fatal("RetriesExhausted should be set after repeated 502s")
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}
