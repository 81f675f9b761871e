// Package health probes the backend's HTTP health endpoint and classifies
// the result.
//
// A probe is a single point-in-time observation. It never retries, never
// polls, and never mutates anything; callers that want readiness loops (the
// dashboard, the combined start command) build them on top.
package health

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Outcome classifies a probe. The four values are mutually exclusive and
// cover every possible result of one HTTP round trip.
type Outcome int

const (
	// OutcomeReachable means a 2xx response whose body was fully read.
	OutcomeReachable Outcome = iota
	// OutcomeUnhealthyStatus means the backend answered with a non-2xx
	// status. The body is not read.
	OutcomeUnhealthyStatus
	// OutcomeConnectionFailed means no HTTP response arrived at all.
	OutcomeConnectionFailed
	// OutcomeBodyReadFailed means a 2xx response whose body could not be
	// read to completion. The backend is up but the answer was lost.
	OutcomeBodyReadFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeReachable:
		return "reachable"
	case OutcomeUnhealthyStatus:
		return "unhealthy"
	case OutcomeConnectionFailed:
		return "unreachable"
	case OutcomeBodyReadFailed:
		return "read failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single probe. Status is set whenever a
// response arrived, Body only when the probe was fully successful, Cause
// only for the two failure modes that carry an underlying error.
type Result struct {
	Outcome Outcome
	Status  int
	Body    string
	Cause   error
	Latency time.Duration
}

// Healthy reports whether the backend answered with a readable 2xx.
func (r Result) Healthy() bool {
	return r.Outcome == OutcomeReachable
}

// Err renders the result as an error, or nil when the backend is reachable.
// The three failure messages are distinct so callers can surface them
// verbatim without losing the classification.
func (r Result) Err() error {
	switch r.Outcome {
	case OutcomeReachable:
		return nil
	case OutcomeUnhealthyStatus:
		return fmt.Errorf("backend responded with status: %d", r.Status)
	case OutcomeConnectionFailed:
		return fmt.Errorf("failed to connect to backend: %w", r.Cause)
	case OutcomeBodyReadFailed:
		return fmt.Errorf("failed to read response: %w", r.Cause)
	default:
		return fmt.Errorf("unclassified health outcome %d", r.Outcome)
	}
}

// Probe checks a single health endpoint over HTTP.
type Probe struct {
	url    string
	client *http.Client
}

// New returns a Probe for the given endpoint. A nil client gets a default
// with a 5 second timeout; per-call deadlines come from the caller's
// context.
func New(url string, client *http.Client) *Probe {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &Probe{url: url, client: client}
}

// URL returns the probed endpoint.
func (p *Probe) URL() string {
	return p.url
}

// Check performs one probe and classifies it. The classification is total:
// every call produces exactly one Outcome.
func (p *Probe) Check(ctx context.Context) Result {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return Result{Outcome: OutcomeConnectionFailed, Cause: err, Latency: time.Since(start)}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return Result{Outcome: OutcomeConnectionFailed, Cause: err, Latency: time.Since(start)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{Outcome: OutcomeUnhealthyStatus, Status: resp.StatusCode, Latency: time.Since(start)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Outcome: OutcomeBodyReadFailed, Status: resp.StatusCode, Cause: err, Latency: time.Since(start)}
	}

	return Result{
		Outcome: OutcomeReachable,
		Status:  resp.StatusCode,
		Body:    string(body),
		Latency: time.Since(start),
	}
}
