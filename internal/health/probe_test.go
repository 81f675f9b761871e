package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_Reachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	result := New(server.URL, server.Client()).Check(context.Background())

	assert.Equal(t, OutcomeReachable, result.Outcome)
	assert.True(t, result.Healthy())
	assert.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, `{"status":"ok"}`, result.Body)
	assert.NoError(t, result.Err())
	assert.Greater(t, result.Latency, time.Duration(0))
}

func TestCheck_NonOKStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"internal error", http.StatusInternalServerError},
		{"not found", http.StatusNotFound},
		{"service unavailable", http.StatusServiceUnavailable},
		{"redirect is not success", http.StatusGatewayTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte("error detail that must not be read"))
			}))
			defer server.Close()

			result := New(server.URL, server.Client()).Check(context.Background())

			assert.Equal(t, OutcomeUnhealthyStatus, result.Outcome)
			assert.False(t, result.Healthy())
			assert.Equal(t, tt.status, result.Status)
			assert.Empty(t, result.Body, "body is not read for non-2xx responses")
			require.Error(t, result.Err())
			assert.Contains(t, result.Err().Error(), "backend responded with status")
		})
	}
}

func TestCheck_Non200SuccessCounts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte("starting"))
	}))
	defer server.Close()

	result := New(server.URL, server.Client()).Check(context.Background())

	assert.Equal(t, OutcomeReachable, result.Outcome, "any 2xx is success")
	assert.Equal(t, "starting", result.Body)
}

func TestCheck_ConnectionFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close() // Nothing is listening anymore.

	result := New(url, nil).Check(context.Background())

	assert.Equal(t, OutcomeConnectionFailed, result.Outcome)
	assert.False(t, result.Healthy())
	assert.Error(t, result.Cause)
	require.Error(t, result.Err())
	assert.Contains(t, result.Err().Error(), "failed to connect to backend")
}

func TestCheck_BodyReadFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Promise more bytes than we deliver; the server closes the
		// connection mid-body and the client's read fails after a 200.
		w.Header().Set("Content-Length", "1000")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("short"))
	}))
	defer server.Close()

	result := New(server.URL, server.Client()).Check(context.Background())

	assert.Equal(t, OutcomeBodyReadFailed, result.Outcome)
	assert.False(t, result.Healthy())
	assert.Equal(t, http.StatusOK, result.Status, "status was received before the read failed")
	assert.Error(t, result.Cause)
	require.Error(t, result.Err())
	assert.Contains(t, result.Err().Error(), "failed to read response")
}

func TestCheck_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	result := New(server.URL, server.Client()).Check(ctx)

	assert.Equal(t, OutcomeConnectionFailed, result.Outcome)
	assert.Error(t, result.Cause)
}

func TestOutcomeStrings(t *testing.T) {
	assert.Equal(t, "reachable", OutcomeReachable.String())
	assert.Equal(t, "unhealthy", OutcomeUnhealthyStatus.String())
	assert.Equal(t, "unreachable", OutcomeConnectionFailed.String())
	assert.Equal(t, "read failed", OutcomeBodyReadFailed.String())
}

func TestProbeIsStateless(t *testing.T) {
	// Alternate between healthy and failing responses; each probe must
	// reflect only its own round trip.
	healthy := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		healthy = !healthy
		if healthy {
			w.Write([]byte("ok"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	p := New(server.URL, server.Client())

	first := p.Check(context.Background())
	second := p.Check(context.Background())
	third := p.Check(context.Background())

	assert.Equal(t, OutcomeReachable, first.Outcome)
	assert.Equal(t, OutcomeUnhealthyStatus, second.Outcome)
	assert.Equal(t, OutcomeReachable, third.Outcome)
}
