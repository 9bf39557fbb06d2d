package keepalive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStart_RequiresHTTPS(t *testing.T) {
	p := NewPinger("http://localhost:5001", time.Minute)

	assert.False(t, p.Start(context.Background()))
	assert.False(t, p.Active())
}

func TestStart_EmptyURL(t *testing.T) {
	p := NewPinger("", time.Minute)

	assert.False(t, p.Start(context.Background()))
}

func TestStartAndStop(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewPinger(srv.URL, time.Minute)
	p.client = srv.Client()

	require.True(t, p.Start(context.Background()))
	assert.True(t, p.Active())

	// Second start is a no-op while the loop runs.
	assert.False(t, p.Start(context.Background()))

	p.Stop()
	assert.False(t, p.Active())
	// The loop pings once immediately on start.
	assert.GreaterOrEqual(t, hits.Load(), int64(1))
}

func TestStop_NeverStarted(t *testing.T) {
	p := NewPinger("https://example.com", time.Minute)

	assert.NotPanics(t, p.Stop)
}

func TestPing_RequestsRoot(t *testing.T) {
	var path atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path.Store(r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewPinger(srv.URL, time.Minute)
	p.client = srv.Client()

	logger := zerolog.Nop()
	p.ping(context.Background(), &logger)

	assert.Equal(t, "/", path.Load())
}

func TestInterval(t *testing.T) {
	p := NewPinger("https://example.com", 5*time.Minute)

	assert.Equal(t, 5*time.Minute, p.Interval())
}
