package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmercadier/timetable/core/metrics"
)

// fakeInflux answers the health endpoint and captures line-protocol
// writes.
type fakeInflux struct {
	mu      sync.Mutex
	healthy bool
	bodies  []string
}

func (f *fakeInflux) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		healthy := f.healthy
		f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		if healthy {
			_, _ = w.Write([]byte(`{"name":"influxdb","status":"pass"}`))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"name":"influxdb","status":"fail"}`))
	})
	mux.HandleFunc("/api/v2/write", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.bodies = append(f.bodies, string(body))
		f.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

func (f *fakeInflux) received() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.bodies...)
}

func TestInfluxSinkWritesPoints(t *testing.T) {
	fake := &fakeInflux{healthy: true}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	sink := NewInfluxSink(srv.URL, "token", "org", "bucket")
	defer sink.Close()

	err := sink.RecordPlacements([]metrics.PlacementResult{{
		RunID:      "run-1",
		TaskName:   "Report",
		Category:   "work",
		Difficulty: "HIGH",
		Minutes:    60,
		Score:      2.31,
		Start:      time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC),
	}})
	require.NoError(t, err)
	require.NoError(t, sink.RecordRunSummary(metrics.RunSummary{RunID: "run-1", Date: "2026-08-25"}))

	bodies := fake.received()
	require.Len(t, bodies, 2)
	assert.Contains(t, bodies[0], "placement,")
	assert.Contains(t, bodies[0], "task=Report")
	assert.Contains(t, bodies[1], "run_summary,")
}

func TestInfluxFallbackHealthy(t *testing.T) {
	fake := &fakeInflux{healthy: true}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	sink := NewInfluxSinkWithFallback(srv.URL, "token", "org", "bucket")
	influx, ok := sink.(*InfluxSink)
	require.True(t, ok, "healthy endpoint should yield a real sink")
	influx.Close()
}

func TestInfluxFallbackUnhealthy(t *testing.T) {
	fake := &fakeInflux{healthy: false}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	sink := NewInfluxSinkWithFallback(srv.URL, "token", "org", "bucket")
	_, ok := sink.(metrics.NopSink)
	assert.True(t, ok, "unhealthy endpoint should fall back to the nop sink")
}
