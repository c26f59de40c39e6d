package observability

import (
	"context"
	"testing"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func familyNames(t *testing.T, reg *promclient.Registry) []string {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	return names
}

func TestObservability_ExportsRecordedMetrics(t *testing.T) {
	reg := promclient.NewRegistry()
	o, err := New("skillgap-test", reg)
	require.NoError(t, err)
	defer o.Shutdown(context.Background())

	o.RecordRequest(context.Background(), "POST", "/api/skill-gap", 200, 15*time.Millisecond)
	o.RecordJob(context.Background(), "analyze-skill-gap", "completed", 3*time.Millisecond)

	names := familyNames(t, reg)
	for _, want := range []string{
		"http_server_requests_total",
		"http_server_request_duration_seconds",
		"jobs_processed_total",
		"jobs_duration_milliseconds",
	} {
		assert.Contains(t, names, want)
	}
	for _, n := range names {
		assert.NotContains(t, n, ".", "metric names use underscores")
	}
}

func TestObservability_NilIsSafe(t *testing.T) {
	var o *Observability
	assert.NotPanics(t, func() {
		o.RecordRequest(context.Background(), "GET", "/", 200, time.Millisecond)
		o.RecordJob(context.Background(), "x", "failed", time.Millisecond)
		assert.NoError(t, o.Shutdown(context.Background()))
	})
}
