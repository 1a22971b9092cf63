package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)

	svc.ObserveRequest("get_players", "ok", 0.02)
	svc.ObserveRequest("get_players", "ok", 0.03)
	svc.ObserveRequest("get_players", "http_error", 0.01)
	svc.ObserveRequest("add_match", "network_error", 10)

	assert.Equal(t, 2.0, testutil.ToFloat64(svc.APIRequests.WithLabelValues("get_players", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.APIRequests.WithLabelValues("get_players", "http_error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.APIRequests.WithLabelValues("add_match", "network_error")))
	assert.Equal(t, 2, testutil.CollectAndCount(svc.APIRequestDuration))
}

func TestService_SlackCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)

	svc.IncSlackNotifSent()
	svc.IncSlackNotifSent()
	svc.IncSlackNotifFailed()

	assert.Equal(t, 2.0, testutil.ToFloat64(svc.SlackNotifSent))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.SlackNotifFailed))
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)
	svc.ObserveRequest("get_players", "ok", 0.1)

	path := filepath.Join(t.TempDir(), "startuppong.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `startuppong_api_requests_total{endpoint="get_players",outcome="ok"} 1`)
}

func TestMock_RecordsCalls(t *testing.T) {
	m := NewMock()
	m.ObserveRequest("add_match", "ok", 0.5)
	m.IncSlackNotifFailed()

	require.Len(t, m.Requests(), 1)
	assert.Equal(t, Request{Endpoint: "add_match", Outcome: "ok", Duration: 0.5}, m.Requests()[0])
	assert.Equal(t, 0, m.SlackNotifSent())
	assert.Equal(t, 1, m.SlackNotifFailed())
}
