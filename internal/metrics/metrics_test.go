package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestMetricsRegistered(t *testing.T) {
	ObserveReply(true)
	HTTPRequestsTotal.WithLabelValues("GET", "2xx").Inc()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	expected := map[string]bool{
		"chatbot_replies_total":                false,
		"chatbot_sessions_active":              false,
		"chatbot_sessions_evicted_total":       false,
		"chatbot_websocket_connections_active": false,
		"chatbot_http_requests_total":          false,
	}
	for _, mf := range families {
		if _, ok := expected[mf.GetName()]; ok {
			expected[mf.GetName()] = true
		}
	}
	for name, found := range expected {
		assert.True(t, found, name)
	}
}

func TestObserveReply(t *testing.T) {
	matched := RepliesTotal.WithLabelValues(OutcomeMatched)
	fallback := RepliesTotal.WithLabelValues(OutcomeFallback)
	beforeMatched := counterValue(t, matched)
	beforeFallback := counterValue(t, fallback)

	ObserveReply(true)
	ObserveReply(false)
	ObserveReply(false)

	assert.Equal(t, beforeMatched+1, counterValue(t, matched))
	assert.Equal(t, beforeFallback+2, counterValue(t, fallback))
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", StatusClass(204))
	assert.Equal(t, "3xx", StatusClass(301))
	assert.Equal(t, "4xx", StatusClass(404))
	assert.Equal(t, "5xx", StatusClass(503))
	assert.Equal(t, "1xx", StatusClass(101))
}
