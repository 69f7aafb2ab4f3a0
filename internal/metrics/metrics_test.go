package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOAuthEventOutcome(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.OAuthEvent(EventExchange, nil)
	m.OAuthEvent(EventExchange, nil)
	m.OAuthEvent(EventExchange, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.oauthEvents.WithLabelValues(EventExchange, OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.oauthEvents.WithLabelValues(EventExchange, OutcomeFailure)))
}

func TestToolCallAndSwept(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ToolCall("yahoo_roster", false)
	m.ToolCall("yahoo_roster", true)
	m.Swept("token", 3)
	m.Swept("token", 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.toolCalls.WithLabelValues("yahoo_roster", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.toolCalls.WithLabelValues("yahoo_roster", OutcomeFailure)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.sweptRecords.WithLabelValues("token")))
}

func TestObserveBackend(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveBackend("GET", 200, 20*time.Millisecond)
	m.ObserveBackend("GET", 0, time.Second)

	assert.Equal(t, 2, testutil.CollectAndCount(m.backendDuration))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.OAuthEvent(EventVerify, nil)
		m.ToolCall("mlb_teams", false)
		m.ObserveBackend("POST", 500, time.Millisecond)
		m.Swept("code", 1)
	})
}
