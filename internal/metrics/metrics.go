package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OAuth events recorded by the provider.
const (
	EventAuthorize = "authorize"
	EventLogin     = "login"
	EventExchange  = "exchange"
	EventVerify    = "verify"
	EventRevoke    = "revoke"
	EventRegister  = "register"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics holds the server collectors. A nil *Metrics is valid and records
// nothing, which keeps callers free of nil checks.
type Metrics struct {
	oauthEvents     *prometheus.CounterVec
	toolCalls       *prometheus.CounterVec
	backendDuration *prometheus.HistogramVec
	sweptRecords    *prometheus.CounterVec
}

// New creates the collectors and registers them on registerer. A nil
// registerer falls back to prometheus.DefaultRegisterer.
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	oauthEvents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fbb_mcp_oauth_events_total",
		Help: "OAuth provider operations by event and outcome.",
	}, []string{"event", "outcome"})
	toolCalls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fbb_mcp_tool_calls_total",
		Help: "MCP tool invocations by tool and outcome.",
	}, []string{"tool", "outcome"})
	backendDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fbb_mcp_backend_request_duration_seconds",
		Help:    "Latency of requests to the fantasy data API.",
		Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"method", "status"})
	sweptRecords := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fbb_mcp_swept_records_total",
		Help: "Expired OAuth records purged by the background sweeper.",
	}, []string{"kind"})

	registerer.MustRegister(oauthEvents, toolCalls, backendDuration, sweptRecords)

	return &Metrics{
		oauthEvents:     oauthEvents,
		toolCalls:       toolCalls,
		backendDuration: backendDuration,
		sweptRecords:    sweptRecords,
	}
}

func outcome(err error) string {
	if err != nil {
		return OutcomeFailure
	}
	return OutcomeSuccess
}

// OAuthEvent counts one provider operation.
func (m *Metrics) OAuthEvent(event string, err error) {
	if m == nil {
		return
	}
	m.oauthEvents.WithLabelValues(event, outcome(err)).Inc()
}

// ToolCall counts one tool invocation.
func (m *Metrics) ToolCall(tool string, failed bool) {
	if m == nil {
		return
	}
	result := OutcomeSuccess
	if failed {
		result = OutcomeFailure
	}
	m.toolCalls.WithLabelValues(tool, result).Inc()
}

// ObserveBackend records the latency of one backend request. A status of 0
// means the request never got a response.
func (m *Metrics) ObserveBackend(method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.backendDuration.WithLabelValues(method, label).Observe(d.Seconds())
}

// Swept counts records purged by the sweeper.
func (m *Metrics) Swept(kind string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.sweptRecords.WithLabelValues(kind).Add(float64(n))
}
