package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lulu_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lulu_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ChatSendsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lulu_chat_sends_total",
			Help: "Total number of chat send attempts by outcome.",
		},
		[]string{"status"},
	)

	SessionReinitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "lulu_session_reinits_total",
			Help: "Total number of chat session reinitializations.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		ChatSendsTotal,
		SessionReinitsTotal,
	)
}
