package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)

	MessagesSentTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pm_messages_sent_total",
			Help: "Total number of private messages sent",
		},
	)

	MessagesReadTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pm_messages_read_total",
			Help: "Total number of private messages marked as read",
		},
	)

	DraftsSavedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pm_drafts_saved_total",
			Help: "Total number of private message drafts saved",
		},
	)
)
