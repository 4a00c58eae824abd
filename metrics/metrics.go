package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// RequestsTotal counts responses by route and status code.
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tutor",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP responses written, labeled by route and status code.",
	}, []string{"route", "code"})

	// RequestDurationSeconds is time spent handling a request, measured by the access middleware.
	RequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tutor",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Time to handle an HTTP request, labeled by route.",
		Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	}, []string{"route"})

	// UpstreamRequestsTotal counts chat-completion calls by classified result.
	UpstreamRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tutor",
		Subsystem: "upstream",
		Name:      "requests_total",
		Help:      "Total number of chat-completion calls, labeled by result.",
	}, []string{"result"})

	// UpstreamDurationSeconds is round-trip time of a chat-completion call.
	UpstreamDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tutor",
		Subsystem: "upstream",
		Name:      "request_duration_seconds",
		Help:      "Round-trip time of a chat-completion call, labeled by result.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 60},
	}, []string{"result"})
)

// Register registers tutor metrics with the default Prometheus registry.
// Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			RequestsTotal,
			RequestDurationSeconds,
			UpstreamRequestsTotal,
			UpstreamDurationSeconds,
		)
	})
}
