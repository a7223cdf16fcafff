package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "campora", Name: "requests_total", Help: "Handled gateway requests",
	}, []string{"method", "status"})
	HandlerErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "campora", Name: "handler_errors_total", Help: "Handler errors",
	})
	UpstreamErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "campora", Name: "upstream_errors_total", Help: "Upstream transport and 5xx errors",
	})
	UpstreamLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "campora", Name: "upstream_request_seconds", Help: "Upstream request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
	AttendanceSubmits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "campora", Name: "attendance_submits_total", Help: "Attendance save/update submissions",
	}, []string{"mode"})
)

func init() {
	prometheus.MustRegister(RequestsTotal, HandlerErrors, UpstreamErrors, UpstreamLatency, AttendanceSubmits)
}

// Handler returns the /metrics endpoint handler.
func Handler() http.Handler { return promhttp.Handler() }

// ObserveUpstream records one upstream round trip.
func ObserveUpstream(method, path string, d time.Duration) {
	UpstreamLatency.WithLabelValues(method).Observe(d.Seconds())
}
