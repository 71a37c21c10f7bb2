package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counters
var (
	UpstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gt_upstream_requests_total",
		Help: "Translation endpoint requests by outcome",
	}, []string{"outcome"})
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gt_http_requests_total",
		Help: "Requests served by gt serve, by route and status code",
	}, []string{"route", "code"})
)

// Histograms
var (
	UpstreamLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gt_upstream_duration_ms",
		Help:    "Translation endpoint round trip in milliseconds by outcome",
		Buckets: []float64{50, 100, 250, 500, 1000, 2000, 5000, 10000, 30000},
	}, []string{"outcome"})
)

// ObserveUpstream matches the gtclient.Client.Observe hook.
func ObserveUpstream(outcome string, elapsed time.Duration) {
	UpstreamRequestsTotal.WithLabelValues(outcome).Inc()
	UpstreamLatency.WithLabelValues(outcome).Observe(float64(elapsed.Milliseconds()))
}

func Handler() http.Handler {
	return promhttp.Handler()
}
