package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)

	RelatedRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "related_movie_requests_total",
			Help: "Total number of related-movie lookups served",
		},
	)

	ViewsRecordedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "movie_views_recorded_total",
			Help: "Total number of view-ledger upserts that succeeded",
		},
	)

	ViewRecordFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "movie_view_record_failures_total",
			Help: "Total number of view-ledger upserts that failed (request still served)",
		},
	)

	RatingsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "movie_ratings_total",
			Help: "Total number of ratings accepted",
		},
	)
)

// Handler exposes the default prometheus registry.
func Handler() http.Handler { return promhttp.Handler() }
