package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// UpstreamRequests counts single attempts against the provider by endpoint and outcome.
var UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "solar_upstream_requests_total",
	Help: "Total number of provider request attempts by endpoint and outcome.",
}, []string{"endpoint", "outcome"})

// UpstreamRetries counts retries scheduled after a failed attempt.
var UpstreamRetries = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "solar_upstream_retries_total",
	Help: "Total number of provider request retries by endpoint.",
}, []string{"endpoint"})

// UpstreamLatency observes the duration of single attempts.
var UpstreamLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "solar_upstream_request_duration_seconds",
	Help:    "Duration of provider request attempts by endpoint.",
	Buckets: prometheus.DefBuckets,
}, []string{"endpoint"})

// LocationsProcessed counts location pipelines by outcome.
var LocationsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "solar_locations_processed_total",
	Help: "Total number of processed locations by outcome.",
}, []string{"outcome"})
