package workflow

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayPublishRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_publish_retries_total",
			Help: "Total number of publish retry attempts",
		},
		[]string{"service", "method", "outcome"},
	)

	GatewayPublishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_publish_duration_seconds",
			Help:    "Duration of publish calls including retries",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"service", "method", "outcome"},
	)
)
