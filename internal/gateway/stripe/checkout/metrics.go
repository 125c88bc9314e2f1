package checkout

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_gateway_retries_total",
			Help: "Total number of payment gateway retry attempts",
		},
		[]string{"service", "method", "reason"},
	)

	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payment_gateway_request_duration_seconds",
			Help:    "Duration of payment gateway requests including retries",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"service", "method", "code"},
	)
)
