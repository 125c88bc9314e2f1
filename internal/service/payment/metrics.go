package payment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var confirmationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "payment_confirmations_total",
		Help: "Total number of payment confirmations by outcome",
	},
	[]string{"outcome"},
)
