package payment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var PaymentsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "payments_processed_total",
		Help: "Payment requests settled by the processor",
	},
	[]string{"result"}, // approved, rejected, invalid, error
)
