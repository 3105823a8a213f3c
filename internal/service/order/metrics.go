package order

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var OrderOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "orders_operations_total",
		Help: "Total number of order operations by result",
	},
	[]string{"operation", "result"},
)

func recordOperation(operation string, err error) {
	OrderOperationsTotal.WithLabelValues(operation, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrLookupFailure):
		return "lookup_failure"
	case errors.Is(err, ErrPaymentForwardingFailure):
		return "payment_forwarding_failure"
	case errors.Is(err, ErrPublicationFailure):
		return "publication_failure"
	default:
		return "persistence_failure"
	}
}
