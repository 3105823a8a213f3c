package outbox

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OutboxMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outbox_messages_total",
			Help: "Outbox messages handled by the relay",
		},
		[]string{"result"}, // delivered, failed, deferred
	)

	OutboxEnqueuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outbox_enqueued_total",
			Help: "Purchase events stored in the outbox",
		},
		[]string{"event_type"},
	)
)
