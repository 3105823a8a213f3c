package purchase_event

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var PurchaseEventsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "purchase_events_published_total",
		Help: "Total number of purchase events sent to Kafka",
	},
	[]string{"event_type", "result"},
)
