package store

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transactions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "domainindexor_store_transactions_total",
			Help: "Total number of store transactions by outcome",
		},
		[]string{"outcome"},
	)

	transactionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "domainindexor_store_transaction_duration_seconds",
			Help:    "Duration of store transactions",
			Buckets: prometheus.DefBuckets,
		},
	)

	eventsEnqueued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "domainindexor_store_events_enqueued_total",
			Help: "Total number of events written to the queue",
		},
	)

	namesUpserted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "domainindexor_store_names_upserted_total",
			Help: "Total number of registry upserts",
		},
	)
)

func TransactionLog(committed bool, duration time.Duration) {
	outcome := "rollback"
	if committed {
		outcome = "commit"
	}
	transactions.WithLabelValues(outcome).Inc()
	transactionDuration.Observe(duration.Seconds())
}

func EventsEnqueuedAdd(n int) {
	eventsEnqueued.Add(float64(n))
}

func NamesUpsertedInc() {
	namesUpserted.Inc()
}
