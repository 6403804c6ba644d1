package fetcher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	headBlock = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "domainindexor_head_block",
			Help: "The scan head block number after finality and confirmations",
		},
	)

	logsFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "domainindexor_logs_fetched_total",
			Help: "Total number of logs fetched by event kind",
		},
		[]string{"kind"},
	)

	removedLogsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "domainindexor_removed_logs_skipped_total",
			Help: "Total number of logs skipped because the node flagged them as removed",
		},
	)

	rangeSplits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "domainindexor_log_range_splits_total",
			Help: "Total number of log queries split after hitting a provider result cap",
		},
		[]string{"kind"},
	)
)

func HeadBlockSet(blockNum uint64) {
	headBlock.Set(float64(blockNum))
}

func LogsFetchedAdd(kind string, count int) {
	logsFetched.WithLabelValues(kind).Add(float64(count))
}

func RemovedLogSkippedInc() {
	removedLogsSkipped.Inc()
}

func RangeSplitInc(kind string) {
	rangeSplits.WithLabelValues(kind).Inc()
}
