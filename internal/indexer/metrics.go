package indexer

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	checkpointBlock = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "domainindexor_checkpoint_block",
			Help: "The next block the indexer will scan",
		},
	)

	queueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "domainindexor_queue_depth",
			Help: "Number of captured events waiting to be applied",
		},
	)

	eventsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "domainindexor_events_applied_total",
			Help: "Total number of queued events applied to the registry by kind",
		},
		[]string{"kind"},
	)

	eventsCaptured = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "domainindexor_events_captured_total",
			Help: "Total number of events captured into the queue by kind",
		},
		[]string{"kind"},
	)

	scanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "domainindexor_scan_duration_seconds",
			Help:    "Duration of one scan and persist step",
			Buckets: prometheus.DefBuckets,
		},
	)

	scannedBlocks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "domainindexor_scanned_blocks_total",
			Help: "Total number of blocks covered by persisted scans",
		},
	)

	unrecoverableErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "domainindexor_unrecoverable_errors_total",
			Help: "Total number of errors that halted the run loop by phase",
		},
		[]string{"phase"},
	)
)

func CheckpointSet(block uint64) {
	checkpointBlock.Set(float64(block))
}

func QueueDepthSet(depth int) {
	queueDepth.Set(float64(depth))
}

func QueueDepthDec() {
	queueDepth.Dec()
}

func EventAppliedInc(kind string) {
	eventsApplied.WithLabelValues(kind).Inc()
}

func EventCapturedInc(kind string) {
	eventsCaptured.WithLabelValues(kind).Inc()
}

func ScanLog(blocks uint64, duration time.Duration) {
	scannedBlocks.Add(float64(blocks))
	scanDuration.Observe(duration.Seconds())
}

func UnrecoverableErrorInc(phase Phase) {
	unrecoverableErrors.WithLabelValues(string(phase)).Inc()
}
