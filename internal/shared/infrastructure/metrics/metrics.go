package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ResultOK labels a round trip that reached the upload.
const ResultOK = "ok"

var (
	stageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rawconvert_stage_duration_seconds",
		Help:    "Duration of each round trip stage in seconds.",
		Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"stage"})

	// InvocationsTotal counts finished round trips by result.
	InvocationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rawconvert_invocations_total",
		Help: "Total number of round trips by outcome (ok or the stage that failed).",
	}, []string{"result"})
)

// ObserveStage records how long stage took since start.
func ObserveStage(stage string, start time.Time) {
	stageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

// RecordResult counts one finished round trip.
func RecordResult(result string) {
	InvocationsTotal.WithLabelValues(result).Inc()
}
