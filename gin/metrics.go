package gin

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	turns      *prometheus.CounterVec
	rejected   *prometheus.CounterVec
	duplicates prometheus.Counter
	duration   prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		turns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cookalong_turns_total",
				Help: "Total number of answered turns by request type, intent and outcome.",
			},
			[]string{"type", "intent", "outcome"},
		),
		rejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cookalong_rejected_requests_total",
				Help: "Total number of requests rejected before dispatch, by error code.",
			},
			[]string{"code"},
		),
		duplicates: factory.NewCounter(prometheus.CounterOpts{
			Name: "cookalong_duplicate_requests_total",
			Help: "Total number of requests that shared an in-flight turn with the same request ID.",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "cookalong_turn_duration_seconds",
			Help:    "Time spent answering a turn.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
