package metrics

import (
	"complexity-analyzer/internal/apperr"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "complexity_analyses_total",
		Help: "Completed analysis requests by algorithm and outcome",
	}, []string{"algorithm", "outcome"})

	MeasurementSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "complexity_measurement_seconds",
		Help:    "Elapsed time of single algorithm measurements",
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 14),
	}, []string{"algorithm"})

	RunsSavedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "complexity_runs_saved_total",
		Help: "Run record save attempts by outcome",
	}, []string{"outcome"})
)

// Outcome 把错误折算成指标标签
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return apperr.Kind(err)
}
