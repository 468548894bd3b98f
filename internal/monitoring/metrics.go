package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Sweep metrics
	candidatesEvaluated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "mpt_sweep_candidates_evaluated_total",
			Help: "Total number of window-pair candidates backtested",
		},
	)

	sweepProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "mpt_sweep_progress_ratio",
			Help: "Fraction of the current sweep completed",
		},
	)

	sweepDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mpt_sweep_duration_seconds",
			Help:    "Distribution of full sweep durations",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Result metrics
	bestCumulativeReturn = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "mpt_best_cumulative_return",
			Help: "Cumulative return of the best window pair found",
		},
	)

	buyHoldReturn = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "mpt_buy_hold_return",
			Help: "Buy-and-hold baseline return over the full series",
		},
	)

	// Error metrics
	errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mpt_errors_total",
			Help: "Total number of errors by component",
		},
		[]string{"component"},
	)
)

func init() {
	prometheus.MustRegister(candidatesEvaluated)
	prometheus.MustRegister(sweepProgress)
	prometheus.MustRegister(sweepDuration)
	prometheus.MustRegister(bestCumulativeReturn)
	prometheus.MustRegister(buyHoldReturn)
	prometheus.MustRegister(errorsTotal)
}

// SweepObserver bridges sweep progress notifications into Prometheus
// metrics. It satisfies the backtest package's ProgressObserver interface.
type SweepObserver struct{}

// NewSweepObserver creates a metrics-backed progress observer.
func NewSweepObserver() *SweepObserver {
	return &SweepObserver{}
}

// Evaluated records one completed candidate.
func (o *SweepObserver) Evaluated(completed, total int) {
	candidatesEvaluated.Inc()
	if total > 0 {
		sweepProgress.Set(float64(completed) / float64(total))
	}
}

// ObserveSweepDuration records how long a full sweep took.
func ObserveSweepDuration(d time.Duration) {
	sweepDuration.Observe(d.Seconds())
}

// RecordSweepOutcome publishes the headline results of a finished sweep.
func RecordSweepOutcome(bestReturn, baseline float64) {
	bestCumulativeReturn.Set(bestReturn)
	buyHoldReturn.Set(baseline)
}

// RecordError records an error metric for a component.
func RecordError(component string) {
	errorsTotal.WithLabelValues(component).Inc()
}

// StartMetricsServer serves /metrics on the given address in the
// background. The caller owns shutdown.
func StartMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		_ = srv.ListenAndServe()
	}()
	return srv
}
