package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the catalog
// conversion pipeline.
type Metrics struct {
	RowsRead       prometheus.Counter
	PipesConverted prometheus.Counter
	RowErrors      prometheus.Counter

	// SolverOutcomes counts insulation-solver calls by outcome:
	// solved, bare_wall, unattainable, invalid_input, numerical_error,
	// other (non-solver row failures, e.g. missing geometry columns).
	SolverOutcomes *prometheus.CounterVec

	// FileDuration observes the wall time of one workbook conversion.
	FileDuration prometheus.Histogram
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RowsRead,
		m.PipesConverted,
		m.RowErrors,
		m.SolverOutcomes,
		m.FileDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RowsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pipedb",
			Name:      "rows_read_total",
			Help:      "Total catalog rows read from input workbooks.",
		}),
		PipesConverted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pipedb",
			Name:      "pipes_converted_total",
			Help:      "Total NetworkPipe entries written.",
		}),
		RowErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pipedb",
			Name:      "row_errors_total",
			Help:      "Total rows skipped due to per-row failures.",
		}),
		SolverOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pipedb",
			Name:      "solver_outcomes_total",
			Help:      "Insulation-thickness solver calls by outcome.",
		}, []string{"outcome"}),
		FileDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pipedb",
			Name:      "file_conversion_duration_seconds",
			Help:      "Duration of one workbook conversion.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
	}
}
