// Package metrics provides Prometheus instrumentation for dataset loading.
//
// # Basic Usage
//
//	reg := prometheus.NewRegistry()
//	collector := metrics.NewCollector(reg)
//
//	opts := dataset.DefaultOptions()
//	opts.Metrics = collector
//	ds, err := dataset.NewWithOptions(dir, file, opts)
//
// Each load records one observation: its outcome, the rows and bytes read,
// and how long it took. Failed loads are labelled with the error type.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tabula"

// ResultSuccess is the result label of a load that produced a dataset
const ResultSuccess = "success"

// Collector records dataset load metrics. It is safe for concurrent use.
type Collector struct {
	loads      *prometheus.CounterVec // Loads by result
	rowsLoaded prometheus.Counter     // Data rows read by successful loads
	bytesRead  prometheus.Counter     // Source bytes read by successful loads
	duration   prometheus.Histogram   // Load latency in seconds
}

// NewCollector creates a collector and registers its metrics with reg.
// A nil reg leaves the metrics unregistered.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		loads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "dataset",
				Name:      "loads_total",
				Help:      "Total number of dataset loads by result",
			},
			[]string{"result"},
		),
		rowsLoaded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "rows_loaded_total",
			Help:      "Total number of data rows loaded",
		}),
		bytesRead: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "bytes_read_total",
			Help:      "Total number of source bytes read",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "load_duration_seconds",
			Help:      "Dataset load latency in seconds",
			Buckets: []float64{
				0.001, // 1ms - small fixtures
				0.01,  // 10ms
				0.1,   // 100ms
				1,     // 1s - typical exports
				10,    // 10s - large files
				60,
			},
		}),
	}
}

// ObserveLoad records a successful load
func (c *Collector) ObserveLoad(rows int, bytes int64, took time.Duration) {
	if c == nil {
		return
	}
	c.loads.WithLabelValues(ResultSuccess).Inc()
	c.rowsLoaded.Add(float64(rows))
	c.bytesRead.Add(float64(bytes))
	c.duration.Observe(took.Seconds())
}

// ObserveFailure records a load that failed with the given error type
func (c *Collector) ObserveFailure(errType string, took time.Duration) {
	if c == nil {
		return
	}
	c.loads.WithLabelValues(errType).Inc()
	c.duration.Observe(took.Seconds())
}

// Timer measures elapsed time for an operation
type Timer struct {
	start time.Time
}

// NewTimer starts a timer
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
