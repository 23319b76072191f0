// Package metrics records sort timings, ranking queries and load sizes on
// a private Prometheus registry.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors for one process run.
type Metrics struct {
	registry      *prometheus.Registry
	sortDuration  *prometheus.HistogramVec
	rankQueries   prometheus.Counter
	recordsLoaded *prometheus.GaugeVec
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sortDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sort_duration_seconds",
				Help:    "Wall-clock time to sort every group of a table.",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"algorithm", "dataset"},
		),
		rankQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rank_queries_total",
			Help: "Number of state rankings computed.",
		}),
		recordsLoaded: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "records_loaded",
				Help: "Rows loaded per dataset.",
			},
			[]string{"dataset"},
		),
	}
	m.registry.MustRegister(m.sortDuration, m.rankQueries, m.recordsLoaded)
	return m
}

// ObserveSort records how long algorithm took over dataset.
func (m *Metrics) ObserveSort(algorithm, dataset string, d time.Duration) {
	m.sortDuration.WithLabelValues(algorithm, dataset).Observe(d.Seconds())
}

// IncRankQueries counts one ranking.
func (m *Metrics) IncRankQueries() {
	m.rankQueries.Inc()
}

// SetRecordsLoaded stores the row count for dataset.
func (m *Metrics) SetRecordsLoaded(dataset string, n int) {
	m.recordsLoaded.WithLabelValues(dataset).Set(float64(n))
}

// Registry exposes the underlying registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes every metric in the Prometheus text format to path.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("metrics: write %q: %w", path, err)
	}
	return nil
}
