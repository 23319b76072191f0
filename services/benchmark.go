package services

import (
	"time"

	"housing-advantage/metrics"
	"housing-advantage/models"
	"housing-advantage/sorting"
	"housing-advantage/utils"
)

// Benchmarker times sort algorithms against the same unsorted table.
type Benchmarker struct {
	logger  *utils.Logger
	metrics *metrics.Metrics
}

func NewBenchmarker(logger *utils.Logger, m *metrics.Metrics) *Benchmarker {
	return &Benchmarker{logger: logger, metrics: m}
}

// Timing is one algorithm's elapsed time over a whole table.
type Timing struct {
	Algorithm sorting.Algorithm
	Elapsed   time.Duration
}

// BenchmarkResult summarises one dataset's run.
type BenchmarkResult struct {
	Dataset string
	Records int
	Timings []Timing
	// Agree is false if any algorithm produced a different ordering from
	// the first one.
	Agree bool
}

// Benchmark sorts a fresh clone of unsorted with every algorithm in algos
// and returns the table sorted by the first one. unsorted is never
// mutated, so each algorithm starts from the original order.
func Benchmark[T models.Record[T]](
	b *Benchmarker,
	dataset string,
	unsorted *models.GroupedTable[T],
	algos []sorting.Algorithm,
) (*models.GroupedTable[T], BenchmarkResult) {
	result := BenchmarkResult{Dataset: dataset, Records: unsorted.Size(), Agree: true}

	var reference *models.GroupedTable[T]
	for _, algo := range algos {
		table := unsorted.Clone()
		elapsed := sorting.SortGroups(table, algo)

		result.Timings = append(result.Timings, Timing{Algorithm: algo, Elapsed: elapsed})
		if b.metrics != nil {
			b.metrics.ObserveSort(algo.String(), dataset, elapsed)
		}
		b.logger.Info("[sort] %s sort over %s: %.3f ms", algo, dataset, float64(elapsed.Microseconds())/1000.0)

		if reference == nil {
			reference = table
			continue
		}
		if !sameOrder(reference, table) {
			result.Agree = false
			b.logger.Error("[sort] %s sort disagrees with %s sort on %s", algo, algos[0], dataset)
		}
	}

	if reference == nil {
		reference = unsorted.Clone()
	}
	return reference, result
}

func sameOrder[T models.Record[T]](a, b *models.GroupedTable[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, key := range a.Keys() {
		ga, _ := a.Group(key)
		gb, ok := b.Group(key)
		if !ok || len(ga) != len(gb) {
			return false
		}
		for i := range ga {
			if ga[i].Compare(gb[i]) != 0 {
				return false
			}
		}
	}
	return true
}
