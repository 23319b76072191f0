// Package sorting holds the in-place comparison sorts applied to every
// group of a models.GroupedTable.
package sorting

import (
	"fmt"
	"strings"
	"time"

	"housing-advantage/models"
)

// Algorithm selects one of the sorts below.
type Algorithm int

const (
	// Shell is the gap-based insertion sort.
	Shell Algorithm = iota
	// Quick is the first-element-pivot partition sort.
	Quick
)

// Algorithms lists every algorithm in the order benchmarks run them.
var Algorithms = []Algorithm{Shell, Quick}

func (a Algorithm) String() string {
	switch a {
	case Shell:
		return "shell"
	case Quick:
		return "quick"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "shell" or "quick" (case-insensitive) to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "shell", "shellsort":
		return Shell, nil
	case "quick", "quicksort":
		return Quick, nil
	}
	return 0, fmt.Errorf("%w: %q", models.ErrUnknownAlgorithm, name)
}

// SortGroups sorts every group of table ascending in place with algo and
// returns the wall-clock time spent on the whole table. Group membership
// and the order of keys are untouched.
func SortGroups[T models.Record[T]](table *models.GroupedTable[T], algo Algorithm) time.Duration {
	sortFn := ShellSort[T]
	if algo == Quick {
		sortFn = QuickSort[T]
	}

	start := time.Now()
	for _, key := range table.Keys() {
		g, _ := table.Group(key)
		sortFn(g)
	}
	return time.Since(start)
}
