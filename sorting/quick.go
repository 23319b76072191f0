package sorting

import "housing-advantage/models"

// QuickSort sorts data ascending in place. The pivot is always the first
// element of the range, so sorted or duplicate-heavy input degrades
// toward quadratic time.
func QuickSort[T models.Record[T]](data []T) {
	quickSort(data, 0, len(data)-1)
}

func quickSort[T models.Record[T]](data []T, low, high int) {
	if low >= high {
		return
	}
	p := partition(data, low, high)
	quickSort(data, low, p-1)
	quickSort(data, p+1, high)
}

// partition places data[low] at its final index and returns that index.
// On return everything in [low, p) is <= the pivot and everything in
// (p, high] is >= it. The result always lies within [low, high].
func partition[T models.Record[T]](data []T, low, high int) int {
	pivot := data[low]
	up, down := low, high

	for up < down {
		for up < high && data[up].Compare(pivot) <= 0 {
			up++
		}
		for down > low && data[down].Compare(pivot) >= 0 {
			down--
		}
		if up < down {
			data[up], data[down] = data[down], data[up]
		}
	}

	data[low], data[down] = data[down], data[low]
	return down
}
