package sorting

import "housing-advantage/models"

// ShellSort sorts data ascending in place using gaps n/2, n/4, ..., 1.
// Equal keys are not guaranteed to keep their relative order.
func ShellSort[T models.Record[T]](data []T) {
	n := len(data)
	for gap := n / 2; gap > 0; gap /= 2 {
		for i := gap; i < n; i++ {
			tmp := data[i]
			j := i
			for ; j >= gap && data[j-gap].Compare(tmp) > 0; j -= gap {
				data[j] = data[j-gap]
			}
			data[j] = tmp
		}
	}
}
