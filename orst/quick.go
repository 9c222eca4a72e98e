// Copyright 2025 go-orst Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package orst

import "sort"

// QuickSort is an in-place quicksort that always uses the first element of a
// range as its pivot.
//
// Sorted and reverse-sorted inputs are its worst case at O(n²) comparisons.
// Stack depth stays O(log n) because only the smaller partition is sorted
// recursively.
type QuickSort struct{}

// Sort implements Sorter.
func (QuickSort) Sort(data sort.Interface) {
	quickSort(data, 0, data.Len())
}

// quickSort sorts data[lo:hi].
func quickSort(data sort.Interface, lo, hi int) {
	for {
		switch hi - lo {
		case 0, 1:
			return
		case 2:
			if data.Less(lo+1, lo) {
				data.Swap(lo, lo+1)
			}
			return
		}

		p := partition(data, lo, hi)

		// Recurse into the smaller side, loop on the larger one.
		if p-lo < hi-p-1 {
			quickSort(data, lo, p)
			lo = p + 1
		} else {
			quickSort(data, p+1, hi)
			hi = p
		}
	}
}

// partition rearranges data[lo:hi] around the pivot data[lo] and returns the
// pivot's final index p. Afterwards data[lo:p] holds elements <= pivot and
// data[p+1:hi] holds elements > pivot.
//
// data[lo:hi] must not be empty.
func partition(data sort.Interface, lo, hi int) int {
	// [pivot | <= pivot | unexamined | > pivot]
	left, right := lo+1, hi
	for left < right {
		if !data.Less(lo, left) {
			left++
			continue
		}
		right--
		if !data.Less(lo, right) {
			data.Swap(left, right)
			left++
		}
	}

	// data[left-1] is the last element <= pivot, or the pivot itself.
	p := left - 1
	data.Swap(lo, p)
	return p
}
